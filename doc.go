// Package glow renders stylized "glow portraits": a square image built by
// compositing a cover-fitted photo with a cyan tint, a self-blurred glow,
// a sparkle field, lightning arcs and a vignette.
//
// # Quick Start
//
//	import "github.com/gogpu/glow"
//
//	p := glow.DefaultParams()
//	p.OutputSize = 1024
//
//	s, err := glow.Render(img, p)
//	if err != nil {
//	    return err
//	}
//	err = s.WritePNG("glow-portrait-1024.png")
//
// # Determinism
//
// Rendering is a pure function of the source pixels and the parameters.
// The procedural stages draw from linear congruential streams seeded from
// the parameters and the output size, and all compositing is done in
// integer premultiplied RGBA, so equal inputs give byte-identical output.
//
// # Pipeline
//
// Stages run in a fixed order on a cleared surface:
//   - background: dark gradient backdrop, or nothing when transparent
//   - base: the photo, center-cropped to a square, through contrast and saturate
//   - tint: a screened cyan radial wash
//   - glow: a blurred, brightened copy of the surface screened back onto it
//   - particles: soft sparkles, also drawn without a photo
//   - lightning: six jagged arcs, also drawn without a photo
//   - vignette: radial edge darkening
//
// Without a photo only the background, particles and lightning are drawn.
//
// # Logging
//
// glow is silent by default. Install a logger with SetLogger, or give one
// Renderer its own with WithLogger.
package glow

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
