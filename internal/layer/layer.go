// Package layer implements the compositing stages of a glow render.
//
// Each stage is a Layer: a pure function of the canvas content, the
// frame settings and, for the procedural stages, a random stream seeded
// from those settings alone. Stages draw through explicit canvas.Style
// values, so none of them can leak an operator or filter into the next.
package layer

import (
	"image"

	"github.com/gogpu/glow/internal/canvas"
)

// Frame is the normalized input shared by every stage of one render.
type Frame struct {
	// Source is the portrait, or nil when no image is loaded.
	Source image.Image

	GlowRadius    int
	Intensity     float64
	Cyanize       float64
	Contrast      float64
	Saturation    float64
	Vignette      float64
	ParticleCount int
	Lightning     bool
	Dark          bool // paint the opaque backdrop
}

// HasSource reports whether a portrait is present.
func (f *Frame) HasSource() bool {
	return f.Source != nil
}

// Layer is one compositing stage.
type Layer interface {
	// Name identifies the stage in logs and errors.
	Name() string
	// Applies reports whether the stage draws anything for f.
	Applies(f *Frame) bool
	// Draw composites the stage onto c.
	Draw(c *canvas.Canvas, f *Frame) error
}

// Default returns the stages in render order.
func Default() []Layer {
	return []Layer{
		Background{},
		BaseImage{},
		Tint{},
		Glow{},
		Particles{},
		Lightning{},
		Vignette{},
	}
}
