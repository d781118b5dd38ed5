package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glow"
)

// paramFlags holds the flag destinations for every style parameter.
type paramFlags struct {
	size       int
	glowRadius int
	intensity  float64
	cyanize    float64
	contrast   float64
	saturation float64
	vignette   float64
	particles  int
	lightning  bool
	background glow.Background
}

func bindParamFlags(fs *flag.FlagSet, d glow.Params) *paramFlags {
	pf := &paramFlags{}
	fs.IntVar(&pf.size, "size", d.OutputSize, "output side in pixels (512..2048, step 256)")
	fs.IntVar(&pf.glowRadius, "glow", d.GlowRadius, "glow blur radius in pixels (0..60)")
	fs.Float64Var(&pf.intensity, "intensity", d.Intensity, "glow and effect intensity (0..1)")
	fs.Float64Var(&pf.cyanize, "cyanize", d.Cyanize, "cyan tint strength (0..1)")
	fs.Float64Var(&pf.contrast, "contrast", d.Contrast, "photo contrast (0.5..2)")
	fs.Float64Var(&pf.saturation, "saturation", d.Saturation, "photo saturation (0.2..2.5)")
	fs.Float64Var(&pf.vignette, "vignette", d.Vignette, "vignette strength (0..1)")
	fs.IntVar(&pf.particles, "particles", d.ParticleCount, "sparkle count (0..600)")
	fs.BoolVar(&pf.lightning, "lightning", d.Lightning, "draw lightning arcs")
	fs.TextVar(&pf.background, "background", d.Background, "background: dark or transparent")
	return pf
}

// resolveParams layers defaults, the optional preset file and the flags
// set on the command line, in that order.
func resolveParams(fs *flag.FlagSet, pf *paramFlags, preset string) (glow.Params, error) {
	p := glow.DefaultParams()
	if preset != "" {
		var err error
		if p, err = loadPreset(preset, p); err != nil {
			return p, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "size":
			p.OutputSize = pf.size
		case "glow":
			p.GlowRadius = pf.glowRadius
		case "intensity":
			p.Intensity = pf.intensity
		case "cyanize":
			p.Cyanize = pf.cyanize
		case "contrast":
			p.Contrast = pf.contrast
		case "saturation":
			p.Saturation = pf.saturation
		case "vignette":
			p.Vignette = pf.vignette
		case "particles":
			p.ParticleCount = pf.particles
		case "lightning":
			p.Lightning = pf.lightning
		case "background":
			p.Background = pf.background
		}
	})
	return p.Normalize()
}

// loadPreset decodes the YAML file at path over base. Keys absent from the
// file keep their value in base.
func loadPreset(path string, base glow.Params) (glow.Params, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return base, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return base, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return base, nil
}

func writeParams(w io.Writer, p glow.Params) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("encode params: %w", err)
	}
	return enc.Close()
}
