package glow

import (
	"fmt"
	"math"
	"strings"
)

// Output size bounds. Legal sizes are the multiples of OutputSizeStep
// between MinOutputSize and MaxOutputSize inclusive.
const (
	MinOutputSize  = 512
	MaxOutputSize  = 2048
	OutputSizeStep = 256
)

// Background selects what sits beneath the portrait.
type Background int

const (
	// Dark paints an opaque navy gradient backdrop.
	Dark Background = iota
	// Transparent leaves uncovered pixels fully transparent.
	Transparent
)

// String returns "dark" or "transparent".
func (b Background) String() string {
	switch b {
	case Dark:
		return "dark"
	case Transparent:
		return "transparent"
	default:
		return fmt.Sprintf("Background(%d)", int(b))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (b Background) MarshalText() ([]byte, error) {
	switch b {
	case Dark, Transparent:
		return []byte(b.String()), nil
	}
	return nil, &ParameterError{Field: "Background", Value: int(b)}
}

// UnmarshalText implements encoding.TextUnmarshaler. Matching is
// case-insensitive.
func (b *Background) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "dark":
		*b = Dark
	case "transparent":
		*b = Transparent
	default:
		return &ParameterError{Field: "Background", Value: string(text)}
	}
	return nil
}

// Params are the style parameters of one render.
type Params struct {
	OutputSize    int        `yaml:"outputSize" json:"outputSize"`
	GlowRadius    int        `yaml:"glowRadius" json:"glowRadius"`
	Intensity     float64    `yaml:"intensity" json:"intensity"`
	Cyanize       float64    `yaml:"cyanize" json:"cyanize"`
	Contrast      float64    `yaml:"contrast" json:"contrast"`
	Saturation    float64    `yaml:"saturation" json:"saturation"`
	Vignette      float64    `yaml:"vignette" json:"vignette"`
	ParticleCount int        `yaml:"particleCount" json:"particleCount"`
	Lightning     bool       `yaml:"lightning" json:"lightning"`
	Background    Background `yaml:"background" json:"background"`
}

// DefaultParams returns the default style.
func DefaultParams() Params {
	return Params{
		OutputSize:    1024,
		GlowRadius:    24,
		Intensity:     0.7,
		Cyanize:       0.55,
		Contrast:      1.1,
		Saturation:    1.25,
		Vignette:      0.35,
		ParticleCount: 220,
		Lightning:     true,
		Background:    Dark,
	}
}

// Normalize validates p and clamps every numeric field into its range.
// NaN or infinite values and an output size that is not a legal step
// return a *ParameterError.
func (p Params) Normalize() (Params, error) {
	if p.OutputSize < MinOutputSize || p.OutputSize > MaxOutputSize || p.OutputSize%OutputSizeStep != 0 {
		return p, &ParameterError{Field: "OutputSize", Value: p.OutputSize}
	}
	if p.Background != Dark && p.Background != Transparent {
		return p, &ParameterError{Field: "Background", Value: int(p.Background)}
	}

	floats := []struct {
		name   string
		v      *float64
		lo, hi float64
	}{
		{"Intensity", &p.Intensity, 0, 1},
		{"Cyanize", &p.Cyanize, 0, 1},
		{"Contrast", &p.Contrast, 0.5, 2},
		{"Saturation", &p.Saturation, 0.2, 2.5},
		{"Vignette", &p.Vignette, 0, 1},
	}
	for _, f := range floats {
		if math.IsNaN(*f.v) || math.IsInf(*f.v, 0) {
			return p, &ParameterError{Field: f.name, Value: *f.v}
		}
		*f.v = min(max(*f.v, f.lo), f.hi)
	}

	p.GlowRadius = min(max(p.GlowRadius, 0), 60)
	p.ParticleCount = min(max(p.ParticleCount, 0), 600)
	return p, nil
}
