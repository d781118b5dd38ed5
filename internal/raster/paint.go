package raster

import (
	"math"
	"sort"
)

// Paint supplies a premultiplied color for every sample point.
type Paint interface {
	ColorAt(x, y float64) RGBA
}

// Solid is a single-color paint.
type Solid struct {
	premul RGBA
}

// NewSolid creates a paint from a straight-alpha color.
func NewSolid(c RGBA) Solid {
	return Solid{premul: c.Premultiply()}
}

// ColorAt implements Paint.
func (s Solid) ColorAt(_, _ float64) RGBA {
	return s.premul
}

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Straight-alpha color at this position
}

// stopList holds stops sorted by offset with premultiplied colors, which
// is the space canvas gradients interpolate in.
type stopList []ColorStop

func (s *stopList) add(offset float64, c RGBA) {
	*s = append(*s, ColorStop{Offset: clamp01(offset), Color: c.Premultiply()})
	sort.SliceStable(*s, func(i, j int) bool { return (*s)[i].Offset < (*s)[j].Offset })
}

// at returns the premultiplied color at t, padding outside [0, 1].
func (s stopList) at(t float64) RGBA {
	switch len(s) {
	case 0:
		return Transparent
	case 1:
		return s[0].Color
	}
	if t <= s[0].Offset {
		return s[0].Color
	}
	last := s[len(s)-1]
	if t >= last.Offset {
		return last.Color
	}

	idx := sort.Search(len(s), func(i int) bool { return s[i].Offset > t })
	a, b := s[idx-1], s[idx]
	if b.Offset == a.Offset {
		return b.Color
	}
	return a.Color.Lerp(b.Color, (t-a.Offset)/(b.Offset-a.Offset))
}

// LinearGradient is a color transition along the line (X0,Y0)-(X1,Y1),
// padded beyond both ends.
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	stops          stopList
}

// NewLinearGradient creates a linear gradient from (x0, y0) to (x1, y1).
func NewLinearGradient(x0, y0, x1, y1 float64) *LinearGradient {
	return &LinearGradient{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *LinearGradient) AddColorStop(offset float64, c RGBA) *LinearGradient {
	g.stops.add(offset, c)
	return g
}

// ColorAt implements Paint. A zero-length gradient paints nothing.
func (g *LinearGradient) ColorAt(x, y float64) RGBA {
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	lengthSq := dx*dx + dy*dy
	if lengthSq == 0 {
		return Transparent
	}
	t := ((x-g.X0)*dx + (y-g.Y0)*dy) / lengthSq
	return g.stops.at(t)
}

// RadialGradient is a concentric two-circle gradient centred at (CX, CY)
// running from radius R0 (t=0) to R1 (t=1). R0 may exceed R1, in which
// case the gradient runs inward.
type RadialGradient struct {
	CX, CY float64
	R0, R1 float64
	stops  stopList
}

// NewRadialGradient creates a concentric radial gradient.
func NewRadialGradient(cx, cy, r0, r1 float64) *RadialGradient {
	return &RadialGradient{CX: cx, CY: cy, R0: r0, R1: r1}
}

// AddColorStop adds a color stop and returns the gradient for chaining.
func (g *RadialGradient) AddColorStop(offset float64, c RGBA) *RadialGradient {
	g.stops.add(offset, c)
	return g
}

// Degenerate reports whether the gradient paints nothing (equal radii).
func (g *RadialGradient) Degenerate() bool {
	return g.R0 == g.R1
}

// ColorAt implements Paint.
func (g *RadialGradient) ColorAt(x, y float64) RGBA {
	if g.Degenerate() {
		return Transparent
	}
	d := math.Hypot(x-g.CX, y-g.CY)
	return g.stops.at((d - g.R0) / (g.R1 - g.R0))
}
