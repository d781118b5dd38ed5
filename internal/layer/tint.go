package layer

import (
	"github.com/gogpu/glow/internal/blend"
	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/raster"
)

// Tint screens a centred cyan radial wash over the portrait.
type Tint struct{}

// Name implements Layer.
func (Tint) Name() string { return "tint" }

// Applies implements Layer.
func (Tint) Applies(f *Frame) bool { return f.HasSource() }

// Draw implements Layer.
func (Tint) Draw(c *canvas.Canvas, f *Frame) error {
	k := clamp01(f.Cyanize)
	w, h := float64(c.Width()), float64(c.Height())
	g := raster.NewRadialGradient(w/2, h/2, 0.15*w, 0.8*w).
		AddColorStop(0, raster.RGBA8(0, 255, 255, 0.35*k)).
		AddColorStop(1, raster.RGBA8(0, 160, 255, 0.10*k))
	return c.FillRect(c.Bounds(), canvas.Style{Paint: g, Op: blend.Screen})
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
