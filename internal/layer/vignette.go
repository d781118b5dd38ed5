package layer

import (
	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/raster"
)

// vignetteEdge is the color at the outer vignette radius.
var vignetteEdge = raster.RGBA8(0, 0, 0, 0.55)

// Vignette darkens toward the frame edge with normal compositing.
//
// The inner radius is W*(1-vignette) and the outer one is fixed at 0.75W.
// For vignette < 0.25 the inner radius exceeds the outer one and the
// gradient runs inward, darkening the centre instead; that is kept as is.
type Vignette struct{}

// Name implements Layer.
func (Vignette) Name() string { return "vignette" }

// Applies implements Layer.
func (Vignette) Applies(f *Frame) bool { return f.HasSource() && f.Vignette > 0 }

// Draw implements Layer.
func (Vignette) Draw(c *canvas.Canvas, f *Frame) error {
	w, h := float64(c.Width()), float64(c.Height())
	g := raster.NewRadialGradient(w/2, h/2, w*(1-f.Vignette), 0.75*w).
		AddColorStop(0, raster.Transparent).
		AddColorStop(1, vignetteEdge)
	if g.Degenerate() {
		return nil
	}
	return c.FillRect(c.Bounds(), canvas.Style{Paint: g})
}
