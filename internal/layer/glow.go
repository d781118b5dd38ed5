package layer

import (
	"github.com/gogpu/glow/internal/blend"
	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/filter"
)

// Glow screens a blurred, brightened copy of the canvas onto itself.
// The copy is taken after the tint, so the glow carries the cyan wash.
type Glow struct{}

// Name implements Layer.
func (Glow) Name() string { return "glow" }

// Applies implements Layer.
func (Glow) Applies(f *Frame) bool { return f.HasSource() && f.GlowRadius > 0 }

// Draw implements Layer.
func (Glow) Draw(c *canvas.Canvas, f *Frame) error {
	return c.DrawSelf(canvas.Style{
		Op: blend.Screen,
		Filter: filter.Spec{
			Blur: float64(f.GlowRadius),
			Color: filter.Chain{
				filter.Brightness(1 + f.Intensity),
				filter.Saturate(1 + 0.4*f.Intensity),
			},
		},
	})
}
