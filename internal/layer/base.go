package layer

import (
	"fmt"

	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/filter"
	"github.com/gogpu/glow/internal/fit"
)

// BaseImage draws the cover-fitted portrait through contrast() and
// saturate().
type BaseImage struct{}

// Name implements Layer.
func (BaseImage) Name() string { return "base" }

// Applies implements Layer.
func (BaseImage) Applies(f *Frame) bool { return f.HasSource() }

// Draw implements Layer.
func (BaseImage) Draw(c *canvas.Canvas, f *Frame) error {
	b := f.Source.Bounds()
	crop, err := fit.Cover(b.Dx(), b.Dy(), c.Width(), c.Height())
	if err != nil {
		return fmt.Errorf("cover fit: %w", err)
	}
	style := canvas.Style{
		Filter: filter.Spec{Color: filter.Chain{
			filter.Contrast(f.Contrast),
			filter.Saturate(f.Saturation),
		}},
	}
	return c.DrawImage(f.Source, crop.SrcRect(), crop.DestRect(), style)
}
