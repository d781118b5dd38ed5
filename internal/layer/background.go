package layer

import (
	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/raster"
)

// Backdrop gradient stops, top to bottom.
var (
	backdropTop    = raster.Hex("#0b1220")
	backdropBottom = raster.Hex("#0a0f1a")
)

// Background paints the opaque vertical backdrop. A transparent frame
// leaves the cleared canvas untouched.
type Background struct{}

// Name implements Layer.
func (Background) Name() string { return "background" }

// Applies implements Layer.
func (Background) Applies(f *Frame) bool { return f.Dark }

// Draw implements Layer.
func (Background) Draw(c *canvas.Canvas, _ *Frame) error {
	g := raster.NewLinearGradient(0, 0, 0, float64(c.Height())).
		AddColorStop(0, backdropTop).
		AddColorStop(1, backdropBottom)
	return c.FillRect(c.Bounds(), canvas.Style{Paint: g})
}
