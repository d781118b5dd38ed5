package layer

import (
	"math"

	"github.com/gogpu/glow/internal/blend"
	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/filter"
	"github.com/gogpu/glow/internal/raster"
	"github.com/gogpu/glow/internal/rng"
)

const (
	boltCount     = 6
	boltSeedBase  = 12345
	glowLineWidth = 6
	coreLineWidth = 2
	maxTurn       = 0.25 // radians per step
)

var (
	boltGlowColor = raster.RGBA8(0, 220, 255, 0.45)
	boltCoreColor = raster.RGBA8(220, 250, 255, 0.92)
)

// Lightning strokes jagged arcs across the canvas: a wide blurred cyan
// halo and a thin pale core along the same points.
type Lightning struct{}

// Name implements Layer.
func (Lightning) Name() string { return "lightning" }

// Applies implements Layer.
func (Lightning) Applies(f *Frame) bool { return f.Lightning }

// Draw implements Layer.
func (Lightning) Draw(c *canvas.Canvas, f *Frame) error {
	glow := canvas.Style{
		Paint:     raster.NewSolid(boltGlowColor),
		Op:        blend.Screen,
		LineWidth: glowLineWidth,
		Filter:    filter.Spec{Blur: 8 + 10*f.Intensity},
	}
	core := canvas.Style{
		Paint:     raster.NewSolid(boltCoreColor),
		Op:        blend.Screen,
		LineWidth: coreLineWidth,
	}
	for _, bolt := range Bolts(c.Width(), c.Height(), f.Intensity) {
		if err := c.StrokePolyline(bolt, glow); err != nil {
			return err
		}
		if err := c.StrokePolyline(bolt, core); err != nil {
			return err
		}
	}
	return nil
}

// LightningSeed returns the stream seed for the bolt field.
func LightningSeed(intensity float64) int32 {
	return boltSeedBase + int32(math.Floor(intensity*1000))
}

// Bolts generates the point sequences of every bolt for a w x h canvas.
// Each bolt starts inside the inner 80% of the canvas and walks
// length/segments per step along a wandering heading, with independent
// horizontal and vertical jitter added at every vertex.
func Bolts(w, h int, intensity float64) [][]raster.Point {
	rnd := rng.New(LightningSeed(intensity))
	fw, fh := float64(w), float64(h)
	bolts := make([][]raster.Point, 0, boltCount)

	for range boltCount {
		x := fw * (0.1 + 0.8*rnd.Next())
		y := fh * (0.1 + 0.8*rnd.Next())
		length := (0.25*fh + rnd.Next()*0.35*fh) * (0.7 + 0.6*intensity)
		segments := 15 + int(math.Floor(rnd.Next()*18))
		jitter := 10 + 30*rnd.Next()
		heading := rnd.Next() * 2 * math.Pi
		step := length / float64(segments)

		pts := make([]raster.Point, 0, segments+1)
		pts = append(pts, raster.Point{X: x, Y: y})
		for range segments {
			heading += (rnd.Next() - 0.5) * 2 * maxTurn
			x += math.Cos(heading)*step + (rnd.Next()-0.5)*jitter
			y += math.Sin(heading)*step + (rnd.Next()-0.5)*jitter
			pts = append(pts, raster.Point{X: x, Y: y})
		}
		bolts = append(bolts, pts)
	}
	return bolts
}
