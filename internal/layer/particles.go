package layer

import (
	"math"

	"github.com/gogpu/glow/internal/blend"
	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/raster"
	"github.com/gogpu/glow/internal/rng"
)

// Sparkle is one particle of the particle field.
type Sparkle struct {
	X, Y   float64
	Radius float64 // core radius; the drawn halo is 4x this
	Alpha  float64
}

// sparkleEdge is the transparent halo color the sparkles fade into.
var sparkleEdge = raster.RGBA8(100, 220, 255, 0)

// Particles scatters soft sparkles over the whole canvas. It draws with
// or without a portrait.
type Particles struct{}

// Name implements Layer.
func (Particles) Name() string { return "particles" }

// Applies implements Layer.
func (Particles) Applies(f *Frame) bool { return f.ParticleCount > 0 }

// Draw implements Layer.
func (Particles) Draw(c *canvas.Canvas, f *Frame) error {
	for _, s := range Sparkles(c.Width(), c.Height(), f.Intensity, f.ParticleCount) {
		halo := 4 * s.Radius
		g := raster.NewRadialGradient(s.X, s.Y, 0, halo).
			AddColorStop(0, raster.RGBA8(255, 255, 255, s.Alpha)).
			AddColorStop(1, sparkleEdge)
		if err := c.FillCircle(s.X, s.Y, halo, canvas.Style{Paint: g, Op: blend.Screen}); err != nil {
			return err
		}
	}
	return nil
}

// ParticleSeed returns the stream seed for a w x h particle field.
func ParticleSeed(w, h int, intensity float64) int32 {
	return int32(math.Floor(intensity*1e6)) ^ int32(w) ^ int32(h)
}

// Sparkles generates the particle field for a w x h canvas. The result
// depends only on its arguments.
func Sparkles(w, h int, intensity float64, count int) []Sparkle {
	if count <= 0 {
		return nil
	}
	rnd := rng.New(ParticleSeed(w, h, intensity))
	out := make([]Sparkle, count)
	for i := range out {
		x := rnd.Next() * float64(w)
		y := rnd.Next() * float64(h)
		r := 0.5 + rnd.Next()*2.2
		a := 0.35 + rnd.Next()*0.45
		out[i] = Sparkle{X: x, Y: y, Radius: r, Alpha: a}
	}
	return out
}
