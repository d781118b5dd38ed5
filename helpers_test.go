package glow

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// Test helper functions shared across glow tests.

// portrait returns a deterministic w x h opaque test image with a
// horizontal and vertical color ramp.
func portrait(w, h int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 128,
				A: 255,
			})
		}
	}
	return img
}

// quickParams returns parameters for a small, fast render.
func quickParams() Params {
	p := DefaultParams()
	p.OutputSize = 512
	p.GlowRadius = 6
	p.ParticleCount = 40
	return p
}

func mustRender(t *testing.T, src image.Image, p Params) *Surface {
	t.Helper()
	s, err := Render(src, p)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return s
}

func assertSamePix(t *testing.T, a, b *Surface) {
	t.Helper()
	if !bytes.Equal(a.Pix(), b.Pix()) {
		t.Error("surfaces differ")
	}
}
