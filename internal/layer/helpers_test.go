package layer

import (
	"image"
	"image/color"

	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/raster"
)

// Test helper functions shared across layer tests.

func newTestCanvas(size int) *canvas.Canvas {
	return canvas.New(raster.NewPixmap(size, size), canvas.WithPool(raster.NewPool(2)))
}

func greyImage(w, h int, v uint8) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
	return img
}

func defaultFrame(src image.Image) *Frame {
	return &Frame{
		Source:        src,
		GlowRadius:    24,
		Intensity:     0.7,
		Cyanize:       0.55,
		Contrast:      1.1,
		Saturation:    1.25,
		Vignette:      0.35,
		ParticleCount: 0,
		Lightning:     false,
		Dark:          true,
	}
}

func sameBytes(a, b []byte) (int, bool) {
	if len(a) != len(b) {
		return -1, false
	}
	for i := range a {
		if a[i] != b[i] {
			return i, false
		}
	}
	return 0, true
}
