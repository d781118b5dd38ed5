package filter

import "github.com/gogpu/glow/internal/raster"

// Test helper functions shared across filter tests.

// uniformPixmap creates a pixmap with every pixel set to the given premultiplied bytes.
func uniformPixmap(w, h int, r, g, b, a uint8) *raster.Pixmap {
	p := raster.NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixelPremul(x, y, r, g, b, a)
		}
	}
	return p
}

// absDiff returns |a-b| for bytes.
func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
