package raster

import "math"

// Test helper functions shared across raster tests.

// approxEqual compares two colors with tolerance.
func approxEqual(a, b RGBA, tolerance float64) bool {
	return math.Abs(a.R-b.R) < tolerance &&
		math.Abs(a.G-b.G) < tolerance &&
		math.Abs(a.B-b.B) < tolerance &&
		math.Abs(a.A-b.A) < tolerance
}

// filledPixmap creates a pixmap with every pixel set to the given premultiplied bytes.
func filledPixmap(w, h int, r, g, b, a uint8) *Pixmap {
	p := NewPixmap(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			p.SetPixelPremul(x, y, r, g, b, a)
		}
	}
	return p
}
