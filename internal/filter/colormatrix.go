package filter

import (
	"fmt"
	"strings"

	"github.com/gogpu/glow/internal/raster"
)

// ColorMatrix is a 4x5 color transformation applied to straight-alpha
// channels in the range [0, 255]:
//
//	[R']   [a00 a01 a02 a03 a04]   [R]
//	[G'] = [a10 a11 a12 a13 a14] * [G]
//	[B']   [a20 a21 a22 a23 a24]   [B]
//	[A']   [a30 a31 a32 a33 a34]   [A]
//	                               [1]
type ColorMatrix struct {
	// Matrix is row-major: [0-4] = R, [5-9] = G, [10-14] = B, [15-19] = A.
	Matrix [20]float32
	name   string
}

// CSS luminance coefficients used by saturate().
const (
	lumR = 0.213
	lumG = 0.715
	lumB = 0.072
)

// Brightness scales RGB by factor: 0 = black, 1 = unchanged.
func Brightness(factor float64) *ColorMatrix {
	f := float32(factor)
	return &ColorMatrix{
		Matrix: [20]float32{
			f, 0, 0, 0, 0,
			0, f, 0, 0, 0,
			0, 0, f, 0, 0,
			0, 0, 0, 1, 0,
		},
		name: fmt.Sprintf("brightness(%g)", factor),
	}
}

// Contrast maps each channel c to (c - 0.5)*factor + 0.5.
func Contrast(factor float64) *ColorMatrix {
	f := float32(factor)
	offset := 127.5 * (1 - f)
	return &ColorMatrix{
		Matrix: [20]float32{
			f, 0, 0, 0, offset,
			0, f, 0, 0, offset,
			0, 0, f, 0, offset,
			0, 0, 0, 1, 0,
		},
		name: fmt.Sprintf("contrast(%g)", factor),
	}
}

// Saturate blends between luminance (0) and identity (1); values above 1
// oversaturate.
func Saturate(factor float64) *ColorMatrix {
	s := float32(factor)
	inv := 1 - s
	return &ColorMatrix{
		Matrix: [20]float32{
			lumR*inv + s, lumG * inv, lumB * inv, 0, 0,
			lumR * inv, lumG*inv + s, lumB * inv, 0, 0,
			lumR * inv, lumG * inv, lumB*inv + s, 0, 0,
			0, 0, 0, 1, 0,
		},
		name: fmt.Sprintf("saturate(%g)", factor),
	}
}

// String returns the CSS form of the filter function.
func (m *ColorMatrix) String() string {
	if m.name == "" {
		return "matrix"
	}
	return m.name
}

// transform applies the matrix to straight-alpha channels.
func (m *ColorMatrix) transform(r, g, b, a float32) (float32, float32, float32, float32) {
	x := &m.Matrix
	return x[0]*r + x[1]*g + x[2]*b + x[3]*a + x[4],
		x[5]*r + x[6]*g + x[7]*b + x[8]*a + x[9],
		x[10]*r + x[11]*g + x[12]*b + x[13]*a + x[14],
		x[15]*r + x[16]*g + x[17]*b + x[18]*a + x[19]
}

// Chain is a sequence of color matrices applied left to right. Channels
// are clamped to [0, 255] between steps, as CSS filter lists do.
type Chain []*ColorMatrix

// Apply transforms src into dst. dst must have src's dimensions and may be src.
func (c Chain) Apply(src, dst *raster.Pixmap) error {
	if err := dst.CopyFrom(src); err != nil {
		return err
	}
	if len(c) == 0 {
		return nil
	}

	data := dst.Data()
	for i := 0; i < len(data); i += 4 {
		a := float32(data[i+3])
		if a == 0 {
			continue
		}

		// Un-premultiply RGB for the matrix, which assumes straight alpha.
		r := float32(data[i+0]) * 255 / a
		g := float32(data[i+1]) * 255 / a
		b := float32(data[i+2]) * 255 / a

		for _, m := range c {
			r, g, b, a = m.transform(r, g, b, a)
			r, g, b, a = clamp255(r), clamp255(g), clamp255(b), clamp255(a)
		}

		f := a / 255
		data[i+0] = clampUint8(r * f)
		data[i+1] = clampUint8(g * f)
		data[i+2] = clampUint8(b * f)
		data[i+3] = clampUint8(a)
	}
	return nil
}

// String returns the CSS filter list.
func (c Chain) String() string {
	parts := make([]string, len(c))
	for i, m := range c {
		parts[i] = m.String()
	}
	return strings.Join(parts, " ")
}

func clamp255(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}
