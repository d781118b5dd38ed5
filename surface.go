package glow

import (
	"image"
	"image/color"

	"github.com/gogpu/glow/internal/raster"
)

// Surface is a rendered glow portrait: a square premultiplied RGBA8
// buffer. It implements image.Image.
type Surface struct {
	pm *raster.Pixmap
}

func newSurface(size int) *Surface {
	return &Surface{pm: raster.NewPixmap(size, size)}
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.pm.Width() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.pm.Height() }

// ColorModel implements image.Image.
func (s *Surface) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (s *Surface) Bounds() image.Rectangle { return s.pm.Bounds() }

// At implements image.Image. The returned color is premultiplied.
func (s *Surface) At(x, y int) color.Color { return s.pm.PixelAt(x, y) }

// RGBAAt returns the premultiplied pixel at (x, y).
func (s *Surface) RGBAAt(x, y int) color.RGBA { return s.pm.PixelAt(x, y) }

// Pix returns a copy of the premultiplied RGBA bytes in row-major order.
func (s *Surface) Pix() []byte {
	return append([]byte(nil), s.pm.Data()...)
}

// Clone returns an independent copy of s.
func (s *Surface) Clone() *Surface {
	return &Surface{pm: s.pm.Clone()}
}

// NRGBA returns the surface with straight (non-premultiplied) alpha,
// the form PNG stores.
func (s *Surface) NRGBA() *image.NRGBA {
	w, h := s.Width(), s.Height()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	src := s.pm.Data()
	for i := 0; i < len(src); i += 4 {
		a := src[i+3]
		switch a {
		case 0:
			// transparent black
		case 255:
			copy(out.Pix[i:i+4], src[i:i+4])
		default:
			out.Pix[i+0] = unpremul(src[i+0], a)
			out.Pix[i+1] = unpremul(src[i+1], a)
			out.Pix[i+2] = unpremul(src[i+2], a)
			out.Pix[i+3] = a
		}
	}
	return out
}

// unpremul divides a premultiplied channel by alpha with rounding.
func unpremul(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	return uint8(min(v, 255))
}
