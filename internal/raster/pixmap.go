package raster

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/glow/internal/blend"
)

// ErrSizeMismatch is returned when two pixmaps that must share dimensions do not.
var ErrSizeMismatch = errors.New("raster: pixmap size mismatch")

// Pixmap is a rectangular premultiplied RGBA8 pixel buffer. Its layout is
// identical to image.RGBA with a tight stride, so it can be handed to
// image/draw scalers and encoders without copying.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a transparent pixmap with the given dimensions.
// Non-positive dimensions yield an empty pixmap.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Bounds returns the pixmap rectangle anchored at the origin.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Data returns the raw premultiplied RGBA bytes.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Clear sets every pixel to transparent black.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// Clone returns a deep copy.
func (p *Pixmap) Clone() *Pixmap {
	c := &Pixmap{width: p.width, height: p.height, data: make([]uint8, len(p.data))}
	copy(c.data, p.data)
	return c
}

// CopyFrom overwrites p with the content of src.
func (p *Pixmap) CopyFrom(src *Pixmap) error {
	if src.width != p.width || src.height != p.height {
		return fmt.Errorf("%w: %dx%d into %dx%d", ErrSizeMismatch, src.width, src.height, p.width, p.height)
	}
	copy(p.data, src.data)
	return nil
}

// PixelAt returns the premultiplied pixel at (x, y).
// Out-of-bounds coordinates return transparent.
func (p *Pixmap) PixelAt(x, y int) color.RGBA {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// SetPixelPremul writes premultiplied channels at (x, y).
// Out-of-bounds coordinates are ignored.
func (p *Pixmap) SetPixelPremul(x, y int, r, g, b, a uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = r
	p.data[i+1] = g
	p.data[i+2] = b
	p.data[i+3] = a
}

// RGBA returns an image.RGBA view that shares the pixmap's memory.
func (p *Pixmap) RGBA() *image.RGBA {
	return &image.RGBA{
		Pix:    p.data,
		Stride: p.width * 4,
		Rect:   p.Bounds(),
	}
}

// Composite blends all of src onto p with mode. Both pixmaps must have
// the same dimensions.
func (p *Pixmap) Composite(src *Pixmap, mode blend.Mode) error {
	if src.width != p.width || src.height != p.height {
		return fmt.Errorf("%w: %dx%d onto %dx%d", ErrSizeMismatch, src.width, src.height, p.width, p.height)
	}
	blend.Span(p.data, src.data, p.width*p.height, mode)
	return nil
}

// CompositeAt blends src onto p with src's origin placed at off.
// Pixels falling outside p are dropped.
func (p *Pixmap) CompositeAt(src *Pixmap, off image.Point, mode blend.Mode) {
	r := src.Bounds().Add(off).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	n := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := (y*p.width + r.Min.X) * 4
		si := ((y-off.Y)*src.width + (r.Min.X - off.X)) * 4
		blend.Span(p.data[di:di+n*4], src.data[si:si+n*4], n, mode)
	}
}
