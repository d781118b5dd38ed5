// Package canvas provides the stateless drawing surface the glow layers
// paint on.
//
// It mirrors the subset of the HTML canvas 2D model the pipeline needs
// (fill, stroke, drawImage with filter and compositing operator), but
// every call takes its complete Style. There is no current fill style,
// operator or filter that one layer could leave behind for the next.
package canvas

import (
	"errors"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/glow/internal/blend"
	"github.com/gogpu/glow/internal/filter"
	"github.com/gogpu/glow/internal/raster"
)

// ErrNoSource is returned by DrawImage when the source image is nil.
var ErrNoSource = errors.New("canvas: nil source image")

// Style is the complete state for one draw call.
type Style struct {
	Paint     raster.Paint // fill or stroke paint; nil draws nothing
	Op        blend.Mode   // compositing operator; zero value is source-over
	Filter    filter.Spec  // applied to the drawing before compositing
	LineWidth float64      // stroke width in pixels
}

// Canvas draws onto a raster.Pixmap it does not own.
type Canvas struct {
	pm      *raster.Pixmap
	pool    *raster.Pool
	scaler  xdraw.Interpolator
	drawOps int
}

// Option configures a Canvas.
type Option func(*Canvas)

// WithScaler selects the resampling kernel used by DrawImage.
// The default is bilinear, which matches browser canvas smoothing.
func WithScaler(s xdraw.Interpolator) Option {
	return func(c *Canvas) {
		if s != nil {
			c.scaler = s
		}
	}
}

// WithPool sets the pool scratch layers are taken from.
func WithPool(p *raster.Pool) Option {
	return func(c *Canvas) {
		if p != nil {
			c.pool = p
		}
	}
}

// New wraps pm.
func New(pm *raster.Pixmap, opts ...Option) *Canvas {
	c := &Canvas{
		pm:     pm,
		pool:   raster.Scratch,
		scaler: xdraw.BiLinear,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Pixmap returns the target pixmap.
func (c *Canvas) Pixmap() *raster.Pixmap {
	return c.pm
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.pm.Width()
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.pm.Height()
}

// Bounds returns the canvas rectangle.
func (c *Canvas) Bounds() image.Rectangle {
	return c.pm.Bounds()
}

// DrawOps returns the number of draw calls that reached the pixmap.
func (c *Canvas) DrawOps() int {
	return c.drawOps
}

// Clear makes every pixel transparent black.
func (c *Canvas) Clear() {
	c.pm.Clear()
}

// FillRect fills r with style.
func (c *Canvas) FillRect(r image.Rectangle, style Style) error {
	return c.fillMask(raster.RectMask(r.Intersect(c.Bounds())), style)
}

// FillCircle fills the circle at (cx, cy) with style.
func (c *Canvas) FillCircle(cx, cy, radius float64, style Style) error {
	if radius <= 0 {
		return nil
	}
	return c.fillMask(raster.CircleMask(cx, cy, radius, c.Bounds()), style)
}

// StrokePolyline strokes the open path through pts with style.LineWidth,
// using round joins and caps.
func (c *Canvas) StrokePolyline(pts []raster.Point, style Style) error {
	if len(pts) == 0 || style.LineWidth <= 0 {
		return nil
	}
	return c.fillMask(raster.StrokeMask(pts, style.LineWidth, c.Bounds()), style)
}

// fillMask paints m directly, or through a filtered scratch layer when the
// style carries a filter.
func (c *Canvas) fillMask(m *raster.Mask, style Style) error {
	if style.Paint == nil || m.Rect.Empty() {
		return nil
	}
	c.drawOps++
	if style.Filter.IsZero() {
		c.pm.Fill(m, style.Paint, style.Op)
		return nil
	}

	// Only the mask plus the filter's spread can change, so the scratch
	// layer covers just that region.
	region := m.Rect.Inset(-style.Filter.Margin()).Intersect(c.Bounds())
	layer := c.pool.Get(region.Dx(), region.Dy())
	defer c.pool.Put(layer)

	local := &raster.Mask{Rect: m.Rect.Sub(region.Min), Cov: m.Cov}
	layer.Fill(local, offsetPaint{p: style.Paint, dx: float64(region.Min.X), dy: float64(region.Min.Y)}, blend.SourceOver)

	if err := style.Filter.Apply(layer, layer); err != nil {
		return fmt.Errorf("canvas: filter %s: %w", style.Filter, err)
	}
	c.pm.CompositeAt(layer, region.Min, style.Op)
	return nil
}

// offsetPaint samples p in canvas space for a layer whose origin sits at (dx, dy).
type offsetPaint struct {
	p      raster.Paint
	dx, dy float64
}

func (o offsetPaint) ColorAt(x, y float64) raster.RGBA {
	return o.p.ColorAt(x+o.dx, y+o.dy)
}

// DrawImage scales the region sr of src into the region dr of the canvas.
// sr is relative to src.Bounds().Min.
func (c *Canvas) DrawImage(src image.Image, sr, dr image.Rectangle, style Style) error {
	if src == nil {
		return ErrNoSource
	}
	sr = sr.Add(src.Bounds().Min).Intersect(src.Bounds())
	if sr.Empty() || dr.Intersect(c.Bounds()).Empty() {
		return nil
	}
	c.drawOps++

	layer := c.pool.Get(c.Width(), c.Height())
	defer c.pool.Put(layer)

	c.scaler.Scale(layer.RGBA(), dr, src, sr, xdraw.Src, nil)
	return c.compositeLayer(layer, style)
}

// DrawSelf draws the canvas onto itself through style. The current
// content is snapshotted first, so the filter only ever reads the state
// from before this call.
func (c *Canvas) DrawSelf(style Style) error {
	c.drawOps++

	snapshot := c.pool.Get(c.Width(), c.Height())
	defer c.pool.Put(snapshot)

	if err := snapshot.CopyFrom(c.pm); err != nil {
		return fmt.Errorf("canvas: snapshot: %w", err)
	}
	return c.compositeLayer(snapshot, style)
}

// compositeLayer filters layer in place and blends it onto the canvas.
func (c *Canvas) compositeLayer(layer *raster.Pixmap, style Style) error {
	if !style.Filter.IsZero() {
		if err := style.Filter.Apply(layer, layer); err != nil {
			return fmt.Errorf("canvas: filter %s: %w", style.Filter, err)
		}
	}
	if err := c.pm.Composite(layer, style.Op); err != nil {
		return fmt.Errorf("canvas: composite: %w", err)
	}
	return nil
}
