package raster

import (
	"image"
	"math"
)

// aaWidth controls the smoothstep transition width in pixels.
const aaWidth = 0.7

// Mask is 8-bit coverage over a rectangle in pixmap space. A nil Cov means
// the whole rectangle is fully covered.
type Mask struct {
	Rect image.Rectangle
	Cov  []uint8
}

// Point is a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// RectMask returns a fully covered mask over r.
func RectMask(r image.Rectangle) *Mask {
	return &Mask{Rect: r}
}

// At returns coverage at absolute pixel (x, y).
func (m *Mask) At(x, y int) uint8 {
	if !(image.Point{X: x, Y: y}).In(m.Rect) {
		return 0
	}
	if m.Cov == nil {
		return 255
	}
	return m.Cov[(y-m.Rect.Min.Y)*m.Rect.Dx()+(x-m.Rect.Min.X)]
}

// CircleMask rasterizes a filled anti-aliased circle clipped to clip.
func CircleMask(cx, cy, radius float64, clip image.Rectangle) *Mask {
	r := circleBounds(cx, cy, radius+aaWidth).Intersect(clip)
	m := &Mask{Rect: r, Cov: make([]uint8, r.Dx()*r.Dy())}
	if r.Empty() {
		return m
	}
	w := r.Dx()
	for y := r.Min.Y; y < r.Max.Y; y++ {
		py := float64(y) + 0.5
		row := m.Cov[(y-r.Min.Y)*w:]
		for x := r.Min.X; x < r.Max.X; x++ {
			sdf := math.Hypot(float64(x)+0.5-cx, py-cy) - radius
			row[x-r.Min.X] = coverageByte(sdf)
		}
	}
	return m
}

// StrokeMask rasterizes a polyline stroked with the given width, with
// round joins and caps, clipped to clip. The stroke is the union of one
// capsule per segment, so overlapping segments do not double-cover.
func StrokeMask(pts []Point, width float64, clip image.Rectangle) *Mask {
	half := width / 2
	if len(pts) == 0 || half <= 0 {
		return &Mask{Rect: image.Rectangle{}}
	}

	var bounds image.Rectangle
	for i, p := range pts {
		b := circleBounds(p.X, p.Y, half+aaWidth)
		if i == 0 {
			bounds = b
		} else {
			bounds = bounds.Union(b)
		}
	}
	bounds = bounds.Intersect(clip)
	m := &Mask{Rect: bounds, Cov: make([]uint8, bounds.Dx()*bounds.Dy())}
	if bounds.Empty() {
		return m
	}

	if len(pts) == 1 {
		pts = []Point{pts[0], pts[0]}
	}
	w := bounds.Dx()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		sb := circleBounds(a.X, a.Y, half+aaWidth).
			Union(circleBounds(b.X, b.Y, half+aaWidth)).
			Intersect(bounds)
		for y := sb.Min.Y; y < sb.Max.Y; y++ {
			py := float64(y) + 0.5
			row := m.Cov[(y-bounds.Min.Y)*w:]
			for x := sb.Min.X; x < sb.Max.X; x++ {
				c := coverageByte(segmentDistance(float64(x)+0.5, py, a, b) - half)
				if c > row[x-bounds.Min.X] {
					row[x-bounds.Min.X] = c
				}
			}
		}
	}
	return m
}

// segmentDistance returns the distance from (px, py) to segment ab.
func segmentDistance(px, py float64, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-a.X)*dx + (py-a.Y)*dy) / lenSq
		t = clamp01(t)
	}
	return math.Hypot(px-(a.X+t*dx), py-(a.Y+t*dy))
}

func circleBounds(cx, cy, r float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(cx-r)), int(math.Floor(cy-r)),
		int(math.Ceil(cx+r))+1, int(math.Ceil(cy+r))+1,
	)
}

// coverageByte converts a signed distance to 8-bit coverage using a
// Hermite smoothstep over [-aaWidth, +aaWidth].
func coverageByte(sdf float64) uint8 {
	if sdf >= aaWidth {
		return 0
	}
	if sdf <= -aaWidth {
		return 255
	}
	t := (sdf + aaWidth) / (2 * aaWidth)
	return uint8((1-t*t*(3-2*t))*255 + 0.5)
}
