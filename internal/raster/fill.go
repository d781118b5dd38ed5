package raster

import "github.com/gogpu/glow/internal/blend"

// Fill paints every covered pixel of m with paint, compositing with mode.
// Paint is sampled at pixel centres. The mask is clipped to the pixmap.
func (p *Pixmap) Fill(m *Mask, paint Paint, mode blend.Mode) {
	r := m.Rect.Intersect(p.Bounds())
	if r.Empty() || paint == nil {
		return
	}
	fn := blend.GetFunc(mode)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		py := float64(y) + 0.5
		for x := r.Min.X; x < r.Max.X; x++ {
			cov := m.At(x, y)
			if cov == 0 {
				continue
			}
			c := paint.ColorAt(float64(x)+0.5, py)
			if cov != 255 {
				c = c.Scale(float64(cov) / 255)
			}
			sr, sg, sb, sa := c.Bytes()
			if sa == 0 && mode != blend.Copy {
				continue
			}
			i := (y*p.width + x) * 4
			d := p.data[i : i+4 : i+4]
			d[0], d[1], d[2], d[3] = fn(sr, sg, sb, sa, d[0], d[1], d[2], d[3])
		}
	}
}
