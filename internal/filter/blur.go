package filter

import (
	"math"
	"sync"

	"github.com/gogpu/glow/internal/raster"
)

// exactSigmaLimit is the largest σ convolved with a true Gaussian kernel.
// Above it three box passes are indistinguishable and run in O(1) per pixel.
const exactSigmaLimit = 4.0

// Blur applies a Gaussian blur with standard deviation sigma (the CSS
// blur() length) to src and writes the result to dst. Pixels outside the
// pixmap are treated as transparent black, so content fades at the edges
// the way a canvas filter does. dst must have src's dimensions; it may be
// src itself.
func Blur(src, dst *raster.Pixmap, sigma float64) error {
	if err := dst.CopyFrom(src); err != nil {
		return err
	}
	if sigma <= 0 {
		return nil
	}

	w, h := src.Width(), src.Height()
	if w == 0 || h == 0 {
		return nil
	}

	a := getTempBuffer(w * h * 4)
	b := getTempBuffer(w * h * 4)
	defer putTempBuffer(a)
	defer putTempBuffer(b)

	data := dst.Data()
	for i, v := range data {
		a[i] = float32(v)
	}

	if sigma <= exactSigmaLimit {
		k := CachedGaussianKernel(sigma)
		convolveRows(a, b, w, h, k)
		convolveCols(b, a, w, h, k)
	} else {
		for _, size := range BoxSizes(sigma, 3) {
			r := (size - 1) / 2
			boxRows(a, b, w, h, r)
			boxCols(b, a, w, h, r)
		}
	}

	for i := range data {
		data[i] = clampUint8(a[i])
	}
	// Rounding can leave a color channel one step above its alpha.
	for i := 0; i < len(data); i += 4 {
		al := data[i+3]
		data[i+0] = min(data[i+0], al)
		data[i+1] = min(data[i+1], al)
		data[i+2] = min(data[i+2], al)
	}
	return nil
}

// BoxSizes returns n odd box widths whose successive application
// approximates a Gaussian with standard deviation sigma.
//
// Reference: W. Jarosz, "Fast Image Convolutions" (2001), and
// P. Kovesi, "Fast Almost-Gaussian Filtering" (2010).
func BoxSizes(sigma float64, n int) []int {
	wIdeal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(wIdeal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2

	nf, wlf := float64(n), float64(wl)
	mIdeal := (12*sigma*sigma - nf*wlf*wlf - 4*nf*wlf - 3*nf) / (-4*wlf - 4)
	m := int(math.Round(mIdeal))

	sizes := make([]int, n)
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// boxRows applies a zero-padded box filter of radius r along rows.
func boxRows(src, dst []float32, w, h, r int) {
	inv := 1 / float32(2*r+1)
	for y := 0; y < h; y++ {
		row := y * w * 4
		for c := 0; c < 4; c++ {
			var sum float32
			for x := 0; x <= r && x < w; x++ {
				sum += src[row+x*4+c]
			}
			for x := 0; x < w; x++ {
				dst[row+x*4+c] = sum * inv
				if in := x + r + 1; in < w {
					sum += src[row+in*4+c]
				}
				if out := x - r; out >= 0 {
					sum -= src[row+out*4+c]
				}
			}
		}
	}
}

// boxCols applies a zero-padded box filter of radius r along columns.
func boxCols(src, dst []float32, w, h, r int) {
	inv := 1 / float32(2*r+1)
	stride := w * 4
	for x := 0; x < w; x++ {
		for c := 0; c < 4; c++ {
			col := x*4 + c
			var sum float32
			for y := 0; y <= r && y < h; y++ {
				sum += src[y*stride+col]
			}
			for y := 0; y < h; y++ {
				dst[y*stride+col] = sum * inv
				if in := y + r + 1; in < h {
					sum += src[in*stride+col]
				}
				if out := y - r; out >= 0 {
					sum -= src[out*stride+col]
				}
			}
		}
	}
}

// convolveRows applies a 1D kernel along rows with zero padding.
func convolveRows(src, dst []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	for y := 0; y < h; y++ {
		row := y * w * 4
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				kx := x + k - half
				if kx < 0 || kx >= w {
					continue
				}
				i := row + kx*4
				r += src[i+0] * weight
				g += src[i+1] * weight
				b += src[i+2] * weight
				a += src[i+3] * weight
			}
			i := row + x*4
			dst[i+0], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
		}
	}
}

// convolveCols applies a 1D kernel along columns with zero padding.
func convolveCols(src, dst []float32, w, h int, kernel []float32) {
	half := len(kernel) / 2
	stride := w * 4
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			var r, g, b, a float32
			for k, weight := range kernel {
				ky := y + k - half
				if ky < 0 || ky >= h {
					continue
				}
				i := ky*stride + x*4
				r += src[i+0] * weight
				g += src[i+1] * weight
				b += src[i+2] * weight
				a += src[i+3] * weight
			}
			i := y*stride + x*4
			dst[i+0], dst[i+1], dst[i+2], dst[i+3] = r, g, b, a
		}
	}
}

// floatBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type floatBuffer struct {
	data []float32
}

var tempBufferPool = sync.Pool{
	New: func() any {
		return &floatBuffer{}
	},
}

// getTempBuffer retrieves a zeroed buffer with exactly size elements.
func getTempBuffer(size int) []float32 {
	wrapper := tempBufferPool.Get().(*floatBuffer)
	if cap(wrapper.data) < size {
		return make([]float32, size)
	}
	buf := wrapper.data[:size]
	clear(buf)
	return buf
}

// putTempBuffer returns a buffer to the pool.
func putTempBuffer(buf []float32) {
	// 2048x2048 RGBA is the largest surface the pipeline renders.
	if cap(buf) <= 2048*2048*4 {
		tempBufferPool.Put(&floatBuffer{data: buf[:cap(buf)]})
	}
}

// clampUint8 clamps a float32 to [0, 255] and rounds to uint8.
func clampUint8(v float32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
