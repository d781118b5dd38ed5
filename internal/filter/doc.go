// Package filter implements the CSS-style filter functions the glow
// layers apply while drawing:
//   - blur(σ): separable Gaussian, exact kernel for small σ and a
//     three-pass box approximation for large σ
//   - brightness(k), contrast(k), saturate(k): 4x5 color matrices
//
// Filters read one raster.Pixmap and write another. Source and
// destination may be the same pixmap; every filter works through
// scratch buffers, so nothing is blurred in place while being read.
package filter
