// Package blend implements the compositing operators used by the glow
// pipeline.
//
// All operations work on premultiplied RGBA bytes in the range 0-255,
// the same layout as image.RGBA.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
package blend

// Mode selects a compositing operator.
type Mode uint8

const (
	// SourceOver is normal alpha compositing: S + D*(1-Sa). It is the zero
	// value, so a Style without an explicit mode draws normally.
	SourceOver Mode = iota
	// Copy replaces the destination with the source.
	Copy
	// Screen brightens: B(s, d) = 1 - (1-s)(1-d), composited source-over.
	Screen
)

// String returns the canvas name of the operator.
func (m Mode) String() string {
	switch m {
	case SourceOver:
		return "source-over"
	case Copy:
		return "copy"
	case Screen:
		return "screen"
	default:
		return "unknown"
	}
}

// Func is the signature for per-pixel blend operations.
// All values are premultiplied alpha, 0-255.
type Func func(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte)

// GetFunc returns the blend function for mode.
// Unknown modes fall back to source-over.
func GetFunc(mode Mode) Func {
	switch mode {
	case Copy:
		return blendCopy
	case Screen:
		return blendScreen
	default:
		return blendSourceOver
	}
}

// Span blends n pixels of src into dst in place.
// Both slices hold premultiplied RGBA and must have at least n*4 bytes.
func Span(dst, src []byte, n int, mode Mode) {
	if n <= 0 {
		return
	}
	fn := GetFunc(mode)
	for i := 0; i < n*4; i += 4 {
		sa := src[i+3]
		if sa == 0 && mode != Copy {
			continue
		}
		dst[i+0], dst[i+1], dst[i+2], dst[i+3] = fn(
			src[i+0], src[i+1], src[i+2], sa,
			dst[i+0], dst[i+1], dst[i+2], dst[i+3],
		)
	}
}
