package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/gogpu/glow/internal/raster"
)

// Spec is a complete filter description for one draw call: an optional
// blur followed by a color chain, in CSS order.
type Spec struct {
	Blur  float64 // Gaussian standard deviation in pixels; 0 disables
	Color Chain
}

// IsZero reports whether the spec leaves pixels unchanged.
func (s Spec) IsZero() bool {
	return s.Blur <= 0 && len(s.Color) == 0
}

// Margin returns how far, in pixels, the spec can spread content beyond
// its input. It covers the exact kernel and the box cascade alike.
func (s Spec) Margin() int {
	if s.Blur <= 0 {
		return 0
	}
	return int(math.Ceil(3*s.Blur)) + 3
}

// Apply runs the blur and then the color chain from src into dst.
func (s Spec) Apply(src, dst *raster.Pixmap) error {
	if err := Blur(src, dst, s.Blur); err != nil {
		return fmt.Errorf("filter: blur: %w", err)
	}
	if err := s.Color.Apply(dst, dst); err != nil {
		return fmt.Errorf("filter: color: %w", err)
	}
	return nil
}

// String returns the CSS filter property value.
func (s Spec) String() string {
	if s.IsZero() {
		return "none"
	}
	var parts []string
	if s.Blur > 0 {
		parts = append(parts, fmt.Sprintf("blur(%gpx)", s.Blur))
	}
	if len(s.Color) > 0 {
		parts = append(parts, s.Color.String())
	}
	return strings.Join(parts, " ")
}
