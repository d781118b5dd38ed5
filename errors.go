package glow

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Render and the export functions.
var (
	// ErrInvalidParameter is wrapped by every *ParameterError.
	ErrInvalidParameter = errors.New("glow: invalid parameter")

	// ErrInvalidInput is returned for a source image with no pixels.
	ErrInvalidInput = errors.New("glow: invalid input image")

	// ErrRenderFailed wraps the errors of failed stages and of PNG export.
	ErrRenderFailed = errors.New("glow: render failed")
)

// ParameterError reports a parameter value that cannot be clamped into
// range, such as NaN or an unsupported output size.
type ParameterError struct {
	Field string
	Value any
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("glow: invalid parameter %s: %v", e.Field, e.Value)
}

// Unwrap returns ErrInvalidParameter.
func (e *ParameterError) Unwrap() error {
	return ErrInvalidParameter
}
