package glow

import (
	"log/slog"

	"github.com/gogpu/glow/internal/layer"
)

// Option configures a Renderer during creation.
//
// Example:
//
//	r := glow.NewRenderer(glow.WithLogger(logger))
type Option func(*rendererOptions)

// rendererOptions holds optional configuration for Renderer creation.
type rendererOptions struct {
	logger *slog.Logger
	layers []layer.Layer
}

// defaultOptions returns the default renderer options.
func defaultOptions() rendererOptions {
	return rendererOptions{
		logger: nil, // falls back to Logger() at render time
		layers: layer.Default(),
	}
}

// WithLogger gives the Renderer its own logger instead of the package one.
func WithLogger(l *slog.Logger) Option {
	return func(o *rendererOptions) {
		o.logger = l
	}
}

// WithLayers replaces the stage list. Stages run in the given order on
// every render; an empty list renders only the cleared surface.
func WithLayers(layers ...layer.Layer) Option {
	return func(o *rendererOptions) {
		o.layers = append([]layer.Layer(nil), layers...)
	}
}
