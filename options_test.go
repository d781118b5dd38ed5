package glow

import (
	"log/slog"
	"testing"

	"github.com/gogpu/glow/internal/layer"
)

func TestNewRendererDefault(t *testing.T) {
	r := NewRenderer()
	if len(r.layers) != len(layer.Default()) {
		t.Errorf("default layers = %d", len(r.layers))
	}
	if r.logger != nil {
		t.Error("default renderer should use the package logger")
	}
	if r.log() != Logger() {
		t.Error("log() did not fall back to Logger()")
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	r := NewRenderer(WithLogger(l))
	if r.log() != l {
		t.Error("WithLogger not applied")
	}
}

func TestWithLayersCopies(t *testing.T) {
	stages := []layer.Layer{layer.Background{}, layer.Particles{}}
	r := NewRenderer(WithLayers(stages...))
	stages[0] = layer.Vignette{}
	if len(r.layers) != 2 || r.layers[0].Name() != "background" {
		t.Errorf("layers = %v", r.layers)
	}
}
