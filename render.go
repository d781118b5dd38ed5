package glow

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/gogpu/glow/internal/canvas"
	"github.com/gogpu/glow/internal/layer"
)

// Renderer composites glow portraits. A Renderer holds no per-render
// state, so one value may serve concurrent Render calls.
type Renderer struct {
	logger *slog.Logger
	layers []layer.Layer
}

// NewRenderer creates a Renderer with the default seven-stage pipeline.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{logger: o.logger, layers: o.layers}
}

// StageStat records one stage of a render.
type StageStat struct {
	Name     string
	Applied  bool // false when the stage had nothing to draw
	Duration time.Duration
	Err      error
}

// RenderStats describes a completed or failed render.
type RenderStats struct {
	Size    int
	Stages  []StageStat
	DrawOps int
	Total   time.Duration
}

var defaultRenderer = NewRenderer()

// Render composites a glow portrait of src with the default Renderer.
// src may be nil, in which case only the backdrop, particles and lightning
// are drawn.
func Render(src image.Image, p Params) (*Surface, error) {
	return defaultRenderer.Render(src, p)
}

// Render composites a glow portrait of src. It returns either the complete
// surface or an error, never a partially drawn surface.
func (r *Renderer) Render(src image.Image, p Params) (*Surface, error) {
	s, _, err := r.RenderWithStats(src, p)
	return s, err
}

// RenderWithStats is Render that also reports per-stage timings. Stats are
// returned even when the render fails.
func (r *Renderer) RenderWithStats(src image.Image, p Params) (*Surface, RenderStats, error) {
	var stats RenderStats

	if src != nil && src.Bounds().Empty() {
		return nil, stats, fmt.Errorf("%w: %dx%d", ErrInvalidInput, src.Bounds().Dx(), src.Bounds().Dy())
	}
	p, err := p.Normalize()
	if err != nil {
		return nil, stats, err
	}

	log := r.log()
	start := time.Now()
	stats.Size = p.OutputSize

	surface := newSurface(p.OutputSize)
	c := canvas.New(surface.pm)
	c.Clear()
	frame := newFrame(src, p)

	// Every stage runs even after a failure, so the error reports all of them.
	var errs []error
	for _, l := range r.layers {
		st := StageStat{Name: l.Name(), Applied: l.Applies(frame)}
		if st.Applied {
			t0 := time.Now()
			st.Err = l.Draw(c, frame)
			st.Duration = time.Since(t0)
			if st.Err != nil {
				log.Warn("glow: stage failed", "stage", st.Name, "err", st.Err)
				errs = append(errs, fmt.Errorf("%s: %w", st.Name, st.Err))
			} else {
				log.Debug("glow: stage", "stage", st.Name, "duration", st.Duration)
			}
		}
		stats.Stages = append(stats.Stages, st)
	}
	stats.DrawOps = c.DrawOps()
	stats.Total = time.Since(start)

	if len(errs) > 0 {
		return nil, stats, fmt.Errorf("%w: %w", ErrRenderFailed, errors.Join(errs...))
	}
	log.Debug("glow: render complete",
		"size", p.OutputSize,
		"image", src != nil,
		"drawOps", stats.DrawOps,
		"duration", stats.Total)
	return surface, stats, nil
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}

// newFrame converts normalized parameters into the stage input.
func newFrame(src image.Image, p Params) *layer.Frame {
	return &layer.Frame{
		Source:        src,
		GlowRadius:    p.GlowRadius,
		Intensity:     p.Intensity,
		Cyanize:       p.Cyanize,
		Contrast:      p.Contrast,
		Saturation:    p.Saturation,
		Vignette:      p.Vignette,
		ParticleCount: p.ParticleCount,
		Lightning:     p.Lightning,
		Dark:          p.Background == Dark,
	}
}
