// Command glowportrait renders a glow portrait from a photo and saves it
// as PNG.
//
// Usage:
//
//	glowportrait -in face.jpg -size 1024 -intensity 0.8
//	glowportrait -preset neon.yaml -in face.webp -out neon.png
//	glowportrait -print-params -preset neon.yaml
//
// Without -in only the backdrop, particles and lightning are drawn.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"github.com/gogpu/glow"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintf(os.Stderr, "glowportrait: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("glowportrait", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		input       = fs.String("in", "", "input image (PNG, JPEG, GIF or WebP); empty renders without a photo")
		output      = fs.String("out", "", "output PNG (default glow-portrait-<size>.png)")
		preset      = fs.String("preset", "", "YAML parameter preset; explicit flags override it")
		printParams = fs.Bool("print-params", false, "print the effective parameters as YAML and exit")
		logLevel    = fs.String("log-level", envOr("GLOW_LOG_LEVEL", "warn"), "log level: debug, info, warn or error")
	)
	pf := bindParamFlags(fs, glow.DefaultParams())

	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(stderr, *logLevel)
	if err != nil {
		return err
	}
	glow.SetLogger(logger)

	p, err := resolveParams(fs, pf, *preset)
	if err != nil {
		return err
	}
	if *printParams {
		return writeParams(stdout, p)
	}

	var src image.Image
	if *input != "" {
		src, err = imaging.Open(*input, imaging.AutoOrientation(true))
		if err != nil {
			return fmt.Errorf("open %s: %w", *input, err)
		}
		logger.Info("loaded image", "path", *input, "bounds", src.Bounds())
	}

	s, stats, err := glow.NewRenderer().RenderWithStats(src, p)
	if err != nil {
		return err
	}

	path := *output
	if path == "" {
		path = fmt.Sprintf("glow-portrait-%d.png", p.OutputSize)
	}
	if err := s.WritePNG(path); err != nil {
		return err
	}

	logger.Info("saved", "path", path, "size", p.OutputSize, "drawOps", stats.DrawOps, "duration", stats.Total)
	fmt.Fprintln(stdout, path)
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: l})), nil
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
