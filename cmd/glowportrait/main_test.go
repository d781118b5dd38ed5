package main

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/glow"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func parse(t *testing.T, args ...string) (*flag.FlagSet, *paramFlags) {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	pf := bindParamFlags(fs, glow.DefaultParams())
	if err := fs.Parse(args); err != nil {
		t.Fatal(err)
	}
	return fs, pf
}

func TestResolveParamsDefaults(t *testing.T) {
	fs, pf := parse(t)
	p, err := resolveParams(fs, pf, "")
	if err != nil {
		t.Fatal(err)
	}
	if p != glow.DefaultParams() {
		t.Errorf("params = %+v, want defaults", p)
	}
}

func TestResolveParamsPresetAndOverride(t *testing.T) {
	preset := writeFile(t, "neon.yaml", `
outputSize: 768
intensity: 0.9
particleCount: 500
background: transparent
`)
	fs, pf := parse(t, "-intensity", "0.2", "-lightning=false")
	p, err := resolveParams(fs, pf, preset)
	if err != nil {
		t.Fatal(err)
	}

	want := glow.DefaultParams()
	want.OutputSize = 768
	want.ParticleCount = 500
	want.Background = glow.Transparent
	want.Intensity = 0.2 // flag wins over preset
	want.Lightning = false
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestResolveParamsErrors(t *testing.T) {
	fs, pf := parse(t, "-size", "1000")
	if _, err := resolveParams(fs, pf, ""); !errors.Is(err, glow.ErrInvalidParameter) {
		t.Errorf("size 1000 error = %v", err)
	}

	fs, pf = parse(t)
	if _, err := resolveParams(fs, pf, filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing preset should fail")
	}

	bad := writeFile(t, "bad.yaml", "background: purple\n")
	if _, err := resolveParams(fs, pf, bad); err == nil {
		t.Error("invalid background in preset should fail")
	}
}

func TestBackgroundFlag(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	bindParamFlags(fs, glow.DefaultParams())
	if err := fs.Parse([]string{"-background", "sepia"}); err == nil {
		t.Error("unknown background accepted")
	}
}

func TestRunPrintParams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-print-params", "-size", "512", "-particles", "7"}, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v (stderr %s)", err, stderr.String())
	}
	var p glow.Params
	if err := yaml.Unmarshal(stdout.Bytes(), &p); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, stdout.String())
	}
	if p.OutputSize != 512 || p.ParticleCount != 7 || p.Background != glow.Dark {
		t.Errorf("printed params = %+v", p)
	}
}

func TestRunRendersFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.png")
	src := image.NewNRGBA(image.Rect(0, 0, 40, 60))
	for i := range src.Pix {
		src.Pix[i] = 200
	}
	f, err := os.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	out := filepath.Join(dir, "out.png")
	var stdout, stderr bytes.Buffer
	args := []string{"-in", in, "-out", out, "-size", "512", "-glow", "4", "-particles", "10", "-log-level", "debug"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if strings.TrimSpace(stdout.String()) != out {
		t.Errorf("stdout = %q", stdout.String())
	}
	if !strings.Contains(stderr.String(), "stage=glow") {
		t.Errorf("debug log missing stage records: %s", stderr.String())
	}

	rf, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer rf.Close()
	img, err := png.Decode(rf)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 512 || img.Bounds().Dy() != 512 {
		t.Errorf("output bounds = %v", img.Bounds())
	}
	if _, _, _, a := img.At(256, 256).RGBA(); a != 0xffff {
		t.Errorf("centre alpha = %#x, want opaque", a)
	}
}

func TestRunDefaultOutputName(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	var stdout bytes.Buffer
	args := []string{"-size", "512", "-particles", "0", "-lightning=false", "-background", "transparent"}
	if err := run(args, &stdout, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "glow-portrait-512.png")); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad log level", []string{"-log-level", "loud"}},
		{"missing input", []string{"-in", "does-not-exist.png", "-size", "512"}},
		{"bad size", []string{"-size", "300"}},
		{"unknown flag", []string{"-sparkle"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := run(tt.args, &bytes.Buffer{}, &bytes.Buffer{}); err == nil {
				t.Error("run() succeeded, want error")
			}
		})
	}
}

func TestEnvOr(t *testing.T) {
	t.Setenv("GLOW_TEST_LEVEL", "debug")
	if got := envOr("GLOW_TEST_LEVEL", "warn"); got != "debug" {
		t.Errorf("envOr = %q", got)
	}
	if got := envOr("GLOW_TEST_UNSET", "warn"); got != "warn" {
		t.Errorf("envOr fallback = %q", got)
	}
}
