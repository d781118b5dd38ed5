package glow

import (
	"bufio"
	"fmt"
	"image/png"
	"io"
	"os"
)

// EncodePNG writes s to w as a lossless 8-bit RGBA PNG. Alpha is preserved,
// so a transparent background stays transparent.
func EncodePNG(w io.Writer, s *Surface) error {
	if s == nil || s.pm == nil {
		return fmt.Errorf("%w: encode png: nil surface", ErrRenderFailed)
	}
	if err := png.Encode(w, s.NRGBA()); err != nil {
		return fmt.Errorf("%w: encode png: %w", ErrRenderFailed, err)
	}
	return nil
}

// EncodePNG writes s to w as PNG. See EncodePNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	return EncodePNG(w, s)
}

// WritePNG saves s to the file at path.
func (s *Surface) WritePNG(path string) (err error) {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrRenderFailed, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrRenderFailed, path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := EncodePNG(bw, s); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrRenderFailed, path, err)
	}
	return nil
}
