// Package fit computes cover-fit geometry: the centred crop of a source
// image that fills a destination rectangle without letterboxing.
package fit

import (
	"errors"
	"fmt"
	"image"
)

// ErrDegenerate is returned when either rectangle has a non-positive side.
var ErrDegenerate = errors.New("fit: degenerate geometry")

// Crop describes a cover mapping onto a square destination. The source
// region SrcX, SrcY, SrcW, SrcH is scaled into the destination square
// (0, 0)-(DestSide, DestSide).
type Crop struct {
	SrcX, SrcY int
	SrcW, SrcH int
	DestSide   int
}

// SrcSide returns the side of the crop. For a square destination the crop
// is square, so SrcW == SrcH.
func (c Crop) SrcSide() int {
	return min(c.SrcW, c.SrcH)
}

// SrcRect returns the crop as an image.Rectangle relative to the source origin.
func (c Crop) SrcRect() image.Rectangle {
	return image.Rect(c.SrcX, c.SrcY, c.SrcX+c.SrcW, c.SrcY+c.SrcH)
}

// DestRect returns the destination square.
func (c Crop) DestRect() image.Rectangle {
	return image.Rect(0, 0, c.DestSide, c.DestSide)
}

// Cover computes the centred crop of a srcW x srcH image whose aspect ratio
// matches destW x destH. A source wider than the destination keeps its full
// height and loses columns on both sides; otherwise it keeps its full width
// and loses rows. Offsets are floored.
//
// The aspect comparison is done in integers so square sources never take the
// wide branch through rounding.
func Cover(srcW, srcH, destW, destH int) (Crop, error) {
	if srcW <= 0 || srcH <= 0 {
		return Crop{}, fmt.Errorf("%w: source %dx%d", ErrDegenerate, srcW, srcH)
	}
	if destW <= 0 || destH <= 0 {
		return Crop{}, fmt.Errorf("%w: destination %dx%d", ErrDegenerate, destW, destH)
	}

	c := Crop{DestSide: destW}
	if srcW*destH > destW*srcH {
		c.SrcH = srcH
		c.SrcW = max(1, srcH*destW/destH)
		c.SrcX = (srcW - c.SrcW) / 2
		return c, nil
	}

	c.SrcW = srcW
	c.SrcH = max(1, srcW*destH/destW)
	c.SrcY = (srcH - c.SrcH) / 2
	return c, nil
}
