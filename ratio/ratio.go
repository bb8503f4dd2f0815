// Package ratio implements the aspect-ratio "fit within a box" helper used
// by the CLI front end to adjust a requested output size down to the
// source's aspect ratio.
//
// Grounded on ender672/liboil's oil_resample.c (oil_fix_ratio).
package ratio

import (
	"errors"
	"math"
)

// ErrBadParam is returned when a source or requested dimension is < 1.
var ErrBadParam = errors.New("ratio: bad parameter")

// ErrOutOfRange is returned when the aspect-adjusted dimension would exceed
// math.MaxInt32.
var ErrOutOfRange = errors.New("ratio: adjusted dimension out of range")

// Fix adjusts (outWidth, outHeight) to fit within the requested box while
// preserving the source aspect ratio: whichever axis has the smaller
// requested/source ratio is kept, and the other is recomputed from it. A
// result that rounds to 0 is bumped to 1.
func Fix(srcWidth, srcHeight, outWidth, outHeight int) (int, int, error) {
	if srcWidth < 1 || srcHeight < 1 || outWidth < 1 || outHeight < 1 {
		return 0, 0, ErrBadParam
	}

	widthRatio := float64(outWidth) / float64(srcWidth)
	heightRatio := float64(outHeight) / float64(srcHeight)

	var tmp float64
	adjustWidth := false
	if widthRatio < heightRatio {
		tmp = math.Round(widthRatio * float64(srcHeight))
	} else {
		tmp = math.Round(heightRatio * float64(srcWidth))
		adjustWidth = true
	}

	if tmp > math.MaxInt32 {
		return 0, 0, ErrOutOfRange
	}

	adjusted := int(tmp)
	if adjusted == 0 {
		adjusted = 1
	}

	if adjustWidth {
		return adjusted, outHeight, nil
	}
	return outWidth, adjusted, nil
}
