// Package taps computes the separable filter's tap count and the half-pixel
// centered mapping from an output coordinate to a source coordinate.
//
// Grounded on ender672/liboil's oil_resample.c (calc_taps, split_map, map).
package taps

import "math"

// minTaps is the Catmull-Rom kernel's base tap count: two samples on either
// side of the interpolated point.
const minTaps = 4

// Count returns the number of taps needed to resample dimension din to dout
// without aliasing. The result is always even and >= minTaps: when
// shrinking, the kernel is widened by the shrink factor and then rounded
// down to an even count.
func Count(din, dout int) int {
	if dout > din {
		return minTaps
	}
	tmp := minTaps * din / dout
	return tmp &^ 1
}

// Split maps discrete output position pos to the source-space pair
// (source_index, subpixel_t): source_index is the integer part of the
// half-pixel-centered mapping (may be -1), and t in [0,1) is the fractional
// remainder.
func Split(din, dout, pos int) (sourceIndex int, t float64) {
	smp := (float64(pos)+0.5)*(float64(din)/float64(dout)) - 0.5
	sourceIndex = int(math.Floor(smp))
	t = smp - float64(sourceIndex)
	return sourceIndex, t
}
