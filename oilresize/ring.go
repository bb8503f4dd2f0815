package oilresize

// ring stores the most recent Ty horizontally-scaled float rows and produces
// a virtual strip of exactly Ty row pointers for the vertical reducer.
//
// Unlike the horizontal scaler's 4-accumulator rotation, vertical scaling
// holds actual rows: each output row is a direct convolution over a window
// of input rows, and edge windows replicate the first/last row rather than
// trimming coefficients.
//
// Grounded on ender672/liboil's oil_resample.c (oil_yscaler_safe_idx and the
// virtual strip passed into strip_scale_*).
type ring struct {
	rows [][]float64
	taps int
}

func newRing(taps, rowLen int) *ring {
	rows := make([][]float64, taps)
	for i := range rows {
		rows[i] = make([]float64, rowLen)
	}
	return &ring{rows: rows, taps: taps}
}

// row returns the buffer to write the horizontally-scaled row for absolute
// input row index absIndex into.
func (r *ring) row(absIndex int) []float64 {
	return r.rows[absIndex%r.taps]
}

// safeIndex clamps the tap at position i (0..taps) of the window
// [target-taps+1 .. target] to the valid source row range [0, hin-1].
func safeIndex(target, taps, hin, i int) int {
	idx := target - taps + 1 + i
	if idx < 0 {
		return 0
	}
	if idx > hin-1 {
		return hin - 1
	}
	return idx
}

// strip fills dst (length taps) with the ring rows for the virtual window
// ending at row target, each tap clamped to the source image's edges.
func (r *ring) strip(dst [][]float64, target, hin int) {
	for i := 0; i < r.taps; i++ {
		idx := safeIndex(target, r.taps, hin, i)
		dst[i] = r.rows[idx%r.taps]
	}
}
