// Package oilresize implements the pull-driven, single-threaded image
// resampler: a separable, colorspace-aware Catmull-Rom filter that decodes
// from sRGB, premultiplies alpha, resamples horizontally then vertically,
// and re-encodes back to sRGB u8.
//
// Grounded on ender672/liboil's oil_resample.c (oil_scale_init/in/out/slots).
package oilresize

import (
	"github.com/ender672/oil/catrom"
	"github.com/ender672/oil/colorspace"
	"github.com/ender672/oil/srgb"
	"github.com/ender672/oil/taps"
)

// MaxDimension is the largest width or height New accepts, matching
// liboil's MAX_DIMENSION guard against overflow in the coefficient math.
const MaxDimension = 1000000

// Scaler is a single-use, single-threaded image resampler. Create one with
// New, feed it input rows with PushRow according to SlotsNeeded, and drain
// output rows with Emit until Hout rows have been produced.
type Scaler struct {
	hin, hout int
	win, wout int
	channels  int

	horiz *horizontalScaler
	vert  *verticalScaler
	ring  *ring
	vTaps int

	inPos, outPos int
	target        int // last row of the vertical window for the output row about to be emitted; may exceed hin-1
	ty            float64

	vcoeffs []float64
	strip   [][]float64
}

// New validates dimensions and the colorspace, initializes the process-wide
// sRGB tables (once, regardless of how many Scalers are created), and builds
// the horizontal plan, vertical tap count, and ring buffer.
//
// New is the only fallible operation in the Scaler's lifecycle; PushRow and
// Emit are total functions of a valid call sequence (see SlotsNeeded).
func New(hin, hout, win, wout int, cs colorspace.Colorspace) (*Scaler, error) {
	for _, d := range []int{hin, hout, win, wout} {
		if d < 1 || d > MaxDimension {
			return nil, ErrBadParam
		}
	}
	if !cs.Valid() {
		return nil, ErrBadParam
	}

	srgb.GlobalInit()

	channels := cs.Channels()
	vTaps := taps.Count(hin, hout)

	s := &Scaler{
		hin:      hin,
		hout:     hout,
		win:      win,
		wout:     wout,
		channels: channels,
		horiz:    newHorizontalScaler(win, wout, cs),
		vert:     newVerticalScaler(wout, cs),
		ring:     newRing(vTaps, wout*channels),
		vTaps:    vTaps,
		vcoeffs:  make([]float64, vTaps),
		strip:    make([][]float64, vTaps),
	}
	s.recomputeTarget()
	return s, nil
}

// recomputeTarget derives (target, ty) for the output row at s.outPos, per
// the split-map in the filter-plan builder applied to the vertical
// dimension.
func (s *Scaler) recomputeTarget() {
	smpI, ty := taps.Split(s.hin, s.hout, s.outPos)
	s.target = smpI + s.vTaps/2
	s.ty = ty
}

// SlotsNeeded reports how many more input rows must be pushed via PushRow
// before Emit may be called. Zero means Emit is ready to run.
func (s *Scaler) SlotsNeeded() int {
	want := s.target + 1
	if want > s.hin {
		want = s.hin
	}
	k := want - s.inPos
	if k < 0 {
		return 0
	}
	return k
}

// PushRow horizontally scales one input row (Win*channels bytes, in the
// configured colorspace) into the ring buffer. Valid iff fewer than Hin rows
// have been pushed so far.
func (s *Scaler) PushRow(row []byte) {
	if s.inPos >= s.hin {
		stateViolation("push_row called after Hin rows already pushed")
	}
	s.horiz.scaleRow(row, s.ring.row(s.inPos))
	s.inPos++
}

// Emit produces the next output row (Wout*channels bytes) by recomputing
// the vertical coefficients, rebuilding the virtual strip, and running the
// per-colorspace reducer. Valid iff fewer than Hout rows have been emitted
// and SlotsNeeded() == 0.
func (s *Scaler) Emit(out []byte) {
	if s.outPos >= s.hout || s.SlotsNeeded() != 0 {
		stateViolation("emit called while slots are still needed or after Hout rows already emitted")
	}

	catrom.Coeffs(s.vcoeffs, s.ty, 0, 0)
	s.ring.strip(s.strip, s.target, s.hin)
	s.vert.scale(s.strip, s.vcoeffs, out)

	s.outPos++
	if s.outPos < s.hout {
		s.recomputeTarget()
	}
}
