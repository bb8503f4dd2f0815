package oilresize

import "errors"

// ErrBadParam is returned by New when a dimension is non-positive, exceeds
// MaxDimension, or the colorspace is unknown.
//
// OutOfMemory is not part of this package's error surface: make/append
// panic rather than return an error on allocation failure, so there is
// nothing for New to report short of the panic itself. OutOfRange belongs
// to the ratio package, whose Fix is the operation that can produce it.
var ErrBadParam = errors.New("oilresize: bad parameter")

// stateViolation panics with a descriptive message. Calling PushRow or Emit
// in a state the scheduler doesn't allow is a programming error, not a
// recoverable runtime condition -- mirroring liboil's assertion-style
// contract (oil_resample.c never validates in_pos/out_pos at the call
// sites; callers are required to honor SlotsNeeded/the state machine).
func stateViolation(msg string) {
	panic("oilresize: state violation: " + msg)
}
