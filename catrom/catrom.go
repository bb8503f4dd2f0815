// Package catrom implements the Catmull-Rom interpolation kernel used as the
// resampler's single resampling filter, along with per-tap coefficient
// generation for an arbitrary even tap count and left/right trim.
//
// Grounded on ender672/liboil's oil_resample.c (catrom, calc_coeffs).
package catrom

import "math"

// Kernel evaluates the Catmull-Rom cubic at x (the function is even, so only
// |x| matters).
func Kernel(x float64) float64 {
	x = math.Abs(x)
	switch {
	case x >= 2:
		return 0
	case x < 1:
		return (1.5*x-2.5)*x*x + 1
	default:
		return (((5-x)*x - 8) * x) / 2 + 2
	}
}

// Coeffs fills dst (length taps) with the Catmull-Rom coefficients for
// sub-pixel offset t, given ltrim/rtrim leading/trailing taps that are
// excluded from the filter (set to 0 in dst). The taps actually computed are
// renormalized so they sum to exactly 1.
//
// len(dst) must be even and >= 4; ltrim and rtrim must be >= 0 and
// ltrim+rtrim < len(dst).
func Coeffs(dst []float64, t float64, ltrim, rtrim int) {
	taps := len(dst)
	for i := 0; i < ltrim; i++ {
		dst[i] = 0
	}
	for i := taps - rtrim; i < taps; i++ {
		dst[i] = 0
	}

	tapMult := float64(taps) / 4
	tx := 1 - t - float64(taps/2) + float64(ltrim)

	var sum float64
	for i := ltrim; i < taps-rtrim; i++ {
		v := Kernel(tx/tapMult) / tapMult
		dst[i] = v
		sum += v
		tx++
	}

	inv := 1 / sum
	for i := ltrim; i < taps-rtrim; i++ {
		dst[i] *= inv
	}
}
