// Package srgb provides exact, allocation-free conversion between 8-bit
// sRGB-encoded samples and linear-light floats.
//
// The tables are process-wide state, built once from the piecewise IEC
// 61966-2-1 transfer function and shared by every Scaler. Grounded on
// ender672/liboil's oil_resample.c (build_s2l, build_l2s_rights,
// linear_sample_to_srgb).
package srgb

import (
	"math"
	"sync"
)

// ToLinear maps an 8-bit sRGB sample to its linear-light float value in
// [0,1]. Populated by GlobalInit or by the first call to ToSRGB; it reads as
// all zeros before either has run.
var ToLinear [256]float32

// l2sRights holds, for index i, the linear-domain value corresponding to the
// sRGB sample (i+0.5)/255 -- the midpoint between sRGB samples i and i+1.
// ToSRGB finds the smallest i such that x <= l2sRights[i].
var l2sRights [256]float32

var once sync.Once

// GlobalInit builds the sRGB tables eagerly. Calling it is optional: the
// tables are otherwise initialized lazily, exactly once, the first time they
// are needed. Safe to call from multiple goroutines; only the first call
// does any work.
func GlobalInit() {
	once.Do(buildTables)
}

func buildTables() {
	for i := 0; i < 256; i++ {
		ToLinear[i] = float32(srgbToLinear(float64(i) / 255.0))
	}
	for i := 0; i < 255; i++ {
		srgbF := (float64(i) + 0.5) / 255.0
		l2sRights[i] = float32(srgbToLinear(srgbF))
	}
	// Sentinel: any linear value, however large, saturates the search at 255.
	l2sRights[255] = 256.0
}

func srgbToLinear(v float64) float64 {
	if v <= 0.0404482362771082 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ToSRGB maps a linear-light float to the nearest 8-bit sRGB sample via an
// 8-step binary search over l2sRights. NaN and +/-Inf are undefined inputs.
func ToSRGB(x float32) uint8 {
	once.Do(buildTables)

	offs := 0
	for i := 128; i > 0; i >>= 1 {
		if x > l2sRights[offs+i] {
			offs += i
		}
	}
	if x > l2sRights[offs] {
		return uint8(offs + 1)
	}
	return uint8(offs)
}
