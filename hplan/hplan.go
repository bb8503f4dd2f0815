// Package hplan builds the immutable horizontal filter plan: a precomputed
// array of Catmull-Rom coefficients plus a border table that drives the
// variable-length inner loop of the horizontal scaler.
//
// Two shapes exist depending on direction:
//
//   - Downscale (Wout <= Win): 4 coefficients per input sample, staged so a
//     running ring of 4 accumulators can be updated in place as samples are
//     consumed; Borders[i] counts how many input samples to consume before
//     output sample i is complete.
//   - Upscale (Wout > Win): 4 coefficients per output sample; Borders[i]
//     counts how many output samples to emit once input sample i has
//     entered the sliding window.
//
// Grounded on ender672/liboil's oil_resample.c (xscale_calc_coeffs,
// scale_up_coeffs).
package hplan

import (
	"github.com/ender672/oil/catrom"
	"github.com/ender672/oil/taps"
)

// Plan is the immutable result of configuring a horizontal dimension.
type Plan struct {
	// Downscale reports whether this is a downscale (Wout <= Win) plan.
	Downscale bool
	// Taps is the tap count used to build this plan.
	Taps int
	// Coeffs holds 4 coefficients per input sample (downscale) or per
	// output sample (upscale), row-major.
	Coeffs []float64
	// Borders holds, per output sample (downscale) or per input sample
	// (upscale), the count driving the scaler's inner loop.
	Borders []int
}

// Build constructs the horizontal plan for scaling win input samples to wout
// output samples.
func Build(win, wout int) *Plan {
	if wout <= win {
		return buildDownscale(win, wout)
	}
	return buildUpscale(win, wout)
}

func buildDownscale(win, wout int) *Plan {
	t := taps.Count(win, wout)
	coeffs := make([]float64, 4*win)
	borders := make([]int, wout)
	tmp := make([]float64, t)

	var ends [4]int
	ends[0], ends[1], ends[2], ends[3] = -1, -1, -1, -1

	for i := 0; i < wout; i++ {
		smpI, tx := taps.Split(win, wout, i)

		start := smpI - (t/2 - 1)
		end := smpI + t/2
		if end >= win {
			end = win - 1
		}
		ends[i%4] = end
		borders[i] = end - ends[(i+3)%4]

		ltrim := 0
		if start < 0 {
			ltrim = -start
		}
		rtrim := start + (t - 1) - end

		catrom.Coeffs(tmp, tx, ltrim, rtrim)

		for j := ltrim; j < t-rtrim; j++ {
			pos := start + j

			offset := 3
			switch {
			case pos > ends[(i+3)%4]:
				offset = 0
			case pos > ends[(i+2)%4]:
				offset = 1
			case pos > ends[(i+1)%4]:
				offset = 2
			}

			coeffs[pos*4+offset] = tmp[j]
		}
	}

	return &Plan{Downscale: true, Taps: t, Coeffs: coeffs, Borders: borders}
}

func buildUpscale(win, wout int) *Plan {
	coeffs := make([]float64, 4*wout)
	borders := make([]int, win)
	tmp := make([]float64, 4)

	maxPos := win - 1
	for i := 0; i < wout; i++ {
		smpI, tx := taps.Split(win, wout, i)
		start := smpI - 1
		end := smpI + 2

		safeEnd := end
		if safeEnd > maxPos {
			safeEnd = maxPos
		}

		ltrim := 0
		if start < 0 {
			ltrim = -start
		}
		rtrim := 0
		if end > maxPos {
			rtrim = end - maxPos
		}

		borders[safeEnd]++

		catrom.Coeffs(tmp, tx, ltrim, rtrim)
		row := coeffs[i*4 : i*4+4]
		for j := ltrim; j < 4-rtrim; j++ {
			row[rtrim+j] = tmp[j]
		}
	}

	return &Plan{Downscale: false, Taps: 4, Coeffs: coeffs, Borders: borders}
}
