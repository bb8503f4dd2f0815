package oilresize

import (
	"github.com/ender672/oil/colorspace"
	"github.com/ender672/oil/srgb"
)

// verticalScaler convolves a window of horizontally-scaled linear-space rows
// into one 8-bit output row: unpremultiplying alpha and converting gamma
// channels back to sRGB as it goes. Generalizes liboil's
// strip_scale_rgbx/strip_scale_rgba/etc across all six colorspaces, the same
// way horizontalScaler generalizes xscale_down_*/xscale_up_*.
type verticalScaler struct {
	channels int
	gammaCh  int
	alphaCh  int
	fillerCh int
	wout     int
}

func newVerticalScaler(wout int, cs colorspace.Colorspace) *verticalScaler {
	alphaCh, ok := cs.AlphaChannel()
	if !ok {
		alphaCh = -1
	}
	fillerCh, ok := cs.FillerChannel()
	if !ok {
		fillerCh = -1
	}
	return &verticalScaler{
		channels: cs.Channels(),
		gammaCh:  cs.GammaChannels(),
		alphaCh:  alphaCh,
		fillerCh: fillerCh,
		wout:     wout,
	}
}

// clamp01 clamps a linear sample to [0,1] before encoding, guarding against
// ringing introduced by the Catmull-Rom kernel's negative lobes.
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round8(v float64) byte {
	v = clamp01(v)
	return byte(v*255 + 0.5)
}

// scale convolves strip (taps rows, each wout*channels linear floats) with
// coeffs (taps weights) and writes one 8-bit row of length wout*channels to
// out.
func (v *verticalScaler) scale(strip [][]float64, coeffs []float64, out []byte) {
	c := v.channels
	taps := len(coeffs)

	for p := 0; p < v.wout; p++ {
		base := p * c

		var alpha float64
		if v.alphaCh >= 0 {
			var sum float64
			for t := 0; t < taps; t++ {
				sum += strip[t][base+v.alphaCh] * coeffs[t]
			}
			alpha = clamp01(sum)
			out[base+v.alphaCh] = round8(alpha)
		}

		for ch := 0; ch < c; ch++ {
			if ch == v.alphaCh {
				continue
			}
			if ch == v.fillerCh {
				out[base+ch] = 0
				continue
			}

			var sum float64
			for t := 0; t < taps; t++ {
				sum += strip[t][base+ch] * coeffs[t]
			}

			if v.alphaCh >= 0 && alpha > 0 {
				sum /= alpha
			}
			sum = clamp01(sum)

			if ch < v.gammaCh {
				out[base+ch] = srgb.ToSRGB(float32(sum))
			} else {
				out[base+ch] = round8(sum)
			}
		}
	}
}
