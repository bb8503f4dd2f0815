package oilresize

import (
	"github.com/ender672/oil/colorspace"
	"github.com/ender672/oil/hplan"
	"github.com/ender672/oil/srgb"
)

// horizontalScaler consumes one 8-bit input row and produces one linear-
// space, (possibly) premultiplied float64 row. It generalizes liboil's
// per-colorspace xscale_down_*/xscale_up_* family: every colorspace shares
// the same inner loop, parameterized by channel count and which channels
// are gamma-encoded, alpha, or filler (spec 4.3: "the same machinery").
type horizontalScaler struct {
	plan     *hplan.Plan
	channels int
	gammaCh  int // number of leading gamma-encoded channels (0 or 3)
	alphaCh  int // index of the alpha channel, or -1
	fillerCh int // index of the filler channel, or -1
	win      int
	wout     int

	// scratch holds the per-channel 4-wide accumulator/sliding-window
	// state, reused across rows to avoid an allocation per PushRow call.
	scratch [][4]float64
}

func newHorizontalScaler(win, wout int, cs colorspace.Colorspace) *horizontalScaler {
	alphaCh, ok := cs.AlphaChannel()
	if !ok {
		alphaCh = -1
	}
	fillerCh, ok := cs.FillerChannel()
	if !ok {
		fillerCh = -1
	}
	channels := cs.Channels()
	return &horizontalScaler{
		plan:     hplan.Build(win, wout),
		channels: channels,
		gammaCh:  cs.GammaChannels(),
		alphaCh:  alphaCh,
		fillerCh: fillerCh,
		win:      win,
		wout:     wout,
		scratch:  make([][4]float64, channels),
	}
}

// channelValue converts one input byte of channel ch to its working linear
// float, given the sample's alpha (1.0 when the colorspace has no alpha
// channel). The alpha channel itself is returned unconverted-by-gamma and
// un-premultiplied.
func (h *horizontalScaler) channelValue(ch int, b byte, alpha float64) float64 {
	if ch == h.fillerCh {
		return 0
	}
	var v float64
	if ch < h.gammaCh {
		v = float64(srgb.ToLinear[b])
	} else {
		v = float64(b) / 255
	}
	if ch == h.alphaCh {
		return v
	}
	if h.alphaCh >= 0 {
		v *= alpha
	}
	return v
}

// scaleRow runs the horizontal plan over in (win*channels bytes) and writes
// wout*channels float64 samples to out.
func (h *horizontalScaler) scaleRow(in []byte, out []float64) {
	if h.plan.Downscale {
		h.scaleDownRow(in, out)
	} else {
		h.scaleUpRow(in, out)
	}
}

// scaleDownRow implements the downscale inner loop: a running ring of 4
// accumulators per channel, popped and shifted each time a border is
// reached. Grounded on xscale_down_rgbx/xscale_down_rgba/etc.
func (h *horizontalScaler) scaleDownRow(in []byte, out []float64) {
	c := h.channels
	acc := h.scratch
	for i := range acc {
		acc[i] = [4]float64{}
	}
	coeffs := h.plan.Coeffs
	borders := h.plan.Borders

	ci := 0 // index of the next input sample to consume
	for i := 0; i < h.wout; i++ {
		for j := borders[i]; j > 0; j-- {
			base := ci * c
			alpha := 1.0
			if h.alphaCh >= 0 {
				alpha = float64(in[base+h.alphaCh]) / 255
			}
			coeff := coeffs[ci*4 : ci*4+4]
			for ch := 0; ch < c; ch++ {
				v := h.channelValue(ch, in[base+ch], alpha)
				a := &acc[ch]
				a[0] += v * coeff[0]
				a[1] += v * coeff[1]
				a[2] += v * coeff[2]
				a[3] += v * coeff[3]
			}
			ci++
		}

		obase := i * c
		for ch := 0; ch < c; ch++ {
			a := &acc[ch]
			out[obase+ch] = a[0]
			a[0], a[1], a[2], a[3] = a[1], a[2], a[3], 0
		}
	}
}

// scaleUpRow implements the upscale inner loop: a 4-wide sliding history per
// channel, producing one output sample per coefficient row as borders are
// reached. Grounded on xscale_up_rgbx/xscale_up_rgba/etc.
func (h *horizontalScaler) scaleUpRow(in []byte, out []float64) {
	c := h.channels
	win := h.scratch
	for i := range win {
		win[i] = [4]float64{}
	}
	coeffs := h.plan.Coeffs
	borders := h.plan.Borders

	oi := 0
	for i := 0; i < h.win; i++ {
		base := i * c
		alpha := 1.0
		if h.alphaCh >= 0 {
			alpha = float64(in[base+h.alphaCh]) / 255
		}
		for ch := 0; ch < c; ch++ {
			v := h.channelValue(ch, in[base+ch], alpha)
			w := &win[ch]
			w[0], w[1], w[2], w[3] = w[1], w[2], w[3], v
		}

		for j := borders[i]; j > 0; j-- {
			coeff := coeffs[oi*4 : oi*4+4]
			obase := oi * c
			for ch := 0; ch < c; ch++ {
				w := &win[ch]
				out[obase+ch] = w[0]*coeff[0] + w[1]*coeff[1] + w[2]*coeff[2] + w[3]*coeff[3]
			}
			oi++
		}
	}
}
