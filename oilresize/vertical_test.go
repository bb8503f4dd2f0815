package oilresize

import (
	"testing"

	"github.com/ender672/oil/catrom"
	"github.com/ender672/oil/colorspace"
	"github.com/ender672/oil/srgb"
)

func TestVerticalScalerIdentityCoeffs(t *testing.T) {
	wout := 2
	cs := colorspace.RGB
	v := newVerticalScaler(wout, cs)

	strip := [][]float64{
		{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
		{0.7, 0.8, 0.9, 0.15, 0.25, 0.35},
		{0.05, 0.45, 0.55, 0.65, 0.75, 0.85},
		{0.95, 0.05, 0.15, 0.25, 0.35, 0.45},
	}
	coeffs := make([]float64, 4)
	catrom.Coeffs(coeffs, 0, 0, 0) // identity: picks tap index 1 verbatim

	out := make([]byte, wout*cs.Channels())
	v.scale(strip, coeffs, out)

	for i, lin := range strip[1] {
		want := srgb.ToSRGB(float32(lin))
		if diff := int(out[i]) - int(want); diff < -1 || diff > 1 {
			t.Errorf("out[%d] = %d, want ~%d", i, out[i], want)
		}
	}
}

func TestVerticalScalerUnpremultipliesAlpha(t *testing.T) {
	cs := colorspace.RGBA
	v := newVerticalScaler(1, cs)

	// Single tap: premultiplied color (0.25,0.25,0.25) at alpha 0.5, so the
	// unpremultiplied color going into sRGB encoding should be 0.5.
	strip := [][]float64{{0.25, 0.25, 0.25, 0.5}}
	coeffs := []float64{1}

	out := make([]byte, 4)
	v.scale(strip, coeffs, out)

	if out[3] != 128 && out[3] != 127 {
		t.Errorf("alpha byte = %d, want ~128", out[3])
	}
	if out[0] == 0 {
		t.Error("unpremultiplied color channel collapsed to 0")
	}
}

func TestVerticalScalerFillerChannelIsZero(t *testing.T) {
	cs := colorspace.RGBX
	v := newVerticalScaler(1, cs)
	strip := [][]float64{{0.5, 0.5, 0.5, 0.9}}
	coeffs := []float64{1}
	out := make([]byte, 4)
	v.scale(strip, coeffs, out)
	if out[3] != 0 {
		t.Errorf("filler byte = %d, want 0", out[3])
	}
}
