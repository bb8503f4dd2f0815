package colorspace

import "testing"

func TestChannels(t *testing.T) {
	cases := []struct {
		cs   Colorspace
		want int
	}{
		{G, 1},
		{GA, 2},
		{RGB, 3},
		{RGBX, 4},
		{RGBA, 4},
		{CMYK, 4},
	}
	for _, c := range cases {
		if got := c.cs.Channels(); got != c.want {
			t.Errorf("%v.Channels() = %d, want %d", c.cs, got, c.want)
		}
	}
}

func TestGammaChannels(t *testing.T) {
	cases := []struct {
		cs   Colorspace
		want int
	}{
		{G, 0},
		{GA, 0},
		{RGB, 3},
		{RGBX, 3},
		{RGBA, 3},
		{CMYK, 0},
	}
	for _, c := range cases {
		if got := c.cs.GammaChannels(); got != c.want {
			t.Errorf("%v.GammaChannels() = %d, want %d", c.cs, got, c.want)
		}
	}
}

func TestAlphaChannel(t *testing.T) {
	if idx, ok := GA.AlphaChannel(); !ok || idx != 1 {
		t.Errorf("GA.AlphaChannel() = (%d, %v), want (1, true)", idx, ok)
	}
	if idx, ok := RGBA.AlphaChannel(); !ok || idx != 3 {
		t.Errorf("RGBA.AlphaChannel() = (%d, %v), want (3, true)", idx, ok)
	}
	for _, cs := range []Colorspace{G, RGB, RGBX, CMYK} {
		if _, ok := cs.AlphaChannel(); ok {
			t.Errorf("%v.AlphaChannel() reported an alpha channel", cs)
		}
	}
}

func TestFillerChannel(t *testing.T) {
	if idx, ok := RGBX.FillerChannel(); !ok || idx != 3 {
		t.Errorf("RGBX.FillerChannel() = (%d, %v), want (3, true)", idx, ok)
	}
	for _, cs := range []Colorspace{G, GA, RGB, RGBA, CMYK} {
		if _, ok := cs.FillerChannel(); ok {
			t.Errorf("%v.FillerChannel() reported a filler channel", cs)
		}
	}
}

func TestValid(t *testing.T) {
	for _, cs := range []Colorspace{G, GA, RGB, RGBX, RGBA, CMYK} {
		if !cs.Valid() {
			t.Errorf("%v.Valid() = false, want true", cs)
		}
	}
	if Colorspace(99).Valid() {
		t.Error("Colorspace(99).Valid() = true, want false")
	}
}

func TestString(t *testing.T) {
	if got := RGBA.String(); got != "RGBA" {
		t.Errorf("RGBA.String() = %q, want %q", got, "RGBA")
	}
	if got := Colorspace(99).String(); got != "Colorspace(99)" {
		t.Errorf("Colorspace(99).String() = %q, want %q", got, "Colorspace(99)")
	}
}
