package hplan

import "testing"

func TestBuildDownscaleBordersSumToWin(t *testing.T) {
	win, wout := 400, 200
	p := Build(win, wout)
	if !p.Downscale {
		t.Fatal("expected a downscale plan")
	}
	var sum int
	for _, b := range p.Borders {
		sum += b
	}
	if sum != win {
		t.Errorf("sum(Borders) = %d, want %d", sum, win)
	}
}

func TestBuildUpscaleBordersSumToWout(t *testing.T) {
	win, wout := 200, 400
	p := Build(win, wout)
	if p.Downscale {
		t.Fatal("expected an upscale plan")
	}
	var sum int
	for _, b := range p.Borders {
		sum += b
	}
	if sum != wout {
		t.Errorf("sum(Borders) = %d, want %d", sum, wout)
	}
}

// TestDownscaleConsumesAllInput checks, for a non-integer ratio, that the
// downscale borders together consume every input sample exactly once.
func TestDownscaleConsumesAllInput(t *testing.T) {
	win, wout := 37, 11
	p := Build(win, wout)
	var consumed int
	for _, b := range p.Borders {
		consumed += b
	}
	if consumed != win {
		t.Errorf("consumed %d input samples, want %d", consumed, win)
	}
}

func TestBuildChoosesDirectionByWoutVsWin(t *testing.T) {
	if !Build(10, 10).Downscale {
		t.Error("Wout == Win should take the downscale plan")
	}
	if !Build(10, 5).Downscale {
		t.Error("Wout < Win should take the downscale plan")
	}
	if Build(10, 20).Downscale {
		t.Error("Wout > Win should take the upscale plan")
	}
}

func TestBuildSingleSample(t *testing.T) {
	p := Build(1, 1)
	if p.Taps < 4 {
		t.Errorf("Taps = %d, want >= 4", p.Taps)
	}
	var sum int
	for _, b := range p.Borders {
		sum += b
	}
	if sum != 1 {
		t.Errorf("sum(Borders) = %d, want 1", sum)
	}
}
