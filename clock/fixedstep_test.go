package clock

import (
	"math"
	"testing"
)

func TestTickAtMostOneStepPerCall(t *testing.T) {
	f := NewFixedStep(24)

	// A five second stall arrives as one elapsed report. The ceiling clamps
	// it and the modulo drain yields exactly one step, never a burst.
	if !f.Tick(5.0) {
		t.Fatalf("stall should still yield one step")
	}
	if f.Tick(0) {
		t.Fatalf("no further steps without further elapsed time")
	}
}

func TestTickSteadyRate(t *testing.T) {
	cases := []struct {
		name    string
		rate    float64
		frame   float64
		seconds float64
	}{
		{name: "60fps_frames", rate: 24, frame: 1.0 / 60, seconds: 10},
		{name: "30fps_frames", rate: 24, frame: 1.0 / 30, seconds: 10},
		{name: "144fps_frames", rate: 24, frame: 1.0 / 144, seconds: 10},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			f := NewFixedStep(c.rate)
			steps := 0
			for elapsed := 0.0; elapsed < c.seconds; elapsed += c.frame {
				if f.Tick(c.frame) {
					steps++
				}
			}
			want := c.rate * c.seconds
			if math.Abs(float64(steps)-want) > 2 {
				t.Fatalf("got %d steps over %vs, want ~%v", steps, c.seconds, want)
			}
		})
	}
}

func TestTickBelowInterval(t *testing.T) {
	f := NewFixedStep(24)
	if f.Tick(0.01) {
		t.Fatalf("accumulator below interval should not step")
	}
	if f.Tick(-1) {
		t.Fatalf("negative elapsed must be treated as zero")
	}
	// The two leftover 0.01s plus enough to cross 1/24.
	if !f.Tick(0.04) {
		t.Fatalf("accumulated time should cross the interval")
	}
}

func TestNewFixedStepDefaults(t *testing.T) {
	f := NewFixedStep(0)
	if got := f.Interval(); got != 1/DefaultRate {
		t.Fatalf("interval = %v, want %v", got, 1/DefaultRate)
	}

	f.SetCeiling(1.5)
	if !f.Tick(1.4) {
		t.Fatalf("elapsed under the raised ceiling should step")
	}
}
