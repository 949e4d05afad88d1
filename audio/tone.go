package audio

import (
	"math"
	"math/rand"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave int

const (
	Sine Wave = iota
	Triangle
	Square
	Noise
)

// tone is an endless stereo oscillator. Duration is imposed by the caller
// with beep.Take; loops just keep streaming.
type tone struct {
	freq  float64
	wave  Wave
	gain  float64
	rate  beep.SampleRate
	phase float64
}

// NewTone creates an oscillator streamer at the given frequency and gain.
func NewTone(freq float64, wave Wave, gain float64, rate beep.SampleRate) beep.Streamer {
	return &tone{freq: freq, wave: wave, gain: gain, rate: rate}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		var v float64
		switch t.wave {
		case Triangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		case Square:
			if t.phase < 0.5 {
				v = 1
			} else {
				v = -1
			}
		case Noise:
			v = rand.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * t.phase)
		}
		v *= t.gain
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade shapes a finite streamer with linear attack and release ramps so
// one-shot slots don't click.
type fade struct {
	streamer beep.Streamer
	pos      int
	attack   int
	release  int
	total    int
}

// NewFade wraps a streamer in an attack/release envelope over total samples.
func NewFade(s beep.Streamer, total, attack, release int) beep.Streamer {
	if attack+release > total {
		attack = total / 2
		release = total - attack
	}
	return &fade{streamer: s, attack: attack, release: release, total: total}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if f.pos >= f.total {
			return i, false
		}
		vol := 1.0
		if f.pos < f.attack && f.attack > 0 {
			vol = float64(f.pos) / float64(f.attack)
		} else if left := f.total - f.pos; left < f.release && f.release > 0 {
			vol = float64(left) / float64(f.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }
