package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// slotDef describes one named sound slot. The rest of the game refers to
// slots purely by name and never sees synthesis details.
type slotDef struct {
	freq     float64
	wave     Wave
	gain     float64
	duration time.Duration // one-shot length; loops ignore it
}

var slots = map[string]slotDef{
	"hum":      {freq: 52, wave: Sine, gain: 0.12, duration: 2 * time.Second},
	"fluoro":   {freq: 120, wave: Triangle, gain: 0.08, duration: 2 * time.Second},
	"step":     {freq: 90, wave: Square, gain: 0.10, duration: 90 * time.Millisecond},
	"bell":     {freq: 880, wave: Sine, gain: 0.18, duration: 450 * time.Millisecond},
	"sting":    {freq: 220, wave: Square, gain: 0.16, duration: 700 * time.Millisecond},
	"drone":    {freq: 38, wave: Sine, gain: 0.14, duration: 3 * time.Second},
	"static":   {freq: 0, wave: Noise, gain: 0.06, duration: 1500 * time.Millisecond},
	"register": {freq: 1320, wave: Triangle, gain: 0.15, duration: 250 * time.Millisecond},
}

// Mixer is the sound provider: opaque slot names in, audio out. All calls
// are no-ops for unknown slots and before Initialize succeeds, matching
// the rest of the game's silent-degradation policy.
type Mixer struct {
	mu    sync.Mutex
	mix   *beep.Mixer
	loops map[string]*beep.Ctrl
	ready bool
	mute  bool
}

func NewMixer() *Mixer {
	return &Mixer{mix: &beep.Mixer{}, loops: make(map[string]*beep.Ctrl)}
}

// Initialize opens the speaker and attaches the mixer.
func (m *Mixer) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	speaker.Play(m.mix)
	m.ready = true
	return nil
}

// SetMuted silences new playback without tearing down the speaker.
func (m *Mixer) SetMuted(muted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mute = muted
}

// Play fires a slot once.
func (m *Mixer) Play(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	def, ok := slots[name]
	if !ok || !m.ready || m.mute {
		return
	}
	total := sampleRate.N(def.duration)
	attack := sampleRate.N(10 * time.Millisecond)
	release := sampleRate.N(60 * time.Millisecond)
	s := NewFade(beep.Take(total, NewTone(def.freq, def.wave, def.gain, sampleRate)), total, attack, release)
	speaker.Lock()
	m.mix.Add(s)
	speaker.Unlock()
}

// Loop starts or stops a continuously looping slot. Starting an already
// running loop does nothing.
func (m *Mixer) Loop(name string, on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	def, ok := slots[name]
	if !ok || !m.ready {
		return
	}

	if ctrl, exists := m.loops[name]; exists {
		speaker.Lock()
		ctrl.Paused = !on || m.mute
		speaker.Unlock()
		return
	}
	if !on {
		return
	}
	ctrl := &beep.Ctrl{Streamer: NewTone(def.freq, def.wave, def.gain, sampleRate), Paused: m.mute}
	m.loops[name] = ctrl
	speaker.Lock()
	m.mix.Add(ctrl)
	speaker.Unlock()
}

// Stop pauses a looping slot. One-shots play out on their own.
func (m *Mixer) Stop(name string) {
	m.Loop(name, false)
}

// StopAll pauses every looping slot; scenes call this on unmount.
func (m *Mixer) StopAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.ready {
		return
	}
	speaker.Lock()
	for _, ctrl := range m.loops {
		ctrl.Paused = true
	}
	speaker.Unlock()
}
