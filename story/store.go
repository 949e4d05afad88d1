package story

import (
	"sync"
	"time"
)

const (
	// CartCap is the most items the cart holds; extra adds are dropped
	// silently rather than reported as errors.
	CartCap = 5

	defaultFadeIn  = 600 * time.Millisecond
	defaultFadeOut = 600 * time.Millisecond
)

// Store is the game-wide state machine: the current chapter, the one-shot
// visited events, the transition fade overlay flag, the timed visual
// effect, the cart, and the steering tally. It is an explicit object with
// an injected scheduler, not a process global, so tests can construct as
// many independent instances as they like.
//
// Scene controllers mutate it only through TriggerEvent, GoToChapter,
// SetActiveEffect, AddToCart, AddMovement, and Notify; everything else is
// read-only.
type Store struct {
	mu    sync.Mutex
	sched Scheduler

	chapter       Chapter
	transitioning bool
	transitionGen int
	fadeIn        time.Duration
	fadeOut       time.Duration

	visited map[string]struct{}
	cart    []string

	effect      string
	effectGen   int
	effectTimer CancelFunc

	notice string

	leftMovement  float64
	rightMovement float64

	midTimer CancelFunc
	endTimer CancelFunc
}

// NewStore builds a store starting at ChapterStart. A nil scheduler falls
// back to real timers.
func NewStore(sched Scheduler) *Store {
	if sched == nil {
		sched = NewTimerScheduler()
	}
	return &Store{
		sched:   sched,
		chapter: ChapterStart,
		fadeIn:  defaultFadeIn,
		fadeOut: defaultFadeOut,
		visited: make(map[string]struct{}),
	}
}

// SetFadeDurations overrides the transition fade-in/fade-out windows.
func (s *Store) SetFadeDurations(in, out time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if in > 0 {
		s.fadeIn = in
	}
	if out > 0 {
		s.fadeOut = out
	}
}

// Chapter returns the chapter currently visible to scenes. During a
// transition it only changes at the fade midpoint, so no scene renders
// stale geometry through a half-transparent overlay.
func (s *Store) Chapter() Chapter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chapter
}

// Transitioning reports whether the fade overlay should cover the screen.
func (s *Store) Transitioning() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.transitioning
}

// GoToChapter starts the timed fade protocol toward next: raise the
// overlay now, swap the chapter at the fade midpoint, drop the overlay
// after the fade-out. Calling again mid-transition supersedes the earlier
// one: its pending timers are cancelled and the fade restarts toward the
// new target.
func (s *Store) GoToChapter(next Chapter) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transitionGen++
	gen := s.transitionGen
	s.cancelTransitionLocked()

	s.transitioning = true
	s.midTimer = s.sched.AfterFunc(s.fadeIn, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.transitionGen {
			return
		}
		s.chapter = next
		s.endTimer = s.sched.AfterFunc(s.fadeOut, func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if gen != s.transitionGen {
				return
			}
			s.transitioning = false
		})
	})
}

// JumpToChapter sets the chapter immediately with no fade, cancelling any
// transition in flight. Startup and hot-reload paths use this; normal play
// goes through GoToChapter.
func (s *Store) JumpToChapter(next Chapter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transitionGen++
	s.cancelTransitionLocked()
	s.transitioning = false
	s.chapter = next
}

func (s *Store) cancelTransitionLocked() {
	if s.midTimer != nil {
		s.midTimer()
		s.midTimer = nil
	}
	if s.endTimer != nil {
		s.endTimer()
		s.endTimer = nil
	}
}

// TriggerEvent records a one-shot event and reports whether this was its
// first firing. Chapter scripts poll their trigger zones every step while
// the player lingers inside them; this is the idempotency primitive that
// keeps dialogue and stings from re-firing.
func (s *Store) TriggerEvent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, seen := s.visited[id]; seen {
		return false
	}
	s.visited[id] = struct{}{}
	return true
}

// HasVisited reports whether an event has already fired.
func (s *Store) HasVisited(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, seen := s.visited[id]
	return seen
}

// VisitedCount returns how many one-shot events have fired.
func (s *Store) VisitedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visited)
}

// AddToCart appends an item label. The cart never grows past CartCap;
// items past the cap are dropped without complaint.
func (s *Store) AddToCart(item string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cart) >= CartCap {
		return
	}
	s.cart = append(s.cart, item)
}

// Cart returns a copy of the cart contents in insertion order.
func (s *Store) Cart() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.cart...)
}

// SetActiveEffect replaces the current visual-effect tag and cancels any
// auto-clear pending from a previous call; two effect timers never race.
// A positive duration schedules a fresh auto-clear. An empty tag clears
// the effect outright.
func (s *Store) SetActiveEffect(tag string, duration time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.effectGen++
	gen := s.effectGen
	if s.effectTimer != nil {
		s.effectTimer()
		s.effectTimer = nil
	}

	s.effect = tag
	if tag == "" || duration <= 0 {
		return
	}
	s.effectTimer = s.sched.AfterFunc(duration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Only the generation that scheduled this clear may apply it; a
		// newer effect owns the slot now.
		if gen != s.effectGen {
			return
		}
		s.effect = ""
	})
}

// ClearEffect removes the active effect and cancels its timer.
func (s *Store) ClearEffect() {
	s.SetActiveEffect("", 0)
}

// ActiveEffect returns the current effect tag, empty when none.
func (s *Store) ActiveEffect() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.effect
}

// AddMovement accumulates steering on one side ("left" or "right").
// Unknown directions and negative amounts are ignored; the tallies only
// ever grow within a chapter's lifetime.
func (s *Store) AddMovement(direction string, amount float64) {
	if amount <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	switch direction {
	case "left":
		s.leftMovement += amount
	case "right":
		s.rightMovement += amount
	}
}

// MovementTally returns the accumulated left and right steering.
func (s *Store) MovementTally() (left, right float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leftMovement, s.rightMovement
}

// DominantSide reports which way the player has steered more, or "" while
// the tallies are tied.
func (s *Store) DominantSide() string {
	left, right := s.MovementTally()
	switch {
	case left > right:
		return "left"
	case right > left:
		return "right"
	default:
		return ""
	}
}

// Notify replaces the HUD notification text; empty clears it.
func (s *Store) Notify(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = text
}

// Notice returns the current notification text.
func (s *Store) Notice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notice
}
