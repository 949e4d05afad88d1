package story

import "time"

// CancelFunc stops a pending scheduled call. Safe to invoke more than once
// or after the call has fired.
type CancelFunc func()

// Scheduler defers a call by a duration. The store takes one by injection
// so tests can drive time by hand instead of sleeping.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) CancelFunc
}

// TimerScheduler is the production scheduler on top of time.AfterFunc.
type TimerScheduler struct{}

func NewTimerScheduler() TimerScheduler {
	return TimerScheduler{}
}

func (TimerScheduler) AfterFunc(d time.Duration, fn func()) CancelFunc {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}
