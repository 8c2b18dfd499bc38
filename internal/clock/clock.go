// Package clock abstracts the time operations the search debounce needs.
//
// Production code injects Real(); tests inject Fake() and move time
// forward explicitly with Advance, which fires pending AfterFunc
// callbacks synchronously in the calling goroutine.
package clock

import "time"

// Clock is the subset of the time package used by the store.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for d, then calls f. The returned Timer cancels
	// the pending call with Stop.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a cancellable scheduled call.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the Timer from firing. Returns true if the call stops
// the timer, false if the timer has already fired or been stopped.
func (t *Timer) Stop() bool {
	if t == nil || t.stopFunc == nil {
		return false
	}
	return t.stopFunc()
}
