// Package clock provides time and scheduling utilities for the application
package clock

import "time"

// Clock provides the current time and delayed callbacks
type Clock interface {
	Now() time.Time

	// AfterFunc runs f once after d has elapsed. The returned Timer can
	// cancel it before it fires.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a cancellation token for a scheduled callback
type Timer interface {
	// Stop prevents the callback from firing. It returns false if the
	// callback already fired or was already stopped.
	Stop() bool
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// AfterFunc schedules f on its own goroutine via time.AfterFunc
func (c *Real) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}
