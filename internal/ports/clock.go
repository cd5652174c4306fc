package ports

import "time"

// Timer is a scheduled callback that can be cancelled
type Timer interface {
	// Stop cancels the timer. It reports whether the call stopped the timer
	// before it fired.
	Stop() bool
}

// Clock abstracts time so timers can be driven deterministically in tests
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
	Now() time.Time
}
