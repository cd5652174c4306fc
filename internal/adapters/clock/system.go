package clock

import (
	"time"

	"planpilot/internal/ports"
)

// System is the wall clock
type System struct{}

// Verify interface compliance at compile time
var _ ports.Clock = System{}

// NewSystem creates a wall clock
func NewSystem() System { return System{} }

// Now returns the current UTC time
func (System) Now() time.Time { return time.Now().UTC() }

// AfterFunc runs f in its own goroutine after d
func (System) AfterFunc(d time.Duration, f func()) ports.Timer {
	return time.AfterFunc(d, f)
}
