// Package clock provides the current-time source used by relative-date
// operations. Passing an explicit Clock keeps those operations deterministic
// under test; production code uses System.
package clock

import "time"

// Clock supplies the current time.
type Clock interface {
	// Now returns the current time. Implementations must be safe for
	// concurrent use.
	Now() time.Time
}

// SystemClock reads the system clock. The zero value is ready to use.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// System is the default clock used by convenience APIs that do not take an
// explicit Clock.
var System Clock = SystemClock{}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

// Now returns the pinned instant.
func (c FixedClock) Now() time.Time {
	return c.Instant
}

// Fixed returns a FixedClock pinned to t.
func Fixed(t time.Time) FixedClock {
	return FixedClock{Instant: t}
}

var (
	_ Clock = SystemClock{}
	_ Clock = FixedClock{}
)
