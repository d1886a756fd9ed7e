package timeutil

import "time"

// Clock supplies the current instant. Inject a fixed implementation in
// tests; production code uses SystemClock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the Clock backed by the system wall clock, in UTC.
type SystemClock struct{}

// Now returns the current UTC offset-aware instant.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// UTCNow returns the current UTC offset-aware instant from the system clock.
func UTCNow() time.Time {
	return SystemClock{}.Now()
}
