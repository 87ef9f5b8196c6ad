package engine

import "github.com/jonboulle/clockwork"

// Clock abstracts the wall clock and its tickers so tests can drive time
// deterministically with clockwork.NewFakeClock.
type Clock = clockwork.Clock

// NewRealClock returns the system clock.
func NewRealClock() Clock {
	return clockwork.NewRealClock()
}

// Sample reads the current wall-clock time from c.
func Sample(c Clock) TimeValue {
	return FromTime(c.Now())
}
