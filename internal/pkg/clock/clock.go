// Package clock provides the wall-clock source used by the attendance state
// machine. Services take a Clock so tests can pin time to the minute.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// New returns a Clock backed by the system time.
func New() Clock {
	return systemClock{}
}
