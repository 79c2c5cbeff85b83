package domain

import "time"

// CurrentTimeProvider provides the current time.
type CurrentTimeProvider interface {
	Now() time.Time
}

// Elapsed returns the time passed since start according to p.
// A clock that moved backwards yields zero.
func Elapsed(p CurrentTimeProvider, start time.Time) time.Duration {
	d := p.Now().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}
