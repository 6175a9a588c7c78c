package application

import "time"

// Clock supplies timestamps for ideas and analyses so tests can pin them.
type Clock interface {
	Now() time.Time
}

// SystemClock is the default clock, UTC wall time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
