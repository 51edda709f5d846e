package service

import "time"

// Clock abstracts wall-clock time so the past/future split and the status
// sweep can run against a fixed clock in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// FixedClock always returns At. Test helper.
type FixedClock struct{ At time.Time }

func (f FixedClock) Now() time.Time { return f.At }
