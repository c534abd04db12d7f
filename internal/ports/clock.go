package ports

import (
	"time"

	"github.com/bnema/gathering-relay/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Scheduler runs callbacks after a delay. Relay timers go through it so tests
// can drive time by hand.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) domain.Timer
}

type SystemScheduler struct{}

func (SystemScheduler) AfterFunc(d time.Duration, f func()) domain.Timer {
	return time.AfterFunc(d, f)
}
