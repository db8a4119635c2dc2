package timex

import (
	"context"
	"sync"
	"time"
)

// Fake is a manually driven Clock for host tests. Sleep advances the clock by
// the requested duration instead of blocking.
type Fake struct {
	mu     sync.Mutex
	now    time.Duration
	sleeps []time.Duration

	// OnSleep, when set, runs after each Sleep has advanced the clock.
	OnSleep func(d time.Duration)
}

func (f *Fake) Now() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// Advance moves the clock forward without recording a sleep; tests use it to
// model time spent rendering.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	f.mu.Unlock()
}

func (f *Fake) Sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d < 0 {
		d = 0
	}
	f.mu.Lock()
	f.now += d
	f.sleeps = append(f.sleeps, d)
	hook := f.OnSleep
	f.mu.Unlock()
	if hook != nil {
		hook(d)
	}
	return ctx.Err() == nil
}

// Sleeps returns a copy of every duration passed to Sleep.
func (f *Fake) Sleeps() []time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]time.Duration(nil), f.sleeps...)
}
