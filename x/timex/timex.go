// Package timex provides the monotonic clock used by the panel loop and the
// timer helpers it is built on.
package timex

import (
	"context"
	"time"
)

// Clock is a monotonic time source with a cancellable wait.
//
// Now returns the time elapsed since an arbitrary, fixed epoch. Sleep waits
// for d and reports whether to continue (false => ctx cancelled), so every
// wait doubles as a cooperative stop-check.
type Clock interface {
	Now() time.Duration
	Sleep(ctx context.Context, d time.Duration) bool
}

// System is a Clock backed by the runtime monotonic clock. It reuses a single
// timer and must be owned by one goroutine.
type System struct {
	epoch time.Time
	timer *time.Timer
}

// NewSystem returns a System clock whose epoch is now.
func NewSystem() *System {
	t := time.NewTimer(time.Hour)
	if !t.Stop() {
		DrainTimer(t)
	}
	return &System{epoch: time.Now(), timer: t}
}

func (s *System) Now() time.Duration { return time.Since(s.epoch) }

func (s *System) Sleep(ctx context.Context, d time.Duration) bool {
	if ctx.Err() != nil {
		return false
	}
	if d <= 0 {
		return true
	}
	ResetTimer(s.timer, d)
	select {
	case <-ctx.Done():
		if !s.timer.Stop() {
			DrainTimer(s.timer)
		}
		return false
	case <-s.timer.C:
		return true
	}
}

// ResetTimer stops, drains and re-arms t. Negative durations fire at once.
func ResetTimer(t *time.Timer, d time.Duration) {
	if d < 0 {
		d = 0
	}
	if !t.Stop() {
		DrainTimer(t)
	}
	t.Reset(d)
}

func DrainTimer(t *time.Timer) {
	select {
	case <-t.C:
	default:
	}
}

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }
