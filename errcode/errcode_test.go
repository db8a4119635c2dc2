package errcode

import (
	"context"
	"errors"
	"testing"
)

func TestOf(t *testing.T) {
	cause := errors.New("checksum mismatch")
	for _, c := range []struct {
		err  error
		want Code
	}{
		{nil, OK},
		{errors.New("busy"), Error},
		{SensorRead, SensorRead},
		{&E{C: DisplayWrite, Op: "flush"}, DisplayWrite},
		{Wrap(SensorRead, "read", cause), SensorRead},
	} {
		if got := Of(c.err); got != c.want {
			t.Fatalf("Of(%v) = %q, want %q", c.err, got, c.want)
		}
	}
}

func TestWrapKeepsCause(t *testing.T) {
	if Wrap(SensorRead, "read", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
	err := Wrap(DisplayWrite, "flush", context.DeadlineExceeded)
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("cause lost: %v", err)
	}
	if !errors.Is(err, DisplayWrite) {
		t.Fatalf("errors.Is(err, DisplayWrite) = false for %v", err)
	}
	if errors.Is(err, SensorRead) {
		t.Fatalf("errors.Is(err, SensorRead) = true for %v", err)
	}
	if got, want := err.Error(), "flush: display_write: context deadline exceeded"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestEMessage(t *testing.T) {
	e := &E{C: FormatOverflow, Msg: "22 runes > 21"}
	if got, want := e.Error(), "format_overflow: 22 runes > 21"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}
