package conv

import "testing"

func TestItoa(t *testing.T) {
	var buf [20]byte
	for _, c := range []struct {
		n    int64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-42, "-42"},
		{1234567890, "1234567890"},
	} {
		if got := string(Itoa(buf[:], c.n)); got != c.want {
			t.Fatalf("Itoa(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestAppendDeci(t *testing.T) {
	for _, c := range []struct {
		v    int32
		want string
	}{
		{235, "23.5"},
		{601, "60.1"},
		{220, "22.0"},
		{0, "0.0"},
		{-5, "-0.5"},
		{-123, "-12.3"},
		{-2147483648, "-214748364.8"},
		{2147483647, "214748364.7"},
	} {
		if got := string(AppendDeci(nil, c.v)); got != c.want {
			t.Fatalf("AppendDeci(%d) = %q, want %q", c.v, got, c.want)
		}
	}
	if got := string(AppendDeci([]byte("t="), 12)); got != "t=1.2" {
		t.Fatalf("AppendDeci prefix = %q", got)
	}
}
