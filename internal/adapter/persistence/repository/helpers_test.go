package repository

import (
	"testing"
	"time"
)

func TestFormatNumero(t *testing.T) {
	cases := []struct {
		seq  int64
		want string
	}{
		{1, "000001"},
		{42, "000042"},
		{999999, "999999"},
		{1000000, "1000000"},
		{1234567, "1234567"},
	}
	for _, c := range cases {
		if got := formatNumero(c.seq); got != c.want {
			t.Errorf("formatNumero(%d) = %q, want %q", c.seq, got, c.want)
		}
	}
}

func TestTimeRoundTrip(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 15, 30, 123456789, time.UTC)
	if got := parseTime(formatTime(now)); !got.Equal(now) {
		t.Fatalf("round trip mangled time: %v vs %v", got, now)
	}

	if parseTimePtr("") != nil {
		t.Fatalf("empty string must parse to nil")
	}
	if got := parseTimePtr(formatTime(now)); got == nil || !got.Equal(now) {
		t.Fatalf("pointer round trip failed: %v", got)
	}
}
