package timeutil

import (
	"testing"
	"time"
)

func TestTimeOfDay(t *testing.T) {
	cases := []struct {
		instant time.Time
		want    string
	}{
		{time.Date(2025, 3, 21, 8, 5, 0, 0, time.UTC), "08:05"},
		{time.Date(2025, 3, 21, 17, 30, 59, 0, time.UTC), "17:30"},
		{time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), "00:00"},
		{time.Date(2025, 3, 21, 23, 59, 0, 0, time.UTC), "23:59"},
	}
	for _, c := range cases {
		if got := TimeOfDay(c.instant); got != c.want {
			t.Errorf("TimeOfDay(%v) = %q, want %q", c.instant, got, c.want)
		}
	}
}

func TestMinutesBetween(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"08:00", "17:00", 540},
		{"12:00", "12:30", 30},
		{"09:15", "09:15", 0},
		{"23:50", "00:10", 20}, // overnight rollover
		{"22:00", "06:00", 480},
	}
	for _, c := range cases {
		if got := MinutesBetween(c.start, c.end); got != c.want {
			t.Errorf("MinutesBetween(%q, %q) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{30, "00:30"},
		{510, "08:30"},
		{600, "10:00"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.minutes); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	// FormatMinutes(MinutesBetween(a, b)) reproduces the elapsed span for
	// same-day a < b.
	cases := []struct {
		start, end string
		want       string
	}{
		{"08:00", "17:00", "09:00"},
		{"08:30", "12:45", "04:15"},
		{"00:00", "23:59", "23:59"},
	}
	for _, c := range cases {
		if got := FormatMinutes(MinutesBetween(c.start, c.end)); got != c.want {
			t.Errorf("round trip %q -> %q = %q, want %q", c.start, c.end, got, c.want)
		}
	}
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"08:30", 510},
		{"garbage", 0},
	}
	for _, c := range cases {
		if got := ParseMinutes(c.input); got != c.want {
			t.Errorf("ParseMinutes(%q) = %d, want %d", c.input, got, c.want)
		}
	}
}

func TestIsWeekend(t *testing.T) {
	saturday := time.Date(2025, 3, 22, 12, 0, 0, 0, time.UTC)
	monday := time.Date(2025, 3, 24, 12, 0, 0, 0, time.UTC)
	if !IsWeekend(saturday) {
		t.Error("expected Saturday to be a weekend")
	}
	if IsWeekend(monday) {
		t.Error("expected Monday to be a weekday")
	}
}
