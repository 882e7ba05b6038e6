// Package timeutil converts between wall-clock "HH:MM" strings and minute
// counts. All attendance math runs at minute granularity on these values.
package timeutil

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay formats an instant as a zero-padded 24-hour "HH:MM" string,
// truncating to minute resolution.
func TimeOfDay(t time.Time) string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// DateOf formats an instant as a "YYYY-MM-DD" work-day string.
func DateOf(t time.Time) string {
	return t.Format("2006-01-02")
}

// MinutesBetween returns the elapsed minutes from start to end, both "HH:MM"
// on the same reference day. When end is earlier than start the end time is
// treated as belonging to the next day, so overnight spans yield a positive
// duration instead of a negative one.
func MinutesBetween(start, end string) int {
	diff := ParseMinutes(end) - ParseMinutes(start)
	if diff < 0 {
		diff += minutesPerDay
	}
	return diff
}

// ParseMinutes converts an "HH:MM" string to its minute count since midnight.
// Malformed input counts as "00:00".
func ParseMinutes(s string) int {
	var hours, minutes int
	if _, err := fmt.Sscanf(s, "%d:%d", &hours, &minutes); err != nil {
		return 0
	}
	return hours*60 + minutes
}

// FormatMinutes renders a minute count as zero-padded "HH:MM". Negative
// values are not valid durations; callers clamp before formatting.
func FormatMinutes(total int) string {
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
