package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats t in UTC as RFC3339 with fractional seconds
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseTime parses RFC3339 with or without fractional seconds
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// DayAtMidnight truncates t to the start of its day in t's location
func DayAtMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DurationBetween returns the duration between two times
func DurationBetween(t1, t2 time.Time) time.Duration {
	return t2.Sub(t1)
}
