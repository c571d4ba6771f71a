// Package biztime centralises wall-clock reads. All storage and transport use UTC.
package biztime

import "time"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromMillis converts a unix-millisecond timestamp to UTC.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// NextMillis returns a millisecond timestamp strictly greater than prev,
// taken from now when the clock has advanced.
func NextMillis(prev int64, now time.Time) int64 {
	ms := now.UnixMilli()
	if ms <= prev {
		return prev + 1
	}
	return ms
}

// FormatRFC3339 renders t in UTC with millisecond precision.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
