// Package dayclock derives the canonical calendar-day key used to gate
// watering frequency. Day boundaries are UTC: the original client mixed
// device-local date strings, which made the one-per-day rule depend on the
// watering user's timezone.
package dayclock

import "time"

// DayKeyLayout is the wire format of a day key.
const DayKeyLayout = "2006-01-02"

// Clock abstracts time for testability. Production code uses SystemClock;
// tests inject a fixed clock.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real time.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

func (c FixedClock) Now() time.Time { return c.T }

// DayKey returns the UTC calendar-day key for t.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyLayout)
}

// Today returns the day key for the clock's current time.
func Today(c Clock) string {
	return DayKey(c.Now())
}

// ParseDayKey parses a day key back to its UTC midnight instant.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.UTC)
}

// DaysAgo returns the day key for n days before the clock's current day.
// Used by the retention sweep to compute its cutoff.
func DaysAgo(c Clock, n int) string {
	return DayKey(c.Now().AddDate(0, 0, -n))
}
