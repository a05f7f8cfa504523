package model

import (
	"fmt"
	"time"
)

// DateKey identifies a calendar day as a YYYYMMDD string. It is the join key
// between todo buckets, timeline entries and calendar events.
type DateKey string

// FormatDateKey derives the DateKey for a date in its local time zone.
func FormatDateKey(t time.Time) DateKey {
	return DateKey(fmt.Sprintf("%04d%02d%02d", t.Year(), int(t.Month()), t.Day()))
}

// ParseDateKey converts a DateKey back to midnight local time of that day.
func ParseDateKey(key DateKey) (time.Time, error) {
	if len(key) != 8 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	t, err := time.ParseInLocation("20060102", string(key), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// IsValid reports whether the key is a well-formed YYYYMMDD day.
func (k DateKey) IsValid() bool {
	_, err := ParseDateKey(k)
	return err == nil
}

// WeekDateKeys returns the 7 DateKeys of the Monday-start week containing base,
// shifted by weekOffset whole weeks (-1 = previous week).
func WeekDateKeys(base time.Time, weekOffset int) []DateKey {
	mondayOffset := (int(base.Weekday()) + 6) % 7
	start := base.AddDate(0, 0, -mondayOffset+weekOffset*7)
	keys := make([]DateKey, 7)
	for i := 0; i < 7; i++ {
		keys[i] = FormatDateKey(start.AddDate(0, 0, i))
	}
	return keys
}
