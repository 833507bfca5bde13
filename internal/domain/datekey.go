package domain

import (
	"fmt"
	"time"
)

// DateKeyLayout is the calendar-day key format used by tasks and settings.
const DateKeyLayout = "2006-01-02"

// ParseDateKey parses a YYYY-MM-DD key as midnight UTC.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(DateKeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: expected YYYY-MM-DD", key)
	}
	return t, nil
}

// IsValidDateKey reports whether key is a real calendar day in YYYY-MM-DD form.
func IsValidDateKey(key string) bool {
	_, err := ParseDateKey(key)
	return err == nil
}

// DateKeyFor returns the key of the calendar day t falls on in t's location.
func DateKeyFor(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// PreviousDateKey returns the key exactly 24 hours before key at midnight UTC.
// There is no DST handling; keys are UTC days.
func PreviousDateKey(key string) (string, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return "", err
	}
	return t.Add(-24 * time.Hour).Format(DateKeyLayout), nil
}

// WeekdayOf returns the weekday of key, Sunday = 0.
func WeekdayOf(key string) (time.Weekday, error) {
	t, err := ParseDateKey(key)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
