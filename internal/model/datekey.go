package model

import (
	"fmt"
	"time"
)

const (
	// DateKeyLayout formats a calendar date as a sortable key.
	DateKeyLayout = "2006-01-02"
	// MonthKeyLayout formats the year-month portion of a date key.
	MonthKeyLayout = "2006-01"
)

// DateKey returns the date key of t in t's location.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// ParseDateKey parses a YYYY-MM-DD key.
func ParseDateKey(key string) (time.Time, error) {
	t, err := time.Parse(DateKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// ParseMonthKey parses a YYYY-MM key.
func ParseMonthKey(key string) (time.Time, error) {
	t, err := time.Parse(MonthKeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month key %q: %w", key, err)
	}
	return t, nil
}
