package domain

import (
	"errors"
	"time"
)

var ErrInvalidDayKey = errors.New("invalid date format (must be YYYY-MM-DD)")

const (
	// DayKeyFormat is the canonical calendar-day key. All scheduling
	// and completion records are keyed by it, timezone-free.
	DayKeyFormat = "2006-01-02"

	// DayLabelFormat is the short display label used in the history
	// series ("Jan 02").
	DayLabelFormat = "Jan 02"
)

// DayKey formats a timestamp as its calendar-day key.
func DayKey(t time.Time) string {
	return t.Format(DayKeyFormat)
}

// DayLabel formats a timestamp as its display label.
func DayLabel(t time.Time) string {
	return t.Format(DayLabelFormat)
}

// ParseDayKey validates a day key and returns its midnight-UTC time.
func ParseDayKey(key string) (time.Time, error) {
	t, err := time.Parse(DayKeyFormat, key)
	if err != nil {
		return time.Time{}, ErrInvalidDayKey
	}
	return t, nil
}
