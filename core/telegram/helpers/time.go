package helpers

import (
	"strings"
	"time"
)

const (
	// DateLayout is the calendar-date format accepted from dialog input.
	DateLayout = "2006-01-02"
	// ClockLayout is the 24-hour time-of-day format accepted from dialog input.
	ClockLayout = "15:04"
)

// ParseDate parses strict YYYY-MM-DD input from a Telegram dialog.
// It returns the parsed date in the local timezone and true on success.
func ParseDate(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock parses strict HH:MM 24-hour input from a Telegram dialog.
func ParseClock(input string) (time.Time, bool) {
	s := strings.TrimSpace(input)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ClockLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
