package booking

import (
	"fmt"
	"time"
)

// Reservation timestamps are truncated to the minute; no timezone handling.
const (
	DateTimeLayout = "2006-01-02T15:04"
	DateLayout     = "2006-01-02"
	SlotLayout     = "15:04"
)

// ParseDateTime parses a truncated-minute timestamp such as
// "2024-08-08T19:00". It is the one input that fails loudly: a reservation
// cannot exist without a valid timestamp.
func ParseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(DateTimeLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date time %q: %w", value, err)
	}
	return t, nil
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateTimeLayout)
}

// SlotOf splits a timestamp into its reservation slot: a date and a
// time-of-day pair.
func SlotOf(t time.Time) (date, slot string) {
	return t.Format(DateLayout), t.Format(SlotLayout)
}
