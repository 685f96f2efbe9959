package models

import (
	"regexp"
	"time"
)

// DateLayout is the calendar date format used for special hours
const DateLayout = "2006-01-02"

var timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// IsValidTimeOfDay reports whether s is a zero-padded 24-hour "HH:MM" string
func IsValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(s)
}

// IsValidDate reports whether s is a "YYYY-MM-DD" calendar date
func IsValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// validOptionalTime accepts nil or a valid HH:MM value
func validOptionalTime(s *string) bool {
	return s == nil || IsValidTimeOfDay(*s)
}

// bothOrNeither reports whether two optional values are either both set or both unset
func bothOrNeither(a, b *string) bool {
	return (a == nil) == (b == nil)
}
