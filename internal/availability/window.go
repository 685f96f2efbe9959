package availability

import "github.com/alimgiray/menuhub/internal/models"

const minutesPerDay = 24 * 60

// Window is a daily time range in HH:MM. Start == End means the whole day,
// Start > End crosses midnight.
type Window struct {
	Start string
	End   string
}

// IsWithinWindow reports whether now falls inside [start, end).
// Inputs must be valid zero-padded HH:MM strings, which compare lexically.
func IsWithinWindow(now, start, end string) bool {
	switch {
	case start == end:
		return true
	case start < end:
		return now >= start && now < end
	default:
		return now >= start || now < end
	}
}

func (w Window) Contains(now string) bool {
	return IsWithinWindow(now, w.Start, w.End)
}

func (w Window) IsFullDay() bool {
	return w.Start == w.End
}

func (w Window) String() string {
	return w.Start + " - " + w.End
}

// MinutesUntil returns the minutes from now until the next occurrence of end
func MinutesUntil(now, end string) int {
	diff := toMinutes(end) - toMinutes(now)
	if diff <= 0 {
		diff += minutesPerDay
	}
	return diff
}

// windowFrom builds a window from optional bounds. Both must be set and valid.
func windowFrom(start, end *string) (Window, bool) {
	if start == nil || end == nil {
		return Window{}, false
	}
	if !models.IsValidTimeOfDay(*start) || !models.IsValidTimeOfDay(*end) {
		return Window{}, false
	}
	return Window{Start: *start, End: *end}, true
}

func toMinutes(hhmm string) int {
	hours := int(hhmm[0]-'0')*10 + int(hhmm[1]-'0')
	minutes := int(hhmm[3]-'0')*10 + int(hhmm[4]-'0')
	return hours*60 + minutes
}
