package availability

import (
	"strings"

	"github.com/alimgiray/menuhub/internal/models"
)

// ModeResult is the availability of one order mode
type ModeResult struct {
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// IsModeAvailable resolves a single mode in priority order:
// special closed-all-day, mode flag, special per-mode override,
// per-day mode schedules, legacy merchant-level window.
func IsModeAvailable(mode models.OrderMode, merchant *models.Merchant, modeSchedules []models.ModeSchedule, special *models.SpecialHour, now LocalTime) ModeResult {
	if special != nil && special.IsClosed {
		return ModeResult{Available: false, Reason: specialClosedReason(special)}
	}

	if !merchant.ModeEnabled(mode) {
		return ModeResult{Available: false, Reason: mode.Label() + " is not available"}
	}

	if special != nil {
		if enabled, start, end := special.ModeOverride(mode); enabled != nil {
			if !*enabled {
				return ModeResult{Available: false, Reason: mode.Label() + " not available today"}
			}
			if w, ok := windowFrom(start, end); ok {
				return modeFromWindows(mode, []Window{w}, now)
			}
			return ModeResult{Available: true}
		}
	}

	if merchant.IsPerDayModeScheduleEnabled {
		return modeFromWindows(mode, activeWindows(modeSchedules, mode, now.DayOfWeek), now)
	}

	if w, ok := windowFrom(merchant.LegacyWindow(mode)); ok {
		return modeFromWindows(mode, []Window{w}, now)
	}
	return ModeResult{Available: true}
}

// modeFromWindows applies union semantics. No windows means not available.
func modeFromWindows(mode models.OrderMode, windows []Window, now LocalTime) ModeResult {
	if len(windows) == 0 {
		return ModeResult{Available: false, Reason: mode.Label() + " not available today"}
	}
	ranges := make([]string, 0, len(windows))
	for _, w := range windows {
		if w.Contains(now.Time) {
			return ModeResult{Available: true}
		}
		ranges = append(ranges, w.String())
	}
	return ModeResult{Available: false, Reason: "Available " + strings.Join(ranges, ", ")}
}

func activeWindows(modeSchedules []models.ModeSchedule, mode models.OrderMode, dayOfWeek int) []Window {
	var windows []Window
	for _, s := range modeSchedules {
		if s.Mode != mode || s.DayOfWeek != dayOfWeek || !s.IsActive {
			continue
		}
		if w, ok := windowFrom(&s.StartTime, &s.EndTime); ok {
			windows = append(windows, w)
		}
	}
	return windows
}
