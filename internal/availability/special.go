package availability

import "github.com/alimgiray/menuhub/internal/models"

// ResolveToday returns the special hour whose date equals today, or nil.
// Records for any other date are ignored, so a clock mismatch falls back to
// the weekly schedule.
func ResolveToday(specialHours []models.SpecialHour, today string) *models.SpecialHour {
	for i := range specialHours {
		if specialHours[i].Date == today {
			return &specialHours[i]
		}
	}
	return nil
}

func specialClosedReason(special *models.SpecialHour) string {
	if name := special.DisplayName(); name != "" {
		return "Closed for " + name
	}
	return "Closed for special hours"
}
