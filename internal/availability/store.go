package availability

import "github.com/alimgiray/menuhub/internal/models"

// StoreResult is the store-level open/closed decision
type StoreResult struct {
	IsOpen            bool
	Reason            string
	MinutesUntilClose *int
}

// ResolveStore decides whether the store is open. Order: manual override,
// special hours for today, weekly opening hours, then closed.
func ResolveStore(merchant *models.Merchant, openingHours []models.OpeningHour, special *models.SpecialHour, now LocalTime) StoreResult {
	if merchant.IsManualOverride {
		if merchant.IsOpen {
			return StoreResult{IsOpen: true, Reason: "Manually Open"}
		}
		return StoreResult{IsOpen: false, Reason: "Manually Closed"}
	}

	if special != nil {
		if special.IsClosed {
			return StoreResult{IsOpen: false, Reason: specialClosedReason(special)}
		}
		if w, ok := windowFrom(special.OpenTime, special.CloseTime); ok {
			return storeFromWindow(w, now)
		}
	}

	today := openingHourFor(openingHours, now.DayOfWeek)
	if today == nil || today.IsClosed {
		return StoreResult{IsOpen: false, Reason: "Closed today"}
	}
	if today.Is24Hours {
		return StoreResult{IsOpen: true}
	}
	if w, ok := windowFrom(today.OpenTime, today.CloseTime); ok {
		return storeFromWindow(w, now)
	}
	return StoreResult{IsOpen: false, Reason: "Closed today"}
}

func storeFromWindow(w Window, now LocalTime) StoreResult {
	if !w.Contains(now.Time) {
		return StoreResult{IsOpen: false, Reason: "Currently Closed"}
	}
	result := StoreResult{IsOpen: true}
	if !w.IsFullDay() {
		minutes := MinutesUntil(now.Time, w.End)
		result.MinutesUntilClose = &minutes
	}
	return result
}

func openingHourFor(openingHours []models.OpeningHour, dayOfWeek int) *models.OpeningHour {
	for i := range openingHours {
		if openingHours[i].DayOfWeek == dayOfWeek {
			return &openingHours[i]
		}
	}
	return nil
}
