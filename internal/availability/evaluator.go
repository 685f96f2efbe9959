// Package availability decides whether a merchant is open and which order
// modes can be used at a given instant. It is a pure function of its inputs:
// callers fetch the merchant and its schedules and pass the instant in.
package availability

import (
	"time"

	"github.com/alimgiray/menuhub/internal/models"
)

// Input is everything the evaluator reads for one merchant
type Input struct {
	Merchant      *models.Merchant
	Location      *time.Location
	OpeningHours  []models.OpeningHour
	ModeSchedules []models.ModeSchedule
	SpecialHours  []models.SpecialHour
}

// Status is the combined store and mode availability
type Status struct {
	IsOpen            bool                            `json:"isOpen"`
	Reason            string                          `json:"reason,omitempty"`
	Modes             map[models.OrderMode]ModeResult `json:"modes"`
	MinutesUntilClose *int                            `json:"minutesUntilClose,omitempty"`
	LocalDate         string                          `json:"localDate"`
	LocalTime         string                          `json:"localTime"`
	DayOfWeek         int                             `json:"dayOfWeek"`
}

// Evaluate computes the status at now. A mode the resolver allows is still
// reported unavailable while the store itself is closed.
func Evaluate(in Input, now time.Time) Status {
	merchant := in.Merchant
	if merchant == nil {
		merchant = &models.Merchant{}
	}

	local := NormalizeIn(now, in.Location)
	special := ResolveToday(in.SpecialHours, local.Date)
	store := ResolveStore(merchant, in.OpeningHours, special, local)

	status := Status{
		IsOpen:            store.IsOpen,
		Reason:            store.Reason,
		Modes:             make(map[models.OrderMode]ModeResult, len(models.OrderModes)),
		MinutesUntilClose: store.MinutesUntilClose,
		LocalDate:         local.Date,
		LocalTime:         local.Time,
		DayOfWeek:         local.DayOfWeek,
	}

	for _, mode := range models.OrderModes {
		result := IsModeAvailable(mode, merchant, in.ModeSchedules, special, local)
		if result.Available && !store.IsOpen {
			result = ModeResult{Available: false, Reason: "Store is closed"}
		}
		status.Modes[mode] = result
	}
	return status
}

// EvaluateMode resolves a single mode at an instant, gated by the store status
func EvaluateMode(in Input, mode models.OrderMode, at time.Time) ModeResult {
	return Evaluate(in, at).Modes[mode]
}
