package availability

import (
	"fmt"
	"time"

	"github.com/alimgiray/menuhub/internal/models"
)

const clockLayout = "15:04"

// LocalTime is an instant expressed on a merchant's wall clock
type LocalTime struct {
	Date      string // YYYY-MM-DD
	Time      string // HH:MM, 24-hour
	DayOfWeek int    // 0=Sunday, 6=Saturday
}

// Normalize converts an instant to the wall clock of an IANA timezone
func Normalize(instant time.Time, timezone string) (LocalTime, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return LocalTime{}, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	return NormalizeIn(instant, loc), nil
}

// NormalizeIn converts an instant to the wall clock of loc. A nil location means UTC.
func NormalizeIn(instant time.Time, loc *time.Location) LocalTime {
	if loc == nil {
		loc = time.UTC
	}
	local := instant.In(loc)
	return LocalTime{
		Date:      local.Format(models.DateLayout),
		Time:      local.Format(clockLayout),
		DayOfWeek: int(local.Weekday()),
	}
}
