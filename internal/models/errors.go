package models

// ValidationError reports a bad value in a single field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Common errors
var (
	ErrMerchantNameRequired = &ValidationError{Field: "name", Message: "Merchant name is required"}
	ErrInvalidTimezone      = &ValidationError{Field: "timezone", Message: "Timezone must be a valid IANA zone name"}
	ErrInvalidCoordinates   = &ValidationError{Field: "latitude", Message: "Latitude and longitude must be set together and be in range"}
	ErrInvalidDayOfWeek     = &ValidationError{Field: "day_of_week", Message: "Day of week must be between 0 (Sunday) and 6 (Saturday)"}
	ErrInvalidOrderMode     = &ValidationError{Field: "mode", Message: "Mode must be one of DINE_IN, TAKEAWAY, DELIVERY"}
	ErrInvalidDate          = &ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"}
)

func invalidTime(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " must be in HH:MM format"}
}
