package models

// OrderMode represents an order fulfillment channel
type OrderMode string

const (
	OrderModeDineIn   OrderMode = "DINE_IN"
	OrderModeTakeaway OrderMode = "TAKEAWAY"
	OrderModeDelivery OrderMode = "DELIVERY"
)

// OrderModes lists every mode in display order
var OrderModes = []OrderMode{OrderModeDineIn, OrderModeTakeaway, OrderModeDelivery}

// IsValid checks if the mode is one of the known modes
func (m OrderMode) IsValid() bool {
	switch m {
	case OrderModeDineIn, OrderModeTakeaway, OrderModeDelivery:
		return true
	default:
		return false
	}
}

// Label returns the human readable name of the mode
func (m OrderMode) Label() string {
	switch m {
	case OrderModeDineIn:
		return "Dine In"
	case OrderModeTakeaway:
		return "Takeaway"
	case OrderModeDelivery:
		return "Delivery"
	default:
		return "Mode"
	}
}

// ParseOrderMode converts a raw string into an OrderMode
func ParseOrderMode(s string) (OrderMode, error) {
	mode := OrderMode(s)
	if !mode.IsValid() {
		return "", ErrInvalidOrderMode
	}
	return mode, nil
}
