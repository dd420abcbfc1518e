// Package valueobjects holds the order context's value types.
package valueobjects

// OrderStatus is the payment state of an order.
type OrderStatus string

const (
	StatusPending OrderStatus = "PENDING"
	StatusPaid    OrderStatus = "PAID"
	StatusFailed  OrderStatus = "FAILED"
)

func (s OrderStatus) String() string { return string(s) }

// IsValid reports whether s is a known order status.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusFailed:
		return true
	}
	return false
}

// ValidStatuses enumerates the valid order statuses.
var ValidStatuses = map[OrderStatus]bool{
	StatusPending: true,
	StatusPaid:    true,
	StatusFailed:  true,
}
