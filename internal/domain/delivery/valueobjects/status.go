// Package valueobjects holds the delivery context's value types.
package valueobjects

// DeliveryStatus is the operational state of one day's delivery.
type DeliveryStatus string

const (
	StatusPending        DeliveryStatus = "PENDING"
	StatusReady          DeliveryStatus = "READY"
	StatusAssigned       DeliveryStatus = "ASSIGNED"
	StatusOutForDelivery DeliveryStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      DeliveryStatus = "DELIVERED"
)

func (s DeliveryStatus) String() string { return string(s) }

// displayRank orders statuses for dashboard rollups when a day carries
// multiple signals: DELIVERED > OUT_FOR_DELIVERY > ASSIGNED > READY >
// PENDING. Display tie-break only, not a transition guard.
var displayRank = map[DeliveryStatus]int{
	StatusPending:        0,
	StatusReady:          1,
	StatusAssigned:       2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// DisplayRank returns the rollup priority of s.
func (s DeliveryStatus) DisplayRank() int {
	return displayRank[s]
}

// IsTerminal reports whether no further writes are allowed.
func (s DeliveryStatus) IsTerminal() bool {
	return s == StatusDelivered
}

// ValidStatuses enumerates the valid delivery statuses.
var ValidStatuses = map[DeliveryStatus]bool{
	StatusPending:        true,
	StatusReady:          true,
	StatusAssigned:       true,
	StatusOutForDelivery: true,
	StatusDelivered:      true,
}
