package valueobjects

// NotificationType classifies in-app notifications.
type NotificationType string

const (
	TypeOrderCreated          NotificationType = "order_created"
	TypeSubscriptionPaused    NotificationType = "subscription_paused"
	TypeSubscriptionResumed   NotificationType = "subscription_resumed"
	TypeSubscriptionCancelled NotificationType = "subscription_cancelled"
	TypeDeliveryAssigned      NotificationType = "delivery_assigned"
	TypeDeliveryCompleted     NotificationType = "delivery_completed"
)

func (t NotificationType) String() string { return string(t) }

// IsValid reports whether t is a known notification type.
func (t NotificationType) IsValid() bool {
	switch t {
	case TypeOrderCreated, TypeSubscriptionPaused, TypeSubscriptionResumed,
		TypeSubscriptionCancelled, TypeDeliveryAssigned, TypeDeliveryCompleted:
		return true
	}
	return false
}

// ReadStatus tracks whether a notification has been seen.
type ReadStatus string

const (
	ReadStatusUnread ReadStatus = "unread"
	ReadStatusRead   ReadStatus = "read"
)

func (s ReadStatus) String() string { return string(s) }

// IsValid reports whether s is a known read status.
func (s ReadStatus) IsValid() bool {
	return s == ReadStatusUnread || s == ReadStatusRead
}
