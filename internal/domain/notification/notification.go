// Package notification holds in-app notifications surfaced to admins and
// customers when orders, subscriptions and deliveries change state.
package notification

import (
	"fmt"
	"time"

	vo "thali/internal/domain/notification/valueobjects"
	"thali/internal/shared/biztime"
)

const (
	maxTitleLength   = 200
	maxContentLength = 5000
)

// Notification is a single in-app message tied to a user.
type Notification struct {
	id               uint
	userID           uint
	notificationType vo.NotificationType
	title            string
	content          string
	relatedID        *uint // order or subscription ID the message refers to
	readStatus       vo.ReadStatus
	createdAt        time.Time
	updatedAt        time.Time
}

// NewNotification creates an unread notification for a user.
func NewNotification(
	userID uint,
	notificationType vo.NotificationType,
	title string,
	content string,
	relatedID *uint,
) (*Notification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return nil, fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}
	if len(content) > maxContentLength {
		return nil, fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	now := biztime.NowUTC()
	return &Notification{
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		content:          content,
		relatedID:        relatedID,
		readStatus:       vo.ReadStatusUnread,
		createdAt:        now,
		updatedAt:        now,
	}, nil
}

// ReconstructNotification rebuilds a notification from persistence.
func ReconstructNotification(
	id uint,
	userID uint,
	notificationType vo.NotificationType,
	title string,
	content string,
	relatedID *uint,
	readStatus vo.ReadStatus,
	createdAt, updatedAt time.Time,
) (*Notification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}
	if !readStatus.IsValid() {
		return nil, fmt.Errorf("invalid read status")
	}

	return &Notification{
		id:               id,
		userID:           userID,
		notificationType: notificationType,
		title:            title,
		content:          content,
		relatedID:        relatedID,
		readStatus:       readStatus,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}, nil
}

func (n *Notification) ID() uint                  { return n.id }
func (n *Notification) UserID() uint              { return n.userID }
func (n *Notification) Type() vo.NotificationType { return n.notificationType }
func (n *Notification) Title() string             { return n.title }
func (n *Notification) Content() string           { return n.content }
func (n *Notification) RelatedID() *uint          { return n.relatedID }
func (n *Notification) ReadStatus() vo.ReadStatus { return n.readStatus }
func (n *Notification) CreatedAt() time.Time      { return n.createdAt }
func (n *Notification) UpdatedAt() time.Time      { return n.updatedAt }

// SetID sets the ID after insertion. Persistence layer use only.
func (n *Notification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// IsUnread reports whether the notification is still unread.
func (n *Notification) IsUnread() bool {
	return n.readStatus == vo.ReadStatusUnread
}

// MarkAsRead transitions the notification to read. Idempotent.
func (n *Notification) MarkAsRead() {
	if n.readStatus == vo.ReadStatusRead {
		return
	}
	n.readStatus = vo.ReadStatusRead
	n.updatedAt = biztime.NowUTC()
}
