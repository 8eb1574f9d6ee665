package notification

import "time"

// ReceiverType says which profile table ReceiverID points into.
type ReceiverType string

const (
	ReceiverUser     ReceiverType = "USER"
	ReceiverProvider ReceiverType = "PROVIDER"
)

// Status of a notification. The only allowed transition is UNREAD -> READ.
type Status string

const (
	StatusUnread Status = "UNREAD"
	StatusRead   Status = "READ"
)

// Type represents notification type
type Type string

const (
	TypeBookingRequest   Type = "BOOKING_REQUEST"   // Provider: new booking request
	TypeBookingAccepted  Type = "BOOKING_ACCEPTED"  // User: provider accepted
	TypeBookingRejected  Type = "BOOKING_REJECTED"  // User: provider rejected
	TypeBookingCompleted Type = "BOOKING_COMPLETED" // User: job done
	TypeBookingCancelled Type = "BOOKING_CANCELLED" // User or provider: booking cancelled
	TypeBookingUpdate    Type = "BOOKING_UPDATE"    // User: any other status change
)

// MaxMessageLen is the longest message a notification can carry.
const MaxMessageLen = 500

// Notification is a pull-delivered message for a user or provider.
type Notification struct {
	ID               int64        `gorm:"primaryKey;column:notification_id" json:"notificationId"`
	ReceiverID       int64        `gorm:"column:receiver_id;not null;index:idx_notifications_receiver_status" json:"receiverId"`
	ReceiverType     ReceiverType `gorm:"column:receiver_type;size:20;not null" json:"receiverType"`
	Message          string       `gorm:"column:message;size:500;not null" json:"message"`
	Type             Type         `gorm:"column:type;size:50" json:"type"`
	Status           Status       `gorm:"column:status;size:20;not null;index:idx_notifications_receiver_status" json:"status"`
	RelatedBookingID *int64       `gorm:"column:related_booking_id" json:"relatedBookingId"`
	CreatedAt        time.Time    `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

// TableName specifies table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// IsRead reports whether the receiver has seen the notification.
func (n *Notification) IsRead() bool {
	return n.Status == StatusRead
}

// MarkAsRead flips the status to READ.
func (n *Notification) MarkAsRead() {
	n.Status = StatusRead
}
