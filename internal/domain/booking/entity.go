package booking

import (
	"strings"
	"time"

	"github.com/juju/errors"
)

// Status is the booking lifecycle state.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
	StatusCompleted Status = "COMPLETED"
	StatusPaid      Status = "PAID"
	StatusCancelled Status = "CANCELLED"

	// statusConfirmed is accepted on input and stored as ACCEPTED.
	statusConfirmed Status = "CONFIRMED"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ParseStatus trims and upper-cases raw and maps the CONFIRMED alias to
// ACCEPTED. Anything outside the known literals is NotValid.
func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(raw)))
	switch s {
	case statusConfirmed:
		return StatusAccepted, nil
	case StatusPending, StatusAccepted, StatusRejected, StatusCompleted, StatusPaid, StatusCancelled:
		return s, nil
	default:
		return "", errors.NewNotValid(nil, "Invalid booking status: "+raw)
	}
}

// Booking is a scheduled service engagement between a user and a provider.
type Booking struct {
	ID          int64     `gorm:"primaryKey;column:booking_id" json:"bookingId"`
	UserID      int64     `gorm:"column:user_id;not null;index" json:"userId"`
	ProviderID  int64     `gorm:"column:provider_id;not null;index" json:"providerId"`
	ServiceType string    `gorm:"column:service_type;size:100;not null" json:"serviceType"`
	BookingDate string    `gorm:"column:booking_date;size:10;not null" json:"bookingDate"`
	BookingTime string    `gorm:"column:booking_time;size:8;not null" json:"bookingTime"`
	Status      Status    `gorm:"column:status;size:20;not null;default:PENDING" json:"status"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"createdAt"`
}

func (Booking) TableName() string {
	return "bookings"
}

// IsOwnedBy reports whether userID is the user who made the booking.
func (b *Booking) IsOwnedBy(userID int64) bool {
	return b.UserID == userID
}
