package booking

import (
	"context"

	"servicehub/internal/domain/notification"
)

// BookingRepository defines the interface for booking operations
type BookingRepository interface {
	Create(ctx context.Context, b *Booking) error
	GetByID(ctx context.Context, id int64) (*Booking, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
	ListByUser(ctx context.Context, userID int64) ([]Booking, error)
	ListByProvider(ctx context.Context, providerID int64) ([]Booking, error)
	ListAll(ctx context.Context) ([]Booking, error)
}

// NotificationSender delivers booking notices. Implementations may fail;
// the booking service never lets that failure escape.
type NotificationSender interface {
	Send(ctx context.Context, receiverID int64, receiverType notification.ReceiverType, t notification.Type, message string, bookingID *int64) error
}
