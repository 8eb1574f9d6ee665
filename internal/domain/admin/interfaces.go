package admin

import (
	"context"

	"servicehub/internal/domain/booking"
	"servicehub/internal/domain/complaint"
	"servicehub/internal/domain/profile"
)

type ProfileRepository interface {
	ListUsers(ctx context.Context) ([]profile.User, error)
	ListProviders(ctx context.Context) ([]profile.Provider, error)
	CountUsers(ctx context.Context) (int64, error)
	CountProviders(ctx context.Context) (int64, error)
}

type BookingRepository interface {
	ListAll(ctx context.Context) ([]booking.Booking, error)
	Count(ctx context.Context, statuses ...booking.Status) (int64, error)
}

type ComplaintService interface {
	List(ctx context.Context) ([]complaint.Complaint, error)
	Respond(ctx context.Context, id int64, req complaint.RespondRequest) (*complaint.Complaint, error)
	CountOpen(ctx context.Context) (int64, error)
}

type NotificationCounter interface {
	CountAllUnread(ctx context.Context) (int64, error)
}
