package admin

import (
	"context"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"golang.org/x/sync/errgroup"

	"servicehub/internal/domain/booking"
	"servicehub/internal/domain/complaint"
	"servicehub/internal/domain/profile"
)

var logger = loggo.GetLogger("servicehub.admin")

type Service struct {
	profiles      ProfileRepository
	bookings      BookingRepository
	complaints    ComplaintService
	notifications NotificationCounter
}

func NewService(
	profiles ProfileRepository,
	bookings BookingRepository,
	complaints ComplaintService,
	notifications NotificationCounter,
) *Service {
	return &Service{
		profiles:      profiles,
		bookings:      bookings,
		complaints:    complaints,
		notifications: notifications,
	}
}

// Stats is the platform overview shown on the admin dashboard.
type Stats struct {
	Users               int64 `json:"users"`
	Providers           int64 `json:"providers"`
	Bookings            int64 `json:"bookings"`
	PendingBookings     int64 `json:"pendingBookings"`
	OpenComplaints      int64 `json:"openComplaints"`
	UnreadNotifications int64 `json:"unreadNotifications"`
}

func (s *Service) Users(ctx context.Context) ([]profile.User, error) {
	return s.profiles.ListUsers(ctx)
}

func (s *Service) Providers(ctx context.Context) ([]profile.Provider, error) {
	return s.profiles.ListProviders(ctx)
}

func (s *Service) Bookings(ctx context.Context) ([]booking.Booking, error) {
	return s.bookings.ListAll(ctx)
}

func (s *Service) Complaints(ctx context.Context) ([]complaint.Complaint, error) {
	return s.complaints.List(ctx)
}

func (s *Service) UpdateComplaint(ctx context.Context, id int64, req complaint.RespondRequest) (*complaint.Complaint, error) {
	c, err := s.complaints.Respond(ctx, id, req)
	if err != nil {
		return nil, err
	}
	logger.Infof("complaint %d moved to %s", c.ID, c.Status)
	return c, nil
}

// Stats runs the counts concurrently and fails on the first error.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var st Stats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int64, name string, fn func(context.Context) (int64, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return errors.Annotatef(err, "count %s", name)
			}
			*dst = n
			return nil
		})
	}

	count(&st.Users, "users", s.profiles.CountUsers)
	count(&st.Providers, "providers", s.profiles.CountProviders)
	count(&st.Bookings, "bookings", func(ctx context.Context) (int64, error) {
		return s.bookings.Count(ctx)
	})
	count(&st.PendingBookings, "pending bookings", func(ctx context.Context) (int64, error) {
		return s.bookings.Count(ctx, booking.StatusPending)
	})
	count(&st.OpenComplaints, "open complaints", s.complaints.CountOpen)
	count(&st.UnreadNotifications, "unread notifications", s.notifications.CountAllUnread)

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &st, nil
}
