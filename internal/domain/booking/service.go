package booking

import (
	"context"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/juju/loggo"
)

var logger = loggo.GetLogger("servicehub.booking")

type Service struct {
	bookings BookingRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		notifs:   notifs,
	}
}

// Create stores a PENDING booking and tells the provider about it.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*Booking, error) {
	b, err := newBooking(req)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	s.emit(ctx, requestNotice(b))
	return b, nil
}

// UpdateStatus stores any valid status regardless of the current one and
// tells the user.
func (s *Service) UpdateStatus(ctx context.Context, id int64, raw string) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status

	s.emit(ctx, statusNotice(b))
	return b, nil
}

// Cancel lets the booking's own user cancel it and tells the provider.
func (s *Service) Cancel(ctx context.Context, id, userID int64) (*Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !b.IsOwnedBy(userID) {
		return nil, errNotOwner
	}
	if err := s.bookings.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled

	s.emit(ctx, cancelledByUserNotice(b))
	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]Booking, error) {
	return s.bookings.ListByProvider(ctx, providerID)
}

func (s *Service) ListAll(ctx context.Context) ([]Booking, error) {
	return s.bookings.ListAll(ctx)
}

// emit hands n to the notifier after the booking write has committed.
// Delivery is at most once: errors and panics are logged and dropped.
func (s *Service) emit(ctx context.Context, n notice) {
	if s.notifs == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf("notification panic booking_id=%d receiver=%s:%d type=%s: %v",
				n.bookingID, n.receiverType, n.receiverID, n.kind, r)
		}
	}()

	bookingID := n.bookingID
	if err := s.notifs.Send(ctx, n.receiverID, n.receiverType, n.kind, n.message, &bookingID); err != nil {
		logger.Warningf("notification failed booking_id=%d receiver=%s:%d type=%s: %v",
			n.bookingID, n.receiverType, n.receiverID, n.kind, err)
	}
}

func newBooking(req CreateBookingRequest) (*Booking, error) {
	if req.UserID <= 0 {
		return nil, errors.NewNotValid(nil, "User ID is required")
	}
	if req.ProviderID <= 0 {
		return nil, errors.NewNotValid(nil, "Provider ID is required")
	}
	serviceType := strings.TrimSpace(req.ServiceType)
	if serviceType == "" {
		return nil, errors.NewNotValid(nil, "Service type is required")
	}
	date, err := time.Parse(DateLayout, strings.TrimSpace(req.BookingDate))
	if err != nil {
		return nil, errors.NewNotValid(nil, "Booking date must be in YYYY-MM-DD format")
	}
	clock, err := parseClock(req.BookingTime)
	if err != nil {
		return nil, err
	}

	return &Booking{
		UserID:      req.UserID,
		ProviderID:  req.ProviderID,
		ServiceType: serviceType,
		BookingDate: date.Format(DateLayout),
		BookingTime: clock.Format(TimeLayout),
		Status:      StatusPending,
	}, nil
}

func parseClock(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range []string{TimeLayout, "15:04:05"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewNotValid(nil, "Booking time must be in HH:MM format")
}
