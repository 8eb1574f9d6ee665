package profile

import (
	"context"
	"strings"
	"time"

	"github.com/juju/errors"

	"servicehub/internal/domain/review"
	"servicehub/internal/pkg/validator"
)

// ReviewLister is the review lookup a provider profile page needs.
type ReviewLister interface {
	ListByProvider(ctx context.Context, providerID int64) ([]review.Review, error)
}

// Service handles profile business logic
type Service struct {
	repo    *Repository
	reviews ReviewLister
}

// NewService creates profile service
func NewService(repo *Repository, reviews ReviewLister) *Service {
	return &Service{repo: repo, reviews: reviews}
}

func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

// UpdateUser overwrites name, email, mobile and location.
func (s *Service) UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	u, err := s.repo.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Mobile != "" && !validator.ValidMobile(req.Mobile) {
		return nil, errors.NewNotValid(nil, "Invalid mobile number. Must be 10 digits.")
	}
	if req.Email != nil && !validator.ValidEmail(*req.Email) {
		return nil, errors.NewNotValid(nil, "Invalid email format")
	}

	u.FullName = req.FullName
	u.Email = emptyToNil(req.Email)
	u.Mobile = req.Mobile
	u.Location = req.Location

	if err := s.repo.SaveUser(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetProvider(ctx context.Context, id int64) (*Provider, error) {
	return s.repo.GetProvider(ctx, id)
}

// UpdateProvider applies the non-nil fields of req.
func (s *Service) UpdateProvider(ctx context.Context, id int64, req UpdateProviderRequest) (*Provider, error) {
	p, err := s.repo.GetProvider(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		p.FullName = *req.FullName
	}
	if req.Email != nil {
		if !validator.ValidEmail(*req.Email) {
			return nil, errors.NewNotValid(nil, "Invalid email format")
		}
		p.Email = emptyToNil(req.Email)
	}
	if req.Mobile != nil {
		if !validator.ValidMobile(*req.Mobile) {
			return nil, errors.NewNotValid(nil, "Invalid mobile number. Must be 10 digits.")
		}
		p.Mobile = *req.Mobile
	}
	if req.ServiceType != nil {
		p.ServiceType = *req.ServiceType
	}
	if req.Experience != nil {
		if *req.Experience < 0 {
			return nil, errors.NewNotValid(nil, "Experience must not be negative")
		}
		p.Experience = *req.Experience
	}
	if req.Price != nil {
		if *req.Price < 0 {
			return nil, errors.NewNotValid(nil, "Price must not be negative")
		}
		p.Price = *req.Price
	}
	if req.Availability != nil {
		p.Availability = *req.Availability
	}
	if req.Location != nil {
		p.Location = *req.Location
	}

	if err := s.repo.SaveProvider(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) SearchProviders(ctx context.Context, serviceType, location string) ([]Provider, error) {
	return s.repo.SearchProviders(ctx, strings.TrimSpace(serviceType), strings.TrimSpace(location))
}

func (s *Service) ProviderReviews(ctx context.Context, providerID int64) ([]review.Review, error) {
	return s.reviews.ListByProvider(ctx, providerID)
}

func (s *Service) Schedule(ctx context.Context, providerID int64) ([]ScheduleSlot, error) {
	if _, err := s.repo.GetProvider(ctx, providerID); err != nil {
		return nil, err
	}
	return s.repo.ListSchedule(ctx, providerID)
}

// AddScheduleSlot records a weekly window. Times are HH:MM and start must
// come before end.
func (s *Service) AddScheduleSlot(ctx context.Context, providerID int64, req AddScheduleSlotRequest) (*ScheduleSlot, error) {
	if _, err := s.repo.GetProvider(ctx, providerID); err != nil {
		return nil, err
	}

	day := Day(strings.ToUpper(strings.TrimSpace(req.DayOfWeek)))
	if !weekdays[day] {
		return nil, errors.NewNotValid(nil, "Day of week must be one of MON, TUE, WED, THU, FRI, SAT, SUN")
	}
	start, err := time.Parse("15:04", strings.TrimSpace(req.StartTime))
	if err != nil {
		return nil, errors.NewNotValid(nil, "Start time must be in HH:MM format")
	}
	end, err := time.Parse("15:04", strings.TrimSpace(req.EndTime))
	if err != nil {
		return nil, errors.NewNotValid(nil, "End time must be in HH:MM format")
	}
	if !start.Before(end) {
		return nil, errors.NewNotValid(nil, "Start time must be before end time")
	}

	slot := &ScheduleSlot{
		ProviderID: providerID,
		DayOfWeek:  day,
		StartTime:  start.Format("15:04"),
		EndTime:    end.Format("15:04"),
	}
	if err := s.repo.CreateScheduleSlot(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func emptyToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
