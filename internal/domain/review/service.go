package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/juju/errors"
)

type Repository interface {
	Create(ctx context.Context, rv *Review) error
	ListByProvider(ctx context.Context, providerID int64) ([]Review, error)
	ListByUser(ctx context.Context, userID int64) ([]Review, error)
	AverageRating(ctx context.Context, providerID int64) (float64, int64, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateReviewRequest struct {
	BookingID  int64   `json:"bookingId" binding:"required"`
	UserID     int64   `json:"userId" binding:"required"`
	ProviderID int64   `json:"providerId" binding:"required"`
	Rating     int     `json:"rating" binding:"required"`
	Comment    *string `json:"comment"`
}

// Rating summarises a provider's reviews.
type Rating struct {
	ProviderID int64   `json:"providerId"`
	Average    float64 `json:"average"`
	Count      int64   `json:"count"`
}

func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*Review, error) {
	if req.BookingID <= 0 || req.UserID <= 0 || req.ProviderID <= 0 {
		return nil, errors.NewNotValid(nil, "Booking ID, user ID and provider ID are required")
	}
	if req.Rating < MinRating || req.Rating > MaxRating {
		return nil, errors.NewNotValid(nil, fmt.Sprintf("Rating must be between %d and %d", MinRating, MaxRating))
	}

	rv := &Review{
		BookingID:  req.BookingID,
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		Rating:     req.Rating,
	}
	if req.Comment != nil {
		if c := strings.TrimSpace(*req.Comment); c != "" {
			rv.Comment = &c
		}
	}

	if err := s.repo.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *Service) ListByProvider(ctx context.Context, providerID int64) ([]Review, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

func (s *Service) ListByUser(ctx context.Context, userID int64) ([]Review, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) ProviderRating(ctx context.Context, providerID int64) (*Rating, error) {
	avg, count, err := s.repo.AverageRating(ctx, providerID)
	if err != nil {
		return nil, err
	}
	return &Rating{ProviderID: providerID, Average: avg, Count: count}, nil
}
