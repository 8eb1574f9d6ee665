package booking

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, b *Booking) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return errors.Annotatef(err, "insert booking for user %d", b.UserID)
	}
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*Booking, error) {
	var b Booking
	err := r.db.WithContext(ctx).First(&b, "booking_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errNotFound(id)
	}
	if err != nil {
		return nil, errors.Annotatef(err, "load booking %d", id)
	}
	return &b, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id int64, status Status) error {
	res := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("booking_id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return errors.Annotatef(res.Error, "update booking %d status", id)
	}
	if res.RowsAffected == 0 {
		return errNotFound(id)
	}
	return nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]Booking, error) {
	return r.list(ctx, "user_id = ?", userID)
}

func (r *Repository) ListByProvider(ctx context.Context, providerID int64) ([]Booking, error) {
	return r.list(ctx, "provider_id = ?", providerID)
}

func (r *Repository) ListAll(ctx context.Context) ([]Booking, error) {
	return r.list(ctx, "")
}

// Count returns the number of bookings, optionally restricted to statuses.
func (r *Repository) Count(ctx context.Context, statuses ...Status) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(&Booking{})
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, errors.Annotate(err, "count bookings")
	}
	return n, nil
}

func (r *Repository) list(ctx context.Context, where string, args ...any) ([]Booking, error) {
	q := r.db.WithContext(ctx).Order("created_at DESC").Order("booking_id DESC")
	if where != "" {
		q = q.Where(where, args...)
	}

	out := make([]Booking, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Annotate(err, "list bookings")
	}
	return out, nil
}
