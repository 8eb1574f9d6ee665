package review

import (
	"context"
	"time"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID         int64     `gorm:"column:review_id;primaryKey"`
	BookingID  int64     `gorm:"column:booking_id;not null;index"`
	UserID     int64     `gorm:"column:user_id;not null;index"`
	ProviderID int64     `gorm:"column:provider_id;not null;index"`
	Rating     int       `gorm:"column:rating;not null"`
	Comment    *string   `gorm:"column:comment;type:text"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (reviewModel) TableName() string { return "reviews" }

// Models returns the gorm models owned by this package.
func Models() []any {
	return []any{&reviewModel{}}
}

func toDomainReview(m reviewModel) Review {
	return Review{
		ID:         m.ID,
		BookingID:  m.BookingID,
		UserID:     m.UserID,
		ProviderID: m.ProviderID,
		Rating:     m.Rating,
		Comment:    m.Comment,
		CreatedAt:  m.CreatedAt,
	}
}

func toReviewModel(r *Review) reviewModel {
	var comment *string
	if r.Comment != nil && *r.Comment != "" {
		v := *r.Comment
		comment = &v
	}
	return reviewModel{
		ID:         r.ID,
		BookingID:  r.BookingID,
		UserID:     r.UserID,
		ProviderID: r.ProviderID,
		Rating:     r.Rating,
		Comment:    comment,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *Review) error {
	m := toReviewModel(rv)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return errors.Annotatef(err, "insert review for booking %d", rv.BookingID)
	}
	*rv = toDomainReview(m)
	return nil
}

func (r *ReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]Review, error) {
	return r.list(ctx, "provider_id = ?", providerID)
}

func (r *ReviewRepository) ListByUser(ctx context.Context, userID int64) ([]Review, error) {
	return r.list(ctx, "user_id = ?", userID)
}

// AverageRating returns the mean rating and the number of reviews.
func (r *ReviewRepository) AverageRating(ctx context.Context, providerID int64) (float64, int64, error) {
	var row struct {
		Avg   *float64
		Count int64
	}
	err := r.db.WithContext(ctx).
		Model(&reviewModel{}).
		Select("AVG(rating) AS avg, COUNT(*) AS count").
		Where("provider_id = ?", providerID).
		Scan(&row).Error
	if err != nil {
		return 0, 0, errors.Annotatef(err, "average rating for provider %d", providerID)
	}
	if row.Avg == nil {
		return 0, row.Count, nil
	}
	return *row.Avg, row.Count, nil
}

func (r *ReviewRepository) list(ctx context.Context, where string, id int64) ([]Review, error) {
	var rows []reviewModel
	err := r.db.WithContext(ctx).
		Where(where, id).
		Order("created_at DESC").
		Order("review_id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, errors.Annotate(err, "list reviews")
	}

	out := make([]Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}
