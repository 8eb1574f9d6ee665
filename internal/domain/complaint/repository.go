package complaint

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

var ErrNotFound = errors.NewNotFound(nil, "Complaint not found")

type ComplaintRepository struct {
	db *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{db: db}
}

func (r *ComplaintRepository) Create(ctx context.Context, c *Complaint) error {
	return errors.Annotatef(r.db.WithContext(ctx).Create(c).Error, "insert complaint for user %d", c.UserID)
}

func (r *ComplaintRepository) GetByID(ctx context.Context, id int64) (*Complaint, error) {
	var c Complaint
	err := r.db.WithContext(ctx).First(&c, "complaint_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Annotatef(err, "get complaint %d", id)
	}
	return &c, nil
}

func (r *ComplaintRepository) List(ctx context.Context) ([]Complaint, error) {
	var list []Complaint
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("complaint_id DESC").
		Find(&list).Error
	return list, errors.Annotate(err, "list complaints")
}

// UpdateStatus sets status and response in one statement.
func (r *ComplaintRepository) UpdateStatus(ctx context.Context, id int64, status Status, response *string) error {
	res := r.db.WithContext(ctx).
		Model(&Complaint{}).
		Where("complaint_id = ?", id).
		Updates(map[string]any{"status": status, "response": response})
	if res.Error != nil {
		return errors.Annotatef(res.Error, "update complaint %d", id)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ComplaintRepository) CountByStatus(ctx context.Context, status Status) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Complaint{}).Where("status = ?", status).Count(&n).Error
	return n, errors.Annotate(err, "count complaints")
}
