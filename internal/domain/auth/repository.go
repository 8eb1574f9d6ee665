package auth

import (
	"context"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) DB() *gorm.DB {
	return r.db
}

// WithTx returns a repository bound to tx.
func (r *IdentityRepository) WithTx(tx *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: tx}
}

func (r *IdentityRepository) Create(ctx context.Context, id *Identity) error {
	return r.db.WithContext(ctx).Create(id).Error
}

func (r *IdentityRepository) ExistsByMobile(ctx context.Context, mobile string) (bool, error) {
	return r.exists(ctx, "mobile = ?", mobile)
}

func (r *IdentityRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", email)
}

// FindByMobileAndRole returns nil, nil when no identity matches.
func (r *IdentityRepository) FindByMobileAndRole(ctx context.Context, mobile string, role Role) (*Identity, error) {
	var id Identity
	err := r.db.WithContext(ctx).
		Where("mobile = ? AND role = ?", mobile, role).
		First(&id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Annotate(err, "find identity")
	}
	return &id, nil
}

func (r *IdentityRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Identity{}).Count(&n).Error
	return n, errors.Annotate(err, "count identities")
}

func (r *IdentityRepository) exists(ctx context.Context, where string, arg any) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Identity{}).Where(where, arg).Count(&n).Error
	if err != nil {
		return false, errors.Annotate(err, "check identity")
	}
	return n > 0, nil
}
