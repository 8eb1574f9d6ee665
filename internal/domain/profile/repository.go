package profile

import (
	"context"
	"strings"

	"github.com/juju/errors"
	"gorm.io/gorm"
)

// Repository stores the three role-specific profile tables and provider
// schedules.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to tx.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) CreateUser(ctx context.Context, u *User) error {
	return errors.Annotate(r.db.WithContext(ctx).Create(u).Error, "insert user profile")
}

func (r *Repository) CreateProvider(ctx context.Context, p *Provider) error {
	return errors.Annotate(r.db.WithContext(ctx).Create(p).Error, "insert provider profile")
}

func (r *Repository) CreateAdmin(ctx context.Context, a *Admin) error {
	return errors.Annotate(r.db.WithContext(ctx).Create(a).Error, "insert admin profile")
}

func (r *Repository) GetUser(ctx context.Context, id int64) (*User, error) {
	var u User
	if err := r.first(ctx, &u, ErrUserNotFound, "user_id = ?", id); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) GetProvider(ctx context.Context, id int64) (*Provider, error) {
	var p Provider
	if err := r.first(ctx, &p, ErrProviderNotFound, "provider_id = ?", id); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindUserByHomeID(ctx context.Context, homeID int64) (*User, error) {
	var u User
	if err := r.first(ctx, &u, ErrUserNotFound, "home_id = ?", homeID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) FindProviderByHomeID(ctx context.Context, homeID int64) (*Provider, error) {
	var p Provider
	if err := r.first(ctx, &p, ErrProviderNotFound, "home_id = ?", homeID); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) FindAdminByHomeID(ctx context.Context, homeID int64) (*Admin, error) {
	var a Admin
	if err := r.first(ctx, &a, ErrAdminNotFound, "home_id = ?", homeID); err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) SaveUser(ctx context.Context, u *User) error {
	return errors.Annotatef(r.db.WithContext(ctx).Save(u).Error, "save user %d", u.ID)
}

func (r *Repository) SaveProvider(ctx context.Context, p *Provider) error {
	return errors.Annotatef(r.db.WithContext(ctx).Save(p).Error, "save provider %d", p.ID)
}

func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	out := make([]User, 0)
	err := r.db.WithContext(ctx).Order("user_id").Find(&out).Error
	return out, errors.Annotate(err, "list users")
}

func (r *Repository) ListProviders(ctx context.Context) ([]Provider, error) {
	out := make([]Provider, 0)
	err := r.db.WithContext(ctx).Order("provider_id").Find(&out).Error
	return out, errors.Annotate(err, "list providers")
}

// SearchProviders matches serviceType and location as case-insensitive
// substrings. Empty filters are ignored.
func (r *Repository) SearchProviders(ctx context.Context, serviceType, location string) ([]Provider, error) {
	q := r.db.WithContext(ctx).Order("provider_id")
	if serviceType != "" {
		q = q.Where("LOWER(service_type) LIKE ?", containsPattern(serviceType))
	}
	if location != "" {
		q = q.Where("LOWER(location) LIKE ?", containsPattern(location))
	}

	out := make([]Provider, 0)
	if err := q.Find(&out).Error; err != nil {
		return nil, errors.Annotate(err, "search providers")
	}
	return out, nil
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&User{}).Count(&n).Error
	return n, errors.Annotate(err, "count users")
}

func (r *Repository) CountProviders(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&Provider{}).Count(&n).Error
	return n, errors.Annotate(err, "count providers")
}

func (r *Repository) ListSchedule(ctx context.Context, providerID int64) ([]ScheduleSlot, error) {
	out := make([]ScheduleSlot, 0)
	err := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("schedule_id").
		Find(&out).Error
	return out, errors.Annotatef(err, "list schedule for provider %d", providerID)
}

func (r *Repository) CreateScheduleSlot(ctx context.Context, s *ScheduleSlot) error {
	return errors.Annotatef(r.db.WithContext(ctx).Create(s).Error, "insert schedule slot for provider %d", s.ProviderID)
}

func (r *Repository) first(ctx context.Context, dest any, notFound error, where string, args ...any) error {
	err := r.db.WithContext(ctx).Where(where, args...).First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return errors.Trace(err)
}

func containsPattern(s string) string {
	return "%" + strings.ToLower(strings.TrimSpace(s)) + "%"
}
