package auth

import (
	"context"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"gorm.io/gorm"

	"servicehub/internal/database"
	"servicehub/internal/domain/profile"
	"servicehub/internal/pkg/validator"
)

var logger = loggo.GetLogger("servicehub.auth")

// Service contains all business logic for authentication
type Service struct {
	identities *IdentityRepository
	profiles   *profile.Repository
}

func NewService(identities *IdentityRepository, profiles *profile.Repository) *Service {
	return &Service{identities: identities, profiles: profiles}
}

// Register validates req and creates the identity together with its
// profile row in one transaction.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*AccountSummary, error) {
	fullName := strings.TrimSpace(req.FullName)
	mobile := strings.TrimSpace(req.Mobile)
	email := strings.TrimSpace(req.Email)

	if !validator.ValidMobile(mobile) {
		return nil, ErrInvalidMobile
	}
	if !validator.ValidPassword(req.Password) {
		return nil, ErrWeakPassword
	}
	if !validator.ValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if fullName == "" {
		return nil, ErrFullNameRequired
	}
	taken, err := s.identities.ExistsByMobile(ctx, mobile)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrMobileAlreadyExists
	}
	if email != "" {
		taken, err := s.identities.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailAlreadyExists
		}
	}

	role, err := ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, errors.Annotate(err, "hash password")
	}

	identity := &Identity{
		FullName:     fullName,
		Mobile:       mobile,
		PasswordHash: hash,
		Role:         role,
	}
	if email != "" {
		identity.Email = &email
	}

	variant := variants[role]
	var profileID int64
	err = s.identities.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := s.identities.WithTx(tx).Create(ctx, identity); err != nil {
			return conflictOr(err, "insert identity")
		}
		id, err := variant.create(ctx, s.profiles.WithTx(tx), identity, req)
		if err != nil {
			return errors.Annotatef(err, "create %s profile", role)
		}
		profileID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Infof("registered identity_id=%d role=%s profile_id=%d", identity.ID, role, profileID)
	return summary("Registration successful", identity, variant, profileID), nil
}

// Login checks the credentials for the given role and loads its profile.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*AccountSummary, error) {
	mobile := strings.TrimSpace(req.Mobile)
	if !validator.ValidMobile(mobile) {
		return nil, ErrInvalidLoginMobile
	}
	role, err := ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	identity, err := s.identities.FindByMobileAndRole(ctx, mobile, role)
	if err != nil {
		return nil, err
	}
	if identity == nil || CheckPassword(req.Password, identity.PasswordHash) != nil {
		return nil, ErrInvalidCredentials
	}

	variant := variants[role]
	profileID, err := variant.find(ctx, s.profiles, identity.ID)
	if err != nil {
		if errors.IsNotFound(err) {
			logger.Errorf("identity %d (%s) has no profile row", identity.ID, role)
		}
		return nil, err
	}

	return summary("Login successful", identity, variant, profileID), nil
}

func summary(message string, id *Identity, variant roleVariant, profileID int64) *AccountSummary {
	return &AccountSummary{
		Message:     message,
		Role:        id.Role,
		RedirectURL: variant.route,
		ID:          profileID,
		FullName:    id.FullName,
		Email:       id.Email,
		Mobile:      id.Mobile,
	}
}

// conflictOr maps a unique violation raised by a concurrent registration to
// the matching conflict error.
func conflictOr(err error, action string) error {
	if !database.IsUniqueViolation(err) {
		return errors.Annotate(err, action)
	}
	if strings.Contains(strings.ToLower(database.UniqueViolationColumn(err)), "email") {
		return ErrEmailAlreadyExists
	}
	return ErrMobileAlreadyExists
}
