package auth

import (
	"context"
	"strconv"
	"strings"

	"servicehub/internal/domain/profile"
)

// Role is the closed set of account kinds.
type Role string

const (
	RoleUser     Role = "USER"
	RoleProvider Role = "SERVICE_PROVIDER"
	RoleAdmin    Role = "ADMIN"
)

// ParseRole accepts any casing of a known role.
func ParseRole(raw string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(raw)))
	if _, ok := variants[r]; !ok {
		return "", ErrInvalidRole
	}
	return r, nil
}

// roleVariant creates and finds the profile row of one role. Registration
// and login both dispatch through the variants table.
type roleVariant struct {
	route  string
	create func(ctx context.Context, profiles *profile.Repository, id *Identity, req RegisterRequest) (int64, error)
	find   func(ctx context.Context, profiles *profile.Repository, homeID int64) (int64, error)
}

var variants = map[Role]roleVariant{
	RoleUser: {
		route: "/user-dashboard",
		create: func(ctx context.Context, profiles *profile.Repository, id *Identity, req RegisterRequest) (int64, error) {
			u := &profile.User{
				HomeID:   id.ID,
				FullName: id.FullName,
				Email:    id.Email,
				Mobile:   id.Mobile,
				Location: strings.TrimSpace(req.Location),
			}
			err := profiles.CreateUser(ctx, u)
			return u.ID, err
		},
		find: func(ctx context.Context, profiles *profile.Repository, homeID int64) (int64, error) {
			u, err := profiles.FindUserByHomeID(ctx, homeID)
			if err != nil {
				return 0, err
			}
			return u.ID, nil
		},
	},
	RoleProvider: {
		route: "/provider-dashboard",
		create: func(ctx context.Context, profiles *profile.Repository, id *Identity, req RegisterRequest) (int64, error) {
			p := &profile.Provider{
				HomeID:       id.ID,
				FullName:     id.FullName,
				Email:        id.Email,
				Mobile:       id.Mobile,
				ServiceType:  strings.TrimSpace(req.ServiceType),
				Availability: strings.TrimSpace(req.Availability),
				Location:     strings.TrimSpace(req.Location),
				Price:        parsePrice(req.Price),
			}
			if req.Experience != nil && *req.Experience > 0 {
				p.Experience = *req.Experience
			}
			err := profiles.CreateProvider(ctx, p)
			return p.ID, err
		},
		find: func(ctx context.Context, profiles *profile.Repository, homeID int64) (int64, error) {
			p, err := profiles.FindProviderByHomeID(ctx, homeID)
			if err != nil {
				return 0, err
			}
			return p.ID, nil
		},
	},
	RoleAdmin: {
		route: "/admin-dashboard",
		create: func(ctx context.Context, profiles *profile.Repository, id *Identity, _ RegisterRequest) (int64, error) {
			a := &profile.Admin{
				HomeID:   id.ID,
				FullName: id.FullName,
				Email:    id.Email,
				Mobile:   id.Mobile,
			}
			err := profiles.CreateAdmin(ctx, a)
			return a.ID, err
		},
		find: func(ctx context.Context, profiles *profile.Repository, homeID int64) (int64, error) {
			a, err := profiles.FindAdminByHomeID(ctx, homeID)
			if err != nil {
				return 0, err
			}
			return a.ID, nil
		},
	},
}

// parsePrice reads a free-text amount, falling back to zero.
func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}
