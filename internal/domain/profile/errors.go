package profile

import "github.com/juju/errors"

var (
	ErrUserNotFound     = errors.NewNotFound(nil, "User not found")
	ErrProviderNotFound = errors.NewNotFound(nil, "Provider not found")
	ErrAdminNotFound    = errors.NewNotFound(nil, "Admin not found")
)
