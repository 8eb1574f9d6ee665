package auth

import "github.com/juju/errors"

var (
	ErrInvalidMobile       = errors.NewNotValid(nil, "Invalid mobile number. Must be 10 digits.")
	ErrInvalidLoginMobile  = errors.NewNotValid(nil, "Invalid mobile number")
	ErrWeakPassword        = errors.NewNotValid(nil, "Password must be at least 8 characters with 1 uppercase, 1 number, and 1 special character")
	ErrInvalidEmail        = errors.NewNotValid(nil, "Invalid email format")
	ErrInvalidRole         = errors.NewNotValid(nil, "Invalid role")
	ErrFullNameRequired    = errors.NewNotValid(nil, "Full name is required")
	ErrMobileAlreadyExists = errors.NewAlreadyExists(nil, "Mobile number already registered")
	ErrEmailAlreadyExists  = errors.NewAlreadyExists(nil, "Email already registered")
	ErrInvalidCredentials  = errors.NewUnauthorized(nil, "Invalid credentials")
)
