package domain

import "errors"

var (
	ErrTourNotFound    = errors.New("tour not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrForbidden    = errors.New("not authorized to access this booking")
	ErrUnauthorized = errors.New("authentication required")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
