package application

import "errors"

// Sentinel errors surfaced to callers. Handlers map them to HTTP statuses;
// wrap with fmt.Errorf("%w: ...") to add field detail.
var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingToken       = errors.New("no token, authorization denied")
	ErrInvalidToken       = errors.New("token is not valid")
	ErrUserNotFound       = errors.New("user not found")
	ErrPropertyNotFound   = errors.New("property not found")
	ErrSavedNotFound      = errors.New("saved property not found")
	ErrAlreadySaved       = errors.New("property already saved")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrForbidden          = errors.New("forbidden")
)
