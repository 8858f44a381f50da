package usecase

import "errors"

// Sentinel errors shared by all use cases. Handlers map these onto HTTP
// status codes in a single place; everything else is treated as an internal
// error and never leaks details to the client.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already in use")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
