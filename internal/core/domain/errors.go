package domain

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidPreference  = errors.New("invalid preference value")
)
