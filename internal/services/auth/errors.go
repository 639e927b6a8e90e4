package auth

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotConfigured      = errors.New("admin login is not configured")
	ErrInvalidToken       = errors.New("invalid token")
)
