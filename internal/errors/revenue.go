package errors

import (
	"net/http"

	"grabbber/internal/services/auth"
	"grabbber/internal/services/inquiry"
	"grabbber/internal/services/revenue"
)

var (
	ErrInvalidTier = &DomainError{
		Code:    "INVALID_TIER",
		Message: "invalid traffic tier",
		Status:  http.StatusBadRequest,
	}
	ErrInvalidInquiry = &DomainError{
		Code:    "INVALID_INQUIRY",
		Message: "Please fill in all required fields.",
		Status:  http.StatusUnprocessableEntity,
	}
	ErrInvalidCredentials = &DomainError{
		Code:    "INVALID_CREDENTIALS",
		Message: "Invalid email or password",
		Status:  http.StatusUnauthorized,
	}
	ErrLoginDisabled = &DomainError{
		Code:    "LOGIN_DISABLED",
		Message: "admin login is not configured",
		Status:  http.StatusServiceUnavailable,
	}
)

func init() {
	Register(revenue.ErrInvalidTier, ErrInvalidTier)
	Register(inquiry.ErrInvalidInquiry, ErrInvalidInquiry)
	Register(auth.ErrInvalidCredentials, ErrInvalidCredentials)
	Register(auth.ErrNotConfigured, ErrLoginDisabled)
}
