package usecase

import (
	"errors"

	"ecommerce-catalog/pkg/utils"
)

var (
	ErrDuplicateEmail     = errors.New("user with this email already exists")
	ErrInvalidOTP         = errors.New("invalid OTP or OTP not found")
	ErrOTPExpired         = errors.New("OTP has expired, please register again")
	ErrAccountNotVerified = errors.New("account not verified, please verify your email first")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("authentication required")
)

// ValidationError carries field-level messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + utils.FormatValidationErrors(e.Fields)
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// validate runs struct tag validation and wraps any failures.
func validate(req any) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return &ValidationError{Fields: errs}
	}
	return nil
}
