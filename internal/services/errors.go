package services

import (
	"errors"
	"fmt"

	"github.com/school-hub/school-service/internal/repositories"
)

// Service-level sentinels. Handlers map these onto HTTP status codes.
var (
	ErrValidationFailed   = errors.New("validation failed")
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicate          = errors.New("resource already exists")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// wrapRepoError translates repository sentinels into service sentinels,
// keeping the operation name in the chain.
func wrapRepoError(err error, op string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	case errors.Is(err, repositories.ErrDuplicate):
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	default:
		return fmt.Errorf("%s failed: %w", op, err)
	}
}
