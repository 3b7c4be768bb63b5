package user

import (
	"github.com/shareit/shareit-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed = apperror.Conflict("email already used")
	ErrEmailRequired    = apperror.Validation("email is required")
	ErrInvalidEmail     = apperror.Validation("invalid email format")
	ErrNameRequired     = apperror.Validation("name must not be blank")
	ErrHasDependents    = apperror.Conflict("user still has items, bookings or requests")
)

// User represents a user in the system.
type User struct {
	ID    int64
	Name  string
	Email string
}
