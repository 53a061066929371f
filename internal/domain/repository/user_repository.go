package repository

import (
	"context"
	"errors"

	"custodia/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// FindUserByID retrieves a user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
