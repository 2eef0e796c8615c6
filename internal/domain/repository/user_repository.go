package repository

import (
	"context"
	"errors"

	"webmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is
// not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository exposes the slice of the identity store the catalog
// needs: looking up a user and their balance. The balance is read-only
// from the catalog's point of view.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
