// Package repository defines the interfaces for the persistence layer.
//
// Every Create assigns the next identity of its entity type (starting at 1,
// never reused) and stamps the creation time on the passed entity.
// Lookups of an identity that was never issued return the entity's
// not-found sentinel instead of a nil record.
package repository

import (
	"context"

	"studio/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateUsername is returned when the username is already taken.
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository defines the interface for staff account persistence.
type UserRepository interface {
	// Create persists a new user. Username must be unique.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user by identity.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByUsername retrieves a user by exact username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
