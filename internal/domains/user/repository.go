package user

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for the user domain.
type Repository interface {
	// Create inserts a new user.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, user *User) error

	// FindByID returns ErrUserNotFound when no row matches.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail is used by login; returns ErrUserNotFound on miss.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail reports whether the email is already registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
