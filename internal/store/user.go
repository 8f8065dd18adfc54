package store

import (
	"context"
	"database/sql"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
)

// UserStore defines the interface for user persistence.
type UserStore interface {
	// Create saves a new user, hashing the plaintext password first.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// WithTx returns a UserStore bound to the given transaction.
	WithTx(tx *sql.Tx) UserStore
}
