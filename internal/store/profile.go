package store

import (
	"context"
	"database/sql"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
)

// ProfileStore defines the interface for learner profile persistence.
type ProfileStore interface {
	// Get retrieves a learner's profile.
	// Returns ErrProfileNotFound if no profile exists yet.
	Get(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error)

	// Upsert writes the profile snapshot, inserting on first practice and
	// replacing afterwards. Validates the profile first.
	Upsert(ctx context.Context, profile *domain.LearnerProfile) error

	// Delete removes a learner's profile. Used by the profile reset.
	Delete(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a ProfileStore bound to the given transaction.
	WithTx(tx *sql.Tx) ProfileStore
}
