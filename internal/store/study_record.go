package store

import (
	"context"
	"database/sql"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
)

// StudyRecordStore defines the interface for per-verb study record
// persistence.
type StudyRecordStore interface {
	// Get retrieves the study record for a user/verb pair.
	// Returns ErrStudyRecordNotFound if the record does not exist.
	Get(ctx context.Context, userID, verbID uuid.UUID) (*domain.StudyRecord, error)

	// Upsert writes the record, inserting on first practice and replacing
	// on every subsequent one. Validates the record first.
	Upsert(ctx context.Context, record *domain.StudyRecord) error

	// ListDue returns the user's records whose next review date is on or
	// before the given date, ordered by next review date.
	ListDue(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.StudyRecord, error)

	// DeleteForUser removes all of a user's study records. Used by the
	// learner-initiated profile reset.
	DeleteForUser(ctx context.Context, userID uuid.UUID) error

	// WithTx returns a StudyRecordStore bound to the given transaction.
	WithTx(tx *sql.Tx) StudyRecordStore
}
