package store

import (
	"context"
	"database/sql"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
)

// VerbFilter narrows List results. Zero-valued fields are ignored.
type VerbFilter struct {
	Class     domain.VerbClass
	Frequency string
	Tag       string
}

// VerbStore defines the interface for verb catalog persistence.
type VerbStore interface {
	// Create saves a new catalog entry. It validates the verb and returns
	// ErrVerbExists if the kana reading is already cataloged.
	Create(ctx context.Context, verb *domain.Verb) error

	// GetByID retrieves a verb by its unique ID.
	// Returns ErrVerbNotFound if the verb does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Verb, error)

	// List returns catalog entries matching the filter, ordered by kana.
	List(ctx context.Context, filter VerbFilter) ([]*domain.Verb, error)

	// WithTx returns a VerbStore bound to the given transaction.
	WithTx(tx *sql.Tx) VerbStore
}
