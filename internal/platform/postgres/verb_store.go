package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/platform/logger"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
)

// VerbStore implements store.VerbStore backed by PostgreSQL.
// Tags and examples are stored as JSONB columns.
type VerbStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewVerbStore creates a PostgreSQL verb store.
func NewVerbStore(db store.DBTX, log *slog.Logger) *VerbStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &VerbStore{
		db:     db,
		logger: log.With(slog.String("component", "verb_store")),
	}
}

var _ store.VerbStore = (*VerbStore)(nil)

const verbColumns = `id, kanji, kana, romaji, class, meaning, frequency,
	transitivity, tags, examples, created_at, updated_at`

// Create implements store.VerbStore.Create.
func (s *VerbStore) Create(ctx context.Context, verb *domain.Verb) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := verb.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	tags, err := json.Marshal(verb.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}
	examples, err := json.Marshal(verb.Examples)
	if err != nil {
		return fmt.Errorf("failed to marshal examples: %w", err)
	}

	query := `
		INSERT INTO verbs (` + verbColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = s.db.ExecContext(ctx, query,
		verb.ID, verb.Kanji, verb.Kana, verb.Romaji, string(verb.Class),
		verb.Meaning, verb.Frequency, verb.Transitivity, tags, examples,
		verb.CreatedAt, verb.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrVerbExists
		}
		log.Error("failed to create verb",
			slog.String("error", err.Error()),
			slog.String("verb_id", verb.ID.String()))
		return err
	}

	log.Debug("verb created",
		slog.String("verb_id", verb.ID.String()),
		slog.String("kana", verb.Kana))
	return nil
}

// GetByID implements store.VerbStore.GetByID.
func (s *VerbStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Verb, error) {
	query := `SELECT ` + verbColumns + ` FROM verbs WHERE id = $1`

	verb, err := scanVerb(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrVerbNotFound
		}
		return nil, err
	}
	return verb, nil
}

// List implements store.VerbStore.List.
func (s *VerbStore) List(ctx context.Context, filter store.VerbFilter) ([]*domain.Verb, error) {
	query := `SELECT ` + verbColumns + ` FROM verbs WHERE 1=1`
	args := []interface{}{}

	if filter.Class != "" {
		args = append(args, string(filter.Class))
		query += fmt.Sprintf(" AND class = $%d", len(args))
	}
	if filter.Frequency != "" {
		args = append(args, filter.Frequency)
		query += fmt.Sprintf(" AND frequency = $%d", len(args))
	}
	if filter.Tag != "" {
		args = append(args, filter.Tag)
		query += fmt.Sprintf(" AND tags @> to_jsonb(ARRAY[$%d::text])", len(args))
	}
	query += " ORDER BY kana"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var verbs []*domain.Verb
	for rows.Next() {
		verb, err := scanVerb(rows)
		if err != nil {
			return nil, err
		}
		verbs = append(verbs, verb)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return verbs, nil
}

// WithTx implements store.VerbStore.WithTx.
func (s *VerbStore) WithTx(tx *sql.Tx) store.VerbStore {
	return &VerbStore{db: tx, logger: s.logger}
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVerb(row rowScanner) (*domain.Verb, error) {
	var (
		verb     domain.Verb
		class    string
		tags     []byte
		examples []byte
	)
	err := row.Scan(&verb.ID, &verb.Kanji, &verb.Kana, &verb.Romaji, &class,
		&verb.Meaning, &verb.Frequency, &verb.Transitivity, &tags, &examples,
		&verb.CreatedAt, &verb.UpdatedAt)
	if err != nil {
		return nil, err
	}
	verb.Class = domain.VerbClass(class)

	if len(tags) > 0 {
		if err := json.Unmarshal(tags, &verb.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags: %w", err)
		}
	}
	if len(examples) > 0 {
		if err := json.Unmarshal(examples, &verb.Examples); err != nil {
			return nil, fmt.Errorf("failed to unmarshal examples: %w", err)
		}
	}
	return &verb, nil
}
