package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/platform/logger"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
)

// StudyRecordStore implements store.StudyRecordStore backed by PostgreSQL.
type StudyRecordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewStudyRecordStore creates a PostgreSQL study record store.
func NewStudyRecordStore(db store.DBTX, log *slog.Logger) *StudyRecordStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &StudyRecordStore{
		db:     db,
		logger: log.With(slog.String("component", "study_record_store")),
	}
}

var _ store.StudyRecordStore = (*StudyRecordStore)(nil)

const studyRecordColumns = `user_id, verb_id, times_reviewed, correct_count,
	incorrect_count, mastery_score, last_studied, next_review_date`

// Get implements store.StudyRecordStore.Get.
func (s *StudyRecordStore) Get(ctx context.Context, userID, verbID uuid.UUID) (*domain.StudyRecord, error) {
	query := `SELECT ` + studyRecordColumns + `
		FROM study_records
		WHERE user_id = $1 AND verb_id = $2`

	record, err := scanStudyRecord(s.db.QueryRowContext(ctx, query, userID, verbID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrStudyRecordNotFound
		}
		return nil, err
	}
	return record, nil
}

// Upsert implements store.StudyRecordStore.Upsert.
func (s *StudyRecordStore) Upsert(ctx context.Context, record *domain.StudyRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO study_records (` + studyRecordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, verb_id) DO UPDATE SET
			times_reviewed = EXCLUDED.times_reviewed,
			correct_count = EXCLUDED.correct_count,
			incorrect_count = EXCLUDED.incorrect_count,
			mastery_score = EXCLUDED.mastery_score,
			last_studied = EXCLUDED.last_studied,
			next_review_date = EXCLUDED.next_review_date
	`
	_, err := s.db.ExecContext(ctx, query,
		record.UserID, record.VerbID, record.TimesReviewed, record.CorrectCount,
		record.IncorrectCount, record.MasteryScore, record.LastStudied,
		record.NextReviewDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrVerbNotFound
		}
		log.Error("failed to upsert study record",
			slog.String("error", err.Error()),
			slog.String("user_id", record.UserID.String()),
			slog.String("verb_id", record.VerbID.String()))
		return err
	}

	return nil
}

// ListDue implements store.StudyRecordStore.ListDue.
func (s *StudyRecordStore) ListDue(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.StudyRecord, error) {
	query := `SELECT ` + studyRecordColumns + `
		FROM study_records
		WHERE user_id = $1 AND next_review_date IS NOT NULL AND next_review_date <= $2
		ORDER BY next_review_date, verb_id`

	rows, err := s.db.QueryContext(ctx, query, userID, date)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*domain.StudyRecord
	for rows.Next() {
		record, err := scanStudyRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// DeleteForUser implements store.StudyRecordStore.DeleteForUser.
func (s *StudyRecordStore) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM study_records WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete study records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	deleted, _ := result.RowsAffected()
	log.Info("study records deleted",
		slog.String("user_id", userID.String()),
		slog.Int64("count", deleted))
	return nil
}

// WithTx implements store.StudyRecordStore.WithTx.
func (s *StudyRecordStore) WithTx(tx *sql.Tx) store.StudyRecordStore {
	return &StudyRecordStore{db: tx, logger: s.logger}
}

func scanStudyRecord(row rowScanner) (*domain.StudyRecord, error) {
	var record domain.StudyRecord
	err := row.Scan(&record.UserID, &record.VerbID, &record.TimesReviewed,
		&record.CorrectCount, &record.IncorrectCount, &record.MasteryScore,
		&record.LastStudied, &record.NextReviewDate)
	if err != nil {
		return nil, err
	}
	return &record, nil
}
