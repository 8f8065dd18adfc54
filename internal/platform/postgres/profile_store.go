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

// ProfileStore implements store.ProfileStore backed by PostgreSQL.
// The daily history window is stored as a JSONB column; it is read and
// written whole, matching the snapshot semantics of the mastery tracker.
type ProfileStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProfileStore creates a PostgreSQL learner profile store.
func NewProfileStore(db store.DBTX, log *slog.Logger) *ProfileStore {
	if db == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &ProfileStore{
		db:     db,
		logger: log.With(slog.String("component", "profile_store")),
	}
}

var _ store.ProfileStore = (*ProfileStore)(nil)

// Get implements store.ProfileStore.Get.
func (s *ProfileStore) Get(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	query := `
		SELECT user_id, streak, last_study_date, daily_history,
			total_practices, total_correct, total_questions
		FROM learner_profiles
		WHERE user_id = $1
	`

	var (
		profile domain.LearnerProfile
		history []byte
	)
	err := s.db.QueryRowContext(ctx, query, userID).Scan(
		&profile.UserID, &profile.Streak, &profile.LastStudyDate, &history,
		&profile.TotalPractices, &profile.TotalCorrect, &profile.TotalQuestions)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrProfileNotFound
		}
		return nil, err
	}

	if len(history) > 0 {
		if err := json.Unmarshal(history, &profile.DailyHistory); err != nil {
			return nil, fmt.Errorf("failed to unmarshal daily history: %w", err)
		}
	}
	if profile.DailyHistory == nil {
		profile.DailyHistory = []domain.DailyStat{}
	}
	return &profile, nil
}

// Upsert implements store.ProfileStore.Upsert.
func (s *ProfileStore) Upsert(ctx context.Context, profile *domain.LearnerProfile) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := profile.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	history, err := json.Marshal(profile.DailyHistory)
	if err != nil {
		return fmt.Errorf("failed to marshal daily history: %w", err)
	}

	query := `
		INSERT INTO learner_profiles (user_id, streak, last_study_date,
			daily_history, total_practices, total_correct, total_questions)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id) DO UPDATE SET
			streak = EXCLUDED.streak,
			last_study_date = EXCLUDED.last_study_date,
			daily_history = EXCLUDED.daily_history,
			total_practices = EXCLUDED.total_practices,
			total_correct = EXCLUDED.total_correct,
			total_questions = EXCLUDED.total_questions
	`
	_, err = s.db.ExecContext(ctx, query,
		profile.UserID, profile.Streak, profile.LastStudyDate, history,
		profile.TotalPractices, profile.TotalCorrect, profile.TotalQuestions)
	if err != nil {
		if isForeignKeyViolation(err) {
			return store.ErrUserNotFound
		}
		log.Error("failed to upsert learner profile",
			slog.String("error", err.Error()),
			slog.String("user_id", profile.UserID.String()))
		return err
	}

	return nil
}

// Delete implements store.ProfileStore.Delete.
func (s *ProfileStore) Delete(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	_, err := s.db.ExecContext(ctx,
		`DELETE FROM learner_profiles WHERE user_id = $1`, userID)
	if err != nil {
		log.Error("failed to delete learner profile",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Info("learner profile deleted", slog.String("user_id", userID.String()))
	return nil
}

// WithTx implements store.ProfileStore.WithTx.
func (s *ProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return &ProfileStore{db: tx, logger: s.logger}
}
