package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/domain/mastery"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
)

// PracticeService records practice outcomes and lists scheduled reviews.
type PracticeService interface {
	// RecordPractice applies one practice outcome for the authenticated
	// learner. The study record and learner profile are loaded, transformed
	// by the mastery engine and written back in a single transaction, so a
	// learner's snapshots always advance atomically.
	RecordPractice(ctx context.Context, userID, verbID uuid.UUID, correct bool, difficultyWeight float64, today domain.Date) (*mastery.PracticeResult, error)

	// ListDue returns the learner's study records scheduled for review on
	// or before the given date.
	ListDue(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.StudyRecord, error)
}

// PracticeServiceImpl implements PracticeService.
type PracticeServiceImpl struct {
	db           *sql.DB
	verbStore    store.VerbStore
	recordStore  store.StudyRecordStore
	profileStore store.ProfileStore
	mastery      mastery.Service
	logger       *slog.Logger
}

// NewPracticeService creates a PracticeService.
func NewPracticeService(
	db *sql.DB,
	verbStore store.VerbStore,
	recordStore store.StudyRecordStore,
	profileStore store.ProfileStore,
	masteryService mastery.Service,
	logger *slog.Logger,
) *PracticeServiceImpl {
	return &PracticeServiceImpl{
		db:           db,
		verbStore:    verbStore,
		recordStore:  recordStore,
		profileStore: profileStore,
		mastery:      masteryService,
		logger:       logger.With("component", "practice_service"),
	}
}

var _ PracticeService = (*PracticeServiceImpl)(nil)

// RecordPractice implements PracticeService.RecordPractice.
func (s *PracticeServiceImpl) RecordPractice(
	ctx context.Context,
	userID, verbID uuid.UUID,
	correct bool,
	difficultyWeight float64,
	today domain.Date,
) (*mastery.PracticeResult, error) {
	var result *mastery.PracticeResult

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		verbs := s.verbStore.WithTx(tx)
		records := s.recordStore.WithTx(tx)
		profiles := s.profileStore.WithTx(tx)

		if _, err := verbs.GetByID(ctx, verbID); err != nil {
			if errors.Is(err, store.ErrVerbNotFound) {
				return ErrVerbNotFound
			}
			return fmt.Errorf("failed to load verb: %w", err)
		}

		record, err := records.Get(ctx, userID, verbID)
		if err != nil && !errors.Is(err, store.ErrStudyRecordNotFound) {
			return fmt.Errorf("failed to load study record: %w", err)
		}

		profile, err := profiles.Get(ctx, userID)
		if err != nil && !errors.Is(err, store.ErrProfileNotFound) {
			return fmt.Errorf("failed to load learner profile: %w", err)
		}

		// A nil record or profile means first practice; the mastery engine
		// initializes them.
		result, err = s.mastery.RecordPractice(profile, record, userID, verbID, correct, today, difficultyWeight)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPractice, err)
		}

		if err := records.Upsert(ctx, result.Record); err != nil {
			return fmt.Errorf("failed to save study record: %w", err)
		}
		if err := profiles.Upsert(ctx, result.Profile); err != nil {
			return fmt.Errorf("failed to save learner profile: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrVerbNotFound) || errors.Is(err, ErrInvalidPractice) {
			s.logger.Debug("practice submission rejected",
				"error", err,
				"user_id", userID,
				"verb_id", verbID)
		} else {
			s.logger.Error("failed to record practice",
				"error", err,
				"user_id", userID,
				"verb_id", verbID)
		}
		return nil, err
	}

	s.logger.Info("practice recorded",
		"user_id", userID,
		"verb_id", verbID,
		"correct", correct,
		"mastery_score", result.Record.MasteryScore,
		"next_review", result.Record.NextReviewDate.String())

	return result, nil
}

// ListDue implements PracticeService.ListDue.
func (s *PracticeServiceImpl) ListDue(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.StudyRecord, error) {
	records, err := s.recordStore.ListDue(ctx, userID, date)
	if err != nil {
		s.logger.Error("failed to list due reviews",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to list due reviews: %w", err)
	}
	return records, nil
}
