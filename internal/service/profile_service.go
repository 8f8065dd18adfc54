package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
)

// ProfileService provides learner profile access and reset.
type ProfileService interface {
	// GetProfile returns the learner's profile. A learner who has never
	// practiced gets an empty profile rather than an error.
	GetProfile(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error)

	// Reset deletes the learner's study records and profile in one
	// transaction, returning them to the never-practiced state. Mastery
	// history is not recoverable afterwards.
	Reset(ctx context.Context, userID uuid.UUID) error
}

// ProfileServiceImpl implements ProfileService.
type ProfileServiceImpl struct {
	db           *sql.DB
	profileStore store.ProfileStore
	recordStore  store.StudyRecordStore
	logger       *slog.Logger
}

// NewProfileService creates a ProfileService.
func NewProfileService(
	db *sql.DB,
	profileStore store.ProfileStore,
	recordStore store.StudyRecordStore,
	logger *slog.Logger,
) *ProfileServiceImpl {
	return &ProfileServiceImpl{
		db:           db,
		profileStore: profileStore,
		recordStore:  recordStore,
		logger:       logger.With("component", "profile_service"),
	}
}

var _ ProfileService = (*ProfileServiceImpl)(nil)

// GetProfile implements ProfileService.GetProfile.
func (s *ProfileServiceImpl) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	profile, err := s.profileStore.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) {
			return domain.NewLearnerProfile(userID)
		}
		s.logger.Error("failed to retrieve learner profile",
			"error", err,
			"user_id", userID)
		return nil, fmt.Errorf("failed to retrieve learner profile: %w", err)
	}
	return profile, nil
}

// Reset implements ProfileService.Reset.
func (s *ProfileServiceImpl) Reset(ctx context.Context, userID uuid.UUID) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		if err := s.recordStore.WithTx(tx).DeleteForUser(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete study records: %w", err)
		}
		if err := s.profileStore.WithTx(tx).Delete(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete learner profile: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to reset learner profile",
			"error", err,
			"user_id", userID)
		return err
	}

	s.logger.Info("learner profile reset", "user_id", userID)
	return nil
}
