package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/domain/conjugation"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
)

// VerbService provides verb catalog access and conjugation rendering.
type VerbService interface {
	// GetVerb retrieves one catalog entry.
	// Returns ErrVerbNotFound if the verb is not cataloged.
	GetVerb(ctx context.Context, verbID uuid.UUID) (*domain.Verb, error)

	// ListVerbs returns catalog entries matching the filter, ordered by
	// kana reading.
	ListVerbs(ctx context.Context, filter store.VerbFilter) ([]*domain.Verb, error)

	// Conjugations derives the verb's full conjugation set from its kana
	// reading and class.
	Conjugations(ctx context.Context, verbID uuid.UUID) (*domain.Verb, []conjugation.Form, error)

	// CreateVerb adds a catalog entry. Used by the seed command.
	CreateVerb(ctx context.Context, verb *domain.Verb) error
}

// VerbServiceImpl implements VerbService.
type VerbServiceImpl struct {
	db        *sql.DB
	verbStore store.VerbStore
	logger    *slog.Logger
}

// NewVerbService creates a VerbService.
func NewVerbService(db *sql.DB, verbStore store.VerbStore, logger *slog.Logger) *VerbServiceImpl {
	return &VerbServiceImpl{
		db:        db,
		verbStore: verbStore,
		logger:    logger.With("component", "verb_service"),
	}
}

var _ VerbService = (*VerbServiceImpl)(nil)

// GetVerb implements VerbService.GetVerb.
func (s *VerbServiceImpl) GetVerb(ctx context.Context, verbID uuid.UUID) (*domain.Verb, error) {
	verb, err := s.verbStore.GetByID(ctx, verbID)
	if err != nil {
		if errors.Is(err, store.ErrVerbNotFound) {
			return nil, ErrVerbNotFound
		}
		s.logger.Error("failed to retrieve verb",
			"error", err,
			"verb_id", verbID)
		return nil, fmt.Errorf("failed to retrieve verb: %w", err)
	}
	return verb, nil
}

// ListVerbs implements VerbService.ListVerbs.
func (s *VerbServiceImpl) ListVerbs(ctx context.Context, filter store.VerbFilter) ([]*domain.Verb, error) {
	verbs, err := s.verbStore.List(ctx, filter)
	if err != nil {
		s.logger.Error("failed to list verbs", "error", err)
		return nil, fmt.Errorf("failed to list verbs: %w", err)
	}
	return verbs, nil
}

// Conjugations implements VerbService.Conjugations.
func (s *VerbServiceImpl) Conjugations(ctx context.Context, verbID uuid.UUID) (*domain.Verb, []conjugation.Form, error) {
	verb, err := s.GetVerb(ctx, verbID)
	if err != nil {
		return nil, nil, err
	}

	forms, err := conjugation.Conjugate(verb.Kana, verb.Class)
	if err != nil {
		// A cataloged verb that fails to conjugate is bad seed data.
		s.logger.Error("cataloged verb failed to conjugate",
			"error", err,
			"verb_id", verbID,
			"kana", verb.Kana)
		return nil, nil, fmt.Errorf("failed to conjugate %s: %w", verb.Kana, err)
	}

	return verb, forms, nil
}

// CreateVerb implements VerbService.CreateVerb.
func (s *VerbServiceImpl) CreateVerb(ctx context.Context, verb *domain.Verb) error {
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return s.verbStore.WithTx(tx).Create(ctx, verb)
	})
	if err != nil {
		if errors.Is(err, store.ErrVerbExists) {
			s.logger.Debug("verb already cataloged",
				"kana", verb.Kana)
		} else {
			s.logger.Error("failed to create verb",
				"error", err,
				"kana", verb.Kana)
		}
		return fmt.Errorf("failed to create verb: %w", err)
	}

	s.logger.Info("verb cataloged",
		"verb_id", verb.ID,
		"kana", verb.Kana,
		"class", string(verb.Class))
	return nil
}
