package service

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/domain/conjugation"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetVerb(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		verb := testVerb(t)
		verbs := new(MockVerbStore)
		verbs.On("GetByID", mock.Anything, verb.ID).Return(verb, nil)

		svc := NewVerbService(nil, verbs, slog.Default())
		got, err := svc.GetVerb(ctx, verb.ID)
		require.NoError(t, err)
		assert.Equal(t, verb, got)
	})

	t.Run("not found", func(t *testing.T) {
		verbID := uuid.New()
		verbs := new(MockVerbStore)
		verbs.On("GetByID", mock.Anything, verbID).Return(nil, store.ErrVerbNotFound)

		svc := NewVerbService(nil, verbs, slog.Default())
		_, err := svc.GetVerb(ctx, verbID)
		assert.ErrorIs(t, err, ErrVerbNotFound)
	})
}

func TestListVerbs(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		filter := store.VerbFilter{Class: domain.ClassGodan, Frequency: domain.FrequencyHigh}
		expected := []*domain.Verb{testVerb(t)}

		verbs := new(MockVerbStore)
		verbs.On("List", mock.Anything, filter).Return(expected, nil)

		svc := NewVerbService(nil, verbs, slog.Default())
		got, err := svc.ListVerbs(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		verbs := new(MockVerbStore)
		verbs.On("List", mock.Anything, store.VerbFilter{}).Return(nil, errors.New("query failed"))

		svc := NewVerbService(nil, verbs, slog.Default())
		_, err := svc.ListVerbs(ctx, store.VerbFilter{})
		assert.Error(t, err)
	})
}

func TestConjugations(t *testing.T) {
	ctx := context.Background()

	t.Run("derives all forms for a cataloged verb", func(t *testing.T) {
		verb := testVerb(t)
		verbs := new(MockVerbStore)
		verbs.On("GetByID", mock.Anything, verb.ID).Return(verb, nil)

		svc := NewVerbService(nil, verbs, slog.Default())
		got, forms, err := svc.Conjugations(ctx, verb.ID)
		require.NoError(t, err)
		assert.Equal(t, verb, got)
		require.Len(t, forms, len(conjugation.AllFormKeys))
		assert.Equal(t, conjugation.FormMasuPresent, forms[0].Key)
		assert.Equal(t, "たべます", forms[0].Surface)
	})

	t.Run("unknown verb", func(t *testing.T) {
		verbID := uuid.New()
		verbs := new(MockVerbStore)
		verbs.On("GetByID", mock.Anything, verbID).Return(nil, store.ErrVerbNotFound)

		svc := NewVerbService(nil, verbs, slog.Default())
		_, _, err := svc.Conjugations(ctx, verbID)
		assert.ErrorIs(t, err, ErrVerbNotFound)
	})

	t.Run("bad seed data surfaces an error", func(t *testing.T) {
		verb := testVerb(t)
		verb.Kana = "x" // not conjugable
		verbs := new(MockVerbStore)
		verbs.On("GetByID", mock.Anything, verb.ID).Return(verb, nil)

		svc := NewVerbService(nil, verbs, slog.Default())
		_, _, err := svc.Conjugations(ctx, verb.ID)
		assert.Error(t, err)
	})
}

func TestCreateVerb(t *testing.T) {
	ctx := context.Background()

	t.Run("creates in a transaction", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		dbMock.ExpectBegin()
		dbMock.ExpectCommit()

		verb := testVerb(t)
		verbs := new(MockVerbStore)
		verbs.On("Create", mock.Anything, verb).Return(nil)

		svc := NewVerbService(db, verbs, slog.Default())
		require.NoError(t, svc.CreateVerb(ctx, verb))
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})

	t.Run("duplicate kana rolls back", func(t *testing.T) {
		db, dbMock, err := sqlmock.New()
		require.NoError(t, err)
		defer func() { _ = db.Close() }()
		dbMock.ExpectBegin()
		dbMock.ExpectRollback()

		verb := testVerb(t)
		verbs := new(MockVerbStore)
		verbs.On("Create", mock.Anything, verb).Return(store.ErrVerbExists)

		svc := NewVerbService(db, verbs, slog.Default())
		err = svc.CreateVerb(ctx, verb)
		assert.ErrorIs(t, err, store.ErrVerbExists)
		assert.NoError(t, dbMock.ExpectationsWereMet())
	})
}
