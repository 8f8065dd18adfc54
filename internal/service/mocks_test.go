package service

import (
	"context"
	"database/sql"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockVerbStore mocks the store.VerbStore interface.
type MockVerbStore struct {
	mock.Mock
}

func (m *MockVerbStore) Create(ctx context.Context, verb *domain.Verb) error {
	args := m.Called(ctx, verb)
	return args.Error(0)
}

func (m *MockVerbStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Verb, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Verb), args.Error(1)
}

func (m *MockVerbStore) List(ctx context.Context, filter store.VerbFilter) ([]*domain.Verb, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Verb), args.Error(1)
}

func (m *MockVerbStore) WithTx(tx *sql.Tx) store.VerbStore {
	return m
}

// MockStudyRecordStore mocks the store.StudyRecordStore interface.
type MockStudyRecordStore struct {
	mock.Mock
}

func (m *MockStudyRecordStore) Get(ctx context.Context, userID, verbID uuid.UUID) (*domain.StudyRecord, error) {
	args := m.Called(ctx, userID, verbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StudyRecord), args.Error(1)
}

func (m *MockStudyRecordStore) Upsert(ctx context.Context, record *domain.StudyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockStudyRecordStore) ListDue(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.StudyRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StudyRecord), args.Error(1)
}

func (m *MockStudyRecordStore) DeleteForUser(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockStudyRecordStore) WithTx(tx *sql.Tx) store.StudyRecordStore {
	return m
}

// MockProfileStore mocks the store.ProfileStore interface.
type MockProfileStore struct {
	mock.Mock
}

func (m *MockProfileStore) Get(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearnerProfile), args.Error(1)
}

func (m *MockProfileStore) Upsert(ctx context.Context, profile *domain.LearnerProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockProfileStore) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockProfileStore) WithTx(tx *sql.Tx) store.ProfileStore {
	return m
}
