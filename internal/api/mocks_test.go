package api_test

import (
	"context"
	"database/sql"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/domain/conjugation"
	"github.com/benkyo/doushi-api/internal/domain/mastery"
	"github.com/benkyo/doushi-api/internal/store"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserStore mocks store.UserStore.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}

// MockVerbService mocks service.VerbService.
type MockVerbService struct {
	mock.Mock
}

func (m *MockVerbService) GetVerb(ctx context.Context, verbID uuid.UUID) (*domain.Verb, error) {
	args := m.Called(ctx, verbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Verb), args.Error(1)
}

func (m *MockVerbService) ListVerbs(ctx context.Context, filter store.VerbFilter) ([]*domain.Verb, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Verb), args.Error(1)
}

func (m *MockVerbService) Conjugations(ctx context.Context, verbID uuid.UUID) (*domain.Verb, []conjugation.Form, error) {
	args := m.Called(ctx, verbID)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Verb), args.Get(1).([]conjugation.Form), args.Error(2)
}

func (m *MockVerbService) CreateVerb(ctx context.Context, verb *domain.Verb) error {
	args := m.Called(ctx, verb)
	return args.Error(0)
}

// MockPracticeService mocks service.PracticeService.
type MockPracticeService struct {
	mock.Mock
}

func (m *MockPracticeService) RecordPractice(ctx context.Context, userID, verbID uuid.UUID, correct bool, difficultyWeight float64, today domain.Date) (*mastery.PracticeResult, error) {
	args := m.Called(ctx, userID, verbID, correct, difficultyWeight, today)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mastery.PracticeResult), args.Error(1)
}

func (m *MockPracticeService) ListDue(ctx context.Context, userID uuid.UUID, date domain.Date) ([]*domain.StudyRecord, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.StudyRecord), args.Error(1)
}

// MockProfileService mocks service.ProfileService.
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.LearnerProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LearnerProfile), args.Error(1)
}

func (m *MockProfileService) Reset(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
