package mastery

import (
	"errors"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
)

// Common errors.
var (
	// ErrInvalidInput is returned when the difficulty weight is not
	// positive or the practice date is missing.
	ErrInvalidInput = errors.New("invalid practice input")

	// ErrEmptyUserID is returned when the user ID is nil.
	ErrEmptyUserID = errors.New("user ID cannot be empty")

	// ErrEmptyVerbID is returned when the verb ID is nil.
	ErrEmptyVerbID = errors.New("verb ID cannot be empty")
)

// PracticeResult carries the new snapshots produced by one practice attempt.
type PracticeResult struct {
	Record  *domain.StudyRecord
	Profile *domain.LearnerProfile
}

// Service defines the mastery engine operations.
type Service interface {
	// RecordPractice applies one practice outcome to a learner's study
	// record and profile and returns updated snapshots. The inputs are
	// never mutated. A nil record means the verb's first-ever practice;
	// a nil profile means a learner with no practice history. The date
	// must be the learner's local calendar date.
	RecordPractice(
		profile *domain.LearnerProfile,
		record *domain.StudyRecord,
		userID, verbID uuid.UUID,
		correct bool,
		today domain.Date,
		difficultyWeight float64,
	) (*PracticeResult, error)

	// ReviewIntervalDays exposes the step function from mastery score to
	// days until the next review.
	ReviewIntervalDays(score float64) int
}

// defaultService is the standard implementation of the Service interface.
type defaultService struct {
	params *Params
}

// NewDefaultService creates a mastery service with default parameters.
func NewDefaultService() Service {
	return &defaultService{params: NewDefaultParams()}
}

// NewServiceWithParams creates a mastery service with custom parameters.
func NewServiceWithParams(params *Params) Service {
	return &defaultService{params: params}
}

// RecordPractice implements the Service interface.
func (s *defaultService) RecordPractice(
	profile *domain.LearnerProfile,
	record *domain.StudyRecord,
	userID, verbID uuid.UUID,
	correct bool,
	today domain.Date,
	difficultyWeight float64,
) (*PracticeResult, error) {
	if userID == uuid.Nil {
		return nil, ErrEmptyUserID
	}
	if verbID == uuid.Nil {
		return nil, ErrEmptyVerbID
	}
	if difficultyWeight <= 0 {
		return nil, ErrInvalidInput
	}
	if today.IsZero() {
		return nil, ErrInvalidInput
	}

	newRecord := nextRecord(record, userID, verbID, correct, today, difficultyWeight, s.params)
	newProfile := nextProfile(profile, userID, verbID, correct, today, s.params)

	return &PracticeResult{Record: newRecord, Profile: newProfile}, nil
}

// ReviewIntervalDays implements the Service interface.
func (s *defaultService) ReviewIntervalDays(score float64) int {
	return reviewInterval(score, s.params)
}
