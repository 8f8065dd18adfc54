package domain

import (
	"errors"

	"github.com/google/uuid"
)

// Mastery score bounds. The score is a fractional proficiency estimate:
// difficulty-weighted gains push it toward MaxMasteryScore, tiered penalties
// pull it toward MinMasteryScore.
const (
	MinMasteryScore = -5.0
	MaxMasteryScore = 10.0
)

// StudyRecord validation errors.
var (
	ErrEmptyRecordUserID   = errors.New("study record user ID cannot be empty")
	ErrEmptyRecordVerbID   = errors.New("study record verb ID cannot be empty")
	ErrNegativeReviewCount = errors.New("review counts cannot be negative")
	ErrMasteryOutOfRange   = errors.New("mastery score must be within [-5, 10]")
)

// StudyRecord tracks one learner's progress on one verb. It is the unit the
// mastery tracker transforms: every practice attempt produces a new record
// with updated counts, score and review schedule.
type StudyRecord struct {
	UserID         uuid.UUID `json:"user_id"`
	VerbID         uuid.UUID `json:"verb_id"`
	TimesReviewed  int       `json:"times_reviewed"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	MasteryScore   float64   `json:"mastery_score"`
	LastStudied    Date      `json:"last_studied"`
	NextReviewDate Date      `json:"next_review_date"`
}

// NewStudyRecord creates a fresh record for a verb the learner has never
// practiced. The mastery score starts at zero; the first practice attempt
// moves it.
func NewStudyRecord(userID, verbID uuid.UUID) (*StudyRecord, error) {
	record := &StudyRecord{
		UserID: userID,
		VerbID: verbID,
	}

	if err := record.Validate(); err != nil {
		return nil, err
	}

	return record, nil
}

// Validate checks if the StudyRecord has valid data.
// Returns an error if any field fails validation.
func (r *StudyRecord) Validate() error {
	if r.UserID == uuid.Nil {
		return ErrEmptyRecordUserID
	}

	if r.VerbID == uuid.Nil {
		return ErrEmptyRecordVerbID
	}

	if r.TimesReviewed < 0 || r.CorrectCount < 0 || r.IncorrectCount < 0 {
		return ErrNegativeReviewCount
	}

	if r.MasteryScore < MinMasteryScore || r.MasteryScore > MaxMasteryScore {
		return ErrMasteryOutOfRange
	}

	return nil
}

// Clone returns a deep copy of the record.
func (r *StudyRecord) Clone() *StudyRecord {
	clone := *r
	return &clone
}
