package domain

import (
	"errors"

	"github.com/google/uuid"
)

// DailyHistoryLimit caps the profile's per-day history at the most recent
// 90 entries; older days are dropped.
const DailyHistoryLimit = 90

// LearnerProfile validation errors.
var (
	ErrEmptyProfileUserID = errors.New("learner profile user ID cannot be empty")
	ErrNegativeStreak     = errors.New("streak cannot be negative")
	ErrNegativeTotals     = errors.New("profile totals cannot be negative")
)

// DailyStat aggregates one calendar day of practice.
type DailyStat struct {
	Date      Date        `json:"date"`
	Questions int         `json:"questions"`
	Correct   int         `json:"correct"`
	VerbIDs   []uuid.UUID `json:"verb_ids"`
}

// ContainsVerb reports whether the verb was already recorded for this day.
func (s *DailyStat) ContainsVerb(verbID uuid.UUID) bool {
	for _, id := range s.VerbIDs {
		if id == verbID {
			return true
		}
	}
	return false
}

// LearnerProfile aggregates a learner's practice across all verbs: the
// consecutive-day streak, running totals and a rolling window of per-day
// stats. The mastery tracker receives and returns whole-profile snapshots;
// callers persist the returned snapshot atomically.
type LearnerProfile struct {
	UserID         uuid.UUID   `json:"user_id"`
	Streak         int         `json:"streak"`
	LastStudyDate  Date        `json:"last_study_date"`
	DailyHistory   []DailyStat `json:"daily_history"`
	TotalPractices int         `json:"total_practices"`
	TotalCorrect   int         `json:"total_correct"`
	TotalQuestions int         `json:"total_questions"`
}

// NewLearnerProfile creates an empty profile for a learner.
func NewLearnerProfile(userID uuid.UUID) (*LearnerProfile, error) {
	profile := &LearnerProfile{
		UserID:       userID,
		DailyHistory: []DailyStat{},
	}

	if err := profile.Validate(); err != nil {
		return nil, err
	}

	return profile, nil
}

// Validate checks if the LearnerProfile has valid data.
// Returns an error if any field fails validation.
func (p *LearnerProfile) Validate() error {
	if p.UserID == uuid.Nil {
		return ErrEmptyProfileUserID
	}

	if p.Streak < 0 {
		return ErrNegativeStreak
	}

	if p.TotalPractices < 0 || p.TotalCorrect < 0 || p.TotalQuestions < 0 {
		return ErrNegativeTotals
	}

	return nil
}

// Clone returns a deep copy of the profile, including the daily history and
// its per-day verb ID sets.
func (p *LearnerProfile) Clone() *LearnerProfile {
	clone := *p
	clone.DailyHistory = make([]DailyStat, len(p.DailyHistory))
	for i, day := range p.DailyHistory {
		copied := day
		copied.VerbIDs = append([]uuid.UUID(nil), day.VerbIDs...)
		clone.DailyHistory[i] = copied
	}
	return &clone
}
