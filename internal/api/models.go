package api

import (
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/benkyo/doushi-api/internal/domain/conjugation"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// Request/response structures shared by the API handlers.

// RegisterRequest is the payload for user registration.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=12,max=72"`
}

// LoginRequest is the payload for user login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse is the successful response for authentication endpoints.
type AuthResponse struct {
	UserID       uuid.UUID `json:"user_id"`
	AccessToken  string    `json:"token"`
	RefreshToken string    `json:"refresh_token,omitempty"`
	ExpiresAt    string    `json:"expires_at,omitempty"`
}

// RefreshTokenRequest is the payload for the token refresh endpoint.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// RefreshTokenResponse is the successful response for the token refresh
// endpoint.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    string `json:"expires_at"`
}

// VerbResponse is one catalog entry.
type VerbResponse struct {
	ID           uuid.UUID            `json:"id"`
	Kanji        string               `json:"kanji,omitempty"`
	Kana         string               `json:"kana"`
	Romaji       string               `json:"romaji,omitempty"`
	Class        string               `json:"class"`
	Meaning      string               `json:"meaning"`
	Frequency    string               `json:"frequency,omitempty"`
	Transitivity string               `json:"transitivity,omitempty"`
	Tags         []string             `json:"tags,omitempty"`
	Examples     []domain.VerbExample `json:"examples,omitempty"`
}

// NewVerbResponse maps a catalog entry to its API shape.
func NewVerbResponse(verb *domain.Verb) VerbResponse {
	return VerbResponse{
		ID:           verb.ID,
		Kanji:        verb.Kanji,
		Kana:         verb.Kana,
		Romaji:       verb.Romaji,
		Class:        string(verb.Class),
		Meaning:      verb.Meaning,
		Frequency:    verb.Frequency,
		Transitivity: verb.Transitivity,
		Tags:         verb.Tags,
		Examples:     verb.Examples,
	}
}

// NewVerbListResponse maps a catalog listing to its API shape.
func NewVerbListResponse(verbs []*domain.Verb) []VerbResponse {
	return lo.Map(verbs, func(verb *domain.Verb, _ int) VerbResponse {
		return NewVerbResponse(verb)
	})
}

// FormResponse is one conjugated form.
type FormResponse struct {
	Form    string `json:"form"`
	Surface string `json:"surface"`
}

// ConjugationsResponse carries a verb's full conjugation set, in the
// engine's fixed enumeration order.
type ConjugationsResponse struct {
	VerbID uuid.UUID      `json:"verb_id"`
	Kana   string         `json:"kana"`
	Class  string         `json:"class"`
	Forms  []FormResponse `json:"forms"`
}

// NewConjugationsResponse maps derived forms to their API shape.
func NewConjugationsResponse(verb *domain.Verb, forms []conjugation.Form) ConjugationsResponse {
	return ConjugationsResponse{
		VerbID: verb.ID,
		Kana:   verb.Kana,
		Class:  string(verb.Class),
		Forms: lo.Map(forms, func(f conjugation.Form, _ int) FormResponse {
			return FormResponse{Form: string(f.Key), Surface: f.Surface}
		}),
	}
}

// PracticeRequest is the payload for a practice submission. LocalDate is
// the learner's calendar date; the server never derives it from UTC.
// A zero DifficultyWeight defaults to 1.
type PracticeRequest struct {
	VerbID           uuid.UUID `json:"verb_id"           validate:"required"`
	Correct          bool      `json:"correct"`
	DifficultyWeight float64   `json:"difficulty_weight" validate:"gte=0"`
	LocalDate        string    `json:"local_date"        validate:"required"`
}

// StudyRecordResponse is the API shape of one study record.
type StudyRecordResponse struct {
	VerbID         uuid.UUID `json:"verb_id"`
	TimesReviewed  int       `json:"times_reviewed"`
	CorrectCount   int       `json:"correct_count"`
	IncorrectCount int       `json:"incorrect_count"`
	MasteryScore   float64   `json:"mastery_score"`
	LastStudied    string    `json:"last_studied,omitempty"`
	NextReviewDate string    `json:"next_review_date,omitempty"`
}

// NewStudyRecordResponse maps a study record to its API shape.
func NewStudyRecordResponse(record *domain.StudyRecord) StudyRecordResponse {
	resp := StudyRecordResponse{
		VerbID:         record.VerbID,
		TimesReviewed:  record.TimesReviewed,
		CorrectCount:   record.CorrectCount,
		IncorrectCount: record.IncorrectCount,
		MasteryScore:   record.MasteryScore,
	}
	if !record.LastStudied.IsZero() {
		resp.LastStudied = record.LastStudied.String()
	}
	if !record.NextReviewDate.IsZero() {
		resp.NextReviewDate = record.NextReviewDate.String()
	}
	return resp
}

// DailyStatResponse is one day of aggregated practice.
type DailyStatResponse struct {
	Date      string `json:"date"`
	Questions int    `json:"questions"`
	Correct   int    `json:"correct"`
	Verbs     int    `json:"verbs"`
}

// ProfileResponse is the API shape of a learner profile.
type ProfileResponse struct {
	UserID         uuid.UUID           `json:"user_id"`
	Streak         int                 `json:"streak"`
	LastStudyDate  string              `json:"last_study_date,omitempty"`
	TotalPractices int                 `json:"total_practices"`
	TotalCorrect   int                 `json:"total_correct"`
	TotalQuestions int                 `json:"total_questions"`
	DailyHistory   []DailyStatResponse `json:"daily_history"`
}

// NewProfileResponse maps a learner profile to its API shape.
func NewProfileResponse(profile *domain.LearnerProfile) ProfileResponse {
	resp := ProfileResponse{
		UserID:         profile.UserID,
		Streak:         profile.Streak,
		TotalPractices: profile.TotalPractices,
		TotalCorrect:   profile.TotalCorrect,
		TotalQuestions: profile.TotalQuestions,
		DailyHistory: lo.Map(profile.DailyHistory, func(day domain.DailyStat, _ int) DailyStatResponse {
			return DailyStatResponse{
				Date:      day.Date.String(),
				Questions: day.Questions,
				Correct:   day.Correct,
				Verbs:     len(day.VerbIDs),
			}
		}),
	}
	if !profile.LastStudyDate.IsZero() {
		resp.LastStudyDate = profile.LastStudyDate.String()
	}
	return resp
}

// PracticeResponse carries the snapshots produced by one practice attempt.
type PracticeResponse struct {
	Record  StudyRecordResponse `json:"record"`
	Profile ProfileResponse     `json:"profile"`
}

// DueReviewsResponse lists the records scheduled for review.
type DueReviewsResponse struct {
	Date    string                `json:"date"`
	Records []StudyRecordResponse `json:"records"`
}
