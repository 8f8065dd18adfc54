package mastery

import (
	"testing"
	"time"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordPracticeFirstAttempt(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	userID := uuid.New()
	verbID := uuid.New()
	today := domain.NewDate(2026, time.March, 10)

	result, err := svc.RecordPractice(nil, nil, userID, verbID, true, today, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Record.TimesReviewed)
	assert.Equal(t, 1, result.Record.CorrectCount)
	assert.Equal(t, 0, result.Record.IncorrectCount)
	assert.InDelta(t, 1.0, result.Record.MasteryScore, 1e-9)
	assert.Equal(t, today, result.Record.LastStudied)

	// Score 1 falls in the two-day interval band.
	assert.Equal(t, today.AddDays(2), result.Record.NextReviewDate)

	assert.Equal(t, 1, result.Profile.Streak)
	assert.Equal(t, today, result.Profile.LastStudyDate)
	assert.Equal(t, 1, result.Profile.TotalPractices)
	assert.Equal(t, 1, result.Profile.TotalCorrect)
	assert.Equal(t, 1, result.Profile.TotalQuestions)
	require.Len(t, result.Profile.DailyHistory, 1)
	assert.Equal(t, []uuid.UUID{verbID}, result.Profile.DailyHistory[0].VerbIDs)
}

func TestRecordPracticeFirstIncorrect(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	today := domain.NewDate(2026, time.March, 10)
	result, err := svc.RecordPractice(nil, nil, uuid.New(), uuid.New(), false, today, 1)
	require.NoError(t, err)

	// A fresh record starts at zero, which sits in the gentle tier.
	assert.InDelta(t, -0.5, result.Record.MasteryScore, 1e-9)
	assert.Equal(t, 1, result.Record.IncorrectCount)
	assert.Equal(t, today.AddDays(1), result.Record.NextReviewDate)
}

func TestRecordPracticeInvalidInput(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	today := domain.NewDate(2026, time.March, 10)

	_, err := svc.RecordPractice(nil, nil, uuid.New(), uuid.New(), true, today, 0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RecordPractice(nil, nil, uuid.New(), uuid.New(), true, today, -1.5)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RecordPractice(nil, nil, uuid.New(), uuid.New(), true, domain.Date{}, 1)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.RecordPractice(nil, nil, uuid.Nil, uuid.New(), true, today, 1)
	assert.ErrorIs(t, err, ErrEmptyUserID)

	_, err = svc.RecordPractice(nil, nil, uuid.New(), uuid.Nil, true, today, 1)
	assert.ErrorIs(t, err, ErrEmptyVerbID)
}

func TestRecordPracticeDoesNotMutateInputs(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	userID := uuid.New()
	verbID := uuid.New()
	today := domain.NewDate(2026, time.March, 10)

	record := &domain.StudyRecord{
		UserID:        userID,
		VerbID:        verbID,
		TimesReviewed: 3,
		CorrectCount:  2,
		MasteryScore:  2,
		LastStudied:   today.AddDays(-1),
	}
	profile := &domain.LearnerProfile{
		UserID:        userID,
		Streak:        3,
		LastStudyDate: today.AddDays(-1),
		DailyHistory: []domain.DailyStat{
			{Date: today.AddDays(-1), Questions: 5, Correct: 4, VerbIDs: []uuid.UUID{verbID}},
		},
		TotalPractices: 5,
	}

	recordBefore := *record
	profileStreakBefore := profile.Streak
	historyLenBefore := len(profile.DailyHistory)

	result, err := svc.RecordPractice(profile, record, userID, verbID, true, today, 1)
	require.NoError(t, err)

	assert.Equal(t, recordBefore, *record)
	assert.Equal(t, profileStreakBefore, profile.Streak)
	assert.Len(t, profile.DailyHistory, historyLenBefore)

	assert.Equal(t, 4, result.Record.TimesReviewed)
	assert.Equal(t, 4, result.Profile.Streak)
}

func TestMasteryScoreStaysBounded(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	userID := uuid.New()
	verbID := uuid.New()
	today := domain.NewDate(2026, time.January, 1)

	var record *domain.StudyRecord
	var profile *domain.LearnerProfile

	// A long run of maximum-weight correct answers never exceeds the cap.
	for i := 0; i < 50; i++ {
		result, err := svc.RecordPractice(profile, record, userID, verbID, true, today.AddDays(i), 2)
		require.NoError(t, err)
		record, profile = result.Record, result.Profile
		assert.LessOrEqual(t, record.MasteryScore, domain.MaxMasteryScore)
	}
	assert.InDelta(t, domain.MaxMasteryScore, record.MasteryScore, 1e-9)
	assert.Equal(t, today.AddDays(49).AddDays(30), record.NextReviewDate)

	// A long run of incorrect answers never drops below the floor.
	for i := 50; i < 120; i++ {
		result, err := svc.RecordPractice(profile, record, userID, verbID, false, today.AddDays(i), 2)
		require.NoError(t, err)
		record, profile = result.Record, result.Profile
		assert.GreaterOrEqual(t, record.MasteryScore, domain.MinMasteryScore)
	}
	assert.InDelta(t, domain.MinMasteryScore, record.MasteryScore, 1e-9)
}

func TestStreakAcrossDays(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	userID := uuid.New()
	verbID := uuid.New()
	start := domain.NewDate(2026, time.February, 1)

	var record *domain.StudyRecord
	var profile *domain.LearnerProfile

	// Practicing on consecutive days grows the streak by one per day.
	for i := 0; i < 5; i++ {
		result, err := svc.RecordPractice(profile, record, userID, verbID, true, start.AddDays(i), 1)
		require.NoError(t, err)
		record, profile = result.Record, result.Profile
		assert.Equal(t, i+1, profile.Streak)
	}

	// A second practice on the same day leaves the streak alone.
	result, err := svc.RecordPractice(profile, record, userID, verbID, true, start.AddDays(4), 1)
	require.NoError(t, err)
	record, profile = result.Record, result.Profile
	assert.Equal(t, 5, profile.Streak)

	// Skipping a day resets to one.
	result, err = svc.RecordPractice(profile, record, userID, verbID, true, start.AddDays(6), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Profile.Streak)
}

func TestDailyHistoryWindowProperty(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	userID := uuid.New()
	verbID := uuid.New()
	start := domain.NewDate(2025, time.June, 1)

	var record *domain.StudyRecord
	var profile *domain.LearnerProfile

	days := domain.DailyHistoryLimit + 40
	for i := 0; i < days; i++ {
		result, err := svc.RecordPractice(profile, record, userID, verbID, true, start.AddDays(i), 1)
		require.NoError(t, err)
		record, profile = result.Record, result.Profile
		assert.LessOrEqual(t, len(profile.DailyHistory), domain.DailyHistoryLimit)
	}

	require.Len(t, profile.DailyHistory, domain.DailyHistoryLimit)
	assert.Equal(t, start.AddDays(days-domain.DailyHistoryLimit), profile.DailyHistory[0].Date)
	assert.Equal(t, start.AddDays(days-1), profile.DailyHistory[len(profile.DailyHistory)-1].Date)
}

func TestReviewIntervalDays(t *testing.T) {
	t.Parallel()
	svc := NewDefaultService()

	assert.Equal(t, 0, svc.ReviewIntervalDays(-4))
	assert.Equal(t, 2, svc.ReviewIntervalDays(0.5))
	assert.Equal(t, 30, svc.ReviewIntervalDays(10))
}
