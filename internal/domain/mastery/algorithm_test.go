package mastery

import (
	"testing"
	"time"

	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestApplyOutcomeCorrect(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		score    float64
		weight   float64
		expected float64
	}{
		{name: "simple recognition drill", score: 0, weight: 0.5, expected: 0.5},
		{name: "standard drill", score: 0, weight: 1, expected: 1},
		{name: "hard production drill", score: 3, weight: 2, expected: 5},
		{name: "clamped at max", score: 9.5, weight: 2, expected: 10},
		{name: "recovering from negative", score: -5, weight: 1, expected: -4},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := applyOutcome(tc.score, true, tc.weight, params)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestApplyOutcomeIncorrectTiers(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		name     string
		score    float64
		expected float64
	}{
		{name: "high mastery loses two", score: 10, expected: 8},
		{name: "high mastery floors at six", score: 8, expected: 6},
		{name: "mid mastery loses one", score: 5, expected: 4},
		{name: "mid mastery floors at zero", score: 4, expected: 3},
		{name: "learning tier loses half", score: 2, expected: 1.5},
		{name: "learning tier at zero", score: 0, expected: -0.5},
		{name: "negative tier loses one", score: -2, expected: -3},
		{name: "negative tier floors at minimum", score: -4.5, expected: -5},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := applyOutcome(tc.score, false, 1, params)
			assert.InDelta(t, tc.expected, got, 1e-9)
		})
	}
}

func TestReviewInterval(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	testCases := []struct {
		score float64
		days  int
	}{
		{score: -5, days: 0},
		{score: -3, days: 0},
		{score: -2.5, days: 1},
		{score: -1, days: 1},
		{score: 0, days: 2},
		{score: 1, days: 2},
		{score: 2, days: 4},
		{score: 3, days: 4},
		{score: 4, days: 7},
		{score: 6, days: 14},
		{score: 8, days: 21},
		{score: 9, days: 21},
		{score: 9.5, days: 30},
		{score: 10, days: 30},
	}

	for _, tc := range testCases {
		assert.Equalf(t, tc.days, reviewInterval(tc.score, params),
			"score %.2f", tc.score)
	}
}

func TestNextStreak(t *testing.T) {
	t.Parallel()

	today := domain.NewDate(2026, time.March, 10)

	testCases := []struct {
		name      string
		streak    int
		lastStudy domain.Date
		expected  int
	}{
		{name: "same day leaves streak unchanged", streak: 4, lastStudy: today, expected: 4},
		{name: "consecutive day extends streak", streak: 4, lastStudy: today.AddDays(-1), expected: 5},
		{name: "gap resets streak", streak: 4, lastStudy: today.AddDays(-3), expected: 1},
		{name: "first ever practice starts at one", streak: 0, lastStudy: domain.Date{}, expected: 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, nextStreak(tc.streak, tc.lastStudy, today))
		})
	}
}

func TestUpdateDailyHistory(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	today := domain.NewDate(2026, time.March, 10)
	verbA := uuid.New()
	verbB := uuid.New()

	var history []domain.DailyStat
	history = updateDailyHistory(history, verbA, true, today, params)
	history = updateDailyHistory(history, verbA, false, today, params)
	history = updateDailyHistory(history, verbB, true, today, params)

	assert.Len(t, history, 1)
	assert.Equal(t, today, history[0].Date)
	assert.Equal(t, 3, history[0].Questions)
	assert.Equal(t, 2, history[0].Correct)
	assert.ElementsMatch(t, []uuid.UUID{verbA, verbB}, history[0].VerbIDs)
}

func TestUpdateDailyHistoryTruncates(t *testing.T) {
	t.Parallel()
	params := NewDefaultParams()

	start := domain.NewDate(2026, time.January, 1)
	verbID := uuid.New()

	var history []domain.DailyStat
	days := params.DailyHistoryLimit + 30
	for i := 0; i < days; i++ {
		history = updateDailyHistory(history, verbID, true, start.AddDays(i), params)
	}

	assert.Len(t, history, params.DailyHistoryLimit)

	// The window holds the most recent dates, oldest dropped first.
	oldestKept := start.AddDays(days - params.DailyHistoryLimit)
	assert.Equal(t, oldestKept, history[0].Date)
	assert.Equal(t, start.AddDays(days-1), history[len(history)-1].Date)
}
