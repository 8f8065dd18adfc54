package mastery

import (
	"github.com/benkyo/doushi-api/internal/domain"
	"github.com/google/uuid"
)

// applyOutcome computes the new mastery score from the current score and a
// practice outcome. Correct answers add the exercise's difficulty weight;
// incorrect answers subtract the penalty of the tier the current score
// falls in, bounded by that tier's floor. The result is always clamped to
// [params.MinScore, params.MaxScore].
func applyOutcome(score float64, correct bool, difficultyWeight float64, params *Params) float64 {
	if correct {
		return clamp(score+difficultyWeight, params.MinScore, params.MaxScore)
	}

	for _, tier := range params.PenaltyTiers {
		if score >= tier.MinScore {
			dropped := score - tier.Penalty
			if dropped < tier.Floor {
				dropped = tier.Floor
			}
			return clamp(dropped, params.MinScore, params.MaxScore)
		}
	}

	// Score below the lowest tier bound; clamp handles it.
	return clamp(score, params.MinScore, params.MaxScore)
}

// reviewInterval maps a post-update mastery score to the number of days
// until the next review.
func reviewInterval(score float64, params *Params) int {
	for _, step := range params.IntervalSteps {
		if score <= step.UpTo {
			return step.Days
		}
	}
	return params.MaxDays
}

// nextRecord produces the updated study record for one practice attempt.
// A nil current record means the verb's first-ever practice: counts and
// score start at zero before the update applies.
func nextRecord(
	current *domain.StudyRecord,
	userID, verbID uuid.UUID,
	correct bool,
	today domain.Date,
	difficultyWeight float64,
	params *Params,
) *domain.StudyRecord {
	record := &domain.StudyRecord{UserID: userID, VerbID: verbID}
	if current != nil {
		record = current.Clone()
	}

	record.TimesReviewed++
	if correct {
		record.CorrectCount++
	} else {
		record.IncorrectCount++
	}

	record.MasteryScore = applyOutcome(record.MasteryScore, correct, difficultyWeight, params)
	record.LastStudied = today
	record.NextReviewDate = today.AddDays(reviewInterval(record.MasteryScore, params))

	return record
}

// nextProfile produces the updated learner profile for one practice
// attempt: streak, running totals and the rolling daily history.
func nextProfile(
	current *domain.LearnerProfile,
	userID, verbID uuid.UUID,
	correct bool,
	today domain.Date,
	params *Params,
) *domain.LearnerProfile {
	profile := &domain.LearnerProfile{UserID: userID, DailyHistory: []domain.DailyStat{}}
	if current != nil {
		profile = current.Clone()
	}

	profile.Streak = nextStreak(profile.Streak, profile.LastStudyDate, today)
	profile.LastStudyDate = today

	profile.TotalPractices++
	profile.TotalQuestions++
	if correct {
		profile.TotalCorrect++
	}

	profile.DailyHistory = updateDailyHistory(profile.DailyHistory, verbID, correct, today, params)

	return profile
}

// nextStreak applies the consecutive-day rule: same day leaves the streak
// unchanged, the day after the last study extends it, and any gap (or the
// first-ever practice) resets it to 1.
func nextStreak(streak int, lastStudy, today domain.Date) int {
	switch {
	case lastStudy == today:
		return streak
	case lastStudy == today.AddDays(-1):
		return streak + 1
	default:
		return 1
	}
}

// updateDailyHistory finds or creates today's aggregate, increments its
// counters, records the verb if unseen today, and truncates the history to
// the most recent params.DailyHistoryLimit entries by date, dropping the
// oldest first.
func updateDailyHistory(
	history []domain.DailyStat,
	verbID uuid.UUID,
	correct bool,
	today domain.Date,
	params *Params,
) []domain.DailyStat {
	idx := -1
	for i := range history {
		if history[i].Date == today {
			idx = i
			break
		}
	}

	if idx == -1 {
		history = append(history, domain.DailyStat{Date: today})
		idx = len(history) - 1
		// Keep the history ordered by date even if today's entry was
		// created after a backdated one.
		for idx > 0 && history[idx-1].Date.After(history[idx].Date) {
			history[idx-1], history[idx] = history[idx], history[idx-1]
			idx--
		}
	}

	history[idx].Questions++
	if correct {
		history[idx].Correct++
	}
	if !history[idx].ContainsVerb(verbID) {
		history[idx].VerbIDs = append(history[idx].VerbIDs, verbID)
	}

	if overflow := len(history) - params.DailyHistoryLimit; overflow > 0 {
		history = history[overflow:]
	}

	return history
}

// clamp bounds v into [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
