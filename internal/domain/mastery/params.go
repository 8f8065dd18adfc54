package mastery

import "github.com/benkyo/doushi-api/internal/domain"

// PenaltyTier defines how an incorrect answer is scored for one band of
// pre-update mastery scores: the score drops by Penalty but never below
// Floor. High bands punish harder because a miss on a supposedly mastered
// verb says more than a miss while still learning.
type PenaltyTier struct {
	MinScore float64
	Penalty  float64
	Floor    float64
}

// IntervalStep maps a band of post-update mastery scores to the number of
// days until the next review. Steps are ordered by ascending UpTo; a score
// belongs to the first step whose UpTo it does not exceed.
type IntervalStep struct {
	UpTo float64
	Days int
}

// Params defines all configurable parameters for the mastery engine.
type Params struct {
	// Score bounds; every update clamps into [MinScore, MaxScore].
	MinScore float64
	MaxScore float64

	// PenaltyTiers, highest band first.
	PenaltyTiers []PenaltyTier

	// IntervalSteps, ascending. Scores above the last UpTo use MaxDays.
	IntervalSteps []IntervalStep
	MaxDays       int

	// DailyHistoryLimit caps the profile's per-day history length.
	DailyHistoryLimit int
}

// ParamsConfig allows overriding defaults when constructing Params.
// Zero-valued fields keep their defaults.
type ParamsConfig struct {
	MinScore          float64
	MaxScore          float64
	DailyHistoryLimit int
}

// NewDefaultParams returns the canonical parameter set: fractional scores
// in [-5, 10], tiered incorrect penalties, and review intervals stepping
// from same-day up to 30 days.
func NewDefaultParams() *Params {
	return &Params{
		MinScore: domain.MinMasteryScore,
		MaxScore: domain.MaxMasteryScore,

		PenaltyTiers: []PenaltyTier{
			{MinScore: 8, Penalty: 2, Floor: 6},
			{MinScore: 4, Penalty: 1, Floor: 0},
			{MinScore: 0, Penalty: 0.5, Floor: domain.MinMasteryScore},
			{MinScore: domain.MinMasteryScore, Penalty: 1, Floor: domain.MinMasteryScore},
		},

		IntervalSteps: []IntervalStep{
			{UpTo: -3, Days: 0},
			{UpTo: -1, Days: 1},
			{UpTo: 1, Days: 2},
			{UpTo: 3, Days: 4},
			{UpTo: 5, Days: 7},
			{UpTo: 7, Days: 14},
			{UpTo: 9, Days: 21},
		},
		MaxDays: 30,

		DailyHistoryLimit: domain.DailyHistoryLimit,
	}
}

// NewParams returns Params with the given overrides applied to defaults.
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	if config.MinScore != 0 {
		params.MinScore = config.MinScore
	}
	if config.MaxScore != 0 {
		params.MaxScore = config.MaxScore
	}
	if config.DailyHistoryLimit > 0 {
		params.DailyHistoryLimit = config.DailyHistoryLimit
	}

	return params
}
