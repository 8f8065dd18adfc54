// Package mastery implements the per-verb proficiency scoring and
// spaced-repetition scheduling engine.
//
// Every practice attempt transforms a (StudyRecord, LearnerProfile)
// snapshot into a new snapshot: the mastery score moves by the exercise's
// difficulty weight on a correct answer or by a tiered penalty on an
// incorrect one, the next review date follows a step function of the
// updated score, and the profile's streak, totals and rolling daily
// history are maintained. All functions are pure; callers own persistence
// and must apply returned snapshots atomically.
package mastery
