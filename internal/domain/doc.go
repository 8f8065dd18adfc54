// Package domain defines the core business entities of the verb study
// application: the verb catalog, per-verb study records, the aggregate
// learner profile, and registered users. Entities are plain values with
// explicit validation; all scheduling and conjugation logic lives in the
// subpackages conjugation and mastery.
package domain
