// Package service provides application-level services coordinating the
// domain engines with persistence: practice submission, verb catalog
// access, conjugation rendering and learner profile management.
package service
