package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// VerbClass identifies the morphological class of a verb, which determines
// the conjugation rule set that applies to it.
type VerbClass string

// The closed set of verb classes.
const (
	// ClassIchidan covers verbs that conjugate by dropping the final る
	// and appending fixed suffixes, with no stem sound change.
	ClassIchidan VerbClass = "ichidan"

	// ClassGodan covers verbs whose final u-row mora selects a euphonic
	// rule row for stem derivation.
	ClassGodan VerbClass = "godan"

	// ClassIrregular covers する and くる (and compounds ending in them),
	// whose conjugations are table-driven.
	ClassIrregular VerbClass = "irregular"
)

// Frequency buckets for the verb catalog.
const (
	FrequencyHigh   = "high"
	FrequencyMedium = "medium"
	FrequencyLow    = "low"
)

// Verb-specific validation errors.
var (
	ErrVerbIDEmpty         = errors.New("verb ID cannot be empty")
	ErrVerbKanaEmpty       = errors.New("verb kana reading cannot be empty")
	ErrVerbMeaningEmpty    = errors.New("verb meaning cannot be empty")
	ErrInvalidVerbClass    = errors.New("verb class must be ichidan, godan or irregular")
	ErrInvalidFrequency    = errors.New("verb frequency must be high, medium or low")
	ErrInvalidTransitivity = errors.New("verb transitivity must be transitive, intransitive or both")
)

// VerbExample is a usage example attached to a catalog entry.
type VerbExample struct {
	Japanese string `json:"ja"`
	Gloss    string `json:"gloss"`
}

// Verb is a catalog entry for a single verb. The Kana reading is the
// substrate conjugation operates on; Kanji and Romaji are display forms.
type Verb struct {
	ID           uuid.UUID     `json:"id"`
	Kanji        string        `json:"kanji"`
	Kana         string        `json:"kana"`
	Romaji       string        `json:"romaji"`
	Class        VerbClass     `json:"class"`
	Meaning      string        `json:"meaning"`
	Frequency    string        `json:"frequency,omitempty"`
	Transitivity string        `json:"transitivity,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	Examples     []VerbExample `json:"examples,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// NewVerb creates a catalog entry with a fresh ID and timestamps.
// Returns an error if validation fails.
func NewVerb(kanji, kana, romaji string, class VerbClass, meaning string) (*Verb, error) {
	now := time.Now().UTC()
	verb := &Verb{
		ID:        uuid.New(),
		Kanji:     kanji,
		Kana:      kana,
		Romaji:    romaji,
		Class:     class,
		Meaning:   meaning,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := verb.Validate(); err != nil {
		return nil, err
	}

	return verb, nil
}

// Validate checks if the Verb has valid data.
// Returns an error if any field fails validation.
func (v *Verb) Validate() error {
	if v.ID == uuid.Nil {
		return ErrVerbIDEmpty
	}

	if v.Kana == "" {
		return ErrVerbKanaEmpty
	}

	if v.Meaning == "" {
		return ErrVerbMeaningEmpty
	}

	switch v.Class {
	case ClassIchidan, ClassGodan, ClassIrregular:
	default:
		return ErrInvalidVerbClass
	}

	switch v.Frequency {
	case "", FrequencyHigh, FrequencyMedium, FrequencyLow:
	default:
		return ErrInvalidFrequency
	}

	switch v.Transitivity {
	case "", "transitive", "intransitive", "both":
	default:
		return ErrInvalidTransitivity
	}

	return nil
}
