package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVerb(t *testing.T) {
	t.Parallel()

	verb, err := NewVerb("食べる", "たべる", "taberu", ClassIchidan, "to eat")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, verb.ID)
	assert.Equal(t, "たべる", verb.Kana)
	assert.Equal(t, ClassIchidan, verb.Class)
	assert.False(t, verb.CreatedAt.IsZero())
}

func TestVerbValidate(t *testing.T) {
	t.Parallel()

	valid := func() *Verb {
		return &Verb{
			ID:      uuid.New(),
			Kanji:   "飲む",
			Kana:    "のむ",
			Romaji:  "nomu",
			Class:   ClassGodan,
			Meaning: "to drink",
		}
	}

	testCases := []struct {
		name     string
		mutate   func(*Verb)
		expected error
	}{
		{name: "valid", mutate: func(v *Verb) {}, expected: nil},
		{name: "missing ID", mutate: func(v *Verb) { v.ID = uuid.Nil }, expected: ErrVerbIDEmpty},
		{name: "missing kana", mutate: func(v *Verb) { v.Kana = "" }, expected: ErrVerbKanaEmpty},
		{name: "missing meaning", mutate: func(v *Verb) { v.Meaning = "" }, expected: ErrVerbMeaningEmpty},
		{name: "bad class", mutate: func(v *Verb) { v.Class = "nidan" }, expected: ErrInvalidVerbClass},
		{name: "bad frequency", mutate: func(v *Verb) { v.Frequency = "sometimes" }, expected: ErrInvalidFrequency},
		{name: "bad transitivity", mutate: func(v *Verb) { v.Transitivity = "maybe" }, expected: ErrInvalidTransitivity},
		{name: "frequency bucket accepted", mutate: func(v *Verb) { v.Frequency = FrequencyHigh }, expected: nil},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			verb := valid()
			tc.mutate(verb)

			err := verb.Validate()
			if tc.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.expected)
			}
		})
	}
}
