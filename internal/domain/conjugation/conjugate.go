package conjugation

import (
	"errors"
	"fmt"

	"github.com/benkyo/doushi-api/internal/domain"
)

// ErrInvalidMorphology is returned when a reading is empty, too short to
// carry a stem, or inconsistent with its declared verb class.
var ErrInvalidMorphology = errors.New("invalid verb morphology")

// minReadingRunes is the shortest conjugable reading: one stem mora plus
// the final u-row mora.
const minReadingRunes = 2

// Conjugate derives all 18 conjugated forms of a verb from its
// dictionary-form kana reading and morphological class. The result is
// ordered by AllFormKeys and is identical for identical inputs.
//
// Returns ErrInvalidMorphology when the class is outside the closed set or
// the reading is empty or inconsistent with the class. Conjugation is total
// on valid input: there are no other error paths.
func Conjugate(reading string, class domain.VerbClass) ([]Form, error) {
	if reading == "" {
		return nil, fmt.Errorf("%w: empty reading", ErrInvalidMorphology)
	}
	if len([]rune(reading)) < minReadingRunes {
		return nil, fmt.Errorf("%w: reading %q has no stem", ErrInvalidMorphology, reading)
	}

	s, err := deriveStems(reading, class)
	if err != nil {
		return nil, err
	}

	return assembleForms(s), nil
}

// assembleForms builds the 18 surface forms from a stem set, in the fixed
// enumeration order. Every form is stem + constant suffix; the euphonic and
// lexical irregularities are already folded into the stems.
func assembleForms(s stems) []Form {
	surfaces := map[FormKey]string{
		FormMasuPresent:         s.masu + "ます",
		FormMasuPresentNegative: s.masu + "ません",
		FormMasuPast:            s.masu + "ました",
		FormMasuPastNegative:    s.masu + "ませんでした",
		FormInvitation:          s.masu + "ましょう",
		FormDesireFormal:        s.masu + "たいです",
		FormPermission:          s.te + "もいいです",
		FormProhibition:         s.te + "はいけません",
		FormProgressiveFormal:   s.te + "います",
		FormDictionary:          s.dictionary,
		FormPlainNegative:       s.nai + "ない",
		FormPlainPast:           s.ta,
		FormPlainPastNegative:   s.nai + "なかった",
		FormDesireInformal:      s.masu + "たい",
		FormInvitationInformal:  s.volitional,
		FormRequest:             s.te,
		FormNegativeRequest:     s.nai + "ないで",
		FormProgressiveInformal: s.te + "いる",
	}

	forms := make([]Form, 0, len(AllFormKeys))
	for _, key := range AllFormKeys {
		forms = append(forms, Form{Key: key, Surface: surfaces[key]})
	}
	return forms
}
