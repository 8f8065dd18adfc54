package conjugation

import (
	"fmt"
	"strings"

	"github.com/benkyo/doushi-api/internal/domain"
)

// stems holds everything needed to assemble the 18 forms of one verb:
// the dictionary form, the i-row stem (formal forms, desire), the a-row
// stem (negative forms), the complete te and ta forms, and the complete
// informal volitional.
type stems struct {
	dictionary string
	masu       string
	nai        string
	te         string
	ta         string
	volitional string
}

// godanRule is one euphonic rule row, selected by a godan verb's final mora.
// aRow and iRow replace the final mora for the nai and masu stems; te and ta
// are the sound-shifted suffixes appended to the bare stem.
type godanRule struct {
	aRow string
	iRow string
	oRow string
	te   string
	ta   string
}

// godanRules maps each of the nine u-row endings to its rule row.
// The te/ta columns follow the three-way euphonic grouping:
// う・つ・る geminate to って/った, む・ぶ・ぬ nasalize to んで/んだ,
// く and ぐ shift to いて/いた and いで/いだ, す to して/した.
var godanRules = map[rune]godanRule{
	'う': {aRow: "わ", iRow: "い", oRow: "お", te: "って", ta: "った"},
	'つ': {aRow: "た", iRow: "ち", oRow: "と", te: "って", ta: "った"},
	'る': {aRow: "ら", iRow: "り", oRow: "ろ", te: "って", ta: "った"},
	'む': {aRow: "ま", iRow: "み", oRow: "も", te: "んで", ta: "んだ"},
	'ぶ': {aRow: "ば", iRow: "び", oRow: "ぼ", te: "んで", ta: "んだ"},
	'ぬ': {aRow: "な", iRow: "に", oRow: "の", te: "んで", ta: "んだ"},
	'く': {aRow: "か", iRow: "き", oRow: "こ", te: "いて", ta: "いた"},
	'ぐ': {aRow: "が", iRow: "ぎ", oRow: "ご", te: "いで", ta: "いだ"},
	'す': {aRow: "さ", iRow: "し", oRow: "そ", te: "して", ta: "した"},
}

// ichidanStems derives the stem set for an ichidan verb: strip the final
// る, append fixed suffixes. No stem-internal sound change.
func ichidanStems(reading string) (stems, error) {
	runes := []rune(reading)
	if runes[len(runes)-1] != 'る' {
		return stems{}, fmt.Errorf("%w: ichidan reading %q does not end in る",
			ErrInvalidMorphology, reading)
	}

	stem := string(runes[:len(runes)-1])
	return stems{
		dictionary: reading,
		masu:       stem,
		nai:        stem,
		te:         stem + "て",
		ta:         stem + "た",
		volitional: stem + "よう",
	}, nil
}

// godanStems derives the stem set for a godan verb from its euphonic rule
// row. 行く is the single lexical exception: the く-row rule would yield
// いいて/いいた, but its true te and ta forms geminate to いって/いった.
// Overriding the two stems here also corrects every form built from them.
func godanStems(reading string) (stems, error) {
	runes := []rune(reading)
	ending := runes[len(runes)-1]

	rule, ok := godanRules[ending]
	if !ok {
		return stems{}, fmt.Errorf("%w: godan reading %q does not end in a u-row mora",
			ErrInvalidMorphology, reading)
	}

	stem := string(runes[:len(runes)-1])
	s := stems{
		dictionary: reading,
		masu:       stem + rule.iRow,
		nai:        stem + rule.aRow,
		te:         stem + rule.te,
		ta:         stem + rule.ta,
		volitional: stem + rule.oRow + "う",
	}

	if reading == ikuReading {
		s.te = stem + "って"
		s.ta = stem + "った"
	}

	return s, nil
}

// irregularStems resolves する and くる by their hand-specified tables,
// including compounds ending in them (勉強する, 持ってくる). Anything else
// in the irregular class falls back to the godan rule path for safety,
// treated as ending in its final godan-compatible mora.
func irregularStems(reading string) (stems, error) {
	if prefix, ok := strings.CutSuffix(reading, suruReading); ok {
		return prefixStems(prefix, suruStems), nil
	}

	if prefix, ok := strings.CutSuffix(reading, kuruReading); ok {
		return prefixStems(prefix, kuruStems), nil
	}
	if prefix, ok := strings.CutSuffix(reading, kuruKanji); ok {
		s := prefixStems(prefix, kuruStems)
		// Derived forms stay in kana, but the dictionary form keeps the
		// caller's 来る spelling so the input surface round-trips.
		s.dictionary = reading
		return s, nil
	}

	return godanStems(reading)
}

// prefixStems prepends a compound's prefix to every stem of the base table.
func prefixStems(prefix string, base stems) stems {
	if prefix == "" {
		return base
	}
	return stems{
		dictionary: prefix + base.dictionary,
		masu:       prefix + base.masu,
		nai:        prefix + base.nai,
		te:         prefix + base.te,
		ta:         prefix + base.ta,
		volitional: prefix + base.volitional,
	}
}

// deriveStems dispatches on the verb class.
func deriveStems(reading string, class domain.VerbClass) (stems, error) {
	switch class {
	case domain.ClassIchidan:
		return ichidanStems(reading)
	case domain.ClassGodan:
		return godanStems(reading)
	case domain.ClassIrregular:
		return irregularStems(reading)
	default:
		return stems{}, fmt.Errorf("%w: unknown verb class %q", ErrInvalidMorphology, class)
	}
}
