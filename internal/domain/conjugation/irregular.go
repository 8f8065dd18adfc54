package conjugation

// The two irregular lexical items and the one godan lexical exception.
const (
	suruReading = "する"
	kuruReading = "くる"
	kuruKanji   = "来る"
	ikuReading  = "いく"
)

// suruStems is the hand-specified stem table for する. Its te form is して,
// not a euphonic derivation from the す-row.
var suruStems = stems{
	dictionary: "する",
	masu:       "し",
	nai:        "し",
	te:         "して",
	ta:         "した",
	volitional: "しよう",
}

// kuruStems is the hand-specified stem table for くる. The stem vowel
// changes between rows: き for the formal and te/ta stems, こ for the
// negative stem and the volitional (こない and こよう, never きない or きよう).
var kuruStems = stems{
	dictionary: "くる",
	masu:       "き",
	nai:        "こ",
	te:         "きて",
	ta:         "きた",
	volitional: "こよう",
}
