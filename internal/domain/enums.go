package domain

// WordClass represents the grammatical category assigned to a token.
//
// Tokens that match no paradigm fall through to WordClassAdverb — the
// catch-all class for everything without a dedicated paradigm table.
type WordClass string

const (
	WordClassVerb      WordClass = "VERB"
	WordClassNoun      WordClass = "NOUN"
	WordClassAdjective WordClass = "ADJ"
	WordClassAdverb    WordClass = "ADV"
)

func (c WordClass) String() string { return string(c) }

func (c WordClass) IsValid() bool {
	switch c {
	case WordClassVerb, WordClassNoun, WordClassAdjective, WordClassAdverb:
		return true
	}
	return false
}

// HasEntryTable reports whether the class is backed by lexical entries.
// Adverbs are not: their extracted-word records carry no entry link.
func (c WordClass) HasEntryTable() bool {
	return c == WordClassVerb || c == WordClassNoun || c == WordClassAdjective
}

// LevelBucket is a coarse CEFR histogram bucket.
type LevelBucket string

const (
	LevelBucketA1     LevelBucket = "A1"
	LevelBucketA2     LevelBucket = "A2"
	LevelBucketB1     LevelBucket = "B1"
	LevelBucketB2Plus LevelBucket = "B2+"
)

// BucketLevel collapses a CEFR level string into a histogram bucket.
// Anything outside A1/A2/B1 (B2, C1, C2, unknown) lands in B2+.
func BucketLevel(level string) LevelBucket {
	switch level {
	case "A1":
		return LevelBucketA1
	case "A2":
		return LevelBucketA2
	case "B1":
		return LevelBucketB1
	default:
		return LevelBucketB2Plus
	}
}

// GuessLevel estimates a CEFR level for words outside the dictionary,
// using word length as the heuristic.
func GuessLevel(word string) string {
	switch n := len([]rune(word)); {
	case n <= 4:
		return "A1"
	case n <= 6:
		return "A2"
	case n <= 8:
		return "B1"
	default:
		return "B2"
	}
}
