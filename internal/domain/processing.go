package domain

// Features are the inflectional facts resolved for a matched token.
// Fields that do not apply to the word class are empty; fields that
// apply but could not be resolved hold "unknown".
type Features struct {
	Tense  string
	Gender string
	Case   string
}

// ExtractionCandidate is the classification result for one token
// occurrence. Never mutated after creation.
type ExtractionCandidate struct {
	BaseForm     string
	OriginalForm string
	WordClass    WordClass
	Level        string
	Features     Features
	Translation  string

	IsNew          bool
	IsKnown        bool
	IsRepeatInText bool

	Sentence            string
	SentenceTranslation string
}

// SentenceWord is the per-sentence annotation of one classified token.
type SentenceWord struct {
	BaseForm  string
	WordClass WordClass
}

// ProcessedSentence is one sentence of the input with its translation
// and word annotations.
type ProcessedSentence struct {
	German  string
	English string
	Words   []SentenceWord
}

// ProcessingStats is the aggregate count block of a processing run.
type ProcessingStats struct {
	TotalWords int

	Verbs      int
	Nouns      int
	Adjectives int
	Adverbs    int

	NewWords      int
	NewVerbs      int
	NewNouns      int
	NewAdjectives int
	ExistingWords int

	LevelA1     int
	LevelA2     int
	LevelB1     int
	LevelB2Plus int
}

// ExtractedWords holds the raw, non-deduplicated extraction lists per
// word class. Display-side dedup happens at presentation time; dedup
// for persistence is the planner's job.
type ExtractedWords struct {
	Verbs      []ExtractionCandidate
	Nouns      []ExtractionCandidate
	Adjectives []ExtractionCandidate
	Adverbs    []ExtractionCandidate
}

// ProcessingResult is the complete output of one text-processing run.
type ProcessingResult struct {
	Stats          ProcessingStats
	ExtractedWords ExtractedWords
	Sentences      []ProcessedSentence
}

// InOrder returns the candidates in persistence encounter order:
// verbs, then nouns, then adjectives, then adverbs, each list in
// extraction order.
func (w ExtractedWords) InOrder() []ExtractionCandidate {
	out := make([]ExtractionCandidate, 0, len(w.Verbs)+len(w.Nouns)+len(w.Adjectives)+len(w.Adverbs))
	out = append(out, w.Verbs...)
	out = append(out, w.Nouns...)
	out = append(out, w.Adjectives...)
	out = append(out, w.Adverbs...)
	return out
}
