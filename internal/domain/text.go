package domain

import (
	"time"

	"github.com/google/uuid"
)

// SavedText is a processed text stored for later review.
type SavedText struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Content     string
	Level       string
	Excerpt     string
	WordCount   int
	ReadingTime int
	CreatedAt   time.Time

	Stats *TextStats
}

// TextStats is the persisted stats block of a saved text.
type TextStats struct {
	SavedTextID         uuid.UUID
	TotalWords          int
	Verbs               int
	Nouns               int
	Adjectives          int
	Adverbs             int
	NewWords            int
	PracticedWords      int
	KnownFromOtherTexts int
	LevelA1             int
	LevelA2             int
	LevelB1             int
	LevelB2Plus         int
}

// ExtractedWord is one persisted word occurrence of a saved text.
// EntryID is nil for adverbs and for words whose entry creation failed.
type ExtractedWord struct {
	ID          uuid.UUID
	SavedTextID uuid.UUID
	EntryID     *uuid.UUID

	WordClass    WordClass
	BaseForm     string
	OriginalForm string
	Level        string
	Tense        string
	Gender       string
	Case         string
	Translation  string

	IsNew   bool
	IsKnown bool

	Sentence            string
	SentenceTranslation string
	CreatedAt           time.Time
}
