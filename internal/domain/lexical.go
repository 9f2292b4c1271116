package domain

import (
	"time"

	"github.com/google/uuid"
)

// LexicalEntry is a persisted canonical dictionary entry: one base form
// of one word class. The inflectional paradigm itself lives in the
// in-memory paradigm store; the persisted entry only carries what the
// extraction pipeline needs to link occurrences back to a word.
type LexicalEntry struct {
	ID                 uuid.UUID
	WordClass          WordClass
	BaseForm           string
	BaseFormNormalized string
	Level              string
	CreatedAt          time.Time
}

// PracticedWord records that a user has practiced a base form.
// Practiced words count as prior exposure.
type PracticedWord struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	WordClass   WordClass
	BaseForm    string
	PracticedAt time.Time
}
