package texts

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// SaveText processes a text and persists it: the text row, its stats
// row, and one extracted-word record per candidate occurrence.
//
// Entry resolution runs once per unique (class, lowercase base form)
// pair, first occurrence wins; later occurrences of the pair reuse the
// resolved id. A failed entry creation is logged and the occurrence is
// stored without an entry link. Adverbs never link to an entry.
func (s *Service) SaveText(ctx context.Context, userID uuid.UUID, input SaveInput) (*domain.SavedText, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, userID, input.Text)
	if err != nil {
		return nil, fmt.Errorf("texts.SaveText process: %w", err)
	}

	now := time.Now().UTC()
	text := buildSavedText(userID, input, result, now)
	words := s.planWords(ctx, text.ID, result, now)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.texts.Create(txCtx, text); err != nil {
			return fmt.Errorf("create saved text: %w", err)
		}
		if err := s.words.BulkCreate(txCtx, words); err != nil {
			return fmt.Errorf("create extracted words: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("texts.SaveText: %w", err)
	}

	s.log.InfoContext(ctx, "text saved",
		slog.String("text_id", text.ID.String()),
		slog.Int("words", len(words)),
	)

	return text, nil
}

// planWords turns the extraction candidates into extracted-word rows,
// resolving each unique (class, base form) pair to a lexical entry
// exactly once.
func (s *Service) planWords(ctx context.Context, textID uuid.UUID, result *domain.ProcessingResult, now time.Time) []domain.ExtractedWord {
	candidates := result.ExtractedWords.InOrder()
	words := make([]domain.ExtractedWord, 0, len(candidates))
	resolved := make(map[string]*uuid.UUID, len(candidates))

	for _, cand := range candidates {
		var entryID *uuid.UUID
		if cand.WordClass.HasEntryTable() {
			key := cand.WordClass.String() + ":" + domain.NormalizeBaseForm(cand.BaseForm)
			id, ok := resolved[key]
			if !ok {
				id = s.resolveEntry(ctx, cand)
				resolved[key] = id
			}
			entryID = id
		}

		words = append(words, domain.ExtractedWord{
			ID:                  uuid.New(),
			SavedTextID:         textID,
			EntryID:             entryID,
			WordClass:           cand.WordClass,
			BaseForm:            cand.BaseForm,
			OriginalForm:        cand.OriginalForm,
			Level:               cand.Level,
			Tense:               cand.Features.Tense,
			Gender:              cand.Features.Gender,
			Case:                cand.Features.Case,
			Translation:         cand.Translation,
			IsNew:               cand.IsNew,
			IsKnown:             cand.IsKnown,
			Sentence:            cand.Sentence,
			SentenceTranslation: cand.SentenceTranslation,
			CreatedAt:           now,
		})
	}

	return words
}

// resolveEntry finds or creates the lexical entry for a candidate.
// Returns nil when resolution fails; the word is then stored without a
// link rather than failing the whole save.
func (s *Service) resolveEntry(ctx context.Context, cand domain.ExtractionCandidate) *uuid.UUID {
	existing, err := s.entries.FindByBaseForm(ctx, cand.WordClass, cand.BaseForm)
	if err == nil {
		return &existing.ID
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.log.WarnContext(ctx, "entry lookup failed, storing word without entry link",
			slog.String("word_class", cand.WordClass.String()),
			slog.String("base_form", cand.BaseForm),
			slog.String("error", err.Error()),
		)
		return nil
	}

	created, err := s.entries.Create(ctx, &domain.LexicalEntry{
		ID:                 uuid.New(),
		WordClass:          cand.WordClass,
		BaseForm:           cand.BaseForm,
		BaseFormNormalized: domain.NormalizeBaseForm(cand.BaseForm),
		Level:              cand.Level,
		CreatedAt:          time.Now().UTC(),
	})
	if err != nil {
		s.log.WarnContext(ctx, "entry creation failed, storing word without entry link",
			slog.String("word_class", cand.WordClass.String()),
			slog.String("base_form", cand.BaseForm),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return &created.ID
}

// buildSavedText assembles the text row and its stats block from the
// processing result.
func buildSavedText(userID uuid.UUID, input SaveInput, result *domain.ProcessingResult, now time.Time) *domain.SavedText {
	stats := result.Stats

	return &domain.SavedText{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       deriveTitle(input.Title, input.Text),
		Content:     input.Text,
		Level:       dominantLevel(stats),
		Excerpt:     excerpt(input.Text),
		WordCount:   stats.TotalWords,
		ReadingTime: readingTime(stats.TotalWords),
		CreatedAt:   now,
		Stats: &domain.TextStats{
			TotalWords:          stats.TotalWords,
			Verbs:               stats.Verbs,
			Nouns:               stats.Nouns,
			Adjectives:          stats.Adjectives,
			Adverbs:             stats.Adverbs,
			NewWords:            stats.NewWords,
			KnownFromOtherTexts: stats.ExistingWords,
			LevelA1:             stats.LevelA1,
			LevelA2:             stats.LevelA2,
			LevelB1:             stats.LevelB1,
			LevelB2Plus:         stats.LevelB2Plus,
		},
	}
}

// deriveTitle uses the provided title, falling back to the first words
// of the text.
func deriveTitle(title, text string) string {
	title = strings.TrimSpace(title)
	if title != "" {
		return title
	}
	return truncateRunes(strings.TrimSpace(text), 50)
}

// excerpt returns the first 100 characters of the text.
func excerpt(text string) string {
	return truncateRunes(strings.TrimSpace(text), 100)
}

// readingTime estimates minutes at 200 words per minute, minimum 1
// for non-empty texts.
func readingTime(words int) int {
	if words == 0 {
		return 0
	}
	return (words + 199) / 200
}

// dominantLevel picks the level bucket with the most occurrences,
// lower levels winning ties. Texts with no matched words default to A1.
func dominantLevel(stats domain.ProcessingStats) string {
	best, n := "A1", stats.LevelA1
	for _, c := range []struct {
		level string
		count int
	}{
		{"A2", stats.LevelA2},
		{"B1", stats.LevelB1},
		{"B2", stats.LevelB2Plus},
	} {
		if c.count > n {
			best, n = c.level, c.count
		}
	}
	return best
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "…"
}
