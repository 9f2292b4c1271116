package textproc

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/paradigm"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type exposureStore interface {
	// IsKnown reports whether the user has previously practiced or
	// encountered (in any saved text) this base form, case-insensitive.
	IsKnown(ctx context.Context, userID uuid.UUID, class domain.WordClass, baseForm string) (bool, error)
}

type translator interface {
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// ---------------------------------------------------------------------------
// Processor
// ---------------------------------------------------------------------------

// Processor runs the extraction pipeline: tokenize, match against the
// paradigm store, resolve features, classify novelty, aggregate.
type Processor struct {
	log        *slog.Logger
	store      *paradigm.Store
	exposure   exposureStore
	translator translator
}

// NewProcessor creates a Processor over a loaded paradigm store.
func NewProcessor(logger *slog.Logger, store *paradigm.Store, exposure exposureStore, tr translator) *Processor {
	return &Processor{
		log:        logger,
		store:      store,
		exposure:   exposure,
		translator: tr,
	}
}

// Process runs the pipeline for one text submission. Empty token
// sequences are a valid zero-result input, not an error. Exposure-store
// failures abort the run; translation failures degrade to a placeholder.
func (p *Processor) Process(ctx context.Context, userID uuid.UUID, text string) (*domain.ProcessingResult, error) {
	sentences := Tokenize(text)
	state := newRunState()

	result := &domain.ProcessingResult{
		ExtractedWords: domain.ExtractedWords{
			Verbs:      []domain.ExtractionCandidate{},
			Nouns:      []domain.ExtractionCandidate{},
			Adjectives: []domain.ExtractionCandidate{},
			Adverbs:    []domain.ExtractionCandidate{},
		},
		Sentences: []domain.ProcessedSentence{},
	}

	for _, s := range sentences {
		result.Stats.TotalWords += len(s.Words)
	}

	for _, sentence := range sentences {
		processed := domain.ProcessedSentence{
			German:  sentence.Text,
			English: p.translate(ctx, sentence.Text),
			Words:   []domain.SentenceWord{},
		}

		for _, word := range sentence.Words {
			class, match, ok := matchToken(p.store, word)
			if !ok {
				p.collectFallback(ctx, result, &processed, state, sentence.Text, processed.English, word)
				continue
			}

			cand, err := p.classify(ctx, userID, state, class, match, word, sentence.Text, processed.English)
			if err != nil {
				return nil, err
			}

			aggregate(result, cand)
			processed.Words = append(processed.Words, domain.SentenceWord{
				BaseForm:  cand.BaseForm,
				WordClass: class,
			})
		}

		result.Sentences = append(result.Sentences, processed)
	}

	return result, nil
}

// classify builds the extraction candidate for one matched token:
// features, novelty facts, and translations.
func (p *Processor) classify(
	ctx context.Context,
	userID uuid.UUID,
	state *runState,
	class domain.WordClass,
	match paradigm.Match,
	word, sentenceText, sentenceTranslation string,
) (domain.ExtractionCandidate, error) {
	baseForm := match.Entry.BaseForm

	known, err := p.exposure.IsKnown(ctx, userID, class, baseForm)
	if err != nil {
		return domain.ExtractionCandidate{}, fmt.Errorf("exposure lookup %s %q: %w", class, baseForm, err)
	}
	repeat := state.observe(class, baseForm)

	return domain.ExtractionCandidate{
		BaseForm:            baseForm,
		OriginalForm:        word,
		WordClass:           class,
		Level:               match.Entry.Level,
		Features:            resolveFeatures(class, match),
		Translation:         p.translate(ctx, baseForm),
		IsNew:               !known,
		IsKnown:             known,
		IsRepeatInText:      repeat,
		Sentence:            sentenceText,
		SentenceTranslation: sentenceTranslation,
	}, nil
}

// collectFallback handles tokens matching no paradigm: the
// adverb/other catch-all. The fallback class has no backing entry table
// and no exposure check — such words are always reported as new.
func (p *Processor) collectFallback(
	ctx context.Context,
	result *domain.ProcessingResult,
	processed *domain.ProcessedSentence,
	state *runState,
	sentenceText, sentenceTranslation, word string,
) {
	repeat := state.observe(domain.WordClassAdverb, word)

	cand := domain.ExtractionCandidate{
		BaseForm:            word,
		OriginalForm:        word,
		WordClass:           domain.WordClassAdverb,
		Level:               domain.GuessLevel(word),
		Translation:         p.translate(ctx, word),
		IsNew:               true,
		IsRepeatInText:      repeat,
		Sentence:            sentenceText,
		SentenceTranslation: sentenceTranslation,
	}

	result.Stats.Adverbs++
	result.ExtractedWords.Adverbs = append(result.ExtractedWords.Adverbs, cand)
	processed.Words = append(processed.Words, domain.SentenceWord{
		BaseForm:  word,
		WordClass: domain.WordClassAdverb,
	})
}

// aggregate folds one matched candidate into the stats block and the
// per-class extraction lists.
//
// Counting contract: a first-in-text occurrence of an unknown word
// increments the new counters; a repeat-in-text occurrence increments
// neither new nor existing; a known, non-repeat occurrence increments
// existingWords. Class and level counters increment for every
// occurrence regardless of novelty.
func aggregate(result *domain.ProcessingResult, cand domain.ExtractionCandidate) {
	stats := &result.Stats

	switch cand.WordClass {
	case domain.WordClassVerb:
		stats.Verbs++
		result.ExtractedWords.Verbs = append(result.ExtractedWords.Verbs, cand)
	case domain.WordClassNoun:
		stats.Nouns++
		result.ExtractedWords.Nouns = append(result.ExtractedWords.Nouns, cand)
	case domain.WordClassAdjective:
		stats.Adjectives++
		result.ExtractedWords.Adjectives = append(result.ExtractedWords.Adjectives, cand)
	}

	switch {
	case cand.IsRepeatInText:
		// Tracked but not double-counted.
	case cand.IsNew:
		stats.NewWords++
		switch cand.WordClass {
		case domain.WordClassVerb:
			stats.NewVerbs++
		case domain.WordClassNoun:
			stats.NewNouns++
		case domain.WordClassAdjective:
			stats.NewAdjectives++
		}
	default:
		stats.ExistingWords++
	}

	switch domain.BucketLevel(cand.Level) {
	case domain.LevelBucketA1:
		stats.LevelA1++
	case domain.LevelBucketA2:
		stats.LevelA2++
	case domain.LevelBucketB1:
		stats.LevelB1++
	default:
		stats.LevelB2Plus++
	}
}

// translate returns the translation of text, degrading to a bracketed
// placeholder when the provider fails. A failed translation never
// aborts the sentence or the request.
func (p *Processor) translate(ctx context.Context, text string) string {
	translated, err := p.translator.Translate(ctx, text, "de", "en")
	if err != nil {
		p.log.Warn("translation failed, using placeholder",
			slog.String("error", err.Error()),
		)
		return fmt.Sprintf("[Translation of: %s]", text)
	}
	return translated
}
