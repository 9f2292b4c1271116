// Package seeder imports the paradigm bundle into the lexical-entries
// table so that saved texts link to pre-seeded entries instead of
// creating them lazily on first sight.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/paradigm"
)

// allPhases defines the canonical execution order, one phase per word
// class carried by the bundle.
var allPhases = []string{"verbs", "nouns", "adjectives"}

var phaseClass = map[string]domain.WordClass{
	"verbs":      domain.WordClassVerb,
	"nouns":      domain.WordClassNoun,
	"adjectives": domain.WordClassAdjective,
}

// EntryBulkRepo is the batch repository contract consumed by the
// pipeline. Implemented by entry.Repo.
type EntryBulkRepo interface {
	BulkInsert(ctx context.Context, entries []*domain.LexicalEntry) (int, error)
	ListNormalizedKeys(ctx context.Context) (map[string]bool, error)
}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the per-class seeding process.
type Pipeline struct {
	log     *slog.Logger
	repo    EntryBulkRepo
	store   *paradigm.Store
	cfg     Config
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo EntryBulkRepo, store *paradigm.Store, cfg Config) *Pipeline {
	return &Pipeline{
		log:     log,
		repo:    repo,
		store:   store,
		cfg:     cfg,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed
// phases run. In dry-run mode the bundle is parsed and counted but the
// database is never touched.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	existing := map[string]bool{}
	if !p.cfg.DryRun {
		var err error
		existing, err = p.repo.ListNormalizedKeys(ctx)
		if err != nil {
			return fmt.Errorf("list existing entries: %w", err)
		}
	}

	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		result := p.runClass(ctx, phaseClass[phase], existing)
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Error("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
			)
			continue
		}
		p.log.Info("phase complete",
			slog.String("phase", phase),
			slog.Int("inserted", result.Inserted),
			slog.Int("skipped", result.Skipped),
			slog.Duration("duration", result.Duration),
		)
	}

	return nil
}

func (p *Pipeline) runClass(ctx context.Context, class domain.WordClass, existing map[string]bool) PhaseResult {
	var result PhaseResult
	now := time.Now().UTC()

	var batch []*domain.LexicalEntry
	for _, e := range p.store.Entries(class) {
		normalized := domain.NormalizeBaseForm(e.BaseForm)
		key := class.String() + ":" + normalized
		if existing[key] {
			result.Skipped++
			continue
		}
		// Mark immediately: the bundle itself may repeat a base form.
		existing[key] = true

		batch = append(batch, &domain.LexicalEntry{
			ID:                 uuid.New(),
			WordClass:          class,
			BaseForm:           e.BaseForm,
			BaseFormNormalized: normalized,
			Level:              e.Level,
			CreatedAt:          now,
		})

		if len(batch) >= p.batchSize() {
			if err := p.flush(ctx, batch, &result); err != nil {
				result.Err = err
				return result
			}
			batch = batch[:0]
		}
	}

	if err := p.flush(ctx, batch, &result); err != nil {
		result.Err = err
	}
	return result
}

func (p *Pipeline) flush(ctx context.Context, batch []*domain.LexicalEntry, result *PhaseResult) error {
	if len(batch) == 0 {
		return nil
	}
	if p.cfg.DryRun {
		result.Inserted += len(batch)
		return nil
	}
	n, err := p.repo.BulkInsert(ctx, batch)
	if err != nil {
		return fmt.Errorf("bulk insert: %w", err)
	}
	result.Inserted += n
	return nil
}

func (p *Pipeline) batchSize() int {
	if p.cfg.BatchSize > 0 {
		return p.cfg.BatchSize
	}
	return 500
}
