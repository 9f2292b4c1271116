// Package vocabulary implements vocabulary queries over extracted and
// practiced words: aggregate stats, per-class listings, practice
// marking, and word probes against the paradigm store.
package vocabulary

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
	"github.com/wortlab/deutschtext/internal/paradigm"
)

// extractedWordRepo defines the extracted word repository interface needed by this service.
type extractedWordRepo interface {
	ListByClass(ctx context.Context, userID uuid.UUID, class domain.WordClass, limit, offset int) ([]domain.ExtractedWord, error)
	CountByClass(ctx context.Context, userID uuid.UUID) (map[domain.WordClass]int, error)
}

// practicedRepo defines the practiced word repository interface needed by this service.
type practicedRepo interface {
	Create(ctx context.Context, w *domain.PracticedWord) (*domain.PracticedWord, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PracticedWord, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
}

// entryRepo defines the lexical entry repository interface needed by this service.
type entryRepo interface {
	ExistsByBaseForm(ctx context.Context, class domain.WordClass, baseForm string) (bool, error)
}

// Service implements vocabulary operations.
type Service struct {
	log       *slog.Logger
	words     extractedWordRepo
	practiced practicedRepo
	entries   entryRepo
	store     *paradigm.Store
}

// NewService creates a new vocabulary service instance.
func NewService(
	logger *slog.Logger,
	words extractedWordRepo,
	practiced practicedRepo,
	entries entryRepo,
	store *paradigm.Store,
) *Service {
	return &Service{
		log:       logger.With("service", "vocabulary"),
		words:     words,
		practiced: practiced,
		entries:   entries,
		store:     store,
	}
}
