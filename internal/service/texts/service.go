// Package texts implements text processing and saved-text persistence:
// running the extraction pipeline, resolving extracted words to lexical
// entries, and storing texts with their stats and word records.
package texts

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// processor runs the extraction pipeline over one text.
type processor interface {
	Process(ctx context.Context, userID uuid.UUID, text string) (*domain.ProcessingResult, error)
}

// savedTextRepo defines the saved text repository interface needed by this service.
type savedTextRepo interface {
	Create(ctx context.Context, text *domain.SavedText) (*domain.SavedText, error)
	GetByID(ctx context.Context, userID, textID uuid.UUID) (*domain.SavedText, error)
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SavedText, error)
}

// extractedWordRepo defines the extracted word repository interface needed by this service.
type extractedWordRepo interface {
	BulkCreate(ctx context.Context, words []domain.ExtractedWord) error
	ListBySavedText(ctx context.Context, savedTextID uuid.UUID) ([]domain.ExtractedWord, error)
}

// entryRepo defines the lexical entry repository interface needed by this service.
type entryRepo interface {
	FindByBaseForm(ctx context.Context, class domain.WordClass, baseForm string) (*domain.LexicalEntry, error)
	Create(ctx context.Context, e *domain.LexicalEntry) (*domain.LexicalEntry, error)
}

// txManager defines the transaction manager interface needed by this service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements text operations.
type Service struct {
	log       *slog.Logger
	processor processor
	texts     savedTextRepo
	words     extractedWordRepo
	entries   entryRepo
	tx        txManager
}

// NewService creates a new texts service instance.
func NewService(
	logger *slog.Logger,
	proc processor,
	texts savedTextRepo,
	words extractedWordRepo,
	entries entryRepo,
	tx txManager,
) *Service {
	return &Service{
		log:       logger.With("service", "texts"),
		processor: proc,
		texts:     texts,
		words:     words,
		entries:   entries,
		tx:        tx,
	}
}
