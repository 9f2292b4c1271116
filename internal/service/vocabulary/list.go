package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// ListInput holds pagination parameters for listing operations.
type ListInput struct {
	Limit  int
	Offset int
}

// Normalize clamps pagination to sane bounds.
func (i *ListInput) Normalize() {
	if i.Limit <= 0 || i.Limit > 100 {
		i.Limit = 50
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}

// ListByClass returns the user's extracted words of one class, newest
// first.
func (s *Service) ListByClass(ctx context.Context, userID uuid.UUID, class domain.WordClass, input ListInput) ([]domain.ExtractedWord, error) {
	if !class.IsValid() {
		return nil, domain.NewValidationError("class", "unknown word class")
	}
	input.Normalize()

	words, err := s.words.ListByClass(ctx, userID, class, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ListByClass: %w", err)
	}
	return words, nil
}

// ListPracticed returns the user's practice history, newest first.
func (s *Service) ListPracticed(ctx context.Context, userID uuid.UUID, input ListInput) ([]domain.PracticedWord, error) {
	input.Normalize()

	words, err := s.practiced.List(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.ListPracticed: %w", err)
	}
	return words, nil
}
