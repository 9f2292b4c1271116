package texts

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// ProcessText runs the extraction pipeline over a text without saving
// anything.
func (s *Service) ProcessText(ctx context.Context, userID uuid.UUID, input ProcessInput) (*domain.ProcessingResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	result, err := s.processor.Process(ctx, userID, input.Text)
	if err != nil {
		return nil, fmt.Errorf("texts.ProcessText: %w", err)
	}
	return result, nil
}
