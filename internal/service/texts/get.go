package texts

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// TextDetail is a saved text together with its word records.
type TextDetail struct {
	Text  *domain.SavedText
	Words []domain.ExtractedWord
}

// GetText returns one saved text with stats and extracted words.
// Returns ErrNotFound for texts that do not exist or belong to another
// user.
func (s *Service) GetText(ctx context.Context, userID, textID uuid.UUID) (*TextDetail, error) {
	text, err := s.texts.GetByID(ctx, userID, textID)
	if err != nil {
		return nil, fmt.Errorf("texts.GetText: %w", err)
	}

	words, err := s.words.ListBySavedText(ctx, text.ID)
	if err != nil {
		return nil, fmt.Errorf("texts.GetText words: %w", err)
	}

	return &TextDetail{Text: text, Words: words}, nil
}

// ListTexts returns a user's saved texts with stats, newest first.
func (s *Service) ListTexts(ctx context.Context, userID uuid.UUID, input ListInput) ([]domain.SavedText, error) {
	input.Normalize()

	list, err := s.texts.List(ctx, userID, input.Limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("texts.ListTexts: %w", err)
	}
	return list, nil
}
