package vocabulary

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// PracticeInput holds parameters for the MarkPracticed operation.
type PracticeInput struct {
	WordClass domain.WordClass
	BaseForm  string
}

// Validate validates the practice input.
func (i PracticeInput) Validate() error {
	var errs []domain.FieldError

	if !i.WordClass.IsValid() {
		errs = append(errs, domain.FieldError{Field: "word_class", Message: "unknown word class"})
	}
	if strings.TrimSpace(i.BaseForm) == "" {
		errs = append(errs, domain.FieldError{Field: "base_form", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// MarkPracticed records a practice event. Practiced words count as
// prior exposure in later text-processing runs.
func (s *Service) MarkPracticed(ctx context.Context, userID uuid.UUID, input PracticeInput) (*domain.PracticedWord, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	word, err := s.practiced.Create(ctx, &domain.PracticedWord{
		ID:          uuid.New(),
		UserID:      userID,
		WordClass:   input.WordClass,
		BaseForm:    strings.TrimSpace(input.BaseForm),
		PracticedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("vocabulary.MarkPracticed: %w", err)
	}

	s.log.InfoContext(ctx, "word practiced",
		slog.String("user_id", userID.String()),
		slog.String("word_class", input.WordClass.String()),
		slog.String("base_form", word.BaseForm),
	)

	return word, nil
}
