package texts

import (
	"unicode/utf8"

	"github.com/wortlab/deutschtext/internal/domain"
)

// maxTextLen bounds submitted texts; longer inputs are rejected up
// front rather than half-processed.
const maxTextLen = 50_000

// ProcessInput holds parameters for the ProcessText operation.
type ProcessInput struct {
	Text string
}

// Validate validates the process input.
func (i ProcessInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(i.Text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SaveInput holds parameters for the SaveText operation. An empty
// Title is derived from the text content.
type SaveInput struct {
	Title string
	Text  string
}

// Validate validates the save input.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if i.Text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(i.Text) > maxTextLen {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}
	if utf8.RuneCountInString(i.Title) > 200 {
		errs = append(errs, domain.FieldError{Field: "title", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds pagination parameters for the ListTexts operation.
type ListInput struct {
	Limit  int
	Offset int
}

// Normalize clamps pagination to sane bounds.
func (i *ListInput) Normalize() {
	if i.Limit <= 0 || i.Limit > 100 {
		i.Limit = 20
	}
	if i.Offset < 0 {
		i.Offset = 0
	}
}
