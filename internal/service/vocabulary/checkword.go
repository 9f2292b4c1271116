package vocabulary

import (
	"context"
	"fmt"
	"strings"

	"github.com/wortlab/deutschtext/internal/domain"
)

// probeOrder is the class priority for word probes, mirroring the
// extraction pipeline.
var probeOrder = []domain.WordClass{
	domain.WordClassVerb,
	domain.WordClassNoun,
	domain.WordClassAdjective,
}

// WordCheck is the result of a word probe.
type WordCheck struct {
	Found     bool
	WordClass domain.WordClass
	BaseForm  string
	Level     string
	// InDictionary is true when the hit came from the paradigm store;
	// false when only a persisted lexical entry matched.
	InDictionary bool
}

// CheckWord probes a surface form against the paradigm store first and
// the persisted lexical entries second. Unmatched words report the
// fallback class with a length-guessed level.
func (s *Service) CheckWord(ctx context.Context, word string) (*WordCheck, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, domain.NewValidationError("word", "required")
	}
	token := strings.ToLower(word)

	for _, class := range probeOrder {
		if match, ok := s.store.FindEntry(class, token); ok {
			return &WordCheck{
				Found:        true,
				WordClass:    class,
				BaseForm:     match.Entry.BaseForm,
				Level:        match.Entry.Level,
				InDictionary: true,
			}, nil
		}
	}

	for _, class := range probeOrder {
		exists, err := s.entries.ExistsByBaseForm(ctx, class, token)
		if err != nil {
			return nil, fmt.Errorf("vocabulary.CheckWord: %w", err)
		}
		if exists {
			return &WordCheck{
				Found:     true,
				WordClass: class,
				BaseForm:  word,
				Level:     domain.GuessLevel(token),
			}, nil
		}
	}

	return &WordCheck{
		Found:     false,
		WordClass: domain.WordClassAdverb,
		BaseForm:  word,
		Level:     domain.GuessLevel(token),
	}, nil
}
