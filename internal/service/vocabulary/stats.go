package vocabulary

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wortlab/deutschtext/internal/domain"
)

// Stats is the aggregate vocabulary picture for one user.
type Stats struct {
	Verbs      int
	Nouns      int
	Adjectives int
	Adverbs    int
	Total      int
	Practiced  int
}

// GetStats returns per-class occurrence counts across the user's saved
// texts plus the practiced-word count.
func (s *Service) GetStats(ctx context.Context, userID uuid.UUID) (*Stats, error) {
	counts, err := s.words.CountByClass(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.GetStats counts: %w", err)
	}

	practiced, err := s.practiced.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("vocabulary.GetStats practiced: %w", err)
	}

	stats := &Stats{
		Verbs:      counts[domain.WordClassVerb],
		Nouns:      counts[domain.WordClassNoun],
		Adjectives: counts[domain.WordClassAdjective],
		Adverbs:    counts[domain.WordClassAdverb],
		Practiced:  practiced,
	}
	stats.Total = stats.Verbs + stats.Nouns + stats.Adjectives + stats.Adverbs
	return stats, nil
}
