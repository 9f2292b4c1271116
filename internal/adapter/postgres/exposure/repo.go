// Package exposure implements the word-exposure lookup using
// PostgreSQL. A word is known to a user if it was either practiced or
// extracted from any of the user's saved texts.
package exposure

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wortlab/deutschtext/internal/adapter/postgres"
	"github.com/wortlab/deutschtext/internal/domain"
)

// Repo answers exposure lookups against PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new exposure repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// exposureQuery checks both exposure sources in one round trip:
// practiced words and words extracted from the user's earlier texts.
// Base-form comparison is case-insensitive.
const exposureQuery = `
SELECT EXISTS (
    SELECT 1 FROM practiced_words
    WHERE user_id = $1 AND word_class = $2 AND LOWER(base_form) = $3
) OR EXISTS (
    SELECT 1 FROM extracted_words w
    JOIN saved_texts t ON t.id = w.saved_text_id
    WHERE t.user_id = $1 AND w.word_class = $2 AND LOWER(w.base_form) = $3
)`

// IsKnown reports whether the user has prior exposure to the base form
// within the word class.
func (r *Repo) IsKnown(ctx context.Context, userID uuid.UUID, class domain.WordClass, baseForm string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var known bool
	err := q.QueryRow(ctx, exposureQuery, userID, class.String(), domain.NormalizeBaseForm(baseForm)).Scan(&known)
	if err != nil {
		return false, postgres.MapError(err, "exposure", baseForm)
	}
	return known, nil
}
