// Package practiced implements the practiced-word repository using
// PostgreSQL. Practiced words count as prior exposure.
package practiced

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wortlab/deutschtext/internal/adapter/postgres"
	"github.com/wortlab/deutschtext/internal/domain"
)

const table = "practiced_words"

var columns = []string{"id", "user_id", "word_class", "base_form", "practiced_at"}

// Repo provides practiced word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new practiced word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create records a practice event for a base form.
func (r *Repo) Create(ctx context.Context, w *domain.PracticedWord) (*domain.PracticedWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(w.ID, w.UserID, w.WordClass.String(), w.BaseForm, w.PracticedAt).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "practiced_word", w.ID.String())
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "practiced_word", w.ID.String())
	}
	return w, nil
}

// CountByUser returns how many practice events a user has recorded.
func (r *Repo) CountByUser(ctx context.Context, userID uuid.UUID) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("COUNT(*)").
		From(table).
		Where("user_id = ?", userID).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("count practiced_words: %w", err)
	}

	var n int
	if err := q.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count practiced_words: %w", err)
	}
	return n, nil
}

// List returns a user's practiced words, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.PracticedWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("user_id = ?", userID).
		OrderBy("practiced_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list practiced_words: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list practiced_words: %w", err)
	}
	defer rows.Close()

	var words []domain.PracticedWord
	for rows.Next() {
		var w domain.PracticedWord
		if err := rows.Scan(&w.ID, &w.UserID, &w.WordClass, &w.BaseForm, &w.PracticedAt); err != nil {
			return nil, fmt.Errorf("scan practiced_word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}
