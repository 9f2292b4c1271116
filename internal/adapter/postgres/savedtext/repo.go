// Package savedtext implements the saved-text repository using
// PostgreSQL. A saved text and its stats row form one aggregate,
// written together inside the caller's transaction.
package savedtext

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wortlab/deutschtext/internal/adapter/postgres"
	"github.com/wortlab/deutschtext/internal/domain"
)

var textColumns = []string{
	"id", "user_id", "title", "content", "level", "excerpt",
	"word_count", "reading_time", "created_at",
}

var statsColumns = []string{
	"saved_text_id", "total_words", "verbs", "nouns", "adjectives", "adverbs",
	"new_words", "practiced_words", "known_from_other_texts",
	"level_a1", "level_a2", "level_b1", "level_b2_plus",
}

// Repo provides saved text persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new saved text repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a saved text together with its stats row.
func (r *Repo) Create(ctx context.Context, text *domain.SavedText) (*domain.SavedText, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert("saved_texts").
		Columns(textColumns...).
		Values(text.ID, text.UserID, text.Title, text.Content, text.Level, text.Excerpt,
			text.WordCount, text.ReadingTime, text.CreatedAt).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "saved_text", text.ID.String())
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "saved_text", text.ID.String())
	}

	if text.Stats != nil {
		s := text.Stats
		sql, args, err = postgres.Builder.
			Insert("saved_text_stats").
			Columns(statsColumns...).
			Values(text.ID, s.TotalWords, s.Verbs, s.Nouns, s.Adjectives, s.Adverbs,
				s.NewWords, s.PracticedWords, s.KnownFromOtherTexts,
				s.LevelA1, s.LevelA2, s.LevelB1, s.LevelB2Plus).
			ToSql()
		if err != nil {
			return nil, postgres.MapError(err, "saved_text_stats", text.ID.String())
		}
		if _, err := q.Exec(ctx, sql, args...); err != nil {
			return nil, postgres.MapError(err, "saved_text_stats", text.ID.String())
		}
	}

	return text, nil
}

// GetByID returns a saved text with its stats. Returns
// domain.ErrNotFound if the text does not exist or belongs to another
// user.
func (r *Repo) GetByID(ctx context.Context, userID, textID uuid.UUID) (*domain.SavedText, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(prefixed("t", textColumns)...).
		Columns(prefixed("s", statsColumns[1:])...).
		From("saved_texts t").
		Join("saved_text_stats s ON s.saved_text_id = t.id").
		Where("t.id = ?", textID).
		Where("t.user_id = ?", userID).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "saved_text", textID.String())
	}

	text, err := scanTextWithStats(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "saved_text", textID.String())
	}
	return text, nil
}

// List returns a user's saved texts with stats, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.SavedText, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(prefixed("t", textColumns)...).
		Columns(prefixed("s", statsColumns[1:])...).
		From("saved_texts t").
		Join("saved_text_stats s ON s.saved_text_id = t.id").
		Where("t.user_id = ?", userID).
		OrderBy("t.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list saved_texts: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list saved_texts: %w", err)
	}
	defer rows.Close()

	var texts []domain.SavedText
	for rows.Next() {
		text, err := scanTextWithStats(rows)
		if err != nil {
			return nil, fmt.Errorf("scan saved_text: %w", err)
		}
		texts = append(texts, *text)
	}
	return texts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTextWithStats(row rowScanner) (*domain.SavedText, error) {
	var t domain.SavedText
	var s domain.TextStats
	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Content, &t.Level, &t.Excerpt,
		&t.WordCount, &t.ReadingTime, &t.CreatedAt,
		&s.TotalWords, &s.Verbs, &s.Nouns, &s.Adjectives, &s.Adverbs,
		&s.NewWords, &s.PracticedWords, &s.KnownFromOtherTexts,
		&s.LevelA1, &s.LevelA2, &s.LevelB1, &s.LevelB2Plus,
	)
	if err != nil {
		return nil, err
	}
	s.SavedTextID = t.ID
	t.Stats = &s
	return &t, nil
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
