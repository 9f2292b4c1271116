// Package extractedword implements the extracted-word repository using
// PostgreSQL. One row per word occurrence of a saved text.
package extractedword

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wortlab/deutschtext/internal/adapter/postgres"
	"github.com/wortlab/deutschtext/internal/domain"
)

const table = "extracted_words"

var columns = []string{
	"id", "saved_text_id", "entry_id", "word_class", "base_form", "original_form",
	"level", "tense", "gender", "grammatical_case", "translation",
	"is_new", "is_known", "sentence", "sentence_translation", "created_at",
}

// Repo provides extracted word persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new extracted word repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// BulkCreate inserts all records in one batch round trip.
func (r *Repo) BulkCreate(ctx context.Context, words []domain.ExtractedWord) error {
	if len(words) == 0 {
		return nil
	}
	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, w := range words {
		sql, args, err := postgres.Builder.
			Insert(table).
			Columns(columns...).
			Values(w.ID, w.SavedTextID, w.EntryID, w.WordClass.String(), w.BaseForm, w.OriginalForm,
				w.Level, w.Tense, w.Gender, w.Case, w.Translation,
				w.IsNew, w.IsKnown, w.Sentence, w.SentenceTranslation, w.CreatedAt).
			ToSql()
		if err != nil {
			return postgres.MapError(err, "extracted_word", w.ID.String())
		}
		batch.Queue(sql, args...)
	}

	results := q.SendBatch(ctx, batch)
	defer results.Close()

	for _, w := range words {
		if _, err := results.Exec(); err != nil {
			return postgres.MapError(err, "extracted_word", w.ID.String())
		}
	}
	return nil
}

// ListByClass returns a user's extracted words of one class across all
// saved texts, newest first.
func (r *Repo) ListByClass(ctx context.Context, userID uuid.UUID, class domain.WordClass, limit, offset int) ([]domain.ExtractedWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(prefixed("w", columns)...).
		From(table + " w").
		Join("saved_texts t ON t.id = w.saved_text_id").
		Where("t.user_id = ?", userID).
		Where("w.word_class = ?", class.String()).
		OrderBy("w.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list extracted_words: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list extracted_words: %w", err)
	}
	defer rows.Close()

	var words []domain.ExtractedWord
	for rows.Next() {
		var w domain.ExtractedWord
		err := rows.Scan(
			&w.ID, &w.SavedTextID, &w.EntryID, &w.WordClass, &w.BaseForm, &w.OriginalForm,
			&w.Level, &w.Tense, &w.Gender, &w.Case, &w.Translation,
			&w.IsNew, &w.IsKnown, &w.Sentence, &w.SentenceTranslation, &w.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan extracted_word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// ListBySavedText returns the extracted words of one saved text in
// insertion order.
func (r *Repo) ListBySavedText(ctx context.Context, savedTextID uuid.UUID) ([]domain.ExtractedWord, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("saved_text_id = ?", savedTextID).
		OrderBy("created_at ASC, id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("list extracted_words: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list extracted_words: %w", err)
	}
	defer rows.Close()

	var words []domain.ExtractedWord
	for rows.Next() {
		var w domain.ExtractedWord
		err := rows.Scan(
			&w.ID, &w.SavedTextID, &w.EntryID, &w.WordClass, &w.BaseForm, &w.OriginalForm,
			&w.Level, &w.Tense, &w.Gender, &w.Case, &w.Translation,
			&w.IsNew, &w.IsKnown, &w.Sentence, &w.SentenceTranslation, &w.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan extracted_word: %w", err)
		}
		words = append(words, w)
	}
	return words, rows.Err()
}

// CountByClass returns per-class occurrence counts across a user's
// saved texts.
func (r *Repo) CountByClass(ctx context.Context, userID uuid.UUID) (map[domain.WordClass]int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("w.word_class", "COUNT(*)").
		From(table + " w").
		Join("saved_texts t ON t.id = w.saved_text_id").
		Where("t.user_id = ?", userID).
		GroupBy("w.word_class").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("count extracted_words: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("count extracted_words: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.WordClass]int, 4)
	for rows.Next() {
		var class domain.WordClass
		var n int
		if err := rows.Scan(&class, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[class] = n
	}
	return counts, rows.Err()
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = alias + "." + c
	}
	return out
}
