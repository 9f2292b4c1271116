// Package entry implements the lexical-entry repository using
// PostgreSQL. One row per (word class, base form) canonical dictionary
// entry; adverbs have no rows here.
package entry

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/wortlab/deutschtext/internal/adapter/postgres"
	"github.com/wortlab/deutschtext/internal/domain"
)

const table = "lexical_entries"

var columns = []string{"id", "word_class", "base_form", "base_form_normalized", "level", "created_at"}

// Repo provides lexical entry persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lexical entry repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// FindByBaseForm returns the oldest entry of the class with the given
// base form, case-insensitive. Returns domain.ErrNotFound when absent.
func (r *Repo) FindByBaseForm(ctx context.Context, class domain.WordClass, baseForm string) (*domain.LexicalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("word_class = ?", class.String()).
		Where("base_form_normalized = ?", domain.NormalizeBaseForm(baseForm)).
		OrderBy("created_at ASC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", baseForm)
	}

	var e domain.LexicalEntry
	err = q.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.WordClass, &e.BaseForm, &e.BaseFormNormalized, &e.Level, &e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", baseForm)
	}
	return &e, nil
}

// Create inserts a new lexical entry. The table carries no uniqueness
// constraint on (class, base form): concurrent texts introducing the
// same word may both insert, which callers tolerate.
func (r *Repo) Create(ctx context.Context, e *domain.LexicalEntry) (*domain.LexicalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(e.ID, e.WordClass.String(), e.BaseForm, e.BaseFormNormalized, e.Level, e.CreatedAt).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", e.ID.String())
	}

	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lexical_entry", e.ID.String())
	}
	return e, nil
}

// GetByID returns an entry by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LexicalEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where("id = ?", id).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", id.String())
	}

	var e domain.LexicalEntry
	err = q.QueryRow(ctx, sql, args...).Scan(
		&e.ID, &e.WordClass, &e.BaseForm, &e.BaseFormNormalized, &e.Level, &e.CreatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", id.String())
	}
	return &e, nil
}

// BulkInsert inserts a batch of entries in one statement and returns
// the number of rows written. Used by the seeder; callers dedupe
// against ListNormalizedKeys first.
func (r *Repo) BulkInsert(ctx context.Context, entries []*domain.LexicalEntry) (int, error) {
	if len(entries) == 0 {
		return 0, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	b := postgres.Builder.
		Insert(table).
		Columns(columns...)
	for _, e := range entries {
		b = b.Values(e.ID, e.WordClass.String(), e.BaseForm, e.BaseFormNormalized, e.Level, e.CreatedAt)
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return 0, postgres.MapError(err, "lexical_entry", "bulk")
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "lexical_entry", "bulk")
	}
	return int(tag.RowsAffected()), nil
}

// ListNormalizedKeys returns every "CLASS:base_form_normalized" pair
// present in the table.
func (r *Repo) ListNormalizedKeys(ctx context.Context) (map[string]bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("word_class", "base_form_normalized").
		From(table).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", "keys")
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "lexical_entry", "keys")
	}
	defer rows.Close()

	keys := make(map[string]bool)
	for rows.Next() {
		var class, normalized string
		if err := rows.Scan(&class, &normalized); err != nil {
			return nil, postgres.MapError(err, "lexical_entry", "keys")
		}
		keys[class+":"+normalized] = true
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "lexical_entry", "keys")
	}
	return keys, nil
}

// ExistsByBaseForm reports whether any entry of the class has the base
// form, case-insensitive.
func (r *Repo) ExistsByBaseForm(ctx context.Context, class domain.WordClass, baseForm string) (bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder.
		Select("1").
		Prefix("SELECT EXISTS (").
		From(table).
		Where("word_class = ?", class.String()).
		Where("base_form_normalized = ?", domain.NormalizeBaseForm(baseForm)).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, postgres.MapError(err, "lexical_entry", baseForm)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "lexical_entry", baseForm)
	}
	return exists, nil
}
