// Package article reads canonical statute text from Postgres.
package article

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/lawko/lawsearch/internal/domain"
	domart "github.com/lawko/lawsearch/internal/domain/article"
)

// Repo implements usecase/article.Repository over database/sql.
type Repo struct {
	db *sql.DB
}

// New creates an article repository.
func New(db *sql.DB) *Repo {
	return &Repo{db: db}
}

const articleColumns = `
	l.code,
	a.article_no,
	a.article_sub_no,
	a.jo_code,
	COALESCE(a.heading, ''),
	a.body,
	COALESCE(a.notes, '{}'),
	COALESCE(a.clauses_json, '[]'::jsonb),
	a.updated_at`

// GetByNumber fetches one article by law code and article number.
// Returns domain.ErrNotFound when the article does not exist.
func (r *Repo) GetByNumber(ctx context.Context, lawCode string, articleNo, articleSubNo int) (domart.Article, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM article a
		JOIN law l ON l.id = a.law_id
		WHERE l.code = $1 AND a.article_no = $2 AND a.article_sub_no = $3
		LIMIT 1`, articleColumns)

	a, err := scanArticle(r.db.QueryRowContext(ctx, q, lawCode, articleNo, articleSubNo))
	if err != nil {
		return domart.Article{}, fmt.Errorf("get article %s %d/%d: %w", lawCode, articleNo, articleSubNo, err)
	}
	return a, nil
}

// GetByJoCode fetches one article by its zero-padded jo code. lawCode may
// be empty; jo codes are only unique within one law, so an empty lawCode
// returns the first law carrying that code, in law order.
func (r *Repo) GetByJoCode(ctx context.Context, lawCode, joCode string) (domart.Article, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM article a
		JOIN law l ON l.id = a.law_id
		WHERE a.jo_code = $1 AND ($2 = '' OR l.code = $2)
		ORDER BY l.id ASC
		LIMIT 1`, articleColumns)

	a, err := scanArticle(r.db.QueryRowContext(ctx, q, joCode, lawCode))
	if err != nil {
		return domart.Article{}, fmt.Errorf("get article by jo code %s: %w", joCode, err)
	}
	return a, nil
}

// ListByLaw returns every article of one law, in article order. The
// reindex tool streams these into the search engine.
func (r *Repo) ListByLaw(ctx context.Context, lawCode string) ([]domart.Article, error) {
	q := fmt.Sprintf(`
		SELECT %s
		FROM article a
		JOIN law l ON l.id = a.law_id
		WHERE l.code = $1
		ORDER BY a.article_no ASC, a.article_sub_no ASC`, articleColumns)

	rows, err := r.db.QueryContext(ctx, q, lawCode)
	if err != nil {
		return nil, fmt.Errorf("list articles %s: %w", lawCode, err)
	}
	defer rows.Close()

	var out []domart.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("list articles %s: %w", lawCode, err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list articles %s: %w", lawCode, err)
	}
	return out, nil
}

// ListLaws returns the configured statute families in insertion order.
func (r *Repo) ListLaws(ctx context.Context) ([]domart.Law, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT code, name_ko FROM law ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("list laws: %w", err)
	}
	defer rows.Close()

	var out []domart.Law
	for rows.Next() {
		var l domart.Law
		if err := rows.Scan(&l.Code, &l.NameKo); err != nil {
			return nil, fmt.Errorf("list laws: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list laws: %w", err)
	}
	return out, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanArticle(s scanner) (domart.Article, error) {
	var a domart.Article
	var notes pq.StringArray
	var updatedAt sql.NullTime

	err := s.Scan(
		&a.LawCode, &a.ArticleNo, &a.ArticleSubNo, &a.JoCode,
		&a.Heading, &a.Body, &notes, &a.Clauses, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domart.Article{}, domain.ErrNotFound
	}
	if err != nil {
		return domart.Article{}, err
	}

	a.Notes = notes
	if updatedAt.Valid {
		a.UpdatedAt = &updatedAt.Time
	}
	return a, nil
}
