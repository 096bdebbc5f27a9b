// Package request validates search parameters at the core's boundary.
package request

import (
	"fmt"

	"github.com/lawko/lawsearch/internal/domain"
	"github.com/lawko/lawsearch/internal/domain/search/scope"
)

// Pagination limits.
const (
	DefaultLimit = 10
	MaxLimit     = 50
)

// Request is a validated search request.
type Request struct {
	query  string
	scope  scope.Scope
	limit  int
	offset int
	strict bool
}

// New validates and normalizes search parameters. The query must be
// non-empty after trimming (the transport applies query.NormalizeQuery
// first); limit defaults to 10 and is capped at 50; offset must be
// non-negative. Validation failures wrap domain.ErrInvalidRequest.
func New(q string, s scope.Scope, limit, offset int, strict bool) (Request, error) {
	if q == "" {
		return Request{}, fmt.Errorf("%w: empty query", domain.ErrInvalidRequest)
	}
	if limit == 0 {
		limit = DefaultLimit
	}
	if limit < 1 || limit > MaxLimit {
		return Request{}, fmt.Errorf("%w: limit must be between 1 and %d, got %d",
			domain.ErrInvalidRequest, MaxLimit, limit)
	}
	if offset < 0 {
		return Request{}, fmt.Errorf("%w: offset must be non-negative, got %d",
			domain.ErrInvalidRequest, offset)
	}
	if s == "" {
		s = scope.All
	}

	return Request{query: q, scope: s, limit: limit, offset: offset, strict: strict}, nil
}

// Query returns the trimmed search input.
func (r Request) Query() string { return r.query }

// Scope returns the selected statute-family scope.
func (r Request) Scope() scope.Scope { return r.scope }

// Limit returns the page size.
func (r Request) Limit() int { return r.limit }

// Offset returns the per-index offset.
func (r Request) Offset() int { return r.offset }

// Strict reports whether every query term must match.
func (r Request) Strict() bool { return r.strict }
