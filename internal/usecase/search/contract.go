package search

import (
	"context"

	"github.com/lawko/lawsearch/internal/domain/search/hit"
)

// Params describes one search call against one backing index.
type Params struct {
	Index    string
	Query    string
	Limit    int
	Offset   int
	Strict   bool
	Citation bool
	Filter   string
}

// IndexSearcher issues exactly one network request against one backing
// index. Implementations own the per-call timeout and never retry; a
// non-success response or transport failure yields an error wrapping
// domain.ErrIndexUnavailable.
type IndexSearcher interface {
	Search(ctx context.Context, p Params) ([]hit.Raw, error)
}
