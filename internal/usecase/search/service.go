// Package search drives the multi-index fan-out: scope resolution, query
// classification, concurrent index calls, normalization, rescoring, and
// the deterministic merge.
package search

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/lawko/lawsearch/internal/domain/search/hit"
	"github.com/lawko/lawsearch/internal/domain/search/query"
	"github.com/lawko/lawsearch/internal/domain/search/request"
	"github.com/lawko/lawsearch/internal/domain/search/scope"
	"github.com/lawko/lawsearch/internal/logger"
	"github.com/lawko/lawsearch/internal/metrics"
)

// overfetchFactor is how many times the requested page size each index is
// asked for. Rescoring reorders hits across indexes, so each index must
// contribute more than one page's worth of candidates.
const overfetchFactor = 2

// IndexFailure records one absorbed per-index failure for observability.
type IndexFailure struct {
	Index string
	Cause error
}

// Result is one merged, rescored search result. Count is the number of
// hits actually returned, not the engines' own estimated totals — those
// are not comparable across indexes after rescoring.
type Result struct {
	Hits     []hit.Normalized
	Count    int
	Failures []IndexFailure
}

// Service is the fan-out coordinator.
type Service struct {
	scopes *scope.Resolver
	index  IndexSearcher
	norm   *Normalizer
}

// New creates a search service over the configured scope resolver and one
// index search client.
func New(scopes *scope.Resolver, index IndexSearcher) *Service {
	lawCodes := make(map[string]string)
	for _, b := range scopes.Bindings() {
		if _, ok := lawCodes[b.Index]; !ok {
			lawCodes[b.Index] = b.LawCode
		}
	}
	return &Service{scopes: scopes, index: index, norm: NewNormalizer(lawCodes)}
}

// Search runs one fan-out request. Per-index failures degrade the result
// instead of failing it: they contribute zero hits and are reported in
// Result.Failures. Even a total backend outage returns an empty result,
// not an error. The only error paths left are caller-side (validation,
// handled before this runs).
func (s *Service) Search(ctx context.Context, req request.Request) (Result, error) {
	log := logger.FromContext(ctx)

	bindings := s.scopes.Resolve(req.Scope())
	if len(bindings) == 0 {
		return Result{Hits: []hit.Normalized{}}, nil
	}

	classified := query.Classify(req.Query())
	metrics.SearchRequestsTotal.WithLabelValues(string(req.Scope()), queryMode(classified)).Inc()

	// Dispatch one call per index. Each goroutine owns its slot, so the
	// collection phase needs no locking; the client owns the per-call
	// timeout.
	type outcome struct {
		hits []hit.Raw
		err  error
	}
	outcomes := make([]outcome, len(bindings))

	var wg sync.WaitGroup
	for i, b := range bindings {
		wg.Add(1)
		go func(i int, b scope.Binding) {
			defer wg.Done()
			hits, err := s.index.Search(ctx, Params{
				Index:    b.Index,
				Query:    classified.Original,
				Limit:    overfetchFactor * req.Limit(),
				Offset:   req.Offset(),
				Strict:   req.Strict(),
				Citation: classified.IsCitation,
				Filter:   b.Filter,
			})
			outcomes[i] = outcome{hits: hits, err: err}
		}(i, b)
	}
	wg.Wait()

	// Merge in dispatch order; the stable sort keeps that order for full
	// score ties.
	merged := make([]hit.Normalized, 0, overfetchFactor*req.Limit())
	var failures []IndexFailure
	for i, b := range bindings {
		if err := outcomes[i].err; err != nil {
			failures = append(failures, IndexFailure{Index: b.Index, Cause: err})
			metrics.IndexFailuresTotal.WithLabelValues(b.Index).Inc()
			log.Warn("index search failed, continuing with remaining indexes",
				zap.String("index", b.Index),
				zap.Error(err),
			)
			continue
		}
		for _, raw := range outcomes[i].hits {
			h := s.norm.Normalize(raw, b.Index)
			rescore(&h, classified)
			merged = append(merged, h)
		}
	}

	sortHits(merged)
	if len(merged) > req.Limit() {
		merged = merged[:req.Limit()]
	}

	return Result{Hits: merged, Count: len(merged), Failures: failures}, nil
}

func queryMode(c query.Classified) string {
	if c.IsCitation {
		return "citation"
	}
	return "keyword"
}
