package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lawko/lawsearch/internal/domain/search/hit"
	"github.com/lawko/lawsearch/internal/domain/search/query"
)

// Rescoring bonuses. The values are tuned empirically; the contract is
// their ordering: a textual citation-code confirmation outranks a numeric
// exact match, which outranks a heading substring. All are non-negative,
// so appScore never drops below the engine's base score.
const (
	citationCodeBonus = 1000
	citationBonus     = 900
	headingBonus      = 50
)

// rescore computes the application score for one normalized hit.
func rescore(h *hit.Normalized, q query.Classified) {
	score := h.Base()

	if q.IsCitation {
		// Numeric exact match. The sub-article dimension is only compared
		// when the query explicitly names one: "제218조" matches every
		// 218조의N, "제218조의2" matches only (218, 2).
		if h.ArticleNo == q.ArticleNo && (!q.HasSubNo || h.ArticleSubNo == q.ArticleSubNo) {
			score += citationBonus
		}

		// Textual confirmation against the citation key, independent of
		// the numeric comparison. Older indexes pad the bare article
		// number to six digits; newer ones use the %04d%02d jo code.
		canonical := query.Citation(q.ArticleNo, q.ArticleSubNo)
		if strings.Contains(h.CitationCode, canonical) ||
			h.CitationCode == query.JoCode(q.ArticleNo, q.ArticleSubNo) ||
			(!q.HasSubNo && h.CitationCode == fmt.Sprintf("%06d", q.ArticleNo)) {
			score += citationCodeBonus
		}
	}

	// Heading substring applies to citation and keyword queries alike.
	if strings.Contains(strings.ToLower(h.Heading), strings.ToLower(q.Original)) {
		score += headingBonus
	}

	h.AppScore = score
}

// sortHits orders merged hits deterministically: appScore desc, baseScore
// desc, (articleNo, articleSubNo) asc. The sort is stable, so full ties
// keep index-dispatch order — the result never depends on which index
// responded first.
func sortHits(hits []hit.Normalized) {
	sort.SliceStable(hits, func(i, j int) bool {
		a, b := &hits[i], &hits[j]
		if a.AppScore != b.AppScore {
			return a.AppScore > b.AppScore
		}
		if a.Base() != b.Base() {
			return a.Base() > b.Base()
		}
		if a.ArticleNo != b.ArticleNo {
			return a.ArticleNo < b.ArticleNo
		}
		return a.ArticleSubNo < b.ArticleSubNo
	})
}
