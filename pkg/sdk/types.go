package lawsearch

import "encoding/json"

// SearchRequest is one search call. Query is required; the zero values
// of the other fields mean "all scopes", default limit, offset 0.
type SearchRequest struct {
	Query  string
	Scope  string
	Limit  int
	Offset int
}

// Hit is one search result with application scoring applied.
type Hit struct {
	LawCode      string   `json:"lawCode"`
	Index        string   `json:"index"`
	ArticleNo    int      `json:"articleNo"`
	ArticleSubNo int      `json:"articleSubNo"`
	JoCode       string   `json:"joCode"`
	Heading      string   `json:"heading"`
	Body         string   `json:"body"`
	RankingScore *float64 `json:"_rankingScore,omitempty"`
	AppScore     float64  `json:"score"`
}

// SearchResponse echoes the effective request parameters alongside the
// merged, ranked hits.
type SearchResponse struct {
	Query  string `json:"query"`
	Scope  string `json:"scope"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
	Hits   []Hit  `json:"hits"`
	Count  int    `json:"count"`
}

// Article is one statute article as stored.
type Article struct {
	LawCode      string          `json:"lawCode"`
	ArticleNo    int             `json:"articleNo"`
	ArticleSubNo int             `json:"articleSubNo"`
	JoCode       string          `json:"joCode"`
	Heading      string          `json:"heading"`
	Body         string          `json:"body"`
	Notes        []string        `json:"notes,omitempty"`
	Clauses      json.RawMessage `json:"clauses,omitempty"`
}

// Law identifies one law family served by the service.
type Law struct {
	Code   string `json:"code"`
	NameKo string `json:"nameKo"`
}

// HealthStatus represents the aggregated system health.
type HealthStatus struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}
