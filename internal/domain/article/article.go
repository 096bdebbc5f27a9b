// Package article holds the canonical statute article as stored in the
// relational database — the authoritative text behind the search indexes.
package article

import (
	"encoding/json"
	"time"
)

// Article is one statute article. Clauses carries the structured 항/호/목
// breakdown as stored, opaque to this service.
type Article struct {
	LawCode      string          `json:"lawCode"`
	ArticleNo    int             `json:"articleNo"`
	ArticleSubNo int             `json:"articleSubNo"`
	JoCode       string          `json:"joCode"`
	Heading      string          `json:"heading"`
	Body         string          `json:"body"`
	Notes        []string        `json:"notes"`
	Clauses      json.RawMessage `json:"clauses"`
	UpdatedAt    *time.Time      `json:"updatedAt,omitempty"`
}

// Law identifies one statute family.
type Law struct {
	Code   string `json:"code"`
	NameKo string `json:"nameKo"`
}
