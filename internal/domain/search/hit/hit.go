// Package hit defines the raw engine hit record and its canonical
// normalized form.
package hit

// Raw is one as-received record from a backing index. The engines return
// loosely-shaped JSON objects; Raw keeps that shape behind typed accessors
// so untyped maps never travel past the normalization boundary.
type Raw map[string]any

// String returns the named field as a string, or "" when absent or not a
// string.
func (r Raw) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Int returns the named field as an int, or 0 when absent. JSON numbers
// decode as float64.
func (r Raw) Int(key string) int {
	switch v := r[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Score returns the named field as a float, or nil when absent.
func (r Raw) Score(key string) *float64 {
	if v, ok := r[key].(float64); ok {
		return &v
	}
	return nil
}

// Normalized is the canonical in-process hit. AppScore is set exactly once,
// by the rescorer; BaseScore stays nil when the engine reported no ranking
// score, and absent is treated as 0.0 wherever compared.
type Normalized struct {
	LawCode      string   `json:"lawCode"`
	SourceIndex  string   `json:"index"`
	ArticleNo    int      `json:"articleNo"`
	ArticleSubNo int      `json:"articleSubNo"`
	CitationCode string   `json:"joCode"`
	Heading      string   `json:"heading"`
	Body         string   `json:"body"`
	BaseScore    *float64 `json:"_rankingScore"`
	AppScore     float64  `json:"score"`
}

// Base returns the engine relevance score, treating absent as 0.0.
func (n *Normalized) Base() float64 {
	if n.BaseScore == nil {
		return 0
	}
	return *n.BaseScore
}
