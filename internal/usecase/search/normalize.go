package search

import (
	"github.com/lawko/lawsearch/internal/domain/search/hit"
)

// UnknownLawCode is the sentinel for hits whose law family cannot be
// determined. Downstream grouping must never see an empty lawCode.
const UnknownLawCode = "UNKNOWN"

// Normalizer maps raw engine records to the canonical hit shape. Older
// indexes do not carry a lawCode field, so it is backfilled from the
// static index binding known at configuration time.
type Normalizer struct {
	lawCodes map[string]string // index name -> law code
}

// NewNormalizer creates a normalizer over the index→lawCode bindings.
func NewNormalizer(lawCodes map[string]string) *Normalizer {
	codes := make(map[string]string, len(lawCodes))
	for idx, code := range lawCodes {
		codes[idx] = code
	}
	return &Normalizer{lawCodes: codes}
}

// Normalize converts one raw record from the named index. It never fails
// and never drops: missing numerics default to 0, missing strings to "",
// and a missing ranking score stays nil. AppScore is left unset for the
// rescorer.
func (n *Normalizer) Normalize(raw hit.Raw, index string) hit.Normalized {
	lawCode := raw.String("lawCode")
	if lawCode == "" {
		lawCode = n.lawCodes[index]
	}
	if lawCode == "" {
		lawCode = UnknownLawCode
	}

	return hit.Normalized{
		LawCode:      lawCode,
		SourceIndex:  index,
		ArticleNo:    raw.Int("articleNo"),
		ArticleSubNo: raw.Int("articleSubNo"),
		CitationCode: raw.String("joCode"),
		Heading:      raw.String("heading"),
		Body:         raw.String("body"),
		BaseScore:    raw.Score("_rankingScore"),
	}
}
