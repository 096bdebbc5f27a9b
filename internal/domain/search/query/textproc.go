package query

import (
	"sort"
	"strings"
)

// fullWidthDigits maps full-width digits (０-９) to their ASCII forms.
// Korean IMEs frequently emit these inside otherwise-normal queries.
var fullWidthDigits = strings.NewReplacer(
	"０", "0", "１", "1", "２", "2", "３", "3", "４", "4",
	"５", "5", "６", "6", "７", "7", "８", "8", "９", "9",
)

// NormalizeQuery trims the query and folds full-width digits to ASCII.
// Classify requires this to have run; the HTTP layer applies it once per
// request before validation.
func NormalizeQuery(q string) string {
	return strings.TrimSpace(fullWidthDigits.Replace(q))
}

// KoNgram expands Korean text into space-separated character n-grams of
// size minN..maxN, deduplicated and sorted. The body_ngram index field is
// built with KoNgram(body, 2, 3) so that sub-word fragments of agglutinated
// legal terms still match.
func KoNgram(text string, minN, maxN int) string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) < minN {
		return string(runes)
	}

	seen := make(map[string]struct{})
	for n := minN; n <= maxN; n++ {
		for i := 0; i+n <= len(runes); i++ {
			seen[string(runes[i:i+n])] = struct{}{}
		}
	}

	grams := make([]string, 0, len(seen))
	for g := range seen {
		grams = append(grams, g)
	}
	sort.Strings(grams)
	return strings.Join(grams, " ")
}
