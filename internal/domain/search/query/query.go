// Package query classifies raw search input as either a statute citation
// lookup or a free-text keyword search.
package query

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Classified is the immutable classification of one search query.
// ArticleNo and ArticleSubNo are meaningful only when IsCitation is true;
// HasSubNo reports whether the query named a sub-article explicitly.
type Classified struct {
	IsCitation   bool
	ArticleNo    int
	ArticleSubNo int
	HasSubNo     bool
	Original     string
}

// Citation forms, checked in order:
//
//	218          bare article number
//	제218조       full citation
//	제218조의2    full citation with sub-article
//	218조        citation particle omitted
//	218조의2     citation particle omitted, with sub-article
//
// Whitespace around the digit groups and the connecting particles is
// tolerated. Full-width digits must already be folded to ASCII by the
// caller (see NormalizeQuery).
var (
	reBareNumber = regexp.MustCompile(`^\d+$`)
	reCitation   = regexp.MustCompile(`^(?:제\s*)?(\d+)\s*조(?:\s*의\s*(\d+))?$`)
)

// Classify parses a trimmed, non-empty query string. Any input not matching
// one of the recognized citation forms is a keyword query. No numeric range
// is enforced; article numbers that exist in no statute simply never match
// during rescoring.
func Classify(q string) Classified {
	q = strings.TrimSpace(q)

	if reBareNumber.MatchString(q) {
		no, err := strconv.Atoi(q)
		if err == nil {
			return Classified{IsCitation: true, ArticleNo: no, Original: q}
		}
		return Classified{Original: q}
	}

	m := reCitation.FindStringSubmatch(q)
	if m == nil {
		return Classified{Original: q}
	}

	no, err := strconv.Atoi(m[1])
	if err != nil {
		return Classified{Original: q}
	}

	c := Classified{IsCitation: true, ArticleNo: no, Original: q}
	if m[2] != "" {
		sub, err := strconv.Atoi(m[2])
		if err != nil {
			return Classified{Original: q}
		}
		c.ArticleSubNo = sub
		c.HasSubNo = true
	}
	return c
}

// Citation renders the canonical citation string for an article number,
// e.g. Citation(218, 0) = "제218조", Citation(218, 2) = "제218조의2".
func Citation(articleNo, articleSubNo int) string {
	if articleSubNo > 0 {
		return fmt.Sprintf("제%d조의%d", articleNo, articleSubNo)
	}
	return fmt.Sprintf("제%d조", articleNo)
}

// JoCode renders the zero-padded six-digit article code used as the
// citation key in the backing indexes, e.g. JoCode(218, 0) = "021800".
func JoCode(articleNo, articleSubNo int) string {
	return fmt.Sprintf("%04d%02d", articleNo, articleSubNo)
}
