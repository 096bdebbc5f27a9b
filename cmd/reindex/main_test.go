package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domart "github.com/lawko/lawsearch/internal/domain/article"
	"github.com/lawko/lawsearch/internal/domain/search/query"
)

func TestBuildDocs(t *testing.T) {
	articles := []domart.Article{
		{
			LawCode:   "CIVIL_CODE",
			ArticleNo: 218,
			JoCode:    "021800",
			Heading:   "제218조(수도 등 시설권)",
			Body:      "수도 시설",
		},
		{
			LawCode:      "CIVIL_CODE",
			ArticleNo:    103,
			ArticleSubNo: 2,
			JoCode:       "010302",
		},
	}

	docs := buildDocs(articles)
	require.Len(t, docs, 2)

	assert.Equal(t, "CIVIL_CODE-021800", docs[0]["id"])
	assert.Equal(t, 218, docs[0]["articleNo"])
	assert.Equal(t, "021800", docs[0]["joCode"])

	// body_ngram is the space-joined n-gram expansion of the body.
	ngram, ok := docs[0]["body_ngram"].(string)
	require.True(t, ok)
	assert.Equal(t, query.KoNgram("수도 시설", 2, 3), ngram)
	assert.Contains(t, ngram, "수도")

	assert.Equal(t, 2, docs[1]["articleSubNo"])
	assert.Equal(t, "", docs[1]["body_ngram"])
}

func TestBuildDocs_Empty(t *testing.T) {
	assert.Empty(t, buildDocs(nil))
}
