package meili

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lawko/lawsearch/internal/domain"
	"github.com/lawko/lawsearch/internal/usecase/search"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(&Config{Host: srv.URL, APIKey: "test-key"})
}

func TestSearch_RequestShape(t *testing.T) {
	var got searchRequest
	var gotPath, gotAuth string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"hits":[{"articleNo":218,"_rankingScore":0.9}]}`))
	})

	hits, err := c.Search(context.Background(), search.Params{
		Index:    "civil-articles",
		Query:    "제218조",
		Limit:    20,
		Offset:   10,
		Strict:   true,
		Citation: true,
		Filter:   `lawCode = "CIVIL_CODE"`,
	})
	require.NoError(t, err)

	assert.Equal(t, "/indexes/civil-articles/search", gotPath)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "제218조", got.Q)
	assert.Equal(t, 20, got.Limit)
	assert.Equal(t, 10, got.Offset)
	assert.True(t, got.ShowRankingScore)
	assert.Equal(t, "all", got.MatchingStrategy)
	assert.Equal(t, `lawCode = "CIVIL_CODE"`, got.Filter)
	assert.Equal(t, []string{"joCode", "heading"}, got.AttributesToSearchOn)

	require.Len(t, hits, 1)
	assert.Equal(t, 218, hits[0].Int("articleNo"))
	require.NotNil(t, hits[0].Score("_rankingScore"))
	assert.Equal(t, 0.9, *hits[0].Score("_rankingScore"))
}

func TestSearch_KeywordDefaults(t *testing.T) {
	var got searchRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"hits":[]}`))
	})

	_, err := c.Search(context.Background(), search.Params{Index: "civil-articles", Query: "불법행위", Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, "last", got.MatchingStrategy, "non-strict keeps the engine's last-term-optional default")
	assert.Nil(t, got.AttributesToSearchOn, "keyword queries search every attribute")
}

func TestSearch_EngineErrorIsIndexUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"index not found"}`, http.StatusNotFound)
	})

	_, err := c.Search(context.Background(), search.Params{Index: "missing", Query: "q", Limit: 10})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)

	var unavail *domain.IndexUnavailableError
	require.ErrorAs(t, err, &unavail)
	assert.Equal(t, "missing", unavail.Index)
}

func TestSearch_TransportFailureIsIndexUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused from here on

	c := NewClient(&Config{Host: srv.URL})
	_, err := c.Search(context.Background(), search.Params{Index: "civil-articles", Query: "q", Limit: 10})
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestSearch_TimeoutIsIndexUnavailable(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(time.Second):
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`{"hits":[]}`))
	})
	c.timeout = 20 * time.Millisecond

	_, err := c.Search(context.Background(), search.Params{Index: "civil-articles", Query: "q", Limit: 10})
	assert.ErrorIs(t, err, domain.ErrIndexUnavailable)
}

func TestHealth(t *testing.T) {
	ok := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/health", r.URL.Path)
		_, _ = w.Write([]byte(`{"status":"available"}`))
	})
	assert.NoError(t, ok.Health(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	assert.Error(t, down.Health(context.Background()))
}

func TestAddDocuments(t *testing.T) {
	var gotPath string
	var gotDocs []map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotDocs))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"taskUid":7}`))
	})

	docs := []map[string]any{{"joCode": "021800", "heading": "제218조"}}
	require.NoError(t, c.AddDocuments(context.Background(), "civil-articles", docs))

	assert.Equal(t, "/indexes/civil-articles/documents", gotPath)
	require.Len(t, gotDocs, 1)
	assert.Equal(t, "021800", gotDocs[0]["joCode"])
}

func TestSearch_EngineErrorIsLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"message":"index not found"}`, http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	c := NewClient(&Config{Host: srv.URL, Logger: zap.New(core)})
	_, err := c.Search(context.Background(), search.Params{Index: "missing", Query: "q", Limit: 10})
	require.Error(t, err)

	entries := logs.FilterMessage("engine error response").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusNotFound), fields["status"])
	assert.Equal(t, "/indexes/missing/search", fields["path"])
	assert.Contains(t, fields["body"], "index not found")
}
