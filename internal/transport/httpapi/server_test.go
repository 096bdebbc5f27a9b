package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lawko/lawsearch/internal/domain"
	domart "github.com/lawko/lawsearch/internal/domain/article"
	"github.com/lawko/lawsearch/internal/domain/search/hit"
	"github.com/lawko/lawsearch/internal/domain/search/scope"
	articleuc "github.com/lawko/lawsearch/internal/usecase/article"
	healthuc "github.com/lawko/lawsearch/internal/usecase/health"
	searchuc "github.com/lawko/lawsearch/internal/usecase/search"
)

// --- Mocks ---

type stubSearcher struct {
	hits map[string][]hit.Raw
	err  error
}

func (s *stubSearcher) Search(_ context.Context, p searchuc.Params) ([]hit.Raw, error) {
	return s.hits[p.Index], s.err
}

type stubArticleRepo struct {
	art  domart.Article
	laws []domart.Law
	err  error
}

func (s *stubArticleRepo) GetByNumber(_ context.Context, _ string, _, _ int) (domart.Article, error) {
	return s.art, s.err
}

func (s *stubArticleRepo) GetByJoCode(_ context.Context, _, _ string) (domart.Article, error) {
	return s.art, s.err
}

func (s *stubArticleRepo) ListLaws(_ context.Context) ([]domart.Law, error) {
	return s.laws, s.err
}

type stubPinger struct{ err error }

func (s *stubPinger) Ping(_ context.Context) error { return s.err }

func newTestRouter(searcher *stubSearcher, arts *stubArticleRepo, db *stubPinger) http.Handler {
	scopes := scope.NewResolver([]scope.Binding{
		{Index: "civil-articles", LawCode: "CIVIL_CODE", Scope: scope.Civil},
		{Index: "criminal-articles", LawCode: "CRIMINAL_CODE", Scope: scope.Criminal},
	})
	srv := NewServer(
		searchuc.New(scopes, searcher),
		articleuc.New(arts),
		healthuc.New(db, nil),
		scopes,
		zap.NewNop(),
	)
	r := chi.NewRouter()
	srv.Routes(r)
	return r
}

func doGet(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, url, http.NoBody))
	return rr
}

// --- Tests ---

func TestHandleSearch(t *testing.T) {
	searcher := &stubSearcher{hits: map[string][]hit.Raw{
		"civil-articles": {{
			"articleNo":     float64(218),
			"joCode":        "021800",
			"heading":       "제218조(수도 등 시설권)",
			"_rankingScore": 0.95,
		}},
	}}
	h := newTestRouter(searcher, &stubArticleRepo{}, &stubPinger{})

	rr := doGet(t, h, "/search?q=%EC%A0%9C218%EC%A1%B0&scope=all&limit=10")
	require.Equal(t, http.StatusOK, rr.Code)

	var resp searchResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "제218조", resp.Query)
	assert.Equal(t, "all", resp.Scope)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Hits, 1)
	assert.Equal(t, "CIVIL_CODE", resp.Hits[0].LawCode)
	assert.Greater(t, resp.Hits[0].AppScore, 1900.0, "citation bonuses applied")
}

func TestHandleSearch_Validation(t *testing.T) {
	h := newTestRouter(&stubSearcher{}, &stubArticleRepo{}, &stubPinger{})

	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/search?q=").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/search?q=%20%20").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/search?q=x&scope=maritime").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/search?q=x&limit=51").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/search?q=x&offset=-1").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/search?q=x&limit=abc").Code)
}

func TestHandleSearch_IndexFailureStays200(t *testing.T) {
	searcher := &stubSearcher{err: domain.NewIndexUnavailable("civil-articles", context.DeadlineExceeded)}
	h := newTestRouter(searcher, &stubArticleRepo{}, &stubPinger{})

	rr := doGet(t, h, "/search?q=%EA%B3%84%EC%95%BD")
	require.Equal(t, http.StatusOK, rr.Code, "backend outage degrades, never 5xx")

	var resp searchResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Zero(t, resp.Count)
	assert.Empty(t, resp.Hits)
}

func TestHandleArticle(t *testing.T) {
	arts := &stubArticleRepo{art: domart.Article{
		LawCode: "CIVIL_CODE", ArticleNo: 218, JoCode: "021800", Body: "본문",
	}}
	h := newTestRouter(&stubSearcher{}, arts, &stubPinger{})

	rr := doGet(t, h, "/articles/CIVIL_CODE/218")
	require.Equal(t, http.StatusOK, rr.Code)

	var a domart.Article
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&a))
	assert.Equal(t, 218, a.ArticleNo)

	assert.Equal(t, http.StatusOK, doGet(t, h, "/articles/CIVIL_CODE/103/2").Code)
	assert.Equal(t, http.StatusBadRequest, doGet(t, h, "/articles/CIVIL_CODE/abc").Code)
}

func TestHandleArticle_NotFound(t *testing.T) {
	h := newTestRouter(&stubSearcher{}, &stubArticleRepo{err: domain.ErrNotFound}, &stubPinger{})
	assert.Equal(t, http.StatusNotFound, doGet(t, h, "/articles/CIVIL_CODE/9999").Code)
}

func TestHandleArticleByJoCode(t *testing.T) {
	arts := &stubArticleRepo{art: domart.Article{JoCode: "021800"}}
	h := newTestRouter(&stubSearcher{}, arts, &stubPinger{})
	assert.Equal(t, http.StatusOK, doGet(t, h, "/articles/by-jo/021800").Code)
}

func TestHandleLaws(t *testing.T) {
	arts := &stubArticleRepo{laws: []domart.Law{{Code: "CIVIL_CODE", NameKo: "민법"}}}
	h := newTestRouter(&stubSearcher{}, arts, &stubPinger{})

	rr := doGet(t, h, "/laws")
	require.Equal(t, http.StatusOK, rr.Code)

	var laws []domart.Law
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&laws))
	require.Len(t, laws, 1)
	assert.Equal(t, "민법", laws[0].NameKo)
}

func TestHandleHealth(t *testing.T) {
	h := newTestRouter(&stubSearcher{}, &stubArticleRepo{}, &stubPinger{})
	assert.Equal(t, http.StatusOK, doGet(t, h, "/health").Code)

	down := newTestRouter(&stubSearcher{}, &stubArticleRepo{}, &stubPinger{err: context.DeadlineExceeded})
	assert.Equal(t, http.StatusServiceUnavailable, doGet(t, down, "/health").Code)
}
