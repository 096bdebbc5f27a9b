package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_CountsRequestsByStatus(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/search", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/missing", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	for _, path := range []string{"/search", "/missing"} {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, http.NoBody))
	}

	assert.GreaterOrEqual(t,
		testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/search", "200")), 1.0)
	assert.GreaterOrEqual(t,
		testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/missing", "404")), 1.0)
	assert.NotZero(t, testutil.CollectAndCount(httpRequestDuration))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "unknown", normalizePath(""))
	assert.Equal(t, "/search", normalizePath("/search"))
}
