// Package httpapi exposes the search, article, and health endpoints over
// chi.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lawko/lawsearch/internal/domain"
	"github.com/lawko/lawsearch/internal/domain/search/hit"
	"github.com/lawko/lawsearch/internal/domain/search/query"
	"github.com/lawko/lawsearch/internal/domain/search/request"
	"github.com/lawko/lawsearch/internal/domain/search/scope"
	"github.com/lawko/lawsearch/internal/logger"
	articleuc "github.com/lawko/lawsearch/internal/usecase/article"
	healthuc "github.com/lawko/lawsearch/internal/usecase/health"
	searchuc "github.com/lawko/lawsearch/internal/usecase/search"
)

// Server wires the use case services into HTTP handlers.
type Server struct {
	search   *searchuc.Service
	articles *articleuc.Service
	health   *healthuc.Service
	scopes   *scope.Resolver
	logger   *zap.Logger
}

// NewServer creates the HTTP API server.
func NewServer(
	search *searchuc.Service,
	articles *articleuc.Service,
	health *healthuc.Service,
	scopes *scope.Resolver,
	logger *zap.Logger,
) *Server {
	return &Server{search: search, articles: articles, health: health, scopes: scopes, logger: logger}
}

// Routes registers every endpoint on the router.
func (s *Server) Routes(r chi.Router) {
	r.Get("/search", s.handleSearch)
	r.Get("/laws", s.handleLaws)
	r.Get("/articles/by-jo/{joCode}", s.handleArticleByJoCode)
	r.Get("/articles/{lawCode}/{articleNo}", s.handleArticle)
	r.Get("/articles/{lawCode}/{articleNo}/{articleSubNo}", s.handleArticle)
	r.Get("/health", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

// searchResponse mirrors the request shape back alongside the ranked hits.
// Count is the number of hits returned, not any engine-side estimate.
type searchResponse struct {
	Query  string           `json:"query"`
	Scope  string           `json:"scope"`
	Limit  int              `json:"limit"`
	Offset int              `json:"offset"`
	Hits   []hit.Normalized `json:"hits"`
	Count  int              `json:"count"`
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := query.NormalizeQuery(r.URL.Query().Get("q"))

	sc := scope.Scope(r.URL.Query().Get("scope"))
	if sc == "" {
		sc = scope.All
	}
	if !s.scopes.Known(sc) {
		writeError(w, http.StatusBadRequest, "unknown scope "+strconv.Quote(string(sc)))
		return
	}

	limit, err := intParam(r, "limit", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	offset, err := intParam(r, "offset", 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	strict := r.URL.Query().Get("strict") == "true"

	req, err := request.New(q, sc, limit, offset, strict)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := s.search.Search(r.Context(), req)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	// Absorbed per-index failures stay observable without becoming a
	// user-facing error path.
	if len(res.Failures) > 0 {
		log := logger.FromContext(r.Context())
		for _, f := range res.Failures {
			log.Warn("search degraded by index failure",
				zap.String("index", f.Index),
				zap.Error(f.Cause),
			)
		}
	}

	writeJSON(w, http.StatusOK, searchResponse{
		Query:  req.Query(),
		Scope:  string(req.Scope()),
		Limit:  req.Limit(),
		Offset: req.Offset(),
		Hits:   res.Hits,
		Count:  res.Count,
	})
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	lawCode := chi.URLParam(r, "lawCode")

	articleNo, err := strconv.Atoi(chi.URLParam(r, "articleNo"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "articleNo must be an integer")
		return
	}

	articleSubNo := 0
	if sub := chi.URLParam(r, "articleSubNo"); sub != "" {
		if articleSubNo, err = strconv.Atoi(sub); err != nil {
			writeError(w, http.StatusBadRequest, "articleSubNo must be an integer")
			return
		}
	} else if articleSubNo, err = intParam(r, "sub", 0); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	a, err := s.articles.Get(r.Context(), lawCode, articleNo, articleSubNo)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleArticleByJoCode(w http.ResponseWriter, r *http.Request) {
	a, err := s.articles.GetByJoCode(r.Context(), r.URL.Query().Get("law"), chi.URLParam(r, "joCode"))
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleLaws(w http.ResponseWriter, r *http.Request) {
	laws, err := s.articles.Laws(r.Context())
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, laws)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// handleDomainError maps domain sentinels to HTTP statuses. Anything
// unmapped is a 500 with the detail kept server-side.
func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		logger.FromContext(r.Context()).Error("internal error", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func intParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.New(name + " must be an integer")
	}
	return v, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
