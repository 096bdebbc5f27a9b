// Package meili talks to the external full-text search engine over its
// HTTP API. One Client serves every configured index.
package meili

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/lawko/lawsearch/internal/domain"
	"github.com/lawko/lawsearch/internal/domain/search/hit"
	"github.com/lawko/lawsearch/internal/metrics"
	"github.com/lawko/lawsearch/internal/usecase/search"
)

// DefaultTimeout bounds one search call against one index.
const DefaultTimeout = 8 * time.Second

// Config holds the search engine connection settings.
type Config struct {
	Host    string
	APIKey  string
	Timeout time.Duration
	Logger  *zap.Logger
}

// Client issues search requests to the backing engine. It implements
// search.IndexSearcher: one network request per call, no retries.
type Client struct {
	host    string
	apiKey  string
	timeout time.Duration
	http    *http.Client
	logger  *zap.Logger
}

var _ search.IndexSearcher = (*Client)(nil)

// NewClient creates an engine client.
func NewClient(cfg *Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		host:    cfg.Host,
		apiKey:  cfg.APIKey,
		timeout: timeout,
		http:    &http.Client{},
		logger:  logger,
	}
}

type searchRequest struct {
	Q                    string   `json:"q"`
	Limit                int      `json:"limit"`
	Offset               int      `json:"offset"`
	ShowRankingScore     bool     `json:"showRankingScore"`
	MatchingStrategy     string   `json:"matchingStrategy"`
	Filter               string   `json:"filter,omitempty"`
	AttributesToSearchOn []string `json:"attributesToSearchOn,omitempty"`
}

type searchResponse struct {
	Hits []hit.Raw `json:"hits"`
}

// Search runs one search call against one index. Strict switches the
// engine from its "last term optional" default to all-terms-must-match.
// Citation queries steer matching toward the citation key and heading:
// a substring hit on a numeric citation there is a far stronger signal
// than term frequency in body text. Any non-2xx response or transport
// failure comes back wrapping domain.ErrIndexUnavailable.
func (c *Client) Search(ctx context.Context, p search.Params) ([]hit.Raw, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	body := searchRequest{
		Q:                p.Query,
		Limit:            p.Limit,
		Offset:           p.Offset,
		ShowRankingScore: true,
		MatchingStrategy: "last",
		Filter:           p.Filter,
	}
	if p.Strict {
		body.MatchingStrategy = "all"
	}
	if p.Citation {
		body.AttributesToSearchOn = []string{"joCode", "heading"}
	}

	start := time.Now()
	data, err := c.post(ctx, "/indexes/"+p.Index+"/search", body)
	metrics.IndexSearchDuration.WithLabelValues(p.Index).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.IndexSearchTotal.WithLabelValues(p.Index, "error").Inc()
		return nil, domain.NewIndexUnavailable(p.Index, err)
	}
	metrics.IndexSearchTotal.WithLabelValues(p.Index, "success").Inc()

	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, domain.NewIndexUnavailable(p.Index, fmt.Errorf("decode response: %w", err))
	}
	return parsed.Hits, nil
}

// AddDocuments upserts documents into an index. Used by the reindex tool,
// not the search path. The engine answers 202 and indexes asynchronously.
func (c *Client) AddDocuments(ctx context.Context, index string, docs []map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.post(ctx, "/indexes/"+index+"/documents", docs); err != nil {
		return domain.NewIndexUnavailable(index, err)
	}
	return nil
}

// Health probes the engine's liveness endpoint. Reachable means healthy;
// per-index state is not inspected here.
func (c *Client) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.host+"/health", http.NoBody)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("engine health: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine health: HTTP %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) post(ctx context.Context, path string, payload any) ([]byte, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+path, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Debug("engine error response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("body", truncate(data, 256)),
		)
		return nil, fmt.Errorf("engine status %d: %s", resp.StatusCode, truncate(data, 256))
	}
	return data, nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
