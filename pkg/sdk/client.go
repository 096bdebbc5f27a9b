package lawsearch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to one lawsearch service instance.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

// New creates a client for the service at baseURL.
func New(baseURL string, opts ...Option) *Client {
	cfg := clientConfig{timeout: defaultTimeout}
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	hc := cfg.httpClient
	if hc == nil {
		hc = &http.Client{Timeout: cfg.timeout}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  cfg.apiKey,
		http:    hc,
		logger:  cfg.logger,
	}
}

// Search runs one search call and returns the merged, ranked hits.
func (c *Client) Search(ctx context.Context, req SearchRequest) (SearchResponse, error) {
	q := url.Values{}
	q.Set("q", req.Query)
	if req.Scope != "" {
		q.Set("scope", req.Scope)
	}
	if req.Limit > 0 {
		q.Set("limit", strconv.Itoa(req.Limit))
	}
	if req.Offset > 0 {
		q.Set("offset", strconv.Itoa(req.Offset))
	}

	var resp SearchResponse
	if err := c.get(ctx, "/search?"+q.Encode(), &resp); err != nil {
		return SearchResponse{}, err
	}
	return resp, nil
}

// Article fetches one article by law code and article number.
// articleSubNo 0 means the base article.
func (c *Client) Article(ctx context.Context, lawCode string, articleNo, articleSubNo int) (Article, error) {
	path := fmt.Sprintf("/articles/%s/%d", url.PathEscape(lawCode), articleNo)
	if articleSubNo > 0 {
		path += "/" + strconv.Itoa(articleSubNo)
	}

	var a Article
	if err := c.get(ctx, path, &a); err != nil {
		return Article{}, err
	}
	return a, nil
}

// ArticleByJoCode fetches one article by its padded citation code.
func (c *Client) ArticleByJoCode(ctx context.Context, joCode string) (Article, error) {
	var a Article
	if err := c.get(ctx, "/articles/by-jo/"+url.PathEscape(joCode), &a); err != nil {
		return Article{}, err
	}
	return a, nil
}

// Laws lists the law families the service serves.
func (c *Client) Laws(ctx context.Context) ([]Law, error) {
	var laws []Law
	if err := c.get(ctx, "/laws", &laws); err != nil {
		return nil, err
	}
	return laws, nil
}

// Health checks the health of all service components. A degraded
// service still returns a status; only transport failures error.
func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var hs HealthStatus
	err := c.get(ctx, "/health", &hs)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Status == http.StatusServiceUnavailable && hs.Status != "" {
		return hs, nil
	}
	if err != nil {
		return HealthStatus{}, err
	}
	return hs, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, http.NoBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("call %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("lawsearch call",
			slog.String("path", path),
			slog.Int("status", resp.StatusCode),
			slog.Duration("latency", time.Since(start)),
		)
	}

	if resp.StatusCode >= 400 {
		// Decode the body even on failure so /health can surface a
		// degraded report alongside the error.
		if out != nil {
			_ = json.Unmarshal(body, out)
		}
		var e struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(body, &e)
		if e.Error == "" {
			e.Error = http.StatusText(resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Message: e.Error}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
