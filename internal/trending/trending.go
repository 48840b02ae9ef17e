// Package trending fetches the site's trending-keywords side endpoint.
// It is decoration for the search UI: failures are reported but never
// block a scrape.
package trending

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/raihanpk/kliping/internal/config"
)

// Fetcher is the interface the client needs from the HTTP layer.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, params url.Values, headers http.Header) (string, error)
}

// Client reads trending keywords from the JSON endpoint.
type Client struct {
	endpoint string
	fetcher  Fetcher
	logger   *slog.Logger
}

// New creates a trending-keywords client.
func New(cfg *config.Config, f Fetcher, logger *slog.Logger) *Client {
	return &Client{
		endpoint: cfg.Site.TrendingURL,
		fetcher:  f,
		logger:   logger.With("component", "trending"),
	}
}

// payload mirrors the endpoint's response shape:
// {"body": {"topKeywordSearch": [{"keyword": "..."}]}}
type payload struct {
	Body struct {
		TopKeywordSearch []struct {
			Keyword string `json:"keyword"`
		} `json:"topKeywordSearch"`
	} `json:"body"`
}

// Keywords returns the current trending keywords in endpoint order.
// Blank entries are dropped.
func (c *Client) Keywords(ctx context.Context) ([]string, error) {
	body, err := c.fetcher.Fetch(ctx, c.endpoint, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("trending fetch: %w", err)
	}

	var p payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return nil, fmt.Errorf("trending decode: %w", err)
	}

	keywords := make([]string, 0, len(p.Body.TopKeywordSearch))
	for _, entry := range p.Body.TopKeywordSearch {
		if entry.Keyword != "" {
			keywords = append(keywords, entry.Keyword)
		}
	}

	c.logger.Debug("trending keywords fetched", "count", len(keywords))
	return keywords, nil
}
