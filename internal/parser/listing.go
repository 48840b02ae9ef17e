package parser

import (
	"log/slog"
	"net/url"
	"strings"

	"golang.org/x/net/html"

	"github.com/raihanpk/kliping/internal/config"
	"github.com/raihanpk/kliping/internal/types"
)

// ListingParser turns a search-results page into partial items (no content).
type ListingParser struct {
	rules  config.SelectorConfig
	logger *slog.Logger
}

// NewListingParser creates a listing parser driven by the given selector rules.
func NewListingParser(rules config.SelectorConfig, logger *slog.Logger) *ListingParser {
	return &ListingParser{
		rules:  rules,
		logger: logger.With("component", "listing_parser"),
	}
}

// Parse extracts all listing entries from body, in document order. Entries
// missing a title or link are skipped and counted, never returned partial.
// Relative article links are resolved against baseURL. The skipped count is
// returned alongside the items.
func (p *ListingParser) Parse(body, baseURL string) (types.Page, int, error) {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		return nil, 0, &types.ParseError{URL: baseURL, Err: err}
	}

	entries, err := findAll(root, p.rules.Entry)
	if err != nil {
		return nil, 0, &types.ParseError{URL: baseURL, Selector: p.rules.Entry.Selector, Err: err}
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	var page types.Page
	skipped := 0

	for _, entry := range entries {
		title, okTitle := extract(entry, p.rules.Title)
		link, okLink := extract(entry, p.rules.Link)
		if !okTitle || title == "" || !okLink || link == "" {
			skipped++
			p.logger.Warn("entry skipped",
				"reason", "missing title or link",
				"listing", baseURL,
			)
			continue
		}

		if base != nil {
			if ref, err := url.Parse(link); err == nil {
				link = base.ResolveReference(ref).String()
			}
		}

		category, _ := extract(entry, p.rules.Category)
		date, _ := extract(entry, p.rules.Date)
		if category != "" {
			// The site renders the date span as "<category><date text>".
			date = strings.TrimSpace(strings.TrimPrefix(date, category))
		}

		desc, ok := extract(entry, p.rules.Description)
		if !ok || desc == "" {
			desc = types.NoDescription
		}

		page = append(page, types.Item{
			Title:       title,
			URL:         link,
			Category:    category,
			Date:        date,
			Description: desc,
		})
	}

	return page, skipped, nil
}
