package parser

import (
	"log/slog"
	"strings"

	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"

	"github.com/raihanpk/kliping/internal/config"
	"github.com/raihanpk/kliping/internal/types"
)

// ArticleParser extracts the full body text from an article page.
type ArticleParser struct {
	rule   config.Rule
	logger *slog.Logger
}

// NewArticleParser creates an article parser using the given body rule.
func NewArticleParser(rule config.Rule, logger *slog.Logger) *ArticleParser {
	return &ArticleParser{
		rule:   rule,
		logger: logger.With("component", "article_parser"),
	}
}

// Parse returns the text of all body paragraphs joined by newlines, in
// document order. When the page has no matching paragraphs it returns the
// NoContent sentinel so callers can tell "fetched but empty" from a failed
// fetch.
func (p *ArticleParser) Parse(body string) string {
	root, err := html.Parse(strings.NewReader(body))
	if err != nil {
		p.logger.Warn("article markup unparseable", "error", err)
		return types.NoContent
	}

	nodes, err := findAll(root, p.rule)
	if err != nil {
		p.logger.Warn("body selector failed", "selector", p.rule.Selector, "error", err)
		return types.NoContent
	}

	var paragraphs []string
	for _, n := range nodes {
		if text := strings.TrimSpace(htmlquery.InnerText(n)); text != "" {
			paragraphs = append(paragraphs, text)
		}
	}

	if len(paragraphs) == 0 {
		return types.NoContent
	}
	return strings.Join(paragraphs, "\n")
}
