package pipeline

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/raihanpk/kliping/internal/types"
)

// Middleware processes an item and returns the (possibly modified) item.
// Return nil to drop the item from the pipeline.
type Middleware interface {
	// Name returns the middleware's identifier.
	Name() string

	// Process transforms an item. Return nil to drop the item.
	Process(item *types.Item) (*types.Item, error)
}

// Pipeline chains middleware processors together.
type Pipeline struct {
	middlewares []Middleware
	logger      *slog.Logger
}

// New creates a new Pipeline.
func New(logger *slog.Logger) *Pipeline {
	return &Pipeline{
		logger: logger.With("component", "pipeline"),
	}
}

// Use adds a middleware to the pipeline chain.
func (p *Pipeline) Use(mw Middleware) {
	p.middlewares = append(p.middlewares, mw)
	p.logger.Debug("middleware added", "name", mw.Name(), "position", len(p.middlewares))
}

// Run passes every item of a page through the chain, preserving order.
// Dropped items shrink the result; a middleware error drops the item and
// is logged, never propagated.
func (p *Pipeline) Run(page types.Page) types.Page {
	out := make(types.Page, 0, len(page))

	for i := range page {
		item := &page[i]
		dropped := false

		for _, mw := range p.middlewares {
			result, err := mw.Process(item)
			if err != nil {
				p.logger.Warn("item dropped", "stage", mw.Name(), "url", item.URL, "error", err)
				dropped = true
				break
			}
			if result == nil {
				p.logger.Debug("item dropped", "stage", mw.Name(), "url", item.URL)
				dropped = true
				break
			}
			item = result
		}

		if !dropped {
			out = append(out, *item)
		}
	}

	return out
}

// Len returns the number of middleware in the chain.
func (p *Pipeline) Len() int {
	return len(p.middlewares)
}

// --- Built-in Middleware ---

// TrimMiddleware trims whitespace from all text fields.
type TrimMiddleware struct{}

func (m *TrimMiddleware) Name() string { return "trim" }

func (m *TrimMiddleware) Process(item *types.Item) (*types.Item, error) {
	item.Title = strings.TrimSpace(item.Title)
	item.URL = strings.TrimSpace(item.URL)
	item.Category = strings.TrimSpace(item.Category)
	item.Date = strings.TrimSpace(item.Date)
	item.Description = strings.TrimSpace(item.Description)
	item.Content = strings.TrimSpace(item.Content)
	return item, nil
}

// RequiredMiddleware drops items missing their required fields. The parser
// already skips such entries; this guards items arriving from other sources.
type RequiredMiddleware struct{}

func (m *RequiredMiddleware) Name() string { return "required_fields" }

func (m *RequiredMiddleware) Process(item *types.Item) (*types.Item, error) {
	if item.Title == "" || item.URL == "" {
		return nil, nil // Drop item
	}
	return item, nil
}

// DedupMiddleware drops items whose URL was already seen.
type DedupMiddleware struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewDedupMiddleware() *DedupMiddleware {
	return &DedupMiddleware{
		seen: make(map[string]struct{}),
	}
}

func (m *DedupMiddleware) Name() string { return "dedup" }

func (m *DedupMiddleware) Process(item *types.Item) (*types.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.seen[item.URL]; exists {
		return nil, nil // Drop duplicate
	}
	m.seen[item.URL] = struct{}{}
	return item, nil
}
