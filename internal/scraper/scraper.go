package scraper

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/raihanpk/kliping/internal/config"
	"github.com/raihanpk/kliping/internal/parser"
	"github.com/raihanpk/kliping/internal/pipeline"
	"github.com/raihanpk/kliping/internal/types"
)

// Fetcher is the interface the scraper needs from the HTTP layer.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string, params url.Values, headers http.Header) (string, error)
}

// Scraper drives the fetch → parse → enrich → aggregate pipeline.
// Per-request failures degrade to smaller results and counters on the
// Report; only a completely empty scrape is an error.
type Scraper struct {
	cfg     *config.Config
	fetcher Fetcher
	listing *parser.ListingParser
	article *parser.ArticleParser
	pipe    *pipeline.Pipeline
	logger  *slog.Logger
}

// stats accumulates failure counters across concurrent page collectors.
type stats struct {
	pagesFailed    atomic.Int64
	itemsSkipped   atomic.Int64
	enrichFailures atomic.Int64
}

// New creates a Scraper. The default pipeline trims fields and drops items
// that lost their title or URL.
func New(cfg *config.Config, f Fetcher, logger *slog.Logger) *Scraper {
	pipe := pipeline.New(logger)
	pipe.Use(&pipeline.TrimMiddleware{})
	pipe.Use(&pipeline.RequiredMiddleware{})

	return &Scraper{
		cfg:     cfg,
		fetcher: f,
		listing: parser.NewListingParser(cfg.Selector, logger),
		article: parser.NewArticleParser(cfg.Selector.Body, logger),
		pipe:    pipe,
		logger:  logger.With("component", "scraper"),
	}
}

// CollectAll scrapes pages 1..pageCount for keyword concurrently and returns
// the combined dataset in ascending page order, within-page order preserved.
// It returns types.ErrNoData when the combined dataset is empty, whether
// because the keyword has no hits or because every request failed; the Report
// counters let the caller tell the two apart.
func (s *Scraper) CollectAll(ctx context.Context, keyword string, pageCount int, headers http.Header) (types.Dataset, types.Report, error) {
	report := types.Report{PagesRequested: pageCount}
	if keyword == "" {
		return nil, report, types.ErrEmptyKeyword
	}
	if pageCount < 1 {
		return nil, report, types.ErrNoData
	}

	start := time.Now()
	st := &stats{}
	pages := make([]types.Page, pageCount)

	forEach(pageCount, s.cfg.Scraper.PageWorkers, func(i int) {
		pages[i] = s.collectPage(ctx, keyword, i+1, headers, st)
	})

	var dataset types.Dataset
	for _, page := range pages {
		dataset = append(dataset, page...)
	}

	report.PagesFailed = int(st.pagesFailed.Load())
	report.ItemsSkipped = int(st.itemsSkipped.Load())
	report.EnrichFailures = int(st.enrichFailures.Load())
	report.ItemsScraped = len(dataset)
	report.Elapsed = time.Since(start)

	s.logger.Info("scrape complete",
		"keyword", keyword,
		"pages", pageCount,
		"items", report.ItemsScraped,
		"pages_failed", report.PagesFailed,
		"enrich_failures", report.EnrichFailures,
		"elapsed", report.Elapsed,
	)

	if len(dataset) == 0 {
		return nil, report, types.ErrNoData
	}
	return dataset, report, nil
}

// CollectPage scrapes a single listing page and enriches its items.
// A listing fetch failure yields an empty page, never an error.
func (s *Scraper) CollectPage(ctx context.Context, keyword string, page int, headers http.Header) types.Page {
	return s.collectPage(ctx, keyword, page, headers, &stats{})
}

func (s *Scraper) collectPage(ctx context.Context, keyword string, page int, headers http.Header, st *stats) types.Page {
	logger := s.logger.With("keyword", keyword, "page", page)

	params := url.Values{}
	params.Set(s.cfg.Site.QueryParam, keyword)
	params.Set(s.cfg.Site.PageParam, strconv.Itoa(page))

	body, err := s.fetcher.Fetch(ctx, s.cfg.Site.SearchURL, params, headers)
	if err != nil {
		st.pagesFailed.Add(1)
		logger.Error("listing fetch failed", "error", err)
		return nil
	}

	items, skipped, err := s.listing.Parse(body, s.cfg.Site.SearchURL)
	if err != nil {
		st.pagesFailed.Add(1)
		logger.Error("listing parse failed", "error", err)
		return nil
	}
	st.itemsSkipped.Add(int64(skipped))

	items = s.pipe.Run(items)

	// Enrichment fan-out; slots are index-tagged so parse order survives.
	forEach(len(items), s.cfg.Scraper.EnrichWorkers, func(i int) {
		if err := s.enrich(ctx, &items[i]); err != nil {
			st.enrichFailures.Add(1)
			logger.Warn("enrichment failed", "url", items[i].URL, "error", err)
		}
	})

	logger.Debug("page collected", "items", len(items), "skipped", skipped)
	return items
}

// enrich fetches the item's article page and attaches its body text.
// On failure the item keeps the NoContent sentinel and the error is
// returned for counting only.
func (s *Scraper) enrich(ctx context.Context, item *types.Item) error {
	body, err := s.fetcher.Fetch(ctx, item.URL, nil, nil)
	if err != nil {
		item.Content = types.NoContent
		return err
	}
	item.Content = s.article.Parse(body)
	return nil
}
