package config

import (
	"time"
)

// Version is set at build time via ldflags.
var Version = "dev"

// Config is the root configuration for kliping.
type Config struct {
	Scraper  ScraperConfig  `mapstructure:"scraper"  yaml:"scraper"`
	Fetcher  FetcherConfig  `mapstructure:"fetcher"  yaml:"fetcher"`
	Site     SiteConfig     `mapstructure:"site"     yaml:"site"`
	Selector SelectorConfig `mapstructure:"selector" yaml:"selector"`
	Export   ExportConfig   `mapstructure:"export"   yaml:"export"`
	Logging  LoggingConfig  `mapstructure:"logging"  yaml:"logging"`
}

// ScraperConfig controls the concurrent collection pipeline.
type ScraperConfig struct {
	// PageWorkers bounds how many listing pages are fetched at once.
	PageWorkers int `mapstructure:"page_workers" yaml:"page_workers"`
	// EnrichWorkers bounds concurrent article fetches within one page.
	EnrichWorkers int `mapstructure:"enrich_workers" yaml:"enrich_workers"`
}

// FetcherConfig controls the HTTP fetcher.
type FetcherConfig struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"   yaml:"request_timeout"`
	UserAgent       string        `mapstructure:"user_agent"        yaml:"user_agent"`
	MaxBodySize     int64         `mapstructure:"max_body_size"     yaml:"max_body_size"`
	FollowRedirects bool          `mapstructure:"follow_redirects"  yaml:"follow_redirects"`
	MaxRedirects    int           `mapstructure:"max_redirects"     yaml:"max_redirects"`
	IdleConnTimeout time.Duration `mapstructure:"idle_conn_timeout" yaml:"idle_conn_timeout"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"    yaml:"max_idle_conns"`
	TLSInsecure     bool          `mapstructure:"tls_insecure"      yaml:"tls_insecure"`
}

// SiteConfig points at the news site's endpoints.
type SiteConfig struct {
	// SearchURL is the paginated search endpoint. The fetcher appends
	// query and page parameters to it.
	SearchURL string `mapstructure:"search_url" yaml:"search_url"`
	// QueryParam and PageParam name the two search parameters.
	QueryParam string `mapstructure:"query_param" yaml:"query_param"`
	PageParam  string `mapstructure:"page_param"  yaml:"page_param"`
	// TrendingURL is the optional trending-keywords JSON endpoint.
	TrendingURL string `mapstructure:"trending_url" yaml:"trending_url"`
}

// SelectorConfig holds the markup extraction rules. Each rule may be a CSS
// selector (default) or an XPath expression, so operators can follow site
// markup changes without a rebuild.
type SelectorConfig struct {
	// Entry matches one search-result node on a listing page.
	Entry Rule `mapstructure:"entry" yaml:"entry"`
	// The remaining listing rules are evaluated relative to each entry.
	Title       Rule `mapstructure:"title"       yaml:"title"`
	Link        Rule `mapstructure:"link"        yaml:"link"`
	Category    Rule `mapstructure:"category"    yaml:"category"`
	Date        Rule `mapstructure:"date"        yaml:"date"`
	Description Rule `mapstructure:"description" yaml:"description"`
	// Body matches the article body paragraphs on a detail page.
	Body Rule `mapstructure:"body" yaml:"body"`
}

// Rule defines a single extraction rule.
type Rule struct {
	Selector  string `mapstructure:"selector"  yaml:"selector"`
	Type      string `mapstructure:"type"      yaml:"type"` // css or xpath
	Attribute string `mapstructure:"attribute" yaml:"attribute"`
}

// ExportConfig controls output.
type ExportConfig struct {
	Format    string `mapstructure:"format"     yaml:"format"` // csv, xlsx, json
	OutputDir string `mapstructure:"output_dir" yaml:"output_dir"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DefaultConfig returns a Config with sensible defaults for detik.com.
func DefaultConfig() *Config {
	return &Config{
		Scraper: ScraperConfig{
			PageWorkers:   8,
			EnrichWorkers: 16,
		},
		Fetcher: FetcherConfig{
			RequestTimeout:  10 * time.Second,
			UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			MaxBodySize:     10 * 1024 * 1024, // 10MB
			FollowRedirects: true,
			MaxRedirects:    10,
			IdleConnTimeout: 90 * time.Second,
			MaxIdleConns:    100,
		},
		Site: SiteConfig{
			SearchURL:   "https://www.detik.com/search/searchall",
			QueryParam:  "query",
			PageParam:   "page",
			TrendingURL: "https://explore-api.detik.com/trending",
		},
		Selector: SelectorConfig{
			Entry:       Rule{Selector: "article", Type: "css"},
			Title:       Rule{Selector: "h2", Type: "css"},
			Link:        Rule{Selector: "a", Type: "css", Attribute: "href"},
			Category:    Rule{Selector: "span.category", Type: "css"},
			Date:        Rule{Selector: "span.date", Type: "css"},
			Description: Rule{Selector: "span.box_text > p", Type: "css"},
			Body:        Rule{Selector: "div.detail__body-text p", Type: "css"},
		},
		Export: ExportConfig{
			Format:    "csv",
			OutputDir: "./output",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}
