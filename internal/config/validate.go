package config

import (
	"fmt"
	"net/url"
)

// Validate checks the configuration for invalid values.
func Validate(cfg *Config) error {
	if cfg.Scraper.PageWorkers < 1 {
		return fmt.Errorf("scraper.page_workers must be >= 1, got %d", cfg.Scraper.PageWorkers)
	}
	if cfg.Scraper.EnrichWorkers < 1 {
		return fmt.Errorf("scraper.enrich_workers must be >= 1, got %d", cfg.Scraper.EnrichWorkers)
	}

	if cfg.Fetcher.RequestTimeout <= 0 {
		return fmt.Errorf("fetcher.request_timeout must be > 0")
	}
	if cfg.Fetcher.MaxBodySize <= 0 {
		return fmt.Errorf("fetcher.max_body_size must be > 0")
	}
	if cfg.Fetcher.MaxRedirects < 0 {
		return fmt.Errorf("fetcher.max_redirects must be >= 0")
	}
	if cfg.Fetcher.UserAgent == "" {
		return fmt.Errorf("fetcher.user_agent must not be empty")
	}

	if err := ValidateURL(cfg.Site.SearchURL); err != nil {
		return fmt.Errorf("site.search_url: %w", err)
	}
	if cfg.Site.QueryParam == "" || cfg.Site.PageParam == "" {
		return fmt.Errorf("site.query_param and site.page_param must not be empty")
	}

	for name, rule := range map[string]Rule{
		"entry":       cfg.Selector.Entry,
		"title":       cfg.Selector.Title,
		"link":        cfg.Selector.Link,
		"category":    cfg.Selector.Category,
		"date":        cfg.Selector.Date,
		"description": cfg.Selector.Description,
		"body":        cfg.Selector.Body,
	} {
		if rule.Selector == "" {
			return fmt.Errorf("selector.%s must not be empty", name)
		}
		if rule.Type != "" && rule.Type != "css" && rule.Type != "xpath" {
			return fmt.Errorf("selector.%s type must be 'css' or 'xpath', got %q", name, rule.Type)
		}
	}

	validFormats := map[string]bool{
		"csv": true, "xlsx": true, "json": true,
	}
	if !validFormats[cfg.Export.Format] {
		return fmt.Errorf("export.format %q is not supported (valid: csv, xlsx, json)", cfg.Export.Format)
	}

	validLogLevels := map[string]bool{
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLogLevels[cfg.Logging.Level] {
		return fmt.Errorf("logging.level must be debug/info/warn/error, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" && cfg.Logging.Format != "json" {
		return fmt.Errorf("logging.format must be 'text' or 'json', got %q", cfg.Logging.Format)
	}

	return nil
}

// ValidateURL checks if a URL string is usable as a fetch target.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}
