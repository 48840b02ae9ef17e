package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raihanpk/kliping/internal/config"
	"github.com/raihanpk/kliping/internal/export"
	"github.com/raihanpk/kliping/internal/fetcher"
	"github.com/raihanpk/kliping/internal/scraper"
	"github.com/raihanpk/kliping/internal/trending"
	"github.com/raihanpk/kliping/internal/types"
)

var (
	cfgFile       string
	verbose       bool
	pageCount     int
	outputDir     string
	outputFormat  string
	pageWorkers   int
	enrichWorkers int
	timeout       string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "kliping",
		Short: "Kliping — news search scraper",
		Long: `Kliping scrapes news search results into structured datasets.

Features:
  • Concurrent page collection with deterministic result ordering
  • Full article body enrichment for every result
  • CSS selector and XPath extraction rules
  • CSV, XLSX, JSON export
  • Trending keyword lookup`,
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(trendingCmd())
	rootCmd.AddCommand(versionCmd())
	rootCmd.AddCommand(configCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// scrapeCmd creates the "scrape" subcommand.
func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape [keyword]",
		Short: "Scrape search results for a keyword",
		Long:  "Scrape the given number of search result pages for a keyword, enrich every item with its full article body, and export the dataset.",
		Args:  cobra.ExactArgs(1),
		RunE:  runScrape,
	}

	cmd.Flags().IntVarP(&pageCount, "pages", "p", 1, "number of result pages to scrape")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory")
	cmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: csv, xlsx, json")
	cmd.Flags().IntVar(&pageWorkers, "page-workers", 0, "concurrent page fetches (0 = config default)")
	cmd.Flags().IntVar(&enrichWorkers, "enrich-workers", 0, "concurrent article fetches (0 = config default)")
	cmd.Flags().StringVar(&timeout, "timeout", "", "per-request timeout (e.g. 10s)")

	return cmd
}

// runScrape executes the scrape command.
func runScrape(cmd *cobra.Command, args []string) error {
	logger := setupLogger()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	applyCLIOverrides(cfg)

	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if pageCount < 1 {
		return fmt.Errorf("pages must be at least 1, got %d", pageCount)
	}

	keyword := strings.TrimSpace(args[0])

	logger.Info("starting scrape",
		"keyword", keyword,
		"pages", pageCount,
		"page_workers", cfg.Scraper.PageWorkers,
		"enrich_workers", cfg.Scraper.EnrichWorkers,
		"format", cfg.Export.Format,
	)

	f := fetcher.New(cfg, logger)
	defer f.Close()

	s := scraper.New(cfg, f, logger)

	// Cancel in-flight requests on Ctrl-C.
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dataset, report, err := s.CollectAll(ctx, keyword, pageCount, nil)
	if err != nil {
		if errors.Is(err, types.ErrNoData) {
			fmt.Printf("\n❌ No data scraped for %q (%d of %d pages failed)\n", keyword, report.PagesFailed, report.PagesRequested)
			fmt.Println("   Check the keyword spelling and your network connection.")
		}
		return fmt.Errorf("scrape %q: %w", keyword, err)
	}

	exp, err := export.For(cfg.Export.Format)
	if err != nil {
		return err
	}
	path, err := export.WriteFile(cfg.Export.OutputDir, exp, dataset, keyword, pageCount, time.Now())
	if err != nil {
		return fmt.Errorf("export dataset: %w", err)
	}

	logger.Info("scrape complete",
		"elapsed", report.Elapsed,
		"items", report.ItemsScraped,
		"pages_failed", report.PagesFailed,
		"output", path,
	)

	fmt.Printf("\n✅ Scrape complete in %s\n", report.Elapsed.Round(time.Millisecond))
	fmt.Printf("   Pages:     %d requested, %d failed\n", report.PagesRequested, report.PagesFailed)
	fmt.Printf("   Items:     %d scraped, %d skipped\n", report.ItemsScraped, report.ItemsSkipped)
	if report.EnrichFailures > 0 {
		fmt.Printf("   Articles:  %d bodies could not be fetched\n", report.EnrichFailures)
	}
	fmt.Printf("   Output:    %s\n", path)

	return nil
}

// trendingCmd creates the "trending" subcommand.
func trendingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trending",
		Short: "List currently trending search keywords",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := setupLogger()

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			f := fetcher.New(cfg, logger)
			defer f.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			client := trending.New(cfg, f, logger)
			keywords, err := client.Keywords(ctx)
			if err != nil {
				return fmt.Errorf("fetch trending keywords: %w", err)
			}

			if len(keywords) == 0 {
				fmt.Println("No trending keywords right now.")
				return nil
			}
			for i, kw := range keywords {
				fmt.Printf("%2d. %s\n", i+1, kw)
			}
			return nil
		},
	}
}

// versionCmd creates the "version" subcommand.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Kliping %s\n", config.Version)
		},
	}
}

// configCmd creates the "config" subcommand for inspecting configuration.
func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			fmt.Printf("Scraper:\n")
			fmt.Printf("  Page Workers:      %d\n", cfg.Scraper.PageWorkers)
			fmt.Printf("  Enrich Workers:    %d\n", cfg.Scraper.EnrichWorkers)
			fmt.Printf("\nFetcher:\n")
			fmt.Printf("  Request Timeout:   %s\n", cfg.Fetcher.RequestTimeout)
			fmt.Printf("  Follow Redirects:  %v\n", cfg.Fetcher.FollowRedirects)
			fmt.Printf("  Max Body Size:     %d bytes\n", cfg.Fetcher.MaxBodySize)
			fmt.Printf("\nSite:\n")
			fmt.Printf("  Search URL:        %s\n", cfg.Site.SearchURL)
			fmt.Printf("  Trending URL:      %s\n", cfg.Site.TrendingURL)
			fmt.Printf("\nSelectors:\n")
			fmt.Printf("  Entry:             %s (%s)\n", cfg.Selector.Entry.Selector, cfg.Selector.Entry.Type)
			fmt.Printf("  Title:             %s (%s)\n", cfg.Selector.Title.Selector, cfg.Selector.Title.Type)
			fmt.Printf("  Body:              %s (%s)\n", cfg.Selector.Body.Selector, cfg.Selector.Body.Type)
			fmt.Printf("\nExport:\n")
			fmt.Printf("  Format:            %s\n", cfg.Export.Format)
			fmt.Printf("  Output Dir:        %s\n", cfg.Export.OutputDir)
			return nil
		},
	}
}

// setupLogger creates a structured logger.
func setupLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewTextHandler(os.Stderr, opts)
	return slog.New(handler)
}

// applyCLIOverrides applies command-line flag values to the config.
func applyCLIOverrides(cfg *config.Config) {
	if outputDir != "" {
		cfg.Export.OutputDir = outputDir
	}
	if outputFormat != "" {
		cfg.Export.Format = strings.ToLower(outputFormat)
	}
	if pageWorkers > 0 {
		cfg.Scraper.PageWorkers = pageWorkers
	}
	if enrichWorkers > 0 {
		cfg.Scraper.EnrichWorkers = enrichWorkers
	}
	if timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err == nil {
			cfg.Fetcher.RequestTimeout = d
		}
	}
}
