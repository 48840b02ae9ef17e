package types

import "time"

// NoContent is attached to an item when its article body could not be
// retrieved or contains no paragraphs. It distinguishes "fetched but empty"
// from a fetch that never happened.
const NoContent = "No content available"

// NoDescription is substituted when a listing entry has no description node.
const NoDescription = "No description"

// Item is one search hit: the listing summary plus, after enrichment, the
// full article body text.
type Item struct {
	// Title is the headline text. Required; entries without it are dropped.
	Title string `json:"title"`

	// URL is the absolute article URL. Required; entries without it are dropped.
	URL string `json:"url"`

	// Category is the site section label, empty when absent.
	Category string `json:"category"`

	// Date is the publication date text as shown on the listing, with any
	// category prefix stripped. Empty when absent.
	Date string `json:"date"`

	// Description is the listing summary paragraph, or NoDescription.
	Description string `json:"description"`

	// Content is the full article body, attached by enrichment.
	// NoContent when the article fetch failed or yielded no paragraphs.
	Content string `json:"content"`
}

// Page is the ordered item list parsed from a single listing page.
// Order matches document order of the source markup.
type Page []Item

// Dataset is the combined result of a scrape: pages concatenated in
// ascending page-number order, within-page order preserved.
type Dataset []Item

// Headers returns the column names for tabular export, in output order.
func Headers() []string {
	return []string{"title", "url", "category", "date", "description", "content"}
}

// Row returns the item's field values aligned with Headers.
func (i Item) Row() []string {
	return []string{i.Title, i.URL, i.Category, i.Date, i.Description, i.Content}
}

// Report summarizes what happened during a scrape. Individual failures
// degrade silently at the point they occur; the counts here are the only
// record of them.
type Report struct {
	PagesRequested int           `json:"pages_requested"`
	PagesFailed    int           `json:"pages_failed"`
	ItemsScraped   int           `json:"items_scraped"`
	ItemsSkipped   int           `json:"items_skipped"`
	EnrichFailures int           `json:"enrich_failures"`
	Elapsed        time.Duration `json:"elapsed"`
}
