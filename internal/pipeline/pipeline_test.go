package pipeline

import (
	"log/slog"
	"os"
	"testing"

	"github.com/raihanpk/kliping/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func samplePage() types.Page {
	return types.Page{
		{Title: "  Judul Satu  ", URL: " https://example.com/1 ", Category: "news"},
		{Title: "Judul Dua", URL: "https://example.com/2"},
		{Title: "Judul Satu Lagi", URL: "https://example.com/1"},
	}
}

func TestTrimMiddleware(t *testing.T) {
	p := New(testLogger)
	p.Use(&TrimMiddleware{})

	out := p.Run(samplePage())
	if len(out) != 3 {
		t.Fatalf("expected 3 items, got %d", len(out))
	}
	if out[0].Title != "Judul Satu" {
		t.Errorf("title not trimmed: %q", out[0].Title)
	}
	if out[0].URL != "https://example.com/1" {
		t.Errorf("url not trimmed: %q", out[0].URL)
	}
}

func TestRequiredMiddleware(t *testing.T) {
	p := New(testLogger)
	p.Use(&RequiredMiddleware{})

	page := types.Page{
		{Title: "Complete", URL: "https://example.com/ok"},
		{Title: "", URL: "https://example.com/no-title"},
		{Title: "No URL", URL: ""},
	}

	out := p.Run(page)
	if len(out) != 1 {
		t.Fatalf("expected 1 item, got %d", len(out))
	}
	if out[0].Title != "Complete" {
		t.Errorf("wrong survivor: %q", out[0].Title)
	}
}

func TestDedupMiddleware(t *testing.T) {
	p := New(testLogger)
	p.Use(&TrimMiddleware{})
	p.Use(NewDedupMiddleware())

	out := p.Run(samplePage())
	if len(out) != 2 {
		t.Fatalf("expected 2 items after dedup, got %d", len(out))
	}
	// First occurrence wins, order preserved
	if out[0].Title != "Judul Satu" || out[1].Title != "Judul Dua" {
		t.Errorf("unexpected order: %q, %q", out[0].Title, out[1].Title)
	}
}

func TestEmptyPipelinePassesThrough(t *testing.T) {
	p := New(testLogger)
	out := p.Run(samplePage())
	if len(out) != 3 {
		t.Fatalf("expected pass-through, got %d items", len(out))
	}
}
