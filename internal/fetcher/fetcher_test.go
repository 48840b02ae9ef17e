package fetcher

import (
	"compress/gzip"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"testing"
	"time"

	"github.com/raihanpk/kliping/internal/config"
	"github.com/raihanpk/kliping/internal/types"
)

var testLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

func newTestFetcher(timeout time.Duration) *Fetcher {
	cfg := config.DefaultConfig()
	cfg.Fetcher.RequestTimeout = timeout
	return New(cfg, testLogger)
}

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("query"); got != "banjir" {
			t.Errorf("expected query=banjir, got %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Errorf("expected page=2, got %q", got)
		}
		if ua := r.Header.Get("User-Agent"); ua == "" {
			t.Error("expected a User-Agent header")
		}
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	f := newTestFetcher(5 * time.Second)
	defer f.Close()

	params := url.Values{}
	params.Set("query", "banjir")
	params.Set("page", "2")

	body, err := f.Fetch(context.Background(), srv.URL, params, nil)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if body != "<html>ok</html>" {
		t.Errorf("unexpected body: %q", body)
	}
}

func TestFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte("too late"))
	}))
	defer srv.Close()

	f := newTestFetcher(50 * time.Millisecond)
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL, nil, nil)
	if err == nil {
		t.Fatal("expected timeout error, got nil")
	}

	var fe *types.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *types.FetchError, got %T", err)
	}
	if !fe.Timeout {
		t.Errorf("expected Timeout flag, got %+v", fe)
	}
}

func TestFetchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not here", http.StatusNotFound)
	}))
	defer srv.Close()

	f := newTestFetcher(5 * time.Second)
	defer f.Close()

	_, err := f.Fetch(context.Background(), srv.URL, nil, nil)
	if err == nil {
		t.Fatal("expected error for 404, got nil")
	}

	var fe *types.FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("expected *types.FetchError, got %T", err)
	}
	if fe.StatusCode != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", fe.StatusCode)
	}
	if fe.Timeout {
		t.Error("HTTP error should not be flagged as timeout")
	}
}

func TestFetchGzipBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "gzip")
		gz := gzip.NewWriter(w)
		gz.Write([]byte("compressed content"))
		gz.Close()
	}))
	defer srv.Close()

	f := newTestFetcher(5 * time.Second)
	defer f.Close()

	body, err := f.Fetch(context.Background(), srv.URL, nil, nil)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if body != "compressed content" {
		t.Errorf("expected decompressed body, got %q", body)
	}
}

func TestFetchCustomHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Custom"); got != "yes" {
			t.Errorf("expected X-Custom header, got %q", got)
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	f := newTestFetcher(5 * time.Second)
	defer f.Close()

	headers := http.Header{}
	headers.Set("X-Custom", "yes")

	if _, err := f.Fetch(context.Background(), srv.URL, nil, headers); err != nil {
		t.Fatalf("fetch error: %v", err)
	}
}

func TestBuildURL(t *testing.T) {
	params := url.Values{}
	params.Set("query", "pemilu 2024")
	params.Set("page", "1")

	got, err := buildURL("https://www.detik.com/search/searchall?siteid=2", params)
	if err != nil {
		t.Fatalf("buildURL: %v", err)
	}

	u, _ := url.Parse(got)
	q := u.Query()
	if q.Get("query") != "pemilu 2024" {
		t.Errorf("query param lost: %q", got)
	}
	if q.Get("siteid") != "2" {
		t.Errorf("existing param lost: %q", got)
	}
}

func TestFetchInvalidURL(t *testing.T) {
	f := newTestFetcher(time.Second)
	defer f.Close()

	_, err := f.Fetch(context.Background(), "http://invalid host/", nil, nil)
	if err == nil {
		t.Fatal("expected error for invalid URL")
	}
}
