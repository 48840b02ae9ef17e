// Package export renders a scraped dataset into downloadable tabular
// payloads: CSV, XLSX, or JSON.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/raihanpk/kliping/internal/types"
)

// Exporter writes a dataset in one output format.
type Exporter interface {
	// Export renders the dataset to w.
	Export(w io.Writer, dataset types.Dataset) error

	// MIME returns the payload's MIME type.
	MIME() string

	// Ext returns the file extension without the dot.
	Ext() string
}

// For returns the exporter for a format name (csv, xlsx, json).
func For(format string) (Exporter, error) {
	switch strings.ToLower(format) {
	case "csv":
		return &CSVExporter{}, nil
	case "xlsx":
		return &XLSXExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format: %s", format)
	}
}

// Filename builds the export file name: {timestamp}_{keyword}_{pages}.{ext}
// with the timestamp as YYYYMMDD_HHMMSS and the keyword made filesystem-safe.
func Filename(t time.Time, keyword string, pages int, ext string) string {
	return fmt.Sprintf("%s_%s_%d.%s", t.Format("20060102_150405"), sanitize(keyword), pages, ext)
}

// WriteFile exports the dataset into dir using the standard file name and
// returns the written path.
func WriteFile(dir string, exp Exporter, dataset types.Dataset, keyword string, pages int, now time.Time) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &types.ExportError{Format: exp.Ext(), Err: fmt.Errorf("create output dir: %w", err)}
	}

	path := filepath.Join(dir, Filename(now, keyword, pages, exp.Ext()))
	f, err := os.Create(path)
	if err != nil {
		return "", &types.ExportError{Format: exp.Ext(), Err: fmt.Errorf("create output file: %w", err)}
	}
	defer f.Close()

	if err := exp.Export(f, dataset); err != nil {
		return "", err
	}
	return path, nil
}

// sanitize replaces characters that are unsafe in file names.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r == '/' || r == '\\' || r == ':' || r == '*' || r == '?' ||
			r == '"' || r == '<' || r == '>' || r == '|':
			return '-'
		case r == ' ' || r == '\t':
			return '_'
		default:
			return r
		}
	}, s)
}
