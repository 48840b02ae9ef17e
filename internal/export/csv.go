package export

import (
	"encoding/csv"
	"io"

	"github.com/raihanpk/kliping/internal/types"
)

// CSVExporter writes the dataset as CSV with a header row.
type CSVExporter struct{}

func (e *CSVExporter) MIME() string { return "text/csv" }
func (e *CSVExporter) Ext() string  { return "csv" }

func (e *CSVExporter) Export(w io.Writer, dataset types.Dataset) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(types.Headers()); err != nil {
		return &types.ExportError{Format: "csv", Err: err}
	}
	for _, item := range dataset {
		if err := cw.Write(item.Row()); err != nil {
			return &types.ExportError{Format: "csv", Err: err}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return &types.ExportError{Format: "csv", Err: err}
	}
	return nil
}
