package export

import (
	"encoding/json"
	"io"

	"github.com/raihanpk/kliping/internal/types"
)

// JSONExporter writes the dataset as an indented JSON array.
type JSONExporter struct{}

func (e *JSONExporter) MIME() string { return "application/json" }
func (e *JSONExporter) Ext() string  { return "json" }

func (e *JSONExporter) Export(w io.Writer, dataset types.Dataset) error {
	if dataset == nil {
		dataset = types.Dataset{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset); err != nil {
		return &types.ExportError{Format: "json", Err: err}
	}
	return nil
}
