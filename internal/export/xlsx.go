package export

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/raihanpk/kliping/internal/types"
)

const sheetName = "Results"

// XLSXExporter writes the dataset as a single-sheet spreadsheet.
type XLSXExporter struct{}

func (e *XLSXExporter) MIME() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (e *XLSXExporter) Ext() string { return "xlsx" }

func (e *XLSXExporter) Export(w io.Writer, dataset types.Dataset) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return &types.ExportError{Format: "xlsx", Err: err}
	}

	writeRow := func(row int, values []string) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		cells := make([]any, len(values))
		for i, v := range values {
			cells[i] = v
		}
		return f.SetSheetRow(sheetName, cell, &cells)
	}

	if err := writeRow(1, types.Headers()); err != nil {
		return &types.ExportError{Format: "xlsx", Err: err}
	}
	for i, item := range dataset {
		if err := writeRow(i+2, item.Row()); err != nil {
			return &types.ExportError{Format: "xlsx", Err: err}
		}
	}

	if err := f.Write(w); err != nil {
		return &types.ExportError{Format: "xlsx", Err: err}
	}
	return nil
}
