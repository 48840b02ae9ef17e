package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/raihanpk/kliping/internal/types"
)

func sampleDataset() types.Dataset {
	return types.Dataset{
		{
			Title:       "Banjir Rendam Jakarta Timur",
			URL:         "https://news.detik.com/berita/d-100/banjir",
			Category:    "detikNews",
			Date:        "Senin, 12 Feb 2024 08:15 WIB",
			Description: "Hujan deras sejak dini hari.",
			Content:     "Paragraf satu.\nParagraf dua.",
		},
		{
			Title:       "Pemprov Siapkan Pompa Air",
			URL:         "https://news.detik.com/berita/d-101/pompa",
			Category:    "detikNews",
			Date:        "Senin, 12 Feb 2024 09:30 WIB",
			Description: "No description",
			Content:     "No content available",
		},
	}
}

func TestForKnownFormats(t *testing.T) {
	cases := []struct {
		format string
		mime   string
		ext    string
	}{
		{"csv", "text/csv", "csv"},
		{"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "xlsx"},
		{"json", "application/json", "json"},
	}

	for _, tc := range cases {
		exp, err := For(tc.format)
		if err != nil {
			t.Fatalf("For(%s): %v", tc.format, err)
		}
		if exp.MIME() != tc.mime {
			t.Errorf("%s: expected MIME %q, got %q", tc.format, tc.mime, exp.MIME())
		}
		if exp.Ext() != tc.ext {
			t.Errorf("%s: expected ext %q, got %q", tc.format, tc.ext, exp.Ext())
		}
	}

	if _, err := For("pdf"); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&CSVExporter{}).Export(&buf, sampleDataset()); err != nil {
		t.Fatalf("export: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if !reflect.DeepEqual(rows[0], types.Headers()) {
		t.Errorf("unexpected header row: %v", rows[0])
	}
	if rows[1][0] != "Banjir Rendam Jakarta Timur" {
		t.Errorf("unexpected first row: %v", rows[1])
	}
	if rows[2][5] != "No content available" {
		t.Errorf("content sentinel lost: %v", rows[2])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	ds := sampleDataset()

	var buf bytes.Buffer
	if err := (&JSONExporter{}).Export(&buf, ds); err != nil {
		t.Fatalf("export: %v", err)
	}

	var back types.Dataset
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(ds, back) {
		t.Errorf("round trip mismatch:\n want %+v\n got  %+v", ds, back)
	}
}

func TestXLSXExport(t *testing.T) {
	var buf bytes.Buffer
	if err := (&XLSXExporter{}).Export(&buf, sampleDataset()); err != nil {
		t.Fatalf("export: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "title" {
		t.Errorf("unexpected header: %v", rows[0])
	}
	if rows[1][1] != "https://news.detik.com/berita/d-100/banjir" {
		t.Errorf("unexpected url cell: %v", rows[1])
	}
}

func TestFilename(t *testing.T) {
	ts := time.Date(2024, 2, 12, 8, 15, 42, 0, time.UTC)

	got := Filename(ts, "banjir jakarta", 3, "csv")
	want := "20240212_081542_banjir_jakarta_3.csv"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	got = Filename(ts, `a/b:c*d`, 1, "json")
	want = "20240212_081542_a-b-c-d_1.json"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	exp, _ := For("json")

	ts := time.Date(2024, 2, 12, 8, 15, 42, 0, time.UTC)
	path, err := WriteFile(dir, exp, sampleDataset(), "banjir", 2, ts)
	if err != nil {
		t.Fatalf("write file: %v", err)
	}

	if filepath.Base(path) != "20240212_081542_banjir_2.json" {
		t.Errorf("unexpected file name: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	var back types.Dataset
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(back) != 2 {
		t.Errorf("expected 2 items, got %d", len(back))
	}
}
