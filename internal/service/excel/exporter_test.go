package excel_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"pricetag/internal/service/excel"
	"pricetag/internal/service/ledger"
)

func int64Ptr(v int64) *int64 { return &v }

func TestExportFileName(t *testing.T) {
	now := time.Date(2024, 10, 2, 9, 5, 7, 0, time.Local)
	if got := excel.ExportFileName(now); got != "pricing_2024-10-02_09-05-07.xlsx" {
		t.Fatalf("ExportFileName=%q", got)
	}
}

func TestExporterWritesRows(t *testing.T) {
	rows := []ledger.Row{
		{
			ItemID:          "A",
			ItemName:        "Kenyérpirító",
			Price:           20000,
			Margin:          "26.0",
			MassMargin:      int64Ptr(7300),
			Label:           "swap",
			AcquisitionDate: "241002",
			SwapPrice:       int64Ptr(30000),
		},
		{
			ItemID:          "B",
			ItemName:        "TV",
			Price:           9999,
			Margin:          "N/A",
			Label:           "normal",
			AcquisitionDate: "invalid date",
		},
	}

	f, err := excel.NewExporter().Export(rows)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}
	defer f.Close()

	got, err := f.GetRows("Pricing")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("rows=%d, want 3", len(got))
	}
	for i, h := range ledger.Columns {
		if got[0][i] != h {
			t.Fatalf("header[%d]=%q, want %q", i, got[0][i], h)
		}
	}

	want := []string{"A", "Kenyérpirító", "20000", "26.0", "7300", "swap", "241002", "30000"}
	for i, w := range want {
		if got[1][i] != w {
			t.Fatalf("row1[%d]=%q, want %q", i, got[1][i], w)
		}
	}
	if got[2][3] != "N/A" || got[2][4] != "" || got[2][6] != "invalid date" {
		t.Fatalf("row2=%v", got[2])
	}
}

func TestExporterSaveTo(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "exports")
	now := time.Date(2024, 1, 31, 23, 59, 0, 0, time.Local)

	path, err := excel.NewExporter().SaveTo(dir, now, nil)
	if err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}
	if filepath.Base(path) != "pricing_2024-01-31_23-59-00.xlsx" {
		t.Fatalf("path=%q", path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Pricing")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty batch should still have header, rows=%d", len(rows))
	}
}
