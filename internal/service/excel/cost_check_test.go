package excel_test

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"pricetag/internal/service/excel"
)

func buildCostWorkbook(t *testing.T, data [][]any) *bytes.Buffer {
	t.Helper()

	wb := excelize.NewFile()
	defer wb.Close()

	header := []any{"Cikkszám", "Cikknév", "Mennyiség", "Beszerzési ár"}
	if err := wb.SetSheetRow("Sheet1", "A3", &header); err != nil {
		t.Fatalf("SetSheetRow failed: %v", err)
	}
	for i, row := range data {
		row := row
		cell, _ := excelize.CoordinatesToCellName(1, i+4)
		if err := wb.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("SetSheetRow failed: %v", err)
		}
	}

	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	return buf
}

func TestCompareCosts(t *testing.T) {
	current := buildCostWorkbook(t, [][]any{
		{"1", "Kenyérpirító", 2, 11000},
		{"2", "TV", 1, 90000},
		{"3", "Tűzhely", 1, 50000},
		{"4", "Új termék", 1, 1000},
	})
	previous := buildCostWorkbook(t, [][]any{
		{"1", "Kenyérpirító", 2, 10000},
		{"2", "TV", 1, 95000},
		{"3", "Tűzhely", 1, 50000},
	})

	changes, err := excel.CompareCosts(current, previous)
	if err != nil {
		t.Fatalf("CompareCosts failed: %v", err)
	}
	if len(changes) != 1 {
		t.Fatalf("changes=%+v, want only item 1", changes)
	}

	c := changes[0]
	if c.ItemID != "1" || c.ItemName != "Kenyérpirító" {
		t.Fatalf("change=%+v", c)
	}
	if c.Difference.IntPart() != 1000 || c.PreviousCost.IntPart() != 10000 || c.CurrentCost.IntPart() != 11000 {
		t.Fatalf("costs=%s/%s diff=%s", c.PreviousCost, c.CurrentCost, c.Difference)
	}
}

func TestCompareCostsMissingHeader(t *testing.T) {
	wb := excelize.NewFile()
	defer wb.Close()
	buf, err := wb.WriteToBuffer()
	if err != nil {
		t.Fatalf("WriteToBuffer failed: %v", err)
	}
	other := buildCostWorkbook(t, nil)

	if _, err := excel.CompareCosts(buf, other); err == nil {
		t.Fatalf("workbook without header row should fail")
	}
}
