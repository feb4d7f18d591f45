package excel

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"pricetag/internal/model"
	"pricetag/internal/service/pricing"
)

// 对比表的表头位于第三行
const costCheckHeaderRow = 2

var (
	idHeaders   = []string{"Cikkszám", "Item ID"}
	nameHeaders = []string{"Cikknév", "Item Name"}
	costHeaders = []string{"Beszerzési ár", "Purchase Cost"}
)

type costSheet struct {
	order []string
	names map[string]string
	costs map[string]model.CostChange
}

// CompareCosts 找出进价上涨的条目（按当前表顺序）
func CompareCosts(current, previous io.Reader) ([]model.CostChange, error) {
	cur, err := readCostSheet(current)
	if err != nil {
		return nil, fmt.Errorf("current inventory: %w", err)
	}
	prev, err := readCostSheet(previous)
	if err != nil {
		return nil, fmt.Errorf("previous inventory: %w", err)
	}

	changes := make([]model.CostChange, 0)
	for _, id := range cur.order {
		now := cur.costs[id]
		before, ok := prev.costs[id]
		if !ok {
			continue
		}
		diff := now.CurrentCost.Sub(before.CurrentCost)
		if !diff.IsPositive() {
			continue
		}
		changes = append(changes, model.CostChange{
			ItemID:       id,
			ItemName:     cur.names[id],
			CurrentCost:  now.CurrentCost,
			PreviousCost: before.CurrentCost,
			Difference:   diff,
		})
	}
	return changes, nil
}

func readCostSheet(r io.Reader) (*costSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open excel: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) <= costCheckHeaderRow {
		return nil, fmt.Errorf("header row %d not found", costCheckHeaderRow+1)
	}

	header := rows[costCheckHeaderRow]
	idCol := findColumn(header, idHeaders)
	nameCol := findColumn(header, nameHeaders)
	costCol := findColumn(header, costHeaders)
	if idCol < 0 || costCol < 0 {
		return nil, fmt.Errorf("required columns %q / %q not found", idHeaders[0], costHeaders[0])
	}

	sheet := &costSheet{
		names: make(map[string]string),
		costs: make(map[string]model.CostChange),
	}
	for _, row := range rows[costCheckHeaderRow+1:] {
		id := cellAt(row, idCol)
		if id == "" {
			continue
		}
		cost := pricing.ParseAmount(cellAt(row, costCol))
		if !cost.Valid {
			continue
		}
		if _, dup := sheet.costs[id]; dup {
			continue
		}
		sheet.order = append(sheet.order, id)
		sheet.names[id] = cellAt(row, nameCol)
		sheet.costs[id] = model.CostChange{ItemID: id, CurrentCost: cost.Decimal}
	}
	return sheet, nil
}

func findColumn(header []string, names []string) int {
	for i, h := range header {
		h = strings.TrimSpace(h)
		for _, name := range names {
			if strings.EqualFold(h, name) {
				return i
			}
		}
	}
	return -1
}

func cellAt(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
