package ledger

import (
	"iter"

	"pricetag/internal/model"
)

// Columns 导出表的列顺序
var Columns = []string{
	"Item ID",
	"Item Name",
	"Price",
	"Margin (%)",
	"Mass Margin",
	"Label",
	"Acquisition Date",
	"Swap Price",
	"Clearance Price",
}

// Row 导出表中的一行（与 Columns 一一对应）
type Row struct {
	ItemID          string
	ItemName        string
	Price           int64
	Margin          string
	MassMargin      *int64
	Label           string
	AcquisitionDate string
	SwapPrice       *int64
	ClearancePrice  *int64
}

// Values 按列顺序返回单元格值；缺失值为 nil
func (r Row) Values() []any {
	return []any{
		r.ItemID,
		r.ItemName,
		r.Price,
		r.Margin,
		optional(r.MassMargin),
		r.Label,
		r.AcquisitionDate,
		optional(r.SwapPrice),
		optional(r.ClearancePrice),
	}
}

func optional(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}

// RowFromEntry 单条记录 → 导出行
func RowFromEntry(e model.LabelEntry) Row {
	return Row{
		ItemID:          e.ItemID,
		ItemName:        e.ItemName,
		Price:           e.FinalPrice,
		Margin:          e.MarginText(),
		MassMargin:      e.MassMargin,
		Label:           string(e.Tag),
		AcquisitionDate: e.AcquisitionDate,
		SwapPrice:       e.SwapPrice,
		ClearancePrice:  e.ClearancePrice,
	}
}

// Rows 将条目序列投影为导出行
func Rows(entries iter.Seq[model.LabelEntry]) []Row {
	rows := make([]Row, 0)
	for e := range entries {
		rows = append(rows, RowFromEntry(e))
	}
	return rows
}
