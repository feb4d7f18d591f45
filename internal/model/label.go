package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvalidDateMarker 进货日期无法解析时写入的标记
const InvalidDateMarker = "invalid date"

// MarginNotAvailable 毛利率无法计算时的展示值
const MarginNotAvailable = "N/A"

// LabelEntry 批次中的一条价签记录（写入后不再修改）
type LabelEntry struct {
	EntryID         string              `json:"entryId"`
	Seq             int                 `json:"seq"`
	ItemID          string              `json:"itemId"`
	ItemName        string              `json:"itemName"`
	FinalPrice      int64               `json:"finalPrice"`
	MarginPercent   decimal.NullDecimal `json:"marginPercent"`
	MassMargin      *int64              `json:"massMargin"`
	Tag             PromotionTag        `json:"tag"`
	AcquisitionDate string              `json:"acquisitionDate"` // YYMMDD 或 InvalidDateMarker
	SwapPrice       *int64              `json:"swapPrice,omitempty"`
	ClearancePrice  *int64              `json:"clearancePrice,omitempty"`
	CommittedAt     time.Time           `json:"committedAt"`
}

// MarginText 毛利率展示文本（保留一位小数）
func (e LabelEntry) MarginText() string {
	if !e.MarginPercent.Valid {
		return MarginNotAvailable
	}
	return e.MarginPercent.Decimal.StringFixed(1)
}

// Clone 深拷贝（指针字段不共享）
func (e LabelEntry) Clone() LabelEntry {
	out := e
	out.MassMargin = cloneInt64(e.MassMargin)
	out.SwapPrice = cloneInt64(e.SwapPrice)
	out.ClearancePrice = cloneInt64(e.ClearancePrice)
	return out
}

func cloneInt64(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
