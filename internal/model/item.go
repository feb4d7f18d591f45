package model

import "github.com/shopspring/decimal"

// ItemRecord 库存条目（来自库存导出表的一行，核心只读）
type ItemRecord struct {
	ID              string              `json:"id"`              // 货号
	Name            string              `json:"name"`            // 品名
	CategoryCode    *int                `json:"categoryCode"`    // 品类代码，无法解析时为 nil
	PurchaseCost    decimal.NullDecimal `json:"purchaseCost"`    // 进价，缺失/无法解析时无效
	AcquisitionDate string              `json:"acquisitionDate"` // 进货日期，原样保留（YY.MM.DD）

	// 以下字段仅用于展示
	Quantity  string `json:"quantity,omitempty"`
	Unit      string `json:"unit,omitempty"`
	UnitPrice string `json:"unitPrice,omitempty"`
	Value     string `json:"value,omitempty"`
	Currency  string `json:"currency,omitempty"`
	Warehouse string `json:"warehouse,omitempty"`
	Bin       string `json:"bin,omitempty"`
	Barcode   string `json:"barcode,omitempty"`
}

// HasCost 进价是否可用于计算
func (r ItemRecord) HasCost() bool {
	return r.PurchaseCost.Valid && r.PurchaseCost.Decimal.IsPositive()
}

// CostChange 进价变动（当前库存表与上一版库存表对比）
type CostChange struct {
	ItemID       string          `json:"itemId"`
	ItemName     string          `json:"itemName"`
	CurrentCost  decimal.Decimal `json:"currentCost"`
	PreviousCost decimal.Decimal `json:"previousCost"`
	Difference   decimal.Decimal `json:"difference"`
}
