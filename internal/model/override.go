package model

import "github.com/shopspring/decimal"

// Override 计算值 + 人工覆盖值；生效值 = 人工值 ?? 计算值
type Override struct {
	Computed decimal.NullDecimal `json:"computed"`
	Manual   decimal.NullDecimal `json:"manual"`
}

// Effective 返回生效值
func (o Override) Effective() decimal.NullDecimal {
	if o.Manual.Valid {
		return o.Manual
	}
	return o.Computed
}

// IsManual 是否使用人工值
func (o Override) IsManual() bool {
	return o.Manual.Valid
}
