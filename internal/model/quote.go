package model

import "github.com/shopspring/decimal"

// PriceQuote 单个条目的即时报价（不持久化，每次编辑后整体重算）
type PriceQuote struct {
	Tier          Tier                `json:"tier"`
	TierPercent   *int                `json:"tierPercent"`
	Price         Override            `json:"price"`         // Computed 为系统价
	MarginPercent decimal.NullDecimal `json:"marginPercent"` // 按生效价格回算
	MassMargin    *int64              `json:"massMargin"`
	Tag           PromotionTag        `json:"tag"`
	Promo         Override            `json:"promo"` // 以旧换新/促销价
}

// BasePrice 系统计算价
func (q PriceQuote) BasePrice() decimal.NullDecimal {
	return q.Price.Computed
}
