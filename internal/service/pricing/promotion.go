package pricing

import (
	"github.com/shopspring/decimal"

	"pricetag/internal/model"
)

var promoOffsets = map[model.PromotionTag]decimal.Decimal{
	model.TagSwap:      decimal.NewFromInt(10000),
	model.TagClearance: decimal.NewFromInt(3000),
}

// PromoOffset 价签类型对应的加价；无派生价的类型 ok=false
func PromoOffset(tag model.PromotionTag) (offset decimal.Decimal, ok bool) {
	offset, ok = promoOffsets[tag]
	return offset, ok
}

// DerivePromoPrice 以旧换新 = 价格 + 10000，促销 = 价格 + 3000，结果取整（.5 取偶）
func DerivePromoPrice(price decimal.NullDecimal, tag model.PromotionTag) decimal.NullDecimal {
	offset, ok := PromoOffset(tag)
	if !ok || !price.Valid {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(price.Decimal.Add(offset).RoundBank(0))
}
