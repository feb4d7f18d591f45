package pricing

import (
	"github.com/shopspring/decimal"

	"pricetag/internal/model"
)

var (
	// DefaultTaxRate 默认含税系数（27% 增值税）
	DefaultTaxRate = decimal.RequireFromString("1.27")

	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Calculator 价格/毛利计算器
type Calculator struct {
	taxRate decimal.Decimal
}

// NewCalculator 创建计算器；税率非正时使用默认税率
func NewCalculator(taxRate decimal.Decimal) *Calculator {
	if !taxRate.IsPositive() {
		taxRate = DefaultTaxRate
	}
	return &Calculator{taxRate: taxRate}
}

// TaxRate 当前含税系数
func (c *Calculator) TaxRate() decimal.Decimal {
	return c.taxRate
}

// ComputePrice 进价 × (1 + 毛利率) × 含税系数，向上取整到千位后减 1（价格以 999 结尾）
func (c *Calculator) ComputePrice(cost decimal.NullDecimal, categoryCode *int, policy Policy) decimal.NullDecimal {
	if !cost.Valid || !cost.Decimal.IsPositive() {
		return decimal.NullDecimal{}
	}
	percent, ok := policy.PercentFor(TierFor(categoryCode))
	if !ok {
		return decimal.NullDecimal{}
	}

	factor := decimal.NewFromInt(int64(percent)).Div(hundred).Add(decimal.NewFromInt(1))
	raw := cost.Decimal.Mul(factor).Mul(c.taxRate)
	return decimal.NewNullDecimal(RoundToPriceEnding(raw))
}

// RoundToPriceEnding ceil(raw/1000)*1000 - 1
func RoundToPriceEnding(raw decimal.Decimal) decimal.Decimal {
	return raw.Div(thousand).Ceil().Mul(thousand).Sub(decimal.NewFromInt(1))
}

// ComputeMargin ((价格/含税系数) - 进价) / 进价 × 100，保留一位小数（四舍五入，远离零）
func (c *Calculator) ComputeMargin(price, cost decimal.NullDecimal) decimal.NullDecimal {
	if !price.Valid || !cost.Valid || cost.Decimal.IsZero() {
		return decimal.NullDecimal{}
	}
	net := price.Decimal.Div(c.taxRate)
	margin := net.Sub(cost.Decimal).Div(cost.Decimal).Mul(hundred)
	return decimal.NewNullDecimal(margin.Round(1))
}

// MassMargin 毛利额 = 价格 - 进价 × 含税系数，取整（.5 取偶）；任一值缺失或为零时返回 nil
func (c *Calculator) MassMargin(price, cost decimal.NullDecimal) *int64 {
	if !price.Valid || !cost.Valid || price.Decimal.IsZero() || cost.Decimal.IsZero() {
		return nil
	}
	v := price.Decimal.Sub(cost.Decimal.Mul(c.taxRate)).RoundBank(0).IntPart()
	return &v
}

// TierPercent 条目所在档位及其毛利率
func TierPercent(item model.ItemRecord, policy Policy) (model.Tier, *int) {
	tier := TierFor(item.CategoryCode)
	if percent, ok := policy.PercentFor(tier); ok {
		return tier, &percent
	}
	return tier, nil
}
