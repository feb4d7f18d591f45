package pricing

import (
	"sync"

	"pricetag/internal/model"
)

// Engine 报价引擎：持有会话毛利设置与计算器
type Engine struct {
	mu     sync.RWMutex
	policy Policy
	calc   *Calculator
}

// NewEngine 创建报价引擎
func NewEngine(policy Policy, calc *Calculator) *Engine {
	if calc == nil {
		calc = NewCalculator(DefaultTaxRate)
	}
	return &Engine{policy: policy, calc: calc}
}

// Policy 当前毛利设置
func (e *Engine) Policy() Policy {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.policy
}

// SetPolicy 替换毛利设置
func (e *Engine) SetPolicy(p Policy) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.policy = p
}

// Calculator 当前计算器
func (e *Engine) Calculator() *Calculator {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.calc
}

// SetCalculator 替换计算器（税率变更）
func (e *Engine) SetCalculator(c *Calculator) {
	if c == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.calc = c
}

// Quote 按草稿整体重算报价
//
// 毛利率始终按生效价格（人工价优先）与同一进价、税率回算，不沿用上一次的结果。
func (e *Engine) Quote(d Draft) model.PriceQuote {
	policy := e.Policy()
	calc := e.Calculator()

	item := d.Item
	tier, percent := TierPercent(item, policy)

	price := model.Override{
		Computed: calc.ComputePrice(item.PurchaseCost, item.CategoryCode, policy),
		Manual:   ParseAmount(d.PriceInput),
	}
	effective := price.Effective()

	q := model.PriceQuote{
		Tier:          tier,
		TierPercent:   percent,
		Price:         price,
		MarginPercent: calc.ComputeMargin(effective, item.PurchaseCost),
		MassMargin:    calc.MassMargin(effective, item.PurchaseCost),
		Tag:           d.Tag,
	}

	if d.Tag.HasPromoPrice() {
		q.Promo = model.Override{
			Computed: DerivePromoPrice(effective, d.Tag),
			Manual:   ParseAmount(d.PromoInput),
		}
	}
	return q
}
