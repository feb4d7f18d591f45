package pricing

import "pricetag/internal/model"

// tierByCategory 品类代码 → 毛利档位（固定表，未列出的品类归入普通档）
var tierByCategory = map[int]model.Tier{
	128: model.TierSmallAppliance,
	129: model.TierSmallAppliance,
	161: model.TierSmallAppliance,
	162: model.TierSmallAppliance,
	166: model.TierSmallAppliance,
	177: model.TierDisplayPanel,
	151: model.TierRangeCooker,
	152: model.TierRangeCooker,
	153: model.TierRangeCooker,
}

// TierFor 返回品类对应的档位，品类缺失或未登记时返回普通档
func TierFor(categoryCode *int) model.Tier {
	if categoryCode == nil {
		return model.TierStandard
	}
	if tier, ok := tierByCategory[*categoryCode]; ok {
		return tier
	}
	return model.TierStandard
}

// DefaultPercents 默认毛利率（%）
func DefaultPercents() map[model.Tier]int {
	return map[model.Tier]int{
		model.TierStandard:       18,
		model.TierSmallAppliance: 25,
		model.TierDisplayPanel:   10,
		model.TierRangeCooker:    10,
	}
}

// Policy 当前会话的毛利设置（值类型，修改返回新副本）
type Policy struct {
	percents map[model.Tier]int
}

// NewPolicy 以给定毛利率创建策略
func NewPolicy(percents map[model.Tier]int) Policy {
	cp := make(map[model.Tier]int, len(percents))
	for k, v := range percents {
		cp[k] = v
	}
	return Policy{percents: cp}
}

// DefaultPolicy 默认策略
func DefaultPolicy() Policy {
	return NewPolicy(DefaultPercents())
}

// PercentFor 读取档位毛利率；档位未配置时 ok=false
func (p Policy) PercentFor(tier model.Tier) (percent int, ok bool) {
	percent, ok = p.percents[tier]
	return percent, ok
}

// WithPercent 返回修改了某档毛利率的新策略
func (p Policy) WithPercent(tier model.Tier, percent int) Policy {
	next := NewPolicy(p.percents)
	next.percents[tier] = percent
	return next
}

// Percents 返回毛利率副本
func (p Policy) Percents() map[model.Tier]int {
	return NewPolicy(p.percents).percents
}
