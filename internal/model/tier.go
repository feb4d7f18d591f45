package model

// Tier 毛利档位
type Tier string

const (
	TierStandard       Tier = "standard"        // 普通商品
	TierSmallAppliance Tier = "small-appliance" // 小家电
	TierDisplayPanel   Tier = "display-panel"   // 电视/显示屏
	TierRangeCooker    Tier = "range-cooker"    // 灶具
)

// AllTiers 全部档位（固定顺序，用于配置展示与持久化）
var AllTiers = []Tier{
	TierStandard,
	TierSmallAppliance,
	TierDisplayPanel,
	TierRangeCooker,
}

// Valid 是否为已知档位
func (t Tier) Valid() bool {
	for _, it := range AllTiers {
		if it == t {
			return true
		}
	}
	return false
}
