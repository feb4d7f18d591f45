package model

// PromotionTag 价签类型
type PromotionTag string

const (
	TagNormal      PromotionTag = "normal"      // 普通价签
	TagSwap        PromotionTag = "swap"        // 以旧换新
	TagClearance   PromotionTag = "clearance"   // 促销
	TagSmall       PromotionTag = "small"       // 小号价签（仅样式）
	TagHighlighted PromotionTag = "highlighted" // 重点价签（仅样式）
)

// KnownTags 操作界面可选的价签类型
var KnownTags = []PromotionTag{
	TagNormal,
	TagSwap,
	TagClearance,
	TagSmall,
	TagHighlighted,
}

// HasPromoPrice 该价签是否带派生促销价
func (t PromotionTag) HasPromoPrice() bool {
	return t == TagSwap || t == TagClearance
}

// Known 是否为已知价签类型
func (t PromotionTag) Known() bool {
	for _, it := range KnownTags {
		if it == t {
			return true
		}
	}
	return false
}
