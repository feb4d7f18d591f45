package pricing

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"pricetag/internal/model"
)

// Draft 单个条目的编辑状态：条目 + 价签类型 + 操作员输入
//
// PriceInput / PromoInput 为空或无法解析时视为未覆盖，回退到计算值。
type Draft struct {
	Item       model.ItemRecord
	Tag        model.PromotionTag
	PriceInput string
	PromoInput string
}

var commaGrouping = regexp.MustCompile(`,\d{3}$`)

// ParseAmount 解析操作员输入的金额，容忍空格分组与逗号小数点（不接受逗号千分位）
func ParseAmount(text string) decimal.NullDecimal {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.NullDecimal{}
	}
	s = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "").Replace(s)
	if strings.Contains(s, ",") {
		// 逗号仅作小数点；"12,999" 这类千分位写法有歧义，视为无法解析
		if strings.Count(s, ",") > 1 || strings.Contains(s, ".") || commaGrouping.MatchString(s) {
			return decimal.NullDecimal{}
		}
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(d)
}
