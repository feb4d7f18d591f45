package label

import (
	"errors"
	"fmt"

	"pricetag/internal/model"
)

// TemplateID 价签模板
type TemplateID string

const (
	TemplateStandard  TemplateID = "standard"
	TemplateSwap      TemplateID = "swap"
	TemplateClearance TemplateID = "clearance"
)

// 模板字段名（与 PDF 表单字段一致）
const (
	FieldItemName       = "itemName"
	FieldCompositeID    = "compositeId"
	FieldFormattedPrice = "formattedPrice"
	FieldSwapPrice      = "swapPrice"
	FieldPromoPrice     = "promoPrice"
)

var (
	// ErrNoTemplate 价签类型没有对应模板
	ErrNoTemplate = errors.New("no template for label tag")
	// ErrMissingPromoPrice 模板需要的促销价缺失
	ErrMissingPromoPrice = errors.New("promo price missing")
)

var templateByTag = map[model.PromotionTag]TemplateID{
	model.TagNormal:    TemplateStandard,
	model.TagSwap:      TemplateSwap,
	model.TagClearance: TemplateClearance,
}

var templateFields = map[TemplateID][]string{
	TemplateStandard:  {FieldItemName, FieldCompositeID, FieldFormattedPrice},
	TemplateSwap:      {FieldItemName, FieldCompositeID, FieldFormattedPrice, FieldSwapPrice},
	TemplateClearance: {FieldItemName, FieldCompositeID, FieldFormattedPrice, FieldPromoPrice},
}

// TemplateFor 价签类型 → 模板；小号/重点价签及未知类型返回 ErrNoTemplate
func TemplateFor(tag model.PromotionTag) (TemplateID, error) {
	if id, ok := templateByTag[tag]; ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q", ErrNoTemplate, tag)
}

// DeclaredFields 模板声明的字段
func DeclaredFields(id TemplateID) []string {
	fields := templateFields[id]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// CompositeID 货号 + 进货日期组合编号
func CompositeID(e model.LabelEntry) string {
	return fmt.Sprintf("%s - 20010%s", e.ItemID, e.AcquisitionDate)
}

// MapToTemplate 将一条记录映射为模板及字段值
//
// 只填写模板声明的字段；任一字段无法生成时整条记录失败，不返回部分结果。
func MapToTemplate(e model.LabelEntry) (TemplateID, map[string]string, error) {
	id, err := TemplateFor(e.Tag)
	if err != nil {
		return "", nil, err
	}

	fields := make(map[string]string, len(templateFields[id]))
	for _, name := range templateFields[id] {
		switch name {
		case FieldItemName:
			fields[name] = e.ItemName
		case FieldCompositeID:
			fields[name] = CompositeID(e)
		case FieldFormattedPrice:
			fields[name] = FormatPrice(e.FinalPrice)
		case FieldSwapPrice:
			if e.SwapPrice == nil {
				return "", nil, fmt.Errorf("%w: %s", ErrMissingPromoPrice, name)
			}
			fields[name] = FormatPrice(*e.SwapPrice)
		case FieldPromoPrice:
			if e.ClearancePrice == nil {
				return "", nil, fmt.Errorf("%w: %s", ErrMissingPromoPrice, name)
			}
			fields[name] = FormatPrice(*e.ClearancePrice)
		}
	}
	return id, fields, nil
}
