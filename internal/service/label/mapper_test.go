package label

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"pricetag/internal/model"
)

func i64(v int64) *int64 { return &v }

func entry(tag model.PromotionTag) model.LabelEntry {
	return model.LabelEntry{
		Seq:             1,
		EntryID:         "e-1",
		ItemID:          "A-100",
		ItemName:        "Kenyérpirító",
		FinalPrice:      15999,
		MarginPercent:   decimal.NewNullDecimal(decimal.RequireFromString("26.0")),
		Tag:             tag,
		AcquisitionDate: "241002",
	}
}

func TestTemplateFor(t *testing.T) {
	t.Parallel()

	cases := map[model.PromotionTag]TemplateID{
		model.TagNormal:    TemplateStandard,
		model.TagSwap:      TemplateSwap,
		model.TagClearance: TemplateClearance,
	}
	for tag, want := range cases {
		got, err := TemplateFor(tag)
		if err != nil || got != want {
			t.Fatalf("TemplateFor(%s)=%s,%v want %s", tag, got, err, want)
		}
	}

	for _, tag := range []model.PromotionTag{model.TagSmall, model.TagHighlighted, "bogus", ""} {
		if _, err := TemplateFor(tag); !errors.Is(err, ErrNoTemplate) {
			t.Fatalf("TemplateFor(%q) err=%v, want ErrNoTemplate", tag, err)
		}
	}
}

func TestMapToTemplate_Standard(t *testing.T) {
	t.Parallel()

	id, fields, err := MapToTemplate(entry(model.TagNormal))
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if id != TemplateStandard {
		t.Fatalf("template=%s, want standard", id)
	}
	want := map[string]string{
		FieldItemName:       "Kenyérpirító",
		FieldCompositeID:    "A-100 - 20010241002",
		FieldFormattedPrice: "15 999",
	}
	if len(fields) != len(want) {
		t.Fatalf("fields=%v, want exactly %v", fields, want)
	}
	for k, v := range want {
		if fields[k] != v {
			t.Fatalf("field %s=%q, want %q", k, fields[k], v)
		}
	}
}

func TestMapToTemplate_Swap(t *testing.T) {
	t.Parallel()

	e := entry(model.TagSwap)
	e.FinalPrice = 20000
	e.SwapPrice = i64(30000)

	id, fields, err := MapToTemplate(e)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if id != TemplateSwap {
		t.Fatalf("template=%s, want swap", id)
	}
	if fields[FieldSwapPrice] != "30 000" || fields[FieldFormattedPrice] != "20 000" {
		t.Fatalf("unexpected fields: %v", fields)
	}
	if _, ok := fields[FieldPromoPrice]; ok {
		t.Fatalf("swap template must not carry %s", FieldPromoPrice)
	}
}

func TestMapToTemplate_Clearance(t *testing.T) {
	t.Parallel()

	e := entry(model.TagClearance)
	e.ClearancePrice = i64(23000)

	id, fields, err := MapToTemplate(e)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if id != TemplateClearance || fields[FieldPromoPrice] != "23 000" {
		t.Fatalf("unexpected mapping: %s %v", id, fields)
	}
	if _, ok := fields[FieldSwapPrice]; ok {
		t.Fatalf("clearance template must not carry %s", FieldSwapPrice)
	}
}

func TestMapToTemplate_MissingPromoPrice(t *testing.T) {
	t.Parallel()

	_, fields, err := MapToTemplate(entry(model.TagSwap))
	if !errors.Is(err, ErrMissingPromoPrice) {
		t.Fatalf("err=%v, want ErrMissingPromoPrice", err)
	}
	if fields != nil {
		t.Fatalf("expected no partial fields, got %v", fields)
	}
}

func TestMapToTemplate_InvalidDateKeepsMarker(t *testing.T) {
	t.Parallel()

	e := entry(model.TagNormal)
	e.AcquisitionDate = model.InvalidDateMarker
	_, fields, err := MapToTemplate(e)
	if err != nil {
		t.Fatalf("map: %v", err)
	}
	if got := fields[FieldCompositeID]; got != "A-100 - 20010invalid date" {
		t.Fatalf("compositeId=%q", got)
	}
}

func TestDeclaredFieldsReturnsCopy(t *testing.T) {
	t.Parallel()

	f := DeclaredFields(TemplateSwap)
	f[0] = "mutated"
	if DeclaredFields(TemplateSwap)[0] != FieldItemName {
		t.Fatalf("DeclaredFields leaked internal slice")
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		0:       "0",
		999:     "999",
		12999:   "12 999",
		1234567: "1 234 567",
		-4500:   "-4 500",
	}
	for in, want := range cases {
		if got := FormatPrice(in); got != want {
			t.Fatalf("FormatPrice(%d)=%q, want %q", in, got, want)
		}
	}
}
