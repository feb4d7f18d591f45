package ledger

import (
	"strings"
	"time"

	"pricetag/internal/model"
)

const (
	acquisitionDateLayout = "06.1.2" // YY.MM.DD，月/日允许一位
	compactDateLayout     = "060102" // YYMMDD
)

// NormalizeAcquisitionDate "24.10.02" → "241002"；无法解析时返回 model.InvalidDateMarker
func NormalizeAcquisitionDate(raw string) string {
	t, err := time.Parse(acquisitionDateLayout, strings.TrimSpace(raw))
	if err != nil {
		return model.InvalidDateMarker
	}
	return t.Format(compactDateLayout)
}
