package label

import (
	"strings"

	"github.com/dustin/go-humanize"
)

// FormatPrice 千分位以空格分隔：12999 → "12 999"
func FormatPrice(v int64) string {
	return strings.ReplaceAll(humanize.Comma(v), ",", " ")
}
