package excel

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"pricetag/internal/service/ledger"
)

// ExportTimestampLayout 导出文件名中的时间格式（YYYY-MM-DD_HH-MM-SS）
const ExportTimestampLayout = "2006-01-02_15-04-05"

const batchSheetName = "Pricing"

// ExportFileName pricing_YYYY-MM-DD_HH-MM-SS.xlsx
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("pricing_%s.xlsx", now.Format(ExportTimestampLayout))
}

// Exporter 批次导出器
type Exporter struct{}

// NewExporter 创建导出器
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export 将批次行写入新的工作簿
func (e *Exporter) Export(rows []ledger.Row) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", batchSheetName); err != nil {
		return nil, err
	}

	// 设置表头
	for i, h := range ledger.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(batchSheetName, cell, h); err != nil {
			return nil, err
		}
	}

	// 设置表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2E8F0"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	f.SetRowStyle(batchSheetName, 1, 1, headerStyle)

	// 写入数据
	for i, row := range rows {
		for j, v := range row.Values() {
			if v == nil {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if err := f.SetCellValue(batchSheetName, cell, v); err != nil {
				return nil, fmt.Errorf("write row %d: %w", i+1, err)
			}
		}
	}

	// 设置列宽
	f.SetColWidth(batchSheetName, "A", "A", 15)
	f.SetColWidth(batchSheetName, "B", "B", 40)
	f.SetColWidth(batchSheetName, "C", "I", 14)

	return f, nil
}

// SaveTo 导出到 dir/pricing_<时间>.xlsx，返回文件路径
func (e *Exporter) SaveTo(dir string, now time.Time, rows []ledger.Row) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f, err := e.Export(rows)
	if err != nil {
		return "", err
	}
	defer f.Close()

	path := filepath.Join(dir, ExportFileName(now))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
