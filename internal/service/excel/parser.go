package excel

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"pricetag/internal/model"
	"pricetag/internal/service/pricing"
)

// ErrNoFile 尚未加载工作簿
var ErrNoFile = errors.New("no file loaded")

// 库存导出表固定列顺序
const (
	colID = iota
	colCategory
	colName
	colQuantity
	colUnit
	colUnitPrice
	colValue
	colCurrency
	colAcquisitionDate
	colPurchaseCost
	colWarehouse
	colBin
	colBarcode
	inventoryColumnCount
)

// 前两行为报表标题，不是数据
const inventorySkipRows = 2

// Parser 库存表解析器
type Parser struct {
	file *excelize.File
}

// NewParser 创建解析器
func NewParser() *Parser {
	return &Parser{}
}

// LoadFile 加载Excel文件
func (p *Parser) LoadFile(reader io.Reader) error {
	file, err := excelize.OpenReader(reader)
	if err != nil {
		return fmt.Errorf("failed to open excel: %w", err)
	}
	p.file = file
	return nil
}

// Close 释放工作簿
func (p *Parser) Close() error {
	if p.file == nil {
		return nil
	}
	return p.file.Close()
}

// ParseInventory 解析第一个工作表中的库存条目
func (p *Parser) ParseInventory() ([]model.ItemRecord, error) {
	if p.file == nil {
		return nil, ErrNoFile
	}

	sheets := p.file.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := p.file.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) <= inventorySkipRows {
		return []model.ItemRecord{}, nil
	}

	items := make([]model.ItemRecord, 0, len(rows)-inventorySkipRows)
	for _, row := range rows[inventorySkipRows:] {
		item, ok := parseInventoryRow(row)
		if !ok {
			continue // 跳过空行
		}
		items = append(items, item)
	}
	return items, nil
}

func parseInventoryRow(row []string) (model.ItemRecord, bool) {
	get := func(idx int) string {
		if idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	id := get(colID)
	name := get(colName)
	if id == "" && name == "" {
		return model.ItemRecord{}, false
	}

	return model.ItemRecord{
		ID:              id,
		Name:            name,
		CategoryCode:    parseCategory(get(colCategory)),
		PurchaseCost:    pricing.ParseAmount(get(colPurchaseCost)),
		AcquisitionDate: get(colAcquisitionDate),
		Quantity:        get(colQuantity),
		Unit:            get(colUnit),
		UnitPrice:       get(colUnitPrice),
		Value:           get(colValue),
		Currency:        get(colCurrency),
		Warehouse:       get(colWarehouse),
		Bin:             get(colBin),
		Barcode:         get(colBarcode),
	}, true
}

// parseCategory 品类代码；"129" 与 "129.0" 均可，其余返回 nil
func parseCategory(s string) *int {
	if s == "" {
		return nil
	}
	if v, err := strconv.Atoi(s); err == nil {
		return &v
	}
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsInteger() {
		return nil
	}
	v := int(d.IntPart())
	return &v
}

// ReadInventoryFile 读取库存表文件
func ReadInventoryFile(path string) ([]model.ItemRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory %s: %w", path, err)
	}
	defer f.Close()

	p := NewParser()
	if err := p.LoadFile(f); err != nil {
		return nil, err
	}
	defer p.Close()

	return p.ParseInventory()
}
