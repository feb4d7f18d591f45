package label

import (
	"context"
	"fmt"
	"iter"
	"log"
	"regexp"

	"pricetag/internal/model"
)

// Writer 按模板与字段生成一份文档，返回输出路径
type Writer interface {
	Write(ctx context.Context, template TemplateID, fields map[string]string, name string) (string, error)
}

// Diagnostic 单条记录未能生成文档的原因
type Diagnostic struct {
	Seq      int                `json:"seq"`
	EntryID  string             `json:"entryId"`
	ItemID   string             `json:"itemId"`
	ItemName string             `json:"itemName"`
	Tag      model.PromotionTag `json:"tag"`
	Reason   string             `json:"reason"`
}

// Report 一次批量生成的结果
type Report struct {
	Generated []string     `json:"generated"`
	Skipped   []Diagnostic `json:"skipped"` // 无模板 / 字段缺失
	Failed    []Diagnostic `json:"failed"`  // 写入失败
}

// Generator 逐条生成价签文档；单条失败不影响其余记录
type Generator struct {
	writer Writer
}

// NewGenerator 创建生成器
func NewGenerator(w Writer) *Generator {
	return &Generator{writer: w}
}

// Generate 依写入顺序处理全部记录
//
// 只有 ctx 被取消时返回错误，此时 Report 包含已处理部分。
func (g *Generator) Generate(ctx context.Context, entries iter.Seq[model.LabelEntry], total int, progress func(ProgressEvent)) (*Report, error) {
	report := &Report{
		Generated: []string{},
		Skipped:   []Diagnostic{},
		Failed:    []Diagnostic{},
	}
	names := make(map[string]int)

	done := 0
	reportProgress(progress, done, total, "开始生成价签")
	for e := range entries {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		tmpl, fields, err := MapToTemplate(e)
		if err != nil {
			log.Printf("跳过价签 %s (%s): %v", e.ItemID, e.ItemName, err)
			report.Skipped = append(report.Skipped, diagnose(e, err))
		} else {
			path, err := g.writer.Write(ctx, tmpl, fields, documentName(e.ItemID, names))
			if err != nil {
				log.Printf("价签写入失败 %s (%s): %v", e.ItemID, e.ItemName, err)
				report.Failed = append(report.Failed, diagnose(e, err))
			} else {
				report.Generated = append(report.Generated, path)
			}
		}

		done++
		reportProgress(progress, done, total, fmt.Sprintf("已处理 %d/%d", done, total))
	}

	return report, nil
}

func diagnose(e model.LabelEntry, err error) Diagnostic {
	return Diagnostic{
		Seq:      e.Seq,
		EntryID:  e.EntryID,
		ItemID:   e.ItemID,
		ItemName: e.ItemName,
		Tag:      e.Tag,
		Reason:   err.Error(),
	}
}

var unsafeNameChars = regexp.MustCompile(`[^\pL\pN._-]+`)

// documentName label_<货号>.pdf，同一货号重复出现时追加序号
func documentName(itemID string, seen map[string]int) string {
	base := unsafeNameChars.ReplaceAllString(itemID, "_")
	if base == "" {
		base = "item"
	}
	seen[base]++
	if n := seen[base]; n > 1 {
		return fmt.Sprintf("label_%s_%d.pdf", base, n)
	}
	return fmt.Sprintf("label_%s.pdf", base)
}
