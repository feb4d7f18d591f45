package document

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"pricetag/internal/service/label"
)

func init() {
	// 不在用户目录下生成 pdfcpu 配置
	api.DisableConfigDir()
}

// FormFiller 以 PDF 表单模板生成价签
type FormFiller struct {
	templates map[label.TemplateID]string
	outputDir string
}

// NewFormFiller 创建填充器；templates 为模板 → PDF 路径
func NewFormFiller(templates map[label.TemplateID]string, outputDir string) *FormFiller {
	cp := make(map[label.TemplateID]string, len(templates))
	for k, v := range templates {
		cp[k] = v
	}
	return &FormFiller{templates: cp, outputDir: outputDir}
}

// OutputDir 输出目录
func (f *FormFiller) OutputDir() string {
	return f.outputDir
}

// Write 填充模板字段并写入 outputDir/name
func (f *FormFiller) Write(ctx context.Context, tmpl label.TemplateID, fields map[string]string, name string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	templatePath := f.templates[tmpl]
	if templatePath == "" {
		return "", fmt.Errorf("template %q is not configured", tmpl)
	}

	in, err := os.Open(templatePath)
	if err != nil {
		return "", fmt.Errorf("open template %s: %w", templatePath, err)
	}
	defer in.Close()

	formJSON, err := buildFormJSON(fields)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(f.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var buf bytes.Buffer
	if err := api.FillForm(in, bytes.NewReader(formJSON), &buf, model.NewDefaultConfiguration()); err != nil {
		return "", fmt.Errorf("fill form %s: %w", templatePath, err)
	}

	outPath := filepath.Join(f.outputDir, name)
	tmp := outPath + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	if err := os.Rename(tmp, outPath); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write %s: %w", outPath, err)
	}
	return outPath, nil
}

// pdfcpu 表单 JSON（仅文本字段，按字段名匹配）
type formFile struct {
	Forms []formGroup `json:"forms"`
}

type formGroup struct {
	TextFields []textField `json:"textfield"`
}

type textField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func buildFormJSON(fields map[string]string) ([]byte, error) {
	if len(fields) == 0 {
		return nil, errors.New("no fields to fill")
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	group := formGroup{TextFields: make([]textField, 0, len(names))}
	for _, name := range names {
		group.TextFields = append(group.TextFields, textField{Name: name, Value: fields[name]})
	}
	return json.Marshal(formFile{Forms: []formGroup{group}})
}
