package api

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"slices"
	"time"

	"github.com/gin-gonic/gin"

	"pricetag/internal/service/document"
	"pricetag/internal/service/label"
	"pricetag/internal/store"
)

type generateProgressEvent struct {
	Type      string      `json:"type"`
	Message   string      `json:"message"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// GenerateDocuments 为批次生成价签 PDF（SSE 进度 + 完成后返回报告）
// POST /api/batch/documents
func (h *Handler) GenerateDocuments(c *gin.Context) {
	if h.writer == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "未配置价签模板"})
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "不支持流式响应"})
		return
	}

	send := func(event generateProgressEvent) {
		b, err := json.Marshal(event)
		if err != nil {
			return
		}
		fmt.Fprintf(c.Writer, "data: %s\n\n", b)
		flusher.Flush()
	}

	entries := h.ledger.Snapshot()
	outputDir := h.cfg.DocumentsDir()

	send(generateProgressEvent{
		Type:    "start",
		Message: "开始生成价签",
		Data: map[string]any{
			"total":     len(entries),
			"outputDir": outputDir,
		},
		Timestamp: time.Now(),
	})

	if h.cfg.Output.CleanBeforeGenerate {
		removed, err := document.CleanDir(outputDir)
		if err != nil {
			send(generateProgressEvent{
				Type:      "error",
				Message:   "清理输出目录失败: " + err.Error(),
				Data:      map[string]any{},
				Timestamp: time.Now(),
			})
			return
		}
		log.Printf("已清理输出目录 %s: %d 个文件", outputDir, removed)
	}

	lastPercent := -1
	progressFn := func(p label.ProgressEvent) {
		if p.Percent == lastPercent {
			return
		}
		lastPercent = p.Percent
		send(generateProgressEvent{
			Type:      "progress",
			Message:   p.Stage,
			Data:      map[string]any{"percent": p.Percent},
			Timestamp: time.Now(),
		})
	}

	gen := label.NewGenerator(h.writer)
	report, err := gen.Generate(c.Request.Context(), slices.Values(entries), len(entries), progressFn)
	if err != nil {
		log.Printf("价签生成中断: %v", err)
		send(generateProgressEvent{
			Type:      "error",
			Message:   "生成中断: " + err.Error(),
			Data:      report,
			Timestamp: time.Now(),
		})
		return
	}

	if _, err := h.store.CreateExportLog(store.ExportKindDocuments, outputDir, len(report.Generated)); err != nil {
		log.Printf("记录导出日志失败: %v", err)
	}
	log.Printf("价签生成完成: 成功 %d, 跳过 %d, 失败 %d", len(report.Generated), len(report.Skipped), len(report.Failed))

	send(generateProgressEvent{
		Type:    "done",
		Message: "生成完成",
		Data: map[string]any{
			"percent": 100,
			"report":  report,
		},
		Timestamp: time.Now(),
	})
}
