package api

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"pricetag/internal/service/ledger"
	"pricetag/internal/store"
)

const downloadTTL = 10 * time.Minute

// ExportBatch 将批次导出为 Excel（保存到导出目录并提供一次性下载地址）
// POST /api/batch/export
func (h *Handler) ExportBatch(c *gin.Context) {
	rows := ledger.Rows(h.ledger.Entries())

	path, err := h.exporter.SaveTo(h.cfg.ExportsDir(), h.now(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "导出失败: " + err.Error()})
		return
	}

	if _, err := h.store.CreateExportLog(store.ExportKindSpreadsheet, path, len(rows)); err != nil {
		log.Printf("记录导出日志失败: %v", err)
	}

	token := h.downloads.issue(path, downloadTTL)
	log.Printf("批次已导出: %s (%d 条)", path, len(rows))

	c.JSON(http.StatusOK, gin.H{
		"filePath":    path,
		"entryCount":  len(rows),
		"downloadUrl": fmt.Sprintf("/api/batch/export/download/%s", token),
	})
}

// DownloadExport 下载导出的 Excel 文件（一次性链接，文件保留在导出目录）
// GET /api/batch/export/download/:token
func (h *Handler) DownloadExport(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "缺少 token"})
		return
	}

	item, ok := h.downloads.take(token)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "下载链接已失效"})
		return
	}

	if _, err := os.Stat(item.filePath); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "导出文件不存在"})
		return
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.FileAttachment(item.filePath, filepath.Base(item.filePath))
}

// ListExports 最近的导出记录
// GET /api/exports?limit=20
func (h *Handler) ListExports(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	logs, err := h.store.ListExportLogs(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "获取导出记录失败"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"exports": logs})
}
