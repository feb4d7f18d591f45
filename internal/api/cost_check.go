package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"pricetag/internal/service/excel"
)

// CostCheckRequest 进价对比请求；路径为空时使用配置
type CostCheckRequest struct {
	CurrentPath  string `json:"currentPath"`
	PreviousPath string `json:"previousPath"`
}

// CostCheck 列出进价上涨的条目
// POST /api/cost-check
func (h *Handler) CostCheck(c *gin.Context) {
	var req CostCheckRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
			return
		}
	}
	if req.CurrentPath == "" {
		req.CurrentPath = h.cfg.Source.InventoryPath
	}
	if req.PreviousPath == "" {
		req.PreviousPath = h.cfg.Source.PreviousInventoryPath
	}
	if req.CurrentPath == "" || req.PreviousPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "需要当前与上一版库存表路径"})
		return
	}

	current, err := os.Open(h.cfg.Resolve(req.CurrentPath))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("打开当前库存表失败: %v", err)})
		return
	}
	defer current.Close()

	previous, err := os.Open(h.cfg.Resolve(req.PreviousPath))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": fmt.Sprintf("打开上一版库存表失败: %v", err)})
		return
	}
	defer previous.Close()

	changes, err := excel.CompareCosts(current, previous)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "进价对比失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"changes": changes,
		"total":   len(changes),
	})
}
