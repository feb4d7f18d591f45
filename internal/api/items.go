package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pricetag/internal/service/catalog"
	"pricetag/internal/service/excel"
)

const defaultSearchLimit = 50

// ReloadItemsRequest 重新加载库存表请求
type ReloadItemsRequest struct {
	Path string `json:"path"` // 为空时使用配置中的库存表
}

// ReloadItems 重新加载库存表
// POST /api/items/reload
func (h *Handler) ReloadItems(c *gin.Context) {
	var req ReloadItemsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
			return
		}
	}

	path := req.Path
	if path == "" {
		path = h.cfg.Source.InventoryPath
	}
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "未配置库存表路径"})
		return
	}

	count, err := h.LoadInventory(h.cfg.Resolve(path))
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "读取库存表失败: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":  count,
		"source": h.cfg.Resolve(path),
	})
}

// LoadInventory 读取库存表并替换目录内容
func (h *Handler) LoadInventory(path string) (int, error) {
	items, err := excel.ReadInventoryFile(path)
	if err != nil {
		return 0, err
	}
	h.catalog.SetItems(items, path)
	log.Printf("已加载库存表 %s: %d 条", path, h.catalog.Count())
	return h.catalog.Count(), nil
}

// SearchItems 按品名搜索
// GET /api/items?keyword=xxx&limit=50
func (h *Handler) SearchItems(c *gin.Context) {
	limit := defaultSearchLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit 参数错误"})
			return
		}
		limit = n
	}

	items := h.catalog.Search(c.Query("keyword"), limit)
	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"total": len(items),
	})
}

// GetItem 获取单个条目
// GET /api/items/:id
func (h *Handler) GetItem(c *gin.Context) {
	item, err := h.catalog.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "条目不存在"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, item)
}
