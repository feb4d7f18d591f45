package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"pricetag/internal/service/label"
)

// StatusResponse 系统状态响应
type StatusResponse struct {
	SessionID     string                    `json:"sessionId"`     // 本次会话
	ItemCount     int                       `json:"itemCount"`     // 已加载库存条目数
	ItemSource    string                    `json:"itemSource"`    // 库存表路径
	ItemsLoadedAt *time.Time                `json:"itemsLoadedAt"` // 加载时间
	BatchLength   int                       `json:"batchLength"`   // 批次条目数
	Templates     map[label.TemplateID]bool `json:"templates"`     // 各模板是否已配置
	DocumentsDir  string                    `json:"documentsDir"`
	ExportsDir    string                    `json:"exportsDir"`
}

// GetStatus 获取系统状态
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	source, loadedAt := h.catalog.Source()

	resp := StatusResponse{
		SessionID:    h.ledger.SessionID(),
		ItemCount:    h.catalog.Count(),
		ItemSource:   source,
		BatchLength:  h.ledger.Len(),
		Templates:    h.templateStatus(),
		DocumentsDir: h.cfg.DocumentsDir(),
		ExportsDir:   h.cfg.ExportsDir(),
	}
	if !loadedAt.IsZero() {
		resp.ItemsLoadedAt = &loadedAt
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) templateStatus() map[label.TemplateID]bool {
	return map[label.TemplateID]bool{
		label.TemplateStandard:  h.cfg.Templates.Standard != "",
		label.TemplateSwap:      h.cfg.Templates.Swap != "",
		label.TemplateClearance: h.cfg.Templates.Clearance != "",
	}
}
