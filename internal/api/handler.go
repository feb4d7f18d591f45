package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"pricetag/internal/config"
	"pricetag/internal/service/catalog"
	"pricetag/internal/service/excel"
	"pricetag/internal/service/label"
	"pricetag/internal/service/ledger"
	"pricetag/internal/service/pricing"
	"pricetag/internal/store"
)

// Handler API 处理器
type Handler struct {
	cfg       *config.AppConfig
	store     *store.Store
	engine    *pricing.Engine
	ledger    *ledger.Ledger
	catalog   *catalog.Catalog
	exporter  *excel.Exporter
	writer    label.Writer
	downloads *exportDownloadStore
	now       func() time.Time
}

// NewHandler 创建 API 处理器
func NewHandler(cfg *config.AppConfig, st *store.Store, engine *pricing.Engine, writer label.Writer) *Handler {
	return &Handler{
		cfg:       cfg,
		store:     st,
		engine:    engine,
		ledger:    ledger.New(),
		catalog:   catalog.New(),
		exporter:  excel.NewExporter(),
		writer:    writer,
		downloads: newExportDownloadStore(),
		now:       time.Now,
	}
}

// Catalog 库存目录
func (h *Handler) Catalog() *catalog.Catalog {
	return h.catalog
}

// RegisterRoutes 注册 API 路由
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// 系统状态
	router.GET("/status", h.GetStatus)

	// 定价设置
	router.GET("/config", h.GetConfig)
	router.PATCH("/config", h.UpdateConfig)

	// 库存条目
	router.POST("/items/reload", h.ReloadItems)
	router.GET("/items", h.SearchItems)
	router.GET("/items/:id", h.GetItem)

	// 报价
	router.POST("/quote", h.Quote)

	// 批次
	router.POST("/batch", h.CommitBatch)
	router.GET("/batch", h.ListBatch)
	router.DELETE("/batch", h.ClearBatch)

	// 导出
	router.POST("/batch/export", h.ExportBatch)
	router.GET("/batch/export/download/:token", h.DownloadExport)
	router.GET("/exports", h.ListExports)
	router.POST("/batch/documents", h.GenerateDocuments)

	// 进价变动
	router.POST("/cost-check", h.CostCheck)
}
