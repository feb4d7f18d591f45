package server

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pricetag/internal/api"
	"pricetag/internal/config"
	"pricetag/internal/service/document"
	"pricetag/internal/service/label"
	"pricetag/internal/service/pricing"
	"pricetag/internal/store"
)

// Server HTTP服务器
type Server struct {
	router  *gin.Engine
	http    *http.Server
	store   *store.Store
	handler *api.Handler
}

// NewServer 创建服务器
func NewServer(cfg *config.AppConfig) (*Server, error) {
	if !cfg.Server.DevMode {
		gin.SetMode(gin.ReleaseMode)
	}

	// 初始化 SQLite Store
	sqliteStore, err := store.New(cfg.DataPath("pricetag.db"))
	if err != nil {
		return nil, err
	}

	engine, err := newEngine(cfg, sqliteStore)
	if err != nil {
		sqliteStore.Close()
		return nil, err
	}

	handler := api.NewHandler(cfg, sqliteStore, engine, newWriter(cfg))

	// 启动时加载库存表；失败不阻止启动，可通过 /api/items/reload 重试
	if cfg.Source.InventoryPath != "" {
		if _, err := handler.LoadInventory(cfg.Resolve(cfg.Source.InventoryPath)); err != nil {
			log.Printf("加载库存表失败: %v", err)
		}
	}

	s := &Server{
		router:  gin.Default(),
		store:   sqliteStore,
		handler: handler,
	}

	s.setupRoutes()

	return s, nil
}

// newEngine 以配置文件为基础，叠加数据库中保存的会话设置
func newEngine(cfg *config.AppConfig, st *store.Store) (*pricing.Engine, error) {
	percents := cfg.Pricing.Percents()
	saved, err := st.TierPercents()
	if err != nil {
		return nil, err
	}
	for tier, pct := range saved {
		percents[tier] = pct
	}

	taxRate := decimal.NewFromFloat(cfg.Pricing.TaxRate)
	savedRate, err := st.TaxRate()
	if err != nil {
		return nil, err
	}
	if savedRate.Valid {
		taxRate = savedRate.Decimal
	}

	return pricing.NewEngine(pricing.NewPolicy(percents), pricing.NewCalculator(taxRate)), nil
}

// newWriter 未配置任何模板时返回 nil，文档生成接口不可用
func newWriter(cfg *config.AppConfig) label.Writer {
	templates := make(map[label.TemplateID]string)
	for id, path := range map[label.TemplateID]string{
		label.TemplateStandard:  cfg.Templates.Standard,
		label.TemplateSwap:      cfg.Templates.Swap,
		label.TemplateClearance: cfg.Templates.Clearance,
	} {
		if path != "" {
			templates[id] = cfg.Resolve(path)
		}
	}
	if len(templates) == 0 {
		log.Printf("未配置价签模板，文档生成不可用")
		return nil
	}
	return document.NewFormFiller(templates, cfg.DocumentsDir())
}

// setupRoutes 设置路由
func (s *Server) setupRoutes() {
	// CORS
	s.router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	group := s.router.Group("/api")
	{
		s.handler.RegisterRoutes(group)
	}

	s.router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusTemporaryRedirect, "/api/status")
	})
}

// Handler 路由（用于测试）
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run 启动服务器，Shutdown 后返回 nil
func (s *Server) Run(addr string) error {
	s.http = &http.Server{Addr: addr, Handler: s.router}
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown 停止接收请求并关闭数据库
func (s *Server) Shutdown(ctx context.Context) error {
	var err error
	if s.http != nil {
		err = s.http.Shutdown(ctx)
	}
	if cerr := s.store.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// GetStore 获取存储（用于测试）
func (s *Server) GetStore() *store.Store {
	return s.store
}
