package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pricetag/internal/model"
	"pricetag/internal/service/pricing"
)

// ConfigResponse 定价设置响应
type ConfigResponse struct {
	TaxRate  decimal.Decimal    `json:"taxRate"`
	Percents map[model.Tier]int `json:"percents"` // 各档毛利百分比
}

// UpdateConfigRequest 更新定价设置请求（字段均可省略，部分更新）
type UpdateConfigRequest struct {
	TaxRate  decimal.NullDecimal `json:"taxRate"`
	Percents map[model.Tier]int  `json:"percents"`
}

// GetConfig 获取定价设置
// GET /api/config
func (h *Handler) GetConfig(c *gin.Context) {
	c.JSON(http.StatusOK, h.configResponse())
}

// UpdateConfig 更新定价设置并持久化
// PATCH /api/config
func (h *Handler) UpdateConfig(c *gin.Context) {
	var req UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "请求参数错误: " + err.Error()})
		return
	}

	if err := validateConfigUpdate(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Percents) > 0 {
		if err := h.store.SaveTierPercents(req.Percents); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存毛利设置失败"})
			return
		}
		policy := h.engine.Policy()
		for tier, pct := range req.Percents {
			policy = policy.WithPercent(tier, pct)
		}
		h.engine.SetPolicy(policy)
		log.Printf("毛利设置已更新: %v", policy.Percents())
	}

	if req.TaxRate.Valid {
		if err := h.store.SaveTaxRate(req.TaxRate.Decimal); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "保存税率失败"})
			return
		}
		h.engine.SetCalculator(pricing.NewCalculator(req.TaxRate.Decimal))
		log.Printf("税率已更新: %s", req.TaxRate.Decimal)
	}

	c.JSON(http.StatusOK, h.configResponse())
}

func validateConfigUpdate(req UpdateConfigRequest) error {
	for tier, pct := range req.Percents {
		if !tier.Valid() {
			return fmt.Errorf("未知档位: %s", tier)
		}
		if pct < 0 {
			return fmt.Errorf("毛利率不能为负数: %s=%d", tier, pct)
		}
	}
	if req.TaxRate.Valid && !req.TaxRate.Decimal.IsPositive() {
		return fmt.Errorf("税率必须大于 0")
	}
	return nil
}

func (h *Handler) configResponse() ConfigResponse {
	return ConfigResponse{
		TaxRate:  h.engine.Calculator().TaxRate(),
		Percents: h.engine.Policy().Percents(),
	}
}
