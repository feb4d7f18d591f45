package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"pricetag/internal/model"
	"pricetag/internal/service/catalog"
	"pricetag/internal/service/label"
	"pricetag/internal/service/pricing"
)

// DraftRequest 单个条目的编辑状态
type DraftRequest struct {
	ItemID     string `json:"itemId" binding:"required"`
	Tag        string `json:"tag"`        // 为空视为 normal
	PriceInput string `json:"priceInput"` // 人工价格，空表示使用系统价
	PromoInput string `json:"promoInput"` // 人工促销价
}

// QuoteResponse 报价响应
type QuoteResponse struct {
	Item           model.ItemRecord    `json:"item"`
	Quote          model.PriceQuote    `json:"quote"`
	FinalPrice     decimal.NullDecimal `json:"finalPrice"`
	FormattedPrice string              `json:"formattedPrice"`
	MarginText     string              `json:"marginText"`
	PromoPrice     decimal.NullDecimal `json:"promoPrice"`
}

// Quote 计算报价（不写入批次）
// POST /api/quote
func (h *Handler) Quote(c *gin.Context) {
	draft, status, err := h.bindDraft(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	q := h.engine.Quote(draft)
	c.JSON(http.StatusOK, newQuoteResponse(draft.Item, q))
}

// bindDraft 解析请求并查找条目
func (h *Handler) bindDraft(c *gin.Context) (pricing.Draft, int, error) {
	var req DraftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return pricing.Draft{}, http.StatusBadRequest, fmt.Errorf("请求参数错误: %w", err)
	}

	tag := model.PromotionTag(req.Tag)
	if tag == "" {
		tag = model.TagNormal
	}
	if !tag.Known() {
		return pricing.Draft{}, http.StatusBadRequest, fmt.Errorf("未知价签类型: %s", req.Tag)
	}

	item, err := h.catalog.Get(req.ItemID)
	if err != nil {
		if errors.Is(err, catalog.ErrItemNotFound) {
			return pricing.Draft{}, http.StatusNotFound, fmt.Errorf("条目不存在: %s", req.ItemID)
		}
		return pricing.Draft{}, http.StatusInternalServerError, err
	}

	return pricing.Draft{
		Item:       item,
		Tag:        tag,
		PriceInput: req.PriceInput,
		PromoInput: req.PromoInput,
	}, http.StatusOK, nil
}

func newQuoteResponse(item model.ItemRecord, q model.PriceQuote) QuoteResponse {
	resp := QuoteResponse{
		Item:       item,
		Quote:      q,
		FinalPrice: q.Price.Effective(),
		PromoPrice: q.Promo.Effective(),
		MarginText: model.MarginNotAvailable,
	}
	if resp.FinalPrice.Valid {
		resp.FormattedPrice = label.FormatPrice(resp.FinalPrice.Decimal.IntPart())
	}
	if q.MarginPercent.Valid {
		resp.MarginText = q.MarginPercent.Decimal.StringFixed(1)
	}
	return resp
}
