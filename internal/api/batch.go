package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"pricetag/internal/model"
	"pricetag/internal/service/label"
	"pricetag/internal/service/ledger"
)

// BatchEntryResponse 批次条目（附展示文本）
type BatchEntryResponse struct {
	model.LabelEntry
	FormattedPrice string `json:"formattedPrice"`
	MarginText     string `json:"marginText"`
}

func newBatchEntryResponse(e model.LabelEntry) BatchEntryResponse {
	return BatchEntryResponse{
		LabelEntry:     e,
		FormattedPrice: label.FormatPrice(e.FinalPrice),
		MarginText:     e.MarginText(),
	}
}

// CommitBatch 将当前报价写入批次
// POST /api/batch
func (h *Handler) CommitBatch(c *gin.Context) {
	draft, status, err := h.bindDraft(c)
	if err != nil {
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	// 人工价无法解析时按系统价写入；两者都没有时由账本拒绝
	q := h.engine.Quote(draft)
	entry, err := h.ledger.Commit(ledger.CandidateFromQuote(draft.Item, q))
	if err != nil {
		if errors.Is(err, ledger.ErrInvalidFinalPrice) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "最终价格无效: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	log.Printf("已加入批次 #%d: %s %s %d", entry.Seq, entry.ItemID, entry.Tag, entry.FinalPrice)
	c.JSON(http.StatusCreated, gin.H{
		"entry":       newBatchEntryResponse(entry),
		"batchLength": h.ledger.Len(),
	})
}

// ListBatch 批次条目（写入顺序）
// GET /api/batch
func (h *Handler) ListBatch(c *gin.Context) {
	entries := make([]BatchEntryResponse, 0, h.ledger.Len())
	for e := range h.ledger.Entries() {
		entries = append(entries, newBatchEntryResponse(e))
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": h.ledger.SessionID(),
		"entries":   entries,
		"total":     len(entries),
	})
}

// ClearBatch 清空批次
// DELETE /api/batch
func (h *Handler) ClearBatch(c *gin.Context) {
	removed := h.ledger.Len()
	h.ledger.Clear()
	log.Printf("批次已清空: %d 条", removed)
	c.JSON(http.StatusOK, gin.H{"removed": removed})
}
