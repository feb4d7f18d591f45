package ledger

import (
	"errors"
	"iter"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"pricetag/internal/model"
)

// ErrInvalidFinalPrice 最终价格无法转换为数字，拒绝写入
var ErrInvalidFinalPrice = errors.New("final price is not a number")

var maxFinalPrice = decimal.NewFromInt(math.MaxInt64)

// Candidate 待写入批次的条目（操作员点击“加入列表”时的快照）
type Candidate struct {
	ItemID          string
	ItemName        string
	Tag             model.PromotionTag
	FinalPrice      decimal.NullDecimal
	MarginPercent   decimal.NullDecimal
	MassMargin      *int64
	PromoPrice      decimal.NullDecimal
	AcquisitionDate string
}

// CandidateFromQuote 由条目与当前报价生成待写入条目
func CandidateFromQuote(item model.ItemRecord, q model.PriceQuote) Candidate {
	c := Candidate{
		ItemID:          item.ID,
		ItemName:        item.Name,
		Tag:             q.Tag,
		FinalPrice:      q.Price.Effective(),
		MarginPercent:   q.MarginPercent,
		MassMargin:      q.MassMargin,
		AcquisitionDate: item.AcquisitionDate,
	}
	if q.Tag.HasPromoPrice() {
		c.PromoPrice = q.Promo.Effective()
	}
	return c
}

// Ledger 批次账本：按操作顺序追加，只允许显式清空
type Ledger struct {
	mu        sync.RWMutex
	sessionID string
	entries   []model.LabelEntry
	nextSeq   int
	now       func() time.Time
}

// New 创建空账本（每个会话一个）
func New() *Ledger {
	return &Ledger{
		sessionID: uuid.New().String(),
		nextSeq:   1,
		now:       time.Now,
	}
}

// SessionID 会话标识
func (l *Ledger) SessionID() string {
	return l.sessionID
}

// Commit 写入一条价签记录
//
// 不按货号去重；最终价格无效时返回 ErrInvalidFinalPrice，账本不变。
// 进货日期解析失败不会阻止写入。
func (l *Ledger) Commit(c Candidate) (model.LabelEntry, error) {
	if !c.FinalPrice.Valid || c.FinalPrice.Decimal.Abs().GreaterThan(maxFinalPrice) {
		return model.LabelEntry{}, ErrInvalidFinalPrice
	}

	entry := model.LabelEntry{
		EntryID:         uuid.New().String(),
		ItemID:          c.ItemID,
		ItemName:        c.ItemName,
		FinalPrice:      c.FinalPrice.Decimal.IntPart(),
		MarginPercent:   c.MarginPercent,
		Tag:             c.Tag,
		AcquisitionDate: NormalizeAcquisitionDate(c.AcquisitionDate),
	}
	if c.MassMargin != nil {
		v := *c.MassMargin
		entry.MassMargin = &v
	}
	if promo := promoValue(c.PromoPrice); promo != nil {
		switch c.Tag {
		case model.TagSwap:
			entry.SwapPrice = promo
		case model.TagClearance:
			entry.ClearancePrice = promo
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	entry.Seq = l.nextSeq
	entry.CommittedAt = l.now()
	l.nextSeq++
	l.entries = append(l.entries, entry)

	return entry.Clone(), nil
}

// promoValue 促销价取整（.5 取偶）；为空或为零时不写入
func promoValue(v decimal.NullDecimal) *int64 {
	if !v.Valid || v.Decimal.IsZero() {
		return nil
	}
	n := v.Decimal.RoundBank(0).IntPart()
	return &n
}

// Snapshot 当前全部条目的副本（写入顺序）
func (l *Ledger) Snapshot() []model.LabelEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.LabelEntry, len(l.entries))
	for i, e := range l.entries {
		out[i] = e.Clone()
	}
	return out
}

// Entries 按写入顺序遍历；每次遍历重新取快照，可重复使用
func (l *Ledger) Entries() iter.Seq[model.LabelEntry] {
	return func(yield func(model.LabelEntry) bool) {
		for _, e := range l.Snapshot() {
			if !yield(e) {
				return
			}
		}
	}
}

// Len 条目数量
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}

// Clear 清空账本（仅由操作员显式触发）
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.nextSeq = 1
}
