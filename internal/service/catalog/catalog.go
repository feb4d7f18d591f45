package catalog

import (
	"errors"
	"regexp"
	"strings"
	"sync"
	"time"

	"pricetag/internal/model"
)

// ErrItemNotFound 货号不存在
var ErrItemNotFound = errors.New("item not found")

// Catalog 库存条目内存存储（保留来源表格中的顺序）
type Catalog struct {
	mu       sync.RWMutex
	items    []model.ItemRecord
	byID     map[string]int
	source   string
	loadedAt time.Time
}

// New 创建空目录
func New() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// SetItems 整体替换条目；重复货号保留第一次出现的行
func (c *Catalog) SetItems(items []model.ItemRecord, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make([]model.ItemRecord, 0, len(items))
	c.byID = make(map[string]int, len(items))
	for _, it := range items {
		if _, dup := c.byID[it.ID]; dup {
			continue
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	c.source = source
	c.loadedAt = time.Now()
}

// Get 按货号获取条目
func (c *Catalog) Get(id string) (model.ItemRecord, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	idx, ok := c.byID[id]
	if !ok {
		return model.ItemRecord{}, ErrItemNotFound
	}
	return c.items[idx], nil
}

// Search 按品名搜索，limit <= 0 表示不限制
func (c *Catalog) Search(keyword string, limit int) []model.ItemRecord {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]model.ItemRecord, 0)
	if normalizeName(keyword) == "" {
		return result
	}
	for _, it := range c.items {
		if MatchName(keyword, it.Name) {
			result = append(result, it)
			if limit > 0 && len(result) >= limit {
				break
			}
		}
	}
	return result
}

// Count 条目数量
func (c *Catalog) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Source 最近一次加载的来源与时间
func (c *Catalog) Source() (string, time.Time) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.source, c.loadedAt
}

// Clear 清空
func (c *Catalog) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
	c.byID = make(map[string]int)
}

var nonWord = regexp.MustCompile(`[^\pL\pN_]+`)

// MatchName 去掉非单词字符、忽略大小写后做子串匹配
func MatchName(search, target string) bool {
	return strings.Contains(normalizeName(target), normalizeName(search))
}

func normalizeName(s string) string {
	return nonWord.ReplaceAllString(strings.ToLower(s), "")
}
