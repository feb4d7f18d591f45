package api

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// exportDownload 一条待下载的批次导出
type exportDownload struct {
	filePath  string
	expiresAt time.Time
}

// exportDownloadStore 导出文件的一次性下载链接
//
// 链接被取用或过期后失效；导出文件本身保留在导出目录，不随链接删除。
type exportDownloadStore struct {
	mu    sync.Mutex
	items map[string]exportDownload
	now   func() time.Time
}

func newExportDownloadStore() *exportDownloadStore {
	return &exportDownloadStore{
		items: make(map[string]exportDownload),
		now:   time.Now,
	}
}

// issue 为导出文件签发下载 token，有效期 ttl
func (s *exportDownloadStore) issue(filePath string, ttl time.Duration) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.dropExpiredLocked(now)

	token := uuid.NewString()
	s.items[token] = exportDownload{
		filePath:  filePath,
		expiresAt: now.Add(ttl),
	}
	return token
}

// take 取出并作废 token；未知或已过期时 ok=false
func (s *exportDownloadStore) take(token string) (exportDownload, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropExpiredLocked(s.now())

	d, ok := s.items[token]
	if ok {
		delete(s.items, token)
	}
	return d, ok
}

// pending 尚未取用的链接数
func (s *exportDownloadStore) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dropExpiredLocked(s.now())
	return len(s.items)
}

func (s *exportDownloadStore) dropExpiredLocked(now time.Time) {
	for token, d := range s.items {
		if now.After(d.expiresAt) {
			delete(s.items, token)
		}
	}
}
