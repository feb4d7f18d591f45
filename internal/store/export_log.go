package store

import (
	"fmt"
	"time"
)

// 导出类型
const (
	ExportKindSpreadsheet = "spreadsheet"
	ExportKindDocuments   = "documents"
)

// ExportLog 一次导出的记录
type ExportLog struct {
	ID         int64     `json:"id"`
	Kind       string    `json:"kind"`
	FilePath   string    `json:"filePath"`
	EntryCount int       `json:"entryCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateExportLog 记录一次导出，返回 export_log_id
func (s *Store) CreateExportLog(kind, filePath string, entryCount int) (int64, error) {
	res, err := s.db.Exec(`
		INSERT INTO export_logs (kind, file_path, entry_count)
		VALUES (?, ?, ?)
	`, kind, filePath, entryCount)
	if err != nil {
		return 0, fmt.Errorf("failed to create export log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get export log id: %w", err)
	}
	return id, nil
}

// ListExportLogs 最近的导出记录（新的在前）
func (s *Store) ListExportLogs(limit int) ([]ExportLog, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.Query(`
		SELECT id, kind, file_path, entry_count, created_at
		FROM export_logs
		ORDER BY id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list export logs: %w", err)
	}
	defer rows.Close()

	logs := make([]ExportLog, 0)
	for rows.Next() {
		var l ExportLog
		if err := rows.Scan(&l.ID, &l.Kind, &l.FilePath, &l.EntryCount, &l.CreatedAt); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
