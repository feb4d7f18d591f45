package document

import (
	"fmt"
	"os"
	"path/filepath"
)

// CleanDir 删除目录下的所有文件（子目录保留）；目录不存在时创建
func CleanDir(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, os.MkdirAll(dir, 0755)
		}
		return 0, fmt.Errorf("read dir %s: %w", dir, err)
	}

	removed := 0
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
			return removed, fmt.Errorf("remove %s: %w", e.Name(), err)
		}
		removed++
	}
	return removed, nil
}
