package store

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"pricetag/internal/model"
)

// ErrSettingNotFound 设置项不存在
var ErrSettingNotFound = errors.New("setting not found")

const (
	taxRateKey      = "pricing.tax_rate"
	marginKeyPrefix = "pricing.margin."
)

// GetSetting 获取设置项
func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("%w: %s", ErrSettingNotFound, key)
		}
		return "", err
	}
	return value, nil
}

// SetSetting 设置设置项
func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// GetAllSettings 获取所有设置项
func (s *Store) GetAllSettings() (map[string]string, error) {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		settings[key] = value
	}

	return settings, rows.Err()
}

// TierPercents 读取已保存的各档毛利百分比（未保存的档位不出现在结果中）
func (s *Store) TierPercents() (map[model.Tier]int, error) {
	all, err := s.GetAllSettings()
	if err != nil {
		return nil, err
	}

	percents := make(map[model.Tier]int)
	for _, tier := range model.AllTiers {
		raw, ok := all[marginKeyPrefix+string(tier)]
		if !ok {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid margin for %s: %q", tier, raw)
		}
		percents[tier] = v
	}
	return percents, nil
}

// SaveTierPercents 保存各档毛利百分比
func (s *Store) SaveTierPercents(percents map[model.Tier]int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for tier, v := range percents {
		if _, err := tx.Exec(`
			INSERT INTO settings (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
		`, marginKeyPrefix+string(tier), strconv.Itoa(v)); err != nil {
			return fmt.Errorf("failed to save margin for %s: %w", tier, err)
		}
	}
	return tx.Commit()
}

// TaxRate 读取已保存的税率
func (s *Store) TaxRate() (decimal.NullDecimal, error) {
	raw, err := s.GetSetting(taxRateKey)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return decimal.NullDecimal{}, nil
		}
		return decimal.NullDecimal{}, err
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid tax rate %q: %w", raw, err)
	}
	return decimal.NewNullDecimal(d), nil
}

// SaveTaxRate 保存税率
func (s *Store) SaveTaxRate(rate decimal.Decimal) error {
	return s.SetSetting(taxRateKey, rate.String())
}
