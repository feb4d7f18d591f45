package config

import (
	"os"
	"path/filepath"
	"testing"

	"pricetag/internal/model"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Pricing.TaxRate != 1.27 {
		t.Fatalf("TaxRate=%v, want 1.27", cfg.Pricing.TaxRate)
	}
	want := map[model.Tier]int{
		model.TierStandard:       18,
		model.TierSmallAppliance: 25,
		model.TierDisplayPanel:   10,
		model.TierRangeCooker:    10,
	}
	got := cfg.Pricing.Percents()
	for tier, pct := range want {
		if got[tier] != pct {
			t.Fatalf("Percents[%s]=%d, want %d", tier, got[tier], pct)
		}
	}
	if cfg.BaseDir() != "." {
		t.Fatalf("BaseDir=%q, want .", cfg.BaseDir())
	}
}

func TestLoadConfigFromDirMissingFile(t *testing.T) {
	dir := t.TempDir()

	cfg, info, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir failed: %v", err)
	}
	if info.PortSpecified || info.EnvFileLoaded {
		t.Fatalf("info=%+v, want zero", info)
	}
	if cfg.Server.Port != DefaultConfig().Server.Port {
		t.Fatalf("Port=%d", cfg.Server.Port)
	}
	if cfg.ExportsDir() != filepath.Join(dir, "data", "exports") {
		t.Fatalf("ExportsDir=%q", cfg.ExportsDir())
	}
}

func TestLoadConfigFromDirToml(t *testing.T) {
	dir := t.TempDir()
	content := `
[server]
port = 9000

[pricing]
tax_rate = 1.18
standard_margin = 20

[templates]
swap = "templates/swap.pdf"

[output]
documents_dir = "/srv/labels"
`
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, info, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir failed: %v", err)
	}
	if !info.PortSpecified || cfg.Server.Port != 9000 {
		t.Fatalf("port=%d specified=%v", cfg.Server.Port, info.PortSpecified)
	}
	if cfg.Pricing.TaxRate != 1.18 || cfg.Pricing.StandardMargin != 20 {
		t.Fatalf("pricing=%+v", cfg.Pricing)
	}
	if cfg.Pricing.SmallApplianceMargin != 25 {
		t.Fatalf("unset margin should keep default, got %d", cfg.Pricing.SmallApplianceMargin)
	}
	if got := cfg.Resolve(cfg.Templates.Swap); got != filepath.Join(dir, "templates", "swap.pdf") {
		t.Fatalf("swap template=%q", got)
	}
	if cfg.DocumentsDir() != "/srv/labels" {
		t.Fatalf("absolute documents dir should be kept, got %q", cfg.DocumentsDir())
	}
}

func TestLoadConfigFromDirInvalidToml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[server\nport="), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, err := LoadConfigFromDir(dir); err == nil {
		t.Fatalf("invalid toml should fail")
	}
}

func TestEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PRICETAG_PORT", "8123")
	t.Setenv("PRICETAG_TAX_RATE", "1.05")
	t.Setenv("PRICETAG_INVENTORY_PATH", "/tmp/keszlet.xlsx")

	cfg, info, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir failed: %v", err)
	}
	if cfg.Server.Port != 8123 || !info.PortSpecified {
		t.Fatalf("port=%d specified=%v", cfg.Server.Port, info.PortSpecified)
	}
	if cfg.Pricing.TaxRate != 1.05 {
		t.Fatalf("TaxRate=%v", cfg.Pricing.TaxRate)
	}
	if cfg.Source.InventoryPath != "/tmp/keszlet.xlsx" {
		t.Fatalf("InventoryPath=%q", cfg.Source.InventoryPath)
	}
}

func TestEnvFile(t *testing.T) {
	dir := t.TempDir()
	// t.Setenv 注册清理，保证 godotenv 写入的变量在测试结束后恢复
	t.Setenv("PRICETAG_TEMPLATE_STANDARD", "")
	os.Unsetenv("PRICETAG_TEMPLATE_STANDARD")

	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PRICETAG_TEMPLATE_STANDARD=std.pdf\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	cfg, info, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir failed: %v", err)
	}
	if !info.EnvFileLoaded {
		t.Fatalf(".env should be loaded")
	}
	if cfg.Templates.Standard != "std.pdf" {
		t.Fatalf("Standard=%q", cfg.Templates.Standard)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg, _, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("LoadConfigFromDir failed: %v", err)
	}
	cfg.Pricing.DisplayPanelMargin = 12

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	reloaded, _, err := LoadConfigFromDir(dir)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.Pricing.DisplayPanelMargin != 12 {
		t.Fatalf("DisplayPanelMargin=%d", reloaded.Pricing.DisplayPanelMargin)
	}
}

func TestEnsureDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg, _, _ := LoadConfigFromDir(dir)

	dataDir, err := EnsureDataDir(cfg)
	if err != nil {
		t.Fatalf("EnsureDataDir failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dataDir, "exports")); err != nil {
		t.Fatalf("exports dir missing: %v", err)
	}
}
