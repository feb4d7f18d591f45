package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"pricetag/internal/model"
)

// AppConfig 应用配置
type AppConfig struct {
	Server    ServerConfig    `toml:"server"`
	Data      DataConfig      `toml:"data"`
	Pricing   PricingConfig   `toml:"pricing"`
	Source    SourceConfig    `toml:"source"`
	Templates TemplatesConfig `toml:"templates"`
	Output    OutputConfig    `toml:"output"`

	baseDir string
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// PricingConfig 定价配置（百分比为整数）
type PricingConfig struct {
	TaxRate              float64 `toml:"tax_rate"`
	StandardMargin       int     `toml:"standard_margin"`
	SmallApplianceMargin int     `toml:"small_appliance_margin"`
	DisplayPanelMargin   int     `toml:"display_panel_margin"`
	RangeCookerMargin    int     `toml:"range_cooker_margin"`
}

// SourceConfig 库存表位置
type SourceConfig struct {
	InventoryPath         string `toml:"inventory_path"`
	PreviousInventoryPath string `toml:"previous_inventory_path"`
}

// TemplatesConfig 价签 PDF 模板
type TemplatesConfig struct {
	Standard  string `toml:"standard"`
	Swap      string `toml:"swap"`
	Clearance string `toml:"clearance"`
}

// OutputConfig 输出目录
type OutputConfig struct {
	DocumentsDir        string `toml:"documents_dir"`
	ExportsDir          string `toml:"exports_dir"`
	CleanBeforeGenerate bool   `toml:"clean_before_generate"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
	EnvFileLoaded bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Pricing: PricingConfig{
			TaxRate:              1.27,
			StandardMargin:       18,
			SmallApplianceMargin: 25,
			DisplayPanelMargin:   10,
			RangeCookerMargin:    10,
		},
		Output: OutputConfig{
			DocumentsDir:        "output",
			ExportsDir:          "exports",
			CleanBeforeGenerate: true,
		},
	}
}

// Percents 各档毛利百分比
func (p PricingConfig) Percents() map[model.Tier]int {
	return map[model.Tier]int{
		model.TierStandard:       p.StandardMargin,
		model.TierSmallAppliance: p.SmallApplianceMargin,
		model.TierDisplayPanel:   p.DisplayPanelMargin,
		model.TierRangeCooker:    p.RangeCookerMargin,
	}
}

// BaseDir 相对路径的基准目录（config.toml 所在目录）
func (c *AppConfig) BaseDir() string {
	if c.baseDir == "" {
		return "."
	}
	return c.baseDir
}

// Resolve 将相对路径解析到基准目录下；空路径原样返回
func (c *AppConfig) Resolve(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.BaseDir(), p)
}

// DataPath 数据目录下的路径
func (c *AppConfig) DataPath(elem ...string) string {
	return c.Resolve(filepath.Join(append([]string{c.Data.DataDir}, elem...)...))
}

// DocumentsDir 价签 PDF 输出目录
func (c *AppConfig) DocumentsDir() string {
	return c.Resolve(c.Output.DocumentsDir)
}

// ExportsDir 导出表格目录
func (c *AppConfig) ExportsDir() string {
	if filepath.IsAbs(c.Output.ExportsDir) {
		return c.Output.ExportsDir
	}
	return c.DataPath(c.Output.ExportsDir)
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return LoadConfigFromDir(exeDir)
}

// LoadConfigFromDir 从 dir/config.toml 加载配置，dir/.env 与环境变量覆盖文件中的值
func LoadConfigFromDir(dir string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()
	config.baseDir = dir

	info.EnvFileLoaded = loadEnvFile(filepath.Join(dir, ".env"))

	data, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	switch {
	case err == nil:
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	if applyEnvOverrides(config) && os.Getenv("PRICETAG_PORT") != "" {
		info.PortSpecified = true
	}

	return config, info, nil
}

// loadEnvFile 读取 .env；已存在的环境变量不会被覆盖
func loadEnvFile(path string) bool {
	if _, err := os.Stat(path); err != nil {
		return false
	}
	if err := godotenv.Load(path); err != nil {
		log.Printf("Failed to load %s: %v", path, err)
		return false
	}
	log.Printf("Loaded environment variables from %s", path)
	return true
}

// applyEnvOverrides 环境变量覆盖（PRICETAG_*），返回是否有覆盖
func applyEnvOverrides(config *AppConfig) bool {
	applied := false
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
			applied = true
		}
	}

	if v := os.Getenv("PRICETAG_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			config.Server.Port = port
			applied = true
		} else {
			log.Printf("Ignoring PRICETAG_PORT=%q: %v", v, err)
		}
	}
	if v := os.Getenv("PRICETAG_TAX_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil && rate > 0 {
			config.Pricing.TaxRate = rate
			applied = true
		} else {
			log.Printf("Ignoring PRICETAG_TAX_RATE=%q", v)
		}
	}

	setString("PRICETAG_DATA_DIR", &config.Data.DataDir)
	setString("PRICETAG_INVENTORY_PATH", &config.Source.InventoryPath)
	setString("PRICETAG_PREVIOUS_INVENTORY_PATH", &config.Source.PreviousInventoryPath)
	setString("PRICETAG_TEMPLATE_STANDARD", &config.Templates.Standard)
	setString("PRICETAG_TEMPLATE_SWAP", &config.Templates.Swap)
	setString("PRICETAG_TEMPLATE_CLEARANCE", &config.Templates.Clearance)
	setString("PRICETAG_DOCUMENTS_DIR", &config.Output.DocumentsDir)
	setString("PRICETAG_EXPORTS_DIR", &config.Output.ExportsDir)

	return applied
}

// LoadConfig 从 config.toml 加载配置
// 配置文件位于可执行文件同目录下
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig 保存配置到基准目录下的 config.toml
func SaveConfig(config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(config.BaseDir(), "config.toml"), data, 0644)
}

// EnsureDataDir 确保数据目录及导出目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.DataPath()

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	if err := os.MkdirAll(config.ExportsDir(), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}
