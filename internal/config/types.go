package config

import "strings"

// Config 是 hoopstats 的主配置载体。
type Config struct {
	App   AppConfig   `yaml:"app"`
	Data  DataConfig  `yaml:"data"`
	Chart ChartConfig `yaml:"chart"`
}

type AppConfig struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`
	LogPath  string `yaml:"log_path"`
	HTTPAddr string `yaml:"http_addr"`
}

// DataConfig 描述统计表的来源：CSV 文件或 import 生成的 SQLite 快照。
type DataConfig struct {
	Source       string `yaml:"source"` // "csv" | "sqlite"
	CSVPath      string `yaml:"csv_path"`
	SnapshotPath string `yaml:"snapshot_path"`
}

const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
)

// UsesSnapshot 表示是否从 SQLite 快照加载统计表。
func (d DataConfig) UsesSnapshot() bool {
	return strings.EqualFold(strings.TrimSpace(d.Source), SourceSQLite)
}

// ChartConfig 控制图表输出。
type ChartConfig struct {
	OutputDir string  `yaml:"output_dir"`
	Format    string  `yaml:"format"` // "html" | "png"
	Scale     float64 `yaml:"scale"`  // 对预设尺寸/字号整体缩放
	Theme     string  `yaml:"theme"`
}

const (
	FormatHTML = "html"
	FormatPNG  = "png"
)

// keySet 用于追踪配置文件中显式设置的字段路径。
type keySet map[string]struct{}

func (k keySet) mark(path string) {
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return
	}
	k[path] = struct{}{}
}

func (k keySet) isSet(path string) bool {
	if len(k) == 0 {
		return false
	}
	path = strings.ToLower(strings.TrimSpace(path))
	if path == "" {
		return false
	}
	_, ok := k[path]
	return ok
}

// fieldDefault 描述单个字段的默认值设置规则。
type fieldDefault struct {
	key   string
	need  func() bool
	apply func()
}
