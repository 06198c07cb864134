package config

import "strings"

// 默认值常量
const (
	defaultAppEnv       = "dev"
	defaultAppLogLevel  = "info"
	defaultAppHTTPAddr  = ":9992"
	defaultDataSource   = SourceCSV
	defaultDataCSVPath  = "data/per_game_stats.csv"
	defaultSnapshotPath = "data/per_game_stats.db"
	defaultChartDir     = "charts"
	defaultChartFormat  = FormatHTML
	defaultChartScale   = 1.0
	defaultChartTheme   = "white"
)

// Default 返回仅包含默认值的配置（未提供配置文件时使用）。
func Default() *Config {
	var cfg Config
	cfg.applyDefaults(make(keySet))
	return &cfg
}

// applyDefaults 为所有子配置应用默认值。
func (c *Config) applyDefaults(keys keySet) {
	c.App.applyDefaults(keys)
	c.Data.applyDefaults(keys)
	c.Chart.applyDefaults(keys)
}

func (a *AppConfig) applyDefaults(keys keySet) {
	if a == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("app.env", &a.Env, defaultAppEnv),
		stringFieldDefault("app.log_level", &a.LogLevel, defaultAppLogLevel),
		stringFieldDefault("app.http_addr", &a.HTTPAddr, defaultAppHTTPAddr),
	)
}

func (d *DataConfig) applyDefaults(keys keySet) {
	if d == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("data.source", &d.Source, defaultDataSource),
		stringFieldDefault("data.csv_path", &d.CSVPath, defaultDataCSVPath),
		stringFieldDefault("data.snapshot_path", &d.SnapshotPath, defaultSnapshotPath),
	)
	d.Source = strings.ToLower(strings.TrimSpace(d.Source))
}

func (c *ChartConfig) applyDefaults(keys keySet) {
	if c == nil {
		return
	}
	applyFieldDefaults(keys,
		stringFieldDefault("chart.output_dir", &c.OutputDir, defaultChartDir),
		stringFieldDefault("chart.format", &c.Format, defaultChartFormat),
		stringFieldDefault("chart.theme", &c.Theme, defaultChartTheme),
		fieldDefault{
			key:   "chart.scale",
			need:  func() bool { return c.Scale == 0 },
			apply: func() { c.Scale = defaultChartScale },
		},
	)
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
}

// Helper functions

func applyFieldDefaults(keys keySet, defs ...fieldDefault) {
	for _, def := range defs {
		if def.apply == nil {
			continue
		}
		if def.key != "" && keys.isSet(def.key) {
			continue
		}
		if def.need != nil && !def.need() {
			continue
		}
		def.apply()
	}
}

func stringFieldDefault(key string, target *string, def string) fieldDefault {
	return fieldDefault{
		key: key,
		need: func() bool {
			return target != nil && strings.TrimSpace(*target) == ""
		},
		apply: func() {
			if target != nil {
				*target = def
			}
		},
	}
}
