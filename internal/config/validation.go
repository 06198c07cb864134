package config

import (
	"fmt"
	"strings"

	"hoopstats/internal/logger"
)

// Validate 对配置进行基础校验。命令行覆盖配置后需要再次调用。
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}
	if err := c.App.validate(); err != nil {
		return err
	}
	if err := c.Data.validate(); err != nil {
		return err
	}
	if err := c.Chart.validate(); err != nil {
		return err
	}
	return nil
}

func (a *AppConfig) validate() error {
	if _, ok := logger.ParseLevel(a.LogLevel); !ok {
		return fmt.Errorf("app.log_level must be one of debug/info/warn/error, got %q", a.LogLevel)
	}
	return nil
}

func (d *DataConfig) validate() error {
	switch strings.ToLower(strings.TrimSpace(d.Source)) {
	case SourceCSV:
		if strings.TrimSpace(d.CSVPath) == "" {
			return fmt.Errorf("data.csv_path is required when data.source=csv")
		}
	case SourceSQLite:
		if strings.TrimSpace(d.SnapshotPath) == "" {
			return fmt.Errorf("data.snapshot_path is required when data.source=sqlite")
		}
	default:
		return fmt.Errorf("data.source must be csv or sqlite, got %q", d.Source)
	}
	return nil
}

func (c *ChartConfig) validate() error {
	switch c.Format {
	case FormatHTML, FormatPNG:
	default:
		return fmt.Errorf("chart.format must be html or png, got %q", c.Format)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("chart.scale must be > 0")
	}
	return nil
}
