package app

import (
	"fmt"
	"io"
	"strings"

	brcfg "hoopstats/internal/config"
)

// StartupSummary 汇总启动时的数据与输出配置。
type StartupSummary struct {
	Source      string
	Rows        int
	Players     []string
	HTTPAddr    string
	ChartFormat string
	ChartDir    string
	ChartScale  float64
}

func newStartupSummary(cfg *brcfg.Config, svc *Service) *StartupSummary {
	source := cfg.Data.CSVPath
	if cfg.Data.UsesSnapshot() {
		source = cfg.Data.SnapshotPath + " (sqlite)"
	}
	return &StartupSummary{
		Source:      source,
		Rows:        svc.Rows(),
		Players:     svc.Players(),
		HTTPAddr:    cfg.App.HTTPAddr,
		ChartFormat: cfg.Chart.Format,
		ChartDir:    cfg.Chart.OutputDir,
		ChartScale:  cfg.Chart.Scale,
	}
}

// Print 输出启动摘要。
func (s *StartupSummary) Print(w io.Writer) {
	if s == nil {
		return
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "启动配置摘要 (STARTUP SUMMARY)")
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, "  数据来源: %s\n", s.Source)
	fmt.Fprintf(w, "  统计行数: %d\n", s.Rows)
	fmt.Fprintf(w, "  球员: %s\n", formatList(s.Players))
	fmt.Fprintf(w, "  HTTP: %s\n", s.HTTPAddr)
	fmt.Fprintf(w, "  图表: %s -> %s (scale %.2f)\n", s.ChartFormat, s.ChartDir, s.ChartScale)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}

func formatList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
