package app

import (
	"context"
	"fmt"

	"hoopstats/internal/chart"
	brcfg "hoopstats/internal/config"
	"hoopstats/internal/logger"
	"hoopstats/internal/stats"
	statshttp "hoopstats/internal/transport/http/stats"
)

// AppBuilder 按配置组装 App；各步骤可在测试中替换。
type AppBuilder struct {
	cfg *brcfg.Config

	tableFn    func(context.Context, brcfg.DataConfig) (*stats.Table, error)
	rendererFn func(string) (chart.Renderer, error)
	httpFn     func(string, statshttp.StatsService) (*statshttp.Server, error)
}

type AppBuilderOption func(*AppBuilder)

// WithTable 使用给定统计表，跳过数据源加载。
func WithTable(table *stats.Table) AppBuilderOption {
	return func(b *AppBuilder) {
		b.tableFn = func(context.Context, brcfg.DataConfig) (*stats.Table, error) {
			if table == nil {
				return nil, fmt.Errorf("nil stat table")
			}
			return table, nil
		}
	}
}

// WithRenderer 替换图表渲染器（忽略 chart.format）。
func WithRenderer(r chart.Renderer) AppBuilderOption {
	return func(b *AppBuilder) {
		b.rendererFn = func(string) (chart.Renderer, error) { return r, nil }
	}
}

func NewAppBuilder(cfg *brcfg.Config, opts ...AppBuilderOption) *AppBuilder {
	b := &AppBuilder{
		cfg:        cfg,
		tableFn:    LoadTable,
		rendererFn: chart.ForFormat,
		httpFn:     buildHTTPServer,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
	return b
}

func (b *AppBuilder) Build(ctx context.Context) (*App, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if b.cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	cfg := b.cfg
	logger.SetLevel(cfg.App.LogLevel)

	table, err := b.tableFn(ctx, cfg.Data)
	if err != nil {
		return nil, fmt.Errorf("load stat table: %w", err)
	}
	renderer, err := b.rendererFn(cfg.Chart.Format)
	if err != nil {
		return nil, err
	}
	svc, err := NewService(table, renderer,
		WithChartScale(cfg.Chart.Scale),
		WithChartTheme(cfg.Chart.Theme),
	)
	if err != nil {
		return nil, err
	}
	server, err := b.httpFn(cfg.App.HTTPAddr, svc)
	if err != nil {
		return nil, fmt.Errorf("build http server: %w", err)
	}
	logger.Infof("✓ 已加载 %d 名球员, %d 行统计", len(svc.Players()), svc.Rows())

	return &App{
		cfg:     cfg,
		svc:     svc,
		http:    server,
		Summary: newStartupSummary(cfg, svc),
	}, nil
}

func buildHTTPServer(addr string, svc statshttp.StatsService) (*statshttp.Server, error) {
	return statshttp.NewServer(statshttp.ServerConfig{Addr: addr, Service: svc})
}
