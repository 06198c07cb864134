package app

import (
	"context"
	"fmt"

	brcfg "hoopstats/internal/config"
	statshttp "hoopstats/internal/transport/http/stats"

	"golang.org/x/sync/errgroup"
)

// App 负责应用级编排：加载配置→加载统计表→对外提供查询与图表。
type App struct {
	cfg     *brcfg.Config
	svc     *Service
	http    *statshttp.Server
	Summary *StartupSummary
}

// NewApp 根据配置构建应用对象（不启动）。
func NewApp(ctx context.Context, cfg *brcfg.Config) (*App, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}
	return buildAppWithWire(ctx, cfg)
}

// Service 暴露查询与绘图服务（CLI 直接调用）。
func (a *App) Service() *Service {
	if a == nil {
		return nil
	}
	return a.svc
}

// Serve 启动 HTTP 服务，直到 ctx 取消。
func (a *App) Serve(ctx context.Context) error {
	if a == nil || a.cfg == nil {
		return fmt.Errorf("app not initialized")
	}
	if a.http == nil {
		return fmt.Errorf("http server not initialized")
	}
	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		if err := a.http.Start(ctx); err != nil {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})
	return group.Wait()
}
