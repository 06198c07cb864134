package app

import (
	"context"
	"fmt"

	"hoopstats/internal/chart"
	"hoopstats/internal/stats"
)

// Service answers stat queries over one loaded table and hands the filtered
// rows to a chart renderer.
type Service struct {
	table    *stats.Table
	renderer chart.Renderer
	scale    float64
	theme    string
}

type ServiceOption func(*Service)

// WithChartScale resizes every chart preset by f.
func WithChartScale(f float64) ServiceOption {
	return func(s *Service) { s.scale = f }
}

func WithChartTheme(theme string) ServiceOption {
	return func(s *Service) { s.theme = theme }
}

func NewService(table *stats.Table, renderer chart.Renderer, opts ...ServiceOption) (*Service, error) {
	if table == nil {
		return nil, fmt.Errorf("service: nil stat table")
	}
	if renderer == nil {
		return nil, fmt.Errorf("service: nil chart renderer")
	}
	s := &Service{table: table, renderer: renderer, scale: 1}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

func (s *Service) Players() []string { return s.table.Players() }

// Rows reports the table size.
func (s *Service) Rows() int { return s.table.Len() }

func (s *Service) PlayerStats(player string) []stats.StatRow {
	return stats.FilterByPlayer(s.table, player)
}

func (s *Service) PlayerSeasonStats(player string, seasonType stats.SeasonType) []stats.StatRow {
	return stats.FilterByPlayerAndSeasonType(s.table, player, seasonType)
}

func (s *Service) SeasonStats(seasonType stats.SeasonType) []stats.StatRow {
	return stats.FilterBySeasonType(s.table, seasonType)
}

// PlotPlayerStat charts one player's stat across seasons of seasonType.
func (s *Service) PlotPlayerStat(ctx context.Context, player string, stat stats.Stat, seasonType stats.SeasonType) (chart.Artifact, error) {
	rows := stats.FilterByPlayerAndSeasonType(s.table, player, seasonType)
	art, err := s.renderer.Render(ctx, rows, stat, s.style(chart.PlayerStyle(player, stat)))
	if err != nil {
		return chart.Artifact{}, fmt.Errorf("plot %s %s (%s): %w", player, stat, seasonType, err)
	}
	return art, nil
}

// CompareAllPlayers charts every player's stat for seasonType on one figure.
func (s *Service) CompareAllPlayers(ctx context.Context, stat stats.Stat, seasonType stats.SeasonType) (chart.Artifact, error) {
	rows := stats.FilterBySeasonType(s.table, seasonType)
	art, err := s.renderer.Render(ctx, rows, stat, s.style(chart.ComparisonStyle(stat, seasonType)))
	if err != nil {
		return chart.Artifact{}, fmt.Errorf("compare %s (%s): %w", stat, seasonType, err)
	}
	return art, nil
}

func (s *Service) style(base chart.Style) chart.Style {
	st := base.Scale(s.scale)
	if s.theme != "" {
		st = st.WithTheme(s.theme)
	}
	return st
}
