package chart

import (
	"fmt"
	"math"

	"hoopstats/internal/stats"
)

// pixelsPerInch converts the figure sizes of the presets (inches) to pixels.
const pixelsPerInch = 100

// Style carries every presentation knob of a stat chart. Sizes are pixels.
type Style struct {
	Width  int
	Height int
	Theme  string

	Title  string
	XLabel string
	YLabel string

	TitleFontSize  int
	XLabelFontSize int
	YLabelFontSize int
	XTickFontSize  int
	YTickFontSize  int
	XTickRotate    float64

	LineWidth      float64
	Legend         bool
	LegendFontSize int
}

// PlayerStyle is the single-player preset: a 24x12 figure titled
// "<player>'s Average <stat> Per Season".
func PlayerStyle(player string, stat stats.Stat) Style {
	return Style{
		Width:          24 * pixelsPerInch,
		Height:         12 * pixelsPerInch,
		Title:          fmt.Sprintf("%s's Average %s Per Season", player, stat.Label()),
		XLabel:         "Season",
		YLabel:         stat.Label(),
		TitleFontSize:  24,
		XLabelFontSize: 20,
		YLabelFontSize: 20,
		XTickFontSize:  16,
		YTickFontSize:  16,
		LineWidth:      5,
		Legend:         true,
	}
}

// ComparisonStyle is the all-players preset: a 60x30 figure with rotated
// season ticks and a large legend.
func ComparisonStyle(stat stats.Stat, seasonType stats.SeasonType) Style {
	return Style{
		Width:          60 * pixelsPerInch,
		Height:         30 * pixelsPerInch,
		Title:          fmt.Sprintf("Player Average %s In %s", stat.Label(), seasonType),
		XLabel:         "Season",
		YLabel:         stat.Label(),
		TitleFontSize:  68,
		XLabelFontSize: 60,
		YLabelFontSize: 60,
		XTickFontSize:  35,
		YTickFontSize:  35,
		XTickRotate:    45,
		LineWidth:      5,
		Legend:         true,
		LegendFontSize: 60,
	}
}

// Scale multiplies every pixel measure by f. Rotation is left alone.
func (s Style) Scale(f float64) Style {
	if f <= 0 || f == 1 {
		return s
	}
	px := func(v int) int {
		if v == 0 {
			return 0
		}
		return max(1, int(math.Round(float64(v)*f)))
	}
	s.Width = px(s.Width)
	s.Height = px(s.Height)
	s.TitleFontSize = px(s.TitleFontSize)
	s.XLabelFontSize = px(s.XLabelFontSize)
	s.YLabelFontSize = px(s.YLabelFontSize)
	s.XTickFontSize = px(s.XTickFontSize)
	s.YTickFontSize = px(s.YTickFontSize)
	s.LegendFontSize = px(s.LegendFontSize)
	if s.LineWidth > 0 {
		s.LineWidth = math.Max(1, s.LineWidth*f)
	}
	return s
}

// WithTheme returns s using the named echarts theme.
func (s Style) WithTheme(theme string) Style {
	s.Theme = theme
	return s
}
