package chart

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
	"github.com/shopspring/decimal"

	"hoopstats/internal/stats"
)

// ErrNoRows is returned when there is nothing to plot.
var ErrNoRows = errors.New("chart: no rows to plot")

const (
	FormatHTML = "html"
	FormatPNG  = "png"

	valueDecimals = 2
	defaultTheme  = "white"
)

// Renderer draws already-filtered rows. It never filters on its own.
type Renderer interface {
	Render(ctx context.Context, rows []stats.StatRow, stat stats.Stat, style Style) (Artifact, error)
}

// Artifact is a rendered chart.
type Artifact struct {
	Bytes       []byte `json:"-"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Description string `json:"description"`
}

// WriteFile stores the artifact under dir and returns the written path.
func (a Artifact) WriteFile(dir string) (string, error) {
	if a.Filename == "" {
		return "", fmt.Errorf("artifact has no filename")
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create chart dir: %w", err)
	}
	path := filepath.Join(dir, a.Filename)
	if err := os.WriteFile(path, a.Bytes, 0o644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}

// ForFormat picks the renderer for an output format.
func ForFormat(format string) (Renderer, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatHTML:
		return NewHTMLRenderer(), nil
	case FormatPNG:
		return NewPNGRenderer(), nil
	default:
		return nil, fmt.Errorf("unsupported chart format %q", format)
	}
}

// HTMLRenderer produces a self-contained echarts page.
type HTMLRenderer struct{}

func NewHTMLRenderer() *HTMLRenderer { return &HTMLRenderer{} }

func (r *HTMLRenderer) Render(ctx context.Context, rows []stats.StatRow, stat stats.Stat, style Style) (Artifact, error) {
	if len(rows) == 0 {
		return Artifact{}, ErrNoRows
	}
	if ctx != nil {
		if err := ctx.Err(); err != nil {
			return Artifact{}, err
		}
	}
	line := buildLine(rows, stat, style)
	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return Artifact{}, fmt.Errorf("render %s: %w", style.Title, err)
	}
	return Artifact{
		Bytes:       buf.Bytes(),
		Filename:    Filename(style.Title, FormatHTML),
		ContentType: "text/html; charset=utf-8",
		Description: describe(rows, style),
	}, nil
}

// series is one plotted line: a player, or a player and season type when the
// rows mix both season types.
type series struct {
	name   string
	values map[string]float64
}

func buildLine(rows []stats.StatRow, stat stats.Stat, style Style) *charts.Line {
	seasons, lines := groupRows(rows, stat)

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: style.Title,
			Width:     fmt.Sprintf("%dpx", style.Width),
			Height:    fmt.Sprintf("%dpx", style.Height),
			Theme:     themeOrDefault(style.Theme),
		}),
		charts.WithTitleOpts(opts.Title{
			Title:      style.Title,
			Left:       "center",
			TitleStyle: &opts.TextStyle{FontSize: style.TitleFontSize},
		}),
		charts.WithLegendOpts(legendOpts(style)),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithGridOpts(opts.Grid{Left: "6%", Right: "4%", Top: "14%", Bottom: "8%", ContainLabel: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type:         "category",
			Name:         style.XLabel,
			NameLocation: "middle",
			NameGap:      style.XTickFontSize + style.XLabelFontSize,
			AxisLabel:    &opts.AxisLabel{FontSize: style.XTickFontSize, Rotate: style.XTickRotate},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type:         "value",
			Name:         style.YLabel,
			NameLocation: "middle",
			NameGap:      2*style.YTickFontSize + style.YLabelFontSize,
			Scale:        opts.Bool(true),
			AxisLabel:    &opts.AxisLabel{FontSize: style.YTickFontSize},
		}),
	)
	// axis names have no font size option, set them after init.
	line.AddJSFuncStrs(types.FuncStr(fmt.Sprintf(
		"%%MY_ECHARTS%%.setOption({xAxis:{nameTextStyle:{fontSize:%d}},yAxis:{nameTextStyle:{fontSize:%d}}});",
		style.XLabelFontSize, style.YLabelFontSize,
	)))

	line.SetXAxis(seasons)
	for _, s := range lines {
		data := make([]opts.LineData, len(seasons))
		for i, season := range seasons {
			v, ok := s.values[season]
			if !ok || !finite(v) {
				data[i] = opts.LineData{Value: nil}
				continue
			}
			data[i] = opts.LineData{Value: round(v)}
		}
		line.AddSeries(s.name, data,
			charts.WithLineStyleOpts(opts.LineStyle{Width: float32(style.LineWidth)}),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(true)}),
		)
	}
	return line
}

// groupRows returns the ascending distinct seasons and one series per player
// in first-seen order. A later row for the same key and season wins.
func groupRows(rows []stats.StatRow, stat stats.Stat) ([]string, []*series) {
	mixed := false
	for _, r := range rows {
		if r.SeasonType != rows[0].SeasonType {
			mixed = true
			break
		}
	}

	seasons := []string{}
	seenSeason := map[string]bool{}
	byName := map[string]*series{}
	var lines []*series
	for _, r := range rows {
		if !seenSeason[r.Season] {
			seenSeason[r.Season] = true
			seasons = append(seasons, r.Season)
		}
		name := r.Player
		if mixed {
			name = fmt.Sprintf("%s (%s)", r.Player, r.SeasonType)
		}
		s, ok := byName[name]
		if !ok {
			s = &series{name: name, values: map[string]float64{}}
			byName[name] = s
			lines = append(lines, s)
		}
		s.values[r.Season] = stat.Value(r)
	}
	slices.Sort(seasons)
	return seasons, lines
}

func legendOpts(style Style) opts.Legend {
	legend := opts.Legend{Show: opts.Bool(style.Legend), Top: "6%", Right: "4%"}
	if style.LegendFontSize > 0 {
		legend.TextStyle = &opts.TextStyle{FontSize: style.LegendFontSize}
	}
	return legend
}

func themeOrDefault(theme string) string {
	if strings.TrimSpace(theme) == "" {
		return defaultTheme
	}
	return theme
}

func describe(rows []stats.StatRow, style Style) string {
	players := map[string]struct{}{}
	for _, r := range rows {
		players[r.Player] = struct{}{}
	}
	return fmt.Sprintf("%s | %d rows | %d players", style.Title, len(rows), len(players))
}

// round leaves NaN and Inf untouched; decimal cannot represent them.
func round(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(valueDecimals).InexactFloat64()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

var nonWord = regexp.MustCompile(`[^a-z0-9]+`)

// Filename turns a chart title into a file name with the given extension.
func Filename(title, ext string) string {
	slug := strings.Trim(nonWord.ReplaceAllString(strings.ToLower(title), "_"), "_")
	if slug == "" {
		slug = "chart"
	}
	return slug + "." + ext
}
