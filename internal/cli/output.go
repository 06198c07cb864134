package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"hoopstats/internal/stats"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
	formatCSV   = "csv"

	printedDecimals = 1
	missingStat     = "-"
)

var rowHeader = []string{stats.ColPlayer, stats.ColSeason, stats.ColSeasonType, stats.ColPoints, stats.ColRebounds, stats.ColAssists}

func outputFormats() []string {
	return []string{formatTable, formatJSON, formatYAML, formatCSV}
}

func validOutput(format string) bool {
	return slices.Contains(outputFormats(), format)
}

func renderRows(w io.Writer, rows []stats.StatRow, format string) error {
	if rows == nil {
		rows = []stats.StatRow{}
	}
	switch format {
	case formatJSON:
		return renderJSON(w, rows)
	case formatYAML:
		return renderYAML(w, rows)
	case formatCSV:
		return renderRowsCSV(w, rows)
	default:
		return renderRowsTable(w, rows)
	}
}

func renderPlayers(w io.Writer, players []string, format string) error {
	switch format {
	case formatJSON:
		return renderJSON(w, players)
	case formatYAML:
		return renderYAML(w, players)
	case formatCSV:
		cw := csv.NewWriter(w)
		_ = cw.Write([]string{stats.ColPlayer})
		for _, p := range players {
			_ = cw.Write([]string{p})
		}
		cw.Flush()
		return cw.Error()
	default:
		t := table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"#", stats.ColPlayer})
		for i, p := range players {
			t.AppendRow(table.Row{i + 1, p})
		}
		t.Render()
		return nil
	}
}

func renderRowsTable(w io.Writer, rows []stats.StatRow) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(rowHeader))
	for i, col := range rowHeader {
		header[i] = col
	}
	t.AppendHeader(header)
	for _, r := range rows {
		t.AppendRow(table.Row{r.Player, r.Season, string(r.SeasonType), formatStat(r.Points), formatStat(r.Rebounds), formatStat(r.Assists)})
	}
	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return nil
}

func renderRowsCSV(w io.Writer, rows []stats.StatRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(rowHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{r.Player, r.Season, string(r.SeasonType), formatStat(r.Points), formatStat(r.Rebounds), formatStat(r.Assists)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func renderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func renderYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// formatStat prints a missing value as "-".
func formatStat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return missingStat
	}
	return decimal.NewFromFloat(v).StringFixed(printedDecimals)
}
