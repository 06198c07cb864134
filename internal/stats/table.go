package stats

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// Source column names of per_game_stats.csv. TRB is published as RB.
const (
	ColPlayer        = "Player"
	ColSeason        = "Season"
	ColSeasonType    = "RSorPO"
	ColPoints        = "PTS"
	ColTotalRebounds = "TRB"
	ColRebounds      = "RB"
	ColAssists       = "AST"
)

var (
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidValue  = errors.New("invalid stat value")
)

var sourceColumns = []string{ColPlayer, ColSeason, ColSeasonType, ColPoints, ColTotalRebounds, ColAssists}

var statColumns = []string{ColPoints, ColTotalRebounds, ColAssists}

// Table is the immutable in-memory stat table. Every gota operation returns a
// new frame, so queries never touch df.
type Table struct {
	df dataframe.DataFrame
}

// NewTable wraps a loaded frame after checking the source columns exist and
// every stat cell is a number.
func NewTable(df dataframe.DataFrame) (*Table, error) {
	if df.Err != nil {
		return nil, fmt.Errorf("stats table: %w", df.Err)
	}
	names := df.Names()
	for _, col := range sourceColumns {
		if !slices.Contains(names, col) {
			return nil, fmt.Errorf("stats table: %w: %s", ErrMissingColumn, col)
		}
	}
	for _, col := range statColumns {
		if err := checkStatColumn(df.Col(col)); err != nil {
			return nil, fmt.Errorf("stats table: %w", err)
		}
	}
	return &Table{df: df}, nil
}

// checkStatColumn rejects text columns and blank cells. gota reads both as
// NaN, which neither JSON nor SQLite can carry. Rows are 1-based data rows.
func checkStatColumn(s series.Series) error {
	if s.Type() != series.Float && s.Type() != series.Int {
		records := s.Records()
		for i, v := range s.Float() {
			if math.IsNaN(v) {
				return fmt.Errorf("%w: column %s row %d: %q is not a number", ErrInvalidValue, s.Name, i+1, records[i])
			}
		}
		return fmt.Errorf("%w: column %s is %s, want numbers", ErrInvalidValue, s.Name, s.Type())
	}
	if !s.HasNaN() {
		return nil
	}
	for i, v := range s.Float() {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: column %s row %d is empty", ErrInvalidValue, s.Name, i+1)
		}
	}
	return nil
}

// LoadCSV reads the stat table from path. Columns other than the six source
// columns are kept in the frame but never projected.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stat table: %w", err)
	}
	defer f.Close()
	t, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a CSV stream with a header row.
func ReadCSV(r io.Reader) (*Table, error) {
	df := dataframe.ReadCSV(r,
		dataframe.HasHeader(true),
		dataframe.WithTypes(map[string]series.Type{
			ColPlayer:     series.String,
			ColSeason:     series.String,
			ColSeasonType: series.String,
		}),
	)
	return NewTable(df)
}

// FromRows builds a table holding exactly rows, in order.
func FromRows(rows []StatRow) (*Table, error) {
	n := len(rows)
	players := make([]string, n)
	seasons := make([]string, n)
	seasonTypes := make([]string, n)
	points := make([]float64, n)
	rebounds := make([]float64, n)
	assists := make([]float64, n)
	for i, r := range rows {
		players[i] = r.Player
		seasons[i] = r.Season
		seasonTypes[i] = string(r.SeasonType)
		points[i] = r.Points
		rebounds[i] = r.Rebounds
		assists[i] = r.Assists
	}
	return NewTable(dataframe.New(
		series.New(players, series.String, ColPlayer),
		series.New(seasons, series.String, ColSeason),
		series.New(seasonTypes, series.String, ColSeasonType),
		series.New(points, series.Float, ColPoints),
		series.New(rebounds, series.Float, ColTotalRebounds),
		series.New(assists, series.Float, ColAssists),
	))
}

// Len reports the number of rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.df.Nrow()
}

// Rows returns the full projection in source order.
func (t *Table) Rows() []StatRow {
	if t == nil {
		return []StatRow{}
	}
	return mustDecode(t.projection())
}

// Players lists distinct player names in first-seen order.
func (t *Table) Players() []string {
	if t == nil {
		return []string{}
	}
	seen := make(map[string]struct{})
	out := []string{}
	for _, name := range t.df.Col(ColPlayer).Records() {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

// projection keeps the six stat columns and renames TRB to RB.
func (t *Table) projection() dataframe.DataFrame {
	return t.df.Select(sourceColumns).Rename(ColRebounds, ColTotalRebounds)
}

// mustDecode converts a projected frame into rows. The frame always derives
// from a validated Table, so a gota error here is a programming error.
func mustDecode(df dataframe.DataFrame) []StatRow {
	rows, err := decodeRows(df)
	if err != nil {
		panic(fmt.Sprintf("stats: corrupt projection: %v", err))
	}
	return rows
}

func decodeRows(df dataframe.DataFrame) ([]StatRow, error) {
	if df.Err != nil {
		return nil, df.Err
	}
	n := df.Nrow()
	rows := make([]StatRow, n)
	if n == 0 {
		return rows, nil
	}
	players := df.Col(ColPlayer).Records()
	seasons := df.Col(ColSeason).Records()
	seasonTypes := df.Col(ColSeasonType).Records()
	points := df.Col(ColPoints).Float()
	rebounds := df.Col(ColRebounds).Float()
	assists := df.Col(ColAssists).Float()
	for i := 0; i < n; i++ {
		rows[i] = StatRow{
			Player:     players[i],
			Season:     seasons[i],
			SeasonType: SeasonType(seasonTypes[i]),
			Points:     points[i],
			Rebounds:   rebounds[i],
			Assists:    assists[i],
		}
	}
	return rows, nil
}
