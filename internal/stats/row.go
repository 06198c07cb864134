package stats

import (
	"errors"
	"fmt"
	"strings"
)

// SeasonType marks a row as regular-season or playoff averages. Any other
// value is accepted by the filters and simply matches nothing.
type SeasonType string

const (
	RegularSeason SeasonType = "Regular Season"
	Playoffs      SeasonType = "Playoffs"
)

// SeasonTypes returns the two values present in the dataset.
func SeasonTypes() []SeasonType {
	return []SeasonType{RegularSeason, Playoffs}
}

func (s SeasonType) String() string { return string(s) }

// StatRow holds one player's per-game averages for a season and season type.
type StatRow struct {
	Player     string     `json:"player" yaml:"player"`
	Season     string     `json:"season" yaml:"season"`
	SeasonType SeasonType `json:"season_type" yaml:"season_type"`
	Points     float64    `json:"points" yaml:"points"`
	Rebounds   float64    `json:"rebounds" yaml:"rebounds"`
	Assists    float64    `json:"assists" yaml:"assists"`
}

// Stat selects one of the plotted per-game averages. The value is the output
// column name.
type Stat string

const (
	StatPoints   Stat = ColPoints
	StatRebounds Stat = ColRebounds
	StatAssists  Stat = ColAssists
)

var ErrUnknownStat = errors.New("unknown stat")

// Stats returns every selectable stat in column order.
func Stats() []Stat {
	return []Stat{StatPoints, StatRebounds, StatAssists}
}

// ParseStat accepts the column name (PTS/RB/AST), the source rebound column
// (TRB) or the spelled-out name, case-insensitively.
func ParseStat(raw string) (Stat, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pts", "points", "point":
		return StatPoints, nil
	case "rb", "trb", "rebounds", "rebound", "reb":
		return StatRebounds, nil
	case "ast", "assists", "assist":
		return StatAssists, nil
	default:
		return "", fmt.Errorf("%w: %q (want PTS, RB or AST)", ErrUnknownStat, raw)
	}
}

func (s Stat) String() string { return string(s) }

// Label is the axis/title wording for the stat.
func (s Stat) Label() string {
	switch s {
	case StatPoints:
		return "Points"
	case StatRebounds:
		return "Rebounds"
	case StatAssists:
		return "Assists"
	default:
		return string(s)
	}
}

// Value extracts the stat from a row. Unknown stats read as zero.
func (s Stat) Value(row StatRow) float64 {
	switch s {
	case StatPoints:
		return row.Points
	case StatRebounds:
		return row.Rebounds
	case StatAssists:
		return row.Assists
	default:
		return 0
	}
}
