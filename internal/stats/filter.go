package stats

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

// The filters below are total: a player or season type that does not occur in
// the table yields an empty, non-nil slice. Neither argument is validated.

// FilterByPlayer returns every row of player (exact match) in table order.
func FilterByPlayer(t *Table, player string) []StatRow {
	if t == nil {
		return []StatRow{}
	}
	return mustDecode(playerFrame(t, player))
}

// FilterByPlayerAndSeasonType narrows FilterByPlayer to one season type,
// keeping table order.
func FilterByPlayerAndSeasonType(t *Table, player string, seasonType SeasonType) []StatRow {
	if t == nil {
		return []StatRow{}
	}
	return mustDecode(playerFrame(t, player).Filter(seasonTypeIs(seasonType)))
}

// FilterBySeasonType returns every player's rows for seasonType, stably sorted
// by season ascending.
func FilterBySeasonType(t *Table, seasonType SeasonType) []StatRow {
	if t == nil {
		return []StatRow{}
	}
	df := t.projection().
		Filter(seasonTypeIs(seasonType)).
		Arrange(dataframe.Sort(ColSeason))
	return mustDecode(df)
}

func playerFrame(t *Table, player string) dataframe.DataFrame {
	return t.projection().Filter(dataframe.F{
		Colname:    ColPlayer,
		Comparator: series.Eq,
		Comparando: player,
	})
}

func seasonTypeIs(seasonType SeasonType) dataframe.F {
	// gota only recognises plain strings as string comparandos.
	return dataframe.F{
		Colname:    ColSeasonType,
		Comparator: series.Eq,
		Comparando: string(seasonType),
	}
}
