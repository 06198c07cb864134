package stats

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T) *Table {
	t.Helper()
	table, err := LoadCSV("testdata/per_game_stats.csv")
	require.NoError(t, err)
	return table
}

func TestFilterByPlayer(t *testing.T) {
	table := loadFixture(t)

	cases := map[string]int{
		"Lebron James":   29,
		"Kobe Bryant":    35,
		"Michael Jordan": 28,
	}
	for player, want := range cases {
		t.Run(player, func(t *testing.T) {
			rows := FilterByPlayer(table, player)
			assert.Len(t, rows, want)
			for _, r := range rows {
				assert.Equal(t, player, r.Player)
			}
		})
	}
}

func TestFilterByPlayer_UnknownPlayerIsEmpty(t *testing.T) {
	table := loadFixture(t)

	for _, player := range []string{"Larry Bird", "", "lebron james", "Lebron James "} {
		rows := FilterByPlayer(table, player)
		assert.NotNil(t, rows)
		assert.Empty(t, rows, "player %q", player)
	}
}

func TestFilterByPlayer_ProjectsAndRenamesRebounds(t *testing.T) {
	table := loadFixture(t)

	rows := FilterByPlayer(table, "Michael Jordan")
	require.NotEmpty(t, rows)
	// first source row: 1984-85 regular season, TRB 6.5
	assert.Equal(t, StatRow{
		Player:     "Michael Jordan",
		Season:     "1984-85",
		SeasonType: RegularSeason,
		Points:     28.2,
		Rebounds:   6.5,
		Assists:    5.9,
	}, rows[0])
}

func TestFilterByPlayerAndSeasonType(t *testing.T) {
	table := loadFixture(t)

	cases := []struct {
		player string
		st     SeasonType
		want   int
	}{
		{"Lebron James", RegularSeason, 16},
		{"Kobe Bryant", RegularSeason, 20},
		{"Michael Jordan", RegularSeason, 15},
		{"Lebron James", Playoffs, 13},
		{"Kobe Bryant", Playoffs, 15},
		{"Michael Jordan", Playoffs, 13},
		{"Lebron James", SeasonType("Play-In"), 0},
		{"Larry Bird", Playoffs, 0},
	}
	for _, tc := range cases {
		t.Run(tc.player+"/"+string(tc.st), func(t *testing.T) {
			rows := FilterByPlayerAndSeasonType(table, tc.player, tc.st)
			assert.Len(t, rows, tc.want)
			for _, r := range rows {
				assert.Equal(t, tc.player, r.Player)
				assert.Equal(t, tc.st, r.SeasonType)
			}
		})
	}
}

func TestFilterByPlayerAndSeasonType_MatchesManualFilter(t *testing.T) {
	table := loadFixture(t)

	for _, player := range table.Players() {
		for _, st := range SeasonTypes() {
			var manual []StatRow
			for _, r := range FilterByPlayer(table, player) {
				if r.SeasonType == st {
					manual = append(manual, r)
				}
			}
			got := FilterByPlayerAndSeasonType(table, player, st)
			assert.Equal(t, len(manual), len(got))
			if len(manual) > 0 {
				assert.Equal(t, manual, got, "%s / %s", player, st)
			}
		}
	}
}

func TestFilterBySeasonType(t *testing.T) {
	table := loadFixture(t)

	assert.Len(t, FilterBySeasonType(table, RegularSeason), 51)
	assert.Len(t, FilterBySeasonType(table, Playoffs), 41)
	assert.Empty(t, FilterBySeasonType(table, SeasonType("regular season")))

	for _, st := range SeasonTypes() {
		rows := FilterBySeasonType(table, st)
		assert.True(t, sort.SliceIsSorted(rows, func(i, j int) bool {
			return rows[i].Season < rows[j].Season
		}), "rows for %s not sorted by season", st)
		for _, r := range rows {
			assert.Equal(t, st, r.SeasonType)
		}
	}
}

func TestFilterBySeasonType_StableOnTies(t *testing.T) {
	table, err := FromRows([]StatRow{
		{Player: "B", Season: "2001-02", SeasonType: Playoffs, Points: 1},
		{Player: "A", Season: "1999-00", SeasonType: Playoffs, Points: 2},
		{Player: "C", Season: "2001-02", SeasonType: Playoffs, Points: 3},
		{Player: "A", Season: "2001-02", SeasonType: RegularSeason, Points: 4},
		{Player: "A", Season: "2001-02", SeasonType: Playoffs, Points: 5},
	})
	require.NoError(t, err)

	rows := FilterBySeasonType(table, Playoffs)
	require.Len(t, rows, 4)
	got := make([]string, len(rows))
	for i, r := range rows {
		got[i] = r.Player + " " + r.Season
	}
	assert.Equal(t, []string{"A 1999-00", "B 2001-02", "C 2001-02", "A 2001-02"}, got)
}

func TestFilters_AreIdempotent(t *testing.T) {
	table := loadFixture(t)
	before := table.Rows()

	assert.Equal(t, FilterByPlayer(table, "Kobe Bryant"), FilterByPlayer(table, "Kobe Bryant"))
	assert.Equal(t,
		FilterByPlayerAndSeasonType(table, "Kobe Bryant", Playoffs),
		FilterByPlayerAndSeasonType(table, "Kobe Bryant", Playoffs))
	assert.Equal(t, FilterBySeasonType(table, RegularSeason), FilterBySeasonType(table, RegularSeason))

	assert.Equal(t, before, table.Rows())
	assert.Equal(t, 92, table.Len())
}

func TestFilters_PreserveTableOrder(t *testing.T) {
	table := loadFixture(t)

	rows := FilterByPlayerAndSeasonType(table, "Kobe Bryant", RegularSeason)
	require.Len(t, rows, 20)
	assert.Equal(t, "1996-97", rows[0].Season)
	assert.Equal(t, "2015-16", rows[19].Season)
}

func TestFilters_NilAndEmptyTable(t *testing.T) {
	var nilTable *Table
	assert.Empty(t, FilterByPlayer(nilTable, "Kobe Bryant"))
	assert.Empty(t, FilterBySeasonType(nilTable, Playoffs))
	assert.Equal(t, 0, nilTable.Len())

	empty, err := FromRows(nil)
	require.NoError(t, err)
	assert.Empty(t, FilterByPlayer(empty, "Kobe Bryant"))
	assert.Empty(t, FilterByPlayerAndSeasonType(empty, "Kobe Bryant", Playoffs))
	assert.Empty(t, FilterBySeasonType(empty, Playoffs))
}
