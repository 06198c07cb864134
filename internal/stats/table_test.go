package stats

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadCSV_IgnoresExtraColumns(t *testing.T) {
	src := `Player,Age,RSorPO,Season,Tm,PTS,TRB,AST,BLK
Kobe Bryant,21,Playoffs,1999-00,LAL,21.1,4.5,4.4,1.5
Kobe Bryant,22,Playoffs,2000-01,LAL,29.4,7.3,6.1,0.8
`
	table, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)

	rows := table.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, StatRow{
		Player: "Kobe Bryant", Season: "2000-01", SeasonType: Playoffs,
		Points: 29.4, Rebounds: 7.3, Assists: 6.1,
	}, rows[1])
}

func TestReadCSV_MissingColumn(t *testing.T) {
	src := "Player,RSorPO,Season,PTS,AST\nKobe Bryant,Playoffs,1999-00,21.1,4.4\n"
	_, err := ReadCSV(strings.NewReader(src))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), ColTotalRebounds)
}

func TestReadCSV_RejectsNonNumericStats(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"blank points": {
			src:  "Player,RSorPO,Season,PTS,TRB,AST\nKobe Bryant,Playoffs,1998-99,19.8,6.9,4.6\nKobe Bryant,Playoffs,1999-00,,4.5,4.4\n",
			want: "column PTS row 2",
		},
		"text assists": {
			src:  "Player,RSorPO,Season,PTS,TRB,AST\nKobe Bryant,Playoffs,1999-00,21.1,4.5,abc\n",
			want: "column AST row 1",
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.src))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestReadCSV_IntegerStatsAccepted(t *testing.T) {
	src := "Player,RSorPO,Season,PTS,TRB,AST\nA,Playoffs,1999-00,21,4,4\n"
	table, err := ReadCSV(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, float64(21), table.Rows()[0].Points)
}

func TestFromRows_RejectsNaN(t *testing.T) {
	_, err := FromRows([]StatRow{{Player: "A", Season: "2001-02", SeasonType: Playoffs, Rebounds: math.NaN()}})
	assert.ErrorIs(t, err, ErrInvalidValue)
	assert.Contains(t, err.Error(), "column TRB row 1")
}

func TestReadCSV_Empty(t *testing.T) {
	_, err := ReadCSV(strings.NewReader(""))
	assert.Error(t, err)
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := LoadCSV("testdata/does_not_exist.csv")
	assert.Error(t, err)
}

func TestTable_Players(t *testing.T) {
	table := loadFixture(t)
	assert.Equal(t, []string{"Michael Jordan", "Kobe Bryant", "Lebron James"}, table.Players())
}

func TestFromRows_RoundTrip(t *testing.T) {
	in := []StatRow{
		{Player: "A", Season: "2001-02", SeasonType: RegularSeason, Points: 10, Rebounds: 5, Assists: 2},
		{Player: "B", Season: "2002-03", SeasonType: Playoffs, Points: 20.5, Rebounds: 7.25, Assists: 3},
	}
	table, err := FromRows(in)
	require.NoError(t, err)
	assert.Equal(t, in, table.Rows())
	assert.Equal(t, 2, table.Len())
}

func TestParseStat(t *testing.T) {
	cases := map[string]Stat{
		"PTS":      StatPoints,
		"points":   StatPoints,
		" rb ":     StatRebounds,
		"TRB":      StatRebounds,
		"Rebounds": StatRebounds,
		"ast":      StatAssists,
		"Assists":  StatAssists,
	}
	for raw, want := range cases {
		got, err := ParseStat(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseStat("steals")
	assert.ErrorIs(t, err, ErrUnknownStat)
}

func TestStat_ValueAndLabel(t *testing.T) {
	row := StatRow{Points: 30.1, Rebounds: 7.4, Assists: 6.8}
	assert.Equal(t, 30.1, StatPoints.Value(row))
	assert.Equal(t, 7.4, StatRebounds.Value(row))
	assert.Equal(t, 6.8, StatAssists.Value(row))
	assert.Equal(t, "Rebounds", StatRebounds.Label())
	assert.Equal(t, float64(0), Stat("STL").Value(row))
}
