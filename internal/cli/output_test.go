package cli

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hoopstats/internal/stats"
)

func TestFormatStat(t *testing.T) {
	assert.Equal(t, "28.2", formatStat(28.15))
	assert.Equal(t, "30.0", formatStat(30))
	assert.Equal(t, "-", formatStat(math.NaN()))
	assert.Equal(t, "-", formatStat(math.Inf(-1)))
}

func TestRenderRowsTable_MissingValue(t *testing.T) {
	var buf bytes.Buffer
	rows := []stats.StatRow{{Player: "A", Season: "1999-00", SeasonType: stats.Playoffs, Points: math.NaN(), Rebounds: 4.5, Assists: 4.4}}
	require.NotPanics(t, func() {
		require.NoError(t, renderRows(&buf, rows, formatTable))
	})
	assert.Contains(t, buf.String(), "4.5")
	assert.Contains(t, buf.String(), "(1 rows)")
}
