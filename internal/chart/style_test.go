package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hoopstats/internal/stats"
)

func TestPlayerStyle(t *testing.T) {
	s := PlayerStyle("Lebron James", stats.StatPoints)

	assert.Equal(t, "Lebron James's Average Points Per Season", s.Title)
	assert.Equal(t, 2400, s.Width)
	assert.Equal(t, 1200, s.Height)
	assert.Equal(t, 24, s.TitleFontSize)
	assert.Equal(t, 20, s.XLabelFontSize)
	assert.Equal(t, 16, s.YTickFontSize)
	assert.Equal(t, "Points", s.YLabel)
	assert.True(t, s.Legend)
	assert.Zero(t, s.XTickRotate)
}

func TestComparisonStyle(t *testing.T) {
	s := ComparisonStyle(stats.StatRebounds, stats.Playoffs)

	assert.Equal(t, "Player Average Rebounds In Playoffs", s.Title)
	assert.Equal(t, 6000, s.Width)
	assert.Equal(t, 3000, s.Height)
	assert.Equal(t, 68, s.TitleFontSize)
	assert.Equal(t, 60, s.LegendFontSize)
	assert.Equal(t, 35, s.XTickFontSize)
	assert.Equal(t, float64(45), s.XTickRotate)
	assert.Equal(t, "Rebounds", s.YLabel)
}

func TestStyle_Scale(t *testing.T) {
	s := ComparisonStyle(stats.StatPoints, stats.RegularSeason)

	half := s.Scale(0.5)
	assert.Equal(t, 3000, half.Width)
	assert.Equal(t, 1500, half.Height)
	assert.Equal(t, 34, half.TitleFontSize)
	assert.Equal(t, 18, half.XTickFontSize)
	assert.Equal(t, 2.5, half.LineWidth)
	assert.Equal(t, float64(45), half.XTickRotate)
	assert.Equal(t, s.Title, half.Title)

	assert.Equal(t, s, s.Scale(1))
	assert.Equal(t, s, s.Scale(0))
	assert.Equal(t, s, s.Scale(-2))

	tiny := PlayerStyle("A", stats.StatPoints).Scale(0.01)
	assert.Equal(t, 1, tiny.XTickFontSize)
	assert.Equal(t, float64(1), tiny.LineWidth)
	assert.Zero(t, tiny.LegendFontSize)
}
