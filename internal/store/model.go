package store

import (
	"time"

	"hoopstats/internal/stats"
)

// StatRowModel is one stored StatRow. ID keeps insertion order.
type StatRowModel struct {
	ID         int64   `gorm:"column:id;primaryKey;autoIncrement"`
	Player     string  `gorm:"column:player;uniqueIndex:idx_stat_key;index"`
	Season     string  `gorm:"column:season;uniqueIndex:idx_stat_key"`
	SeasonType string  `gorm:"column:season_type;uniqueIndex:idx_stat_key"`
	Points     float64 `gorm:"column:points"`
	Rebounds   float64 `gorm:"column:rebounds"`
	Assists    float64 `gorm:"column:assists"`
}

func (StatRowModel) TableName() string { return "stat_rows" }

// ImportModel records a snapshot import.
type ImportModel struct {
	ID         int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Source     string    `gorm:"column:source"`
	RowCount   int       `gorm:"column:row_count"`
	ImportedAt time.Time `gorm:"column:imported_at;index"`
}

func (ImportModel) TableName() string { return "snapshot_imports" }

func newStatRowModel(r stats.StatRow) StatRowModel {
	return StatRowModel{
		Player:     r.Player,
		Season:     r.Season,
		SeasonType: string(r.SeasonType),
		Points:     r.Points,
		Rebounds:   r.Rebounds,
		Assists:    r.Assists,
	}
}

func (m StatRowModel) toRow() stats.StatRow {
	return stats.StatRow{
		Player:     m.Player,
		Season:     m.Season,
		SeasonType: stats.SeasonType(m.SeasonType),
		Points:     m.Points,
		Rebounds:   m.Rebounds,
		Assists:    m.Assists,
	}
}
