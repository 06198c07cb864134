package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"hoopstats/internal/stats"
)

const importBatchSize = 200

// ErrNoSnapshot is returned when nothing has been imported yet.
var ErrNoSnapshot = errors.New("snapshot store: no snapshot imported")

// Import describes the most recent snapshot import.
type Import struct {
	Source     string    `json:"source" yaml:"source"`
	RowCount   int       `json:"row_count" yaml:"row_count"`
	ImportedAt time.Time `json:"imported_at" yaml:"imported_at"`
}

// SnapshotStore keeps a SQLite copy of the stat table using Gorm.
type SnapshotStore struct {
	db *gorm.DB
}

// NewSnapshotStore opens (and migrates) the snapshot database at path.
func NewSnapshotStore(path string) (*SnapshotStore, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, fmt.Errorf("snapshot store: path is required")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("snapshot store: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open snapshot %s: %w", path, err)
	}
	if err := db.AutoMigrate(&StatRowModel{}, &ImportModel{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// single writer; reads happen once at startup.
	sqlDB.SetMaxOpenConns(1)
	return &SnapshotStore{db: db}, nil
}

// Close closes the underlying database connection.
func (s *SnapshotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Import replaces the stored snapshot with rows in one transaction. A repeated
// (player, season, season type) key keeps the last row.
func (s *SnapshotStore) Import(ctx context.Context, source string, rows []stats.StatRow) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("snapshot store not initialized")
	}
	models := make([]StatRowModel, 0, len(rows))
	for _, r := range rows {
		models = append(models, newStatRowModel(r))
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&StatRowModel{}).Error; err != nil {
			return fmt.Errorf("clear snapshot: %w", err)
		}
		if len(models) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "player"}, {Name: "season"}, {Name: "season_type"}},
				DoUpdates: clause.AssignmentColumns([]string{"points", "rebounds", "assists"}),
			}).CreateInBatches(&models, importBatchSize).Error
			if err != nil {
				return fmt.Errorf("insert snapshot rows: %w", err)
			}
		}
		rec := ImportModel{Source: source, RowCount: len(rows), ImportedAt: time.Now().UTC()}
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("record import: %w", err)
		}
		return nil
	})
}

// Rows returns the stored rows in insertion order.
func (s *SnapshotStore) Rows(ctx context.Context) ([]stats.StatRow, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("snapshot store not initialized")
	}
	var models []StatRowModel
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&models).Error; err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	rows := make([]stats.StatRow, len(models))
	for i, m := range models {
		rows[i] = m.toRow()
	}
	return rows, nil
}

// Table loads the snapshot as a stats.Table. An empty store is ErrNoSnapshot.
func (s *SnapshotStore) Table(ctx context.Context) (*stats.Table, error) {
	if _, err := s.LastImport(ctx); err != nil {
		return nil, err
	}
	rows, err := s.Rows(ctx)
	if err != nil {
		return nil, err
	}
	return stats.FromRows(rows)
}

// LastImport reports the newest import record.
func (s *SnapshotStore) LastImport(ctx context.Context) (Import, error) {
	if s == nil || s.db == nil {
		return Import{}, fmt.Errorf("snapshot store not initialized")
	}
	var rec ImportModel
	err := s.db.WithContext(ctx).Order("id DESC").Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Import{}, ErrNoSnapshot
	}
	if err != nil {
		return Import{}, fmt.Errorf("read import log: %w", err)
	}
	return Import{Source: rec.Source, RowCount: rec.RowCount, ImportedAt: rec.ImportedAt}, nil
}
