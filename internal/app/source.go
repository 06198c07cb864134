package app

import (
	"context"
	"fmt"

	"hoopstats/internal/config"
	"hoopstats/internal/logger"
	"hoopstats/internal/stats"
	"hoopstats/internal/store"
)

// LoadTable reads the stat table from the configured source.
func LoadTable(ctx context.Context, cfg config.DataConfig) (*stats.Table, error) {
	if !cfg.UsesSnapshot() {
		table, err := stats.LoadCSV(cfg.CSVPath)
		if err != nil {
			return nil, err
		}
		logger.Infof("stat table loaded from %s: %d rows", cfg.CSVPath, table.Len())
		return table, nil
	}
	snap, err := store.NewSnapshotStore(cfg.SnapshotPath)
	if err != nil {
		return nil, err
	}
	defer snap.Close()
	table, err := snap.Table(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot %s: %w", cfg.SnapshotPath, err)
	}
	logger.Infof("stat table loaded from snapshot %s: %d rows", cfg.SnapshotPath, table.Len())
	return table, nil
}

// ImportSnapshot copies the CSV table into the SQLite snapshot.
func ImportSnapshot(ctx context.Context, cfg config.DataConfig) (store.Import, error) {
	table, err := stats.LoadCSV(cfg.CSVPath)
	if err != nil {
		return store.Import{}, err
	}
	snap, err := store.NewSnapshotStore(cfg.SnapshotPath)
	if err != nil {
		return store.Import{}, err
	}
	defer snap.Close()
	if err := snap.Import(ctx, cfg.CSVPath, table.Rows()); err != nil {
		return store.Import{}, err
	}
	imp, err := snap.LastImport(ctx)
	if err != nil {
		return store.Import{}, err
	}
	logger.Infof("snapshot %s: imported %d rows from %s", cfg.SnapshotPath, imp.RowCount, imp.Source)
	return imp, nil
}
