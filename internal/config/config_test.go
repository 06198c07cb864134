package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "app:\n  log_level: debug\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, defaultAppHTTPAddr, cfg.App.HTTPAddr)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, defaultDataCSVPath, cfg.Data.CSVPath)
	assert.Equal(t, FormatHTML, cfg.Chart.Format)
	assert.Equal(t, 1.0, cfg.Chart.Scale)
}

func TestLoad_IncludeMergesInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "base.yaml", `
data:
  source: sqlite
  snapshot_path: /tmp/base.db
chart:
  format: png
  scale: 0.25
`)
	path := writeFile(t, dir, "config.yaml", `
include:
  - base.yaml
chart:
  format: html
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Data.UsesSnapshot())
	assert.Equal(t, "/tmp/base.db", cfg.Data.SnapshotPath)
	assert.Equal(t, FormatHTML, cfg.Chart.Format)
	assert.Equal(t, 0.25, cfg.Chart.Scale)
}

func TestLoad_IncludeCycle(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "include: [b.yaml]\n")
	writeFile(t, dir, "b.yaml", "include: [a.yaml]\n")

	_, err := Load(filepath.Join(dir, "a.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "include cycle")
}

func TestLoad_Validation(t *testing.T) {
	cases := map[string]string{
		"bad source":    "data:\n  source: parquet\n",
		"bad format":    "chart:\n  format: svg\n",
		"bad scale":     "chart:\n  scale: -1\n",
		"bad log level": "app:\n  log_level: loud\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "config.yaml", body)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HOOPSTATS_DATA_SOURCE", "sqlite")
	t.Setenv("HOOPSTATS_CHART_SCALE", "0.5")
	t.Setenv("HOOPSTATS_APP_LOG_PATH", "/tmp/hoopstats.log")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.Data.UsesSnapshot())
	assert.Equal(t, 0.5, cfg.Chart.Scale)
	assert.Equal(t, "/tmp/hoopstats.log", cfg.App.LogPath)
	assert.Equal(t, defaultSnapshotPath, cfg.Data.SnapshotPath)
}

func TestLoad_EnvBeatsFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "chart:\n  format: png\n  theme: dark\n")
	t.Setenv("HOOPSTATS_CHART_FORMAT", "HTML")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, FormatHTML, cfg.Chart.Format)
	assert.Equal(t, "dark", cfg.Chart.Theme)
}

func TestLoad_EnvValidated(t *testing.T) {
	t.Setenv("HOOPSTATS_DATA_SOURCE", "parquet")
	_, err := Load("")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, defaultSnapshotPath, cfg.Data.SnapshotPath)
	assert.False(t, cfg.Data.UsesSnapshot())
}
