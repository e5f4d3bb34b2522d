package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linechart/models"
	"linechart/store"
)

func TestParseFlagsDefaults(t *testing.T) {
	flags, export, err := ParseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, DEFAULT_ADDR, flags.Addr)
	assert.Equal(t, DEFAULT_DATE_LAYOUT, flags.DateLayout)
	assert.Empty(t, flags.DataPath)
	assert.Empty(t, export.Dir)
}

func TestParseFlags(t *testing.T) {
	flags, export, err := ParseFlags([]string{"-addr", ":9090", "-data", "views.yaml", "-export-dir", "out", "-date-format", "2006-01-02"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", flags.Addr)
	assert.Equal(t, "views.yaml", flags.DataPath)
	assert.Equal(t, "2006-01-02", flags.DateLayout)
	assert.Equal(t, "out", export.Dir)

	_, _, err = ParseFlags([]string{"-nope"})
	assert.Error(t, err)
}

func TestParseDatasetYAML(t *testing.T) {
	dataset, err := ParseDataset([]byte(`
sessions:
  - {time: 2024-01-01T00:00:00Z, views: 10}
  - {time: 2024-01-02, views: 20}
events:
  - {time: 0, views: 5}
`))
	require.NoError(t, err)

	require.Equal(t, 2, dataset.Sessions().Len())
	first, _ := dataset.Sessions().At(0)
	second, _ := dataset.Sessions().At(1)
	assert.True(t, first.Time().Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, second.Time().Equal(time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 20.0, second.Views())

	event, ok := dataset.Events().At(0)
	require.True(t, ok)
	assert.True(t, event.Time().Equal(time.UnixMilli(0)))
	assert.Equal(t, "#90EE90", dataset.Events().Colour())
}

func TestLoadDatasetJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"sessions":[{"time":"2024-01-01T00:00:00Z","views":3}],"events":[]}`), 0644))

	dataset, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, 1, dataset.Sessions().Len())
	assert.Equal(t, 0, dataset.Events().Len())
}

func TestLoadDatasetErrors(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = ParseDataset([]byte("sessions:\n  - {time: yesterday, views: 1}\n"))
	assert.ErrorContains(t, err, "bad timestamp")
}

func TestLoadDatasetSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "views.db")
	db, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, db.Append(store.SESSIONS_SERIES, models.NewObservation(time.UnixMilli(0), 10), models.NewObservation(time.UnixMilli(1), 20)))
	require.NoError(t, db.Append(store.EVENTS_SERIES, models.NewObservation(time.UnixMilli(0), 5)))
	require.NoError(t, db.Close())

	dataset, err := LoadDataset(path)
	require.NoError(t, err)
	assert.Equal(t, 2, dataset.Sessions().Len())
	assert.Equal(t, 1, dataset.Events().Len())

	_, err = LoadDataset(filepath.Join(t.TempDir(), "missing.db"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
