package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linechart/models"
)

func openTestDB(t *testing.T) *SQLite {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "views.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestSQLiteRoundTripKeepsOrder(t *testing.T) {
	db := openTestDB(t)

	// Deliberately out of time order
	require.NoError(t, db.Append(SESSIONS_SERIES,
		models.NewObservation(time.UnixMilli(1000), 20),
		models.NewObservation(time.UnixMilli(0), 10),
	))
	require.NoError(t, db.Append(EVENTS_SERIES, models.NewObservation(time.UnixMilli(500), 5)))
	require.NoError(t, db.Append("pageviews", models.NewObservation(time.UnixMilli(0), 99)))

	dataset, err := db.Dataset()
	require.NoError(t, err)

	sessions := dataset.Sessions().Observations()
	require.Len(t, sessions, 2)
	assert.Equal(t, int64(1000), sessions[0].Time().UnixMilli())
	assert.Equal(t, 10.0, sessions[1].Views())
	assert.Equal(t, SESSIONS_COLOUR, dataset.Sessions().Colour())

	require.Equal(t, 1, dataset.Events().Len())
	assert.Equal(t, 5.0, dataset.Events().Observations()[0].Views())
}

func TestSQLiteEmpty(t *testing.T) {
	db := openTestDB(t)

	dataset, err := db.Dataset()
	require.NoError(t, err)
	assert.Equal(t, 0, dataset.Sessions().Len())
	assert.Equal(t, 0, dataset.Events().Len())
}

func TestCurrentVersions(t *testing.T) {
	current := NewCurrent(SampleDataset())
	assert.Equal(t, 1, current.Version())

	next := NewDataset(nil, nil)
	assert.Equal(t, 2, current.Set(next))
	assert.Same(t, next, current.Get())
}
