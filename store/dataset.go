package store

import (
	"sync"
	"time"

	"linechart/models"
)

const (
	SESSIONS_SERIES = "sessions"
	EVENTS_SERIES   = "events"
)

const (
	SESSIONS_COLOUR = "#8A2BE2"
	EVENTS_COLOUR   = "#90EE90"
)

// NewDataset wraps raw observations in the two named series with their fixed colours.
func NewDataset(sessions, events []models.Observation) *models.Dataset {
	return models.NewDataset(
		models.NewSeries(
			SESSIONS_SERIES,
			"Sessions",
			SESSIONS_COLOUR,
			sessions,
		),
		models.NewSeries(
			EVENTS_SERIES,
			"Events",
			EVENTS_COLOUR,
			events,
		),
	)
}

// SampleDataset is shown when no dataset file is configured.
func SampleDataset() *models.Dataset {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	sessionViews := []float64{120, 180, 150, 240, 310, 280, 350, 330, 410, 390, 460, 520, 480, 550}
	eventViews := []float64{40, 65, 50, 90, 120, 95, 140, 130, 170, 150, 190, 230, 210, 260}

	sessions := make([]models.Observation, len(sessionViews))
	events := make([]models.Observation, len(eventViews))
	for i := range sessionViews {
		day := start.AddDate(0, 0, i)
		sessions[i] = models.NewObservation(day, sessionViews[i])
		events[i] = models.NewObservation(day, eventViews[i])
	}
	return NewDataset(sessions, events)
}

// Current holds the dataset being served. Replacing it is the only way data changes.
type Current struct {
	mu      sync.RWMutex
	dataset *models.Dataset
	version int
}

func NewCurrent(dataset *models.Dataset) *Current {
	return &Current{dataset: dataset, version: 1}
}

func (c *Current) Get() *models.Dataset {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dataset
}

// Version increases every time the dataset is replaced.
func (c *Current) Version() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Set replaces the dataset and returns the new version.
func (c *Current) Set(dataset *models.Dataset) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dataset = dataset
	c.version++
	return c.version
}
