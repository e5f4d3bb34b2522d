package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSeriesMaxViews(t *testing.T) {
	jan := func(day int) time.Time { return time.Date(2024, time.January, day, 0, 0, 0, 0, time.UTC) }
	s := NewSeries("sessions", "Sessions", "#8A2BE2", []Observation{
		NewObservation(jan(3), 5),
		NewObservation(jan(1), 9),
		NewObservation(jan(2), 2),
	})

	peak, ok := s.MaxViews()
	assert.True(t, ok)
	assert.Equal(t, 9.0, peak)
}

func TestEmptySeries(t *testing.T) {
	s := NewSeries("events", "Events", "#90EE90", nil)
	_, ok := s.MaxViews()
	assert.False(t, ok)
	_, ok = s.At(0)
	assert.False(t, ok)

	var missing *Series
	assert.Equal(t, 0, missing.Len())
	assert.Nil(t, missing.Observations())
}

func TestSeriesCopiesInput(t *testing.T) {
	observations := []Observation{NewObservation(time.Unix(0, 0), 1)}
	s := NewSeries("sessions", "", "", observations)
	observations[0] = NewObservation(time.Unix(0, 0), 99)

	o, ok := s.At(0)
	assert.True(t, ok)
	assert.Equal(t, 1.0, o.Views())
}

func TestDatasetSeriesByKey(t *testing.T) {
	d := NewDataset(NewSeries("sessions", "", "", nil), NewSeries("events", "", "", nil))
	s, ok := d.SeriesByKey("events")
	assert.True(t, ok)
	assert.Same(t, d.Events(), s)

	_, ok = d.SeriesByKey("clicks")
	assert.False(t, ok)
}
