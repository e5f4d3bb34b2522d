package chart

import (
	"math"
	"time"

	"linechart/models"
)

// LinearScale maps a numeric domain onto a pixel range. A zero-width domain maps every value to the middle of
// the range.
type LinearScale struct {
	domain [2]float64
	rng    [2]float64
}

func NewLinearScale(d0, d1, r0, r1 float64) LinearScale {
	return LinearScale{
		[2]float64{d0, d1},
		[2]float64{r0, r1},
	}
}

func (s LinearScale) Domain() (float64, float64) {
	return s.domain[0], s.domain[1]
}

func (s LinearScale) Range() (float64, float64) {
	return s.rng[0], s.rng[1]
}

func (s LinearScale) Scale(v float64) float64 {
	span := s.domain[1] - s.domain[0]
	if span == 0 || math.IsNaN(span) {
		return (s.rng[0] + s.rng[1]) / 2
	}
	t := (v - s.domain[0]) / span
	return s.rng[0] + t*(s.rng[1]-s.rng[0])
}

// Nice returns a copy with the domain extended to round tick values.
func (s LinearScale) Nice(count int) LinearScale {
	d0, d1 := niceDomain(s.domain[0], s.domain[1], count)
	return NewLinearScale(d0, d1, s.rng[0], s.rng[1])
}

func (s LinearScale) Ticks(count int) []float64 {
	return linearTicks(s.domain[0], s.domain[1], count)
}

func (s LinearScale) TickFormat(count int) func(float64) string {
	return linearTickFormat(s.domain[0], s.domain[1], count)
}

// TimeScale is a LinearScale over unix milliseconds with calendar aware ticks.
type TimeScale struct {
	linear LinearScale
}

func NewTimeScale(t0, t1 time.Time, r0, r1 float64) TimeScale {
	return TimeScale{
		NewLinearScale(float64(t0.UnixMilli()), float64(t1.UnixMilli()), r0, r1),
	}
}

func (s TimeScale) Domain() (time.Time, time.Time) {
	return time.UnixMilli(int64(s.linear.domain[0])).UTC(), time.UnixMilli(int64(s.linear.domain[1])).UTC()
}

func (s TimeScale) Range() (float64, float64) {
	return s.linear.Range()
}

func (s TimeScale) Scale(t time.Time) float64 {
	return s.linear.Scale(float64(t.UnixMilli()))
}

func (s TimeScale) Ticks(count int) []time.Time {
	t0, t1 := s.Domain()
	return timeTicks(t0, t1, count)
}

// TickFormat labels a tick by the coarsest calendar unit it is aligned to.
func (s TimeScale) TickFormat() func(time.Time) string {
	return timeTickLabel
}

// VIEWS_HEADROOM is how much room is left above the tallest point.
const VIEWS_HEADROOM = 1.1

// buildTimeScale spans the primary series, widened to cover the secondary series as well so every marker stays on
// the plot. An empty dataset yields a zero-width domain at the unix epoch.
func buildTimeScale(primary, secondary []models.Observation, xFn func(models.Observation) time.Time, plotWidth float64) TimeScale {
	var min, max time.Time
	seen := false
	for _, observations := range [][]models.Observation{primary, secondary} {
		for _, o := range observations {
			t := xFn(o)
			if !seen || t.Before(min) {
				min = t
			}
			if !seen || t.After(max) {
				max = t
			}
			seen = true
		}
	}
	if !seen {
		min = time.UnixMilli(0)
		max = min
	}
	return NewTimeScale(min, max, 0, plotWidth)
}

// buildValueScale runs from zero to the tallest point across both series plus headroom, niced and inverted so that
// larger values sit higher on the plot.
func buildValueScale(dataset *models.Dataset, plotHeight float64) LinearScale {
	upper := 0.0
	for _, s := range dataset.Series() {
		if max, ok := s.MaxViews(); ok {
			upper = math.Max(upper, max*VIEWS_HEADROOM)
		}
	}
	return NewLinearScale(0, upper, plotHeight, 0).Nice(DEFAULT_TICK_COUNT)
}
