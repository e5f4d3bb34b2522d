package models

type Series struct {
	// key is the identifier and doubles as the name used in hover signals.
	key string
	// description is just some more info about this series, shown in the legend of the png snapshot.
	description string
	// colour used for both the line and the dots, specified as 3 byte hex with the # prefix.
	colour string
	// observations in the order they should be joined by the line.
	observations []Observation
}

func NewSeries(
	key,
	description,
	colour string,
	observations []Observation,
) *Series {
	// Copy so callers can't mutate the series after the fact
	copied := make([]Observation, len(observations))
	copy(copied, observations)
	return &Series{
		key,
		description,
		colour,
		copied,
	}
}

func (s *Series) Key() string {
	return s.key
}

func (s *Series) Description() string {
	return s.description
}

func (s *Series) Colour() string {
	return s.colour
}

// Observations returns the underlying slice, it must not be modified.
func (s *Series) Observations() []Observation {
	if s == nil {
		return nil
	}
	return s.observations
}

func (s *Series) Len() int {
	if s == nil {
		return 0
	}
	return len(s.observations)
}

// At returns the observation at index i and whether it exists.
func (s *Series) At(i int) (Observation, bool) {
	if i < 0 || i >= s.Len() {
		return Observation{}, false
	}
	return s.observations[i], true
}

// MaxViews returns the largest views value, ok is false for an empty series.
func (s *Series) MaxViews() (max float64, ok bool) {
	for i, o := range s.Observations() {
		if i == 0 || o.views > max {
			max = o.views
		}
	}
	return max, s.Len() > 0
}
