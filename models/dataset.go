package models

// Dataset holds the two series drawn by the line chart. It is replaced, never modified, so comparing pointers is
// enough to know whether the chart needs rebuilding.
type Dataset struct {
	sessions *Series
	events   *Series
}

func NewDataset(sessions, events *Series) *Dataset {
	return &Dataset{
		sessions,
		events,
	}
}

// Sessions is the primary series, it drives the time axis.
func (d *Dataset) Sessions() *Series {
	return d.sessions
}

func (d *Dataset) Events() *Series {
	return d.events
}

// Series returns both series in draw order.
func (d *Dataset) Series() []*Series {
	return []*Series{d.sessions, d.events}
}

// SeriesByKey finds a series by its key.
func (d *Dataset) SeriesByKey(key string) (*Series, bool) {
	for _, s := range d.Series() {
		if s != nil && s.Key() == key {
			return s, true
		}
	}
	return nil, false
}
