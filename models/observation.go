package models

import "time"

// Observation is a single time-stamped views count. It is immutable once created.
type Observation struct {
	time  time.Time
	views float64
}

func NewObservation(t time.Time, views float64) Observation {
	return Observation{
		t,
		views,
	}
}

func (o Observation) Time() time.Time {
	return o.time
}

func (o Observation) Views() float64 {
	return o.views
}
