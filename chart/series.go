package chart

import (
	"strings"
	"time"

	"linechart/models"
)

const (
	LINE_WIDTH = 1.5
	DOT_RADIUS = 4
)

// Marker is a drawn point, X and Y are plot coordinates (margins not applied).
type Marker struct {
	Series      string
	Index       int
	X           float64
	Y           float64
	Observation models.Observation
}

// MarkerBinder returns extra attributes for a marker's circle, typically the hover event bindings of whatever
// front end the scene is served to.
type MarkerBinder func(m Marker) []Attr

// project maps every observation of a series through the scales in order.
func project(series *models.Series, x TimeScale, y LinearScale, xFn func(models.Observation) time.Time) []Marker {
	markers := make([]Marker, series.Len())
	for i, o := range series.Observations() {
		markers[i] = Marker{
			Series:      series.Key(),
			Index:       i,
			X:           x.Scale(xFn(o)),
			Y:           y.Scale(o.Views()),
			Observation: o,
		}
	}
	return markers
}

// line joins the markers in order.
func line(series *models.Series, markers []Marker) *Path {
	var d strings.Builder
	for i, m := range markers {
		if i == 0 {
			d.WriteString("M")
		} else {
			d.WriteString("L")
		}
		d.WriteString(num(m.X))
		d.WriteString(",")
		d.WriteString(num(m.Y))
	}
	return &Path{
		Element:     Element{Class: "line " + series.Key()},
		D:           d.String(),
		Fill:        "none",
		Stroke:      series.Colour(),
		StrokeWidth: LINE_WIDTH,
	}
}

// dots draws a circle per marker.
func dots(series *models.Series, markers []Marker, binder MarkerBinder) *Group {
	group := &Group{Element: Element{Class: "dots " + series.Key()}}
	for _, m := range markers {
		circle := &Circle{
			Element: Element{Class: "dot"},
			CX:      m.X,
			CY:      m.Y,
			R:       DOT_RADIUS,
			Fill:    series.Colour(),
		}
		if binder != nil {
			circle.Attrs = binder(m)
		}
		group.Add(circle)
	}
	return group
}
