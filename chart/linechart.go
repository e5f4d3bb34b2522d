// Package chart draws the sessions/events line chart as a retained scene of svg nodes.
package chart

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"linechart/models"
)

const (
	WIDTH  = 800
	HEIGHT = 430
)

const DEFAULT_DATE_LAYOUT = "Jan 2, 2006"

var ErrNoMarker = errors.New("no marker")

type Margin struct {
	Top, Right, Bottom, Left float64
}

var DefaultMargin = Margin{Top: 20, Right: 20, Bottom: 20, Left: 40}

// Props is the chart's input.
type Props struct {
	Data *models.Dataset
	// PositionX and PositionY shift the tooltip relative to the canvas.
	PositionX float64
	PositionY float64
	// XFn picks the timestamp of an observation, defaults to Observation.Time.
	XFn func(models.Observation) time.Time
	// YDomain overrides the computed value domain when set.
	YDomain *[2]float64
}

// Options are presentation settings that don't change with the data.
type Options struct {
	Width      float64
	Height     float64
	Margin     Margin
	DateLayout string
	Binder     MarkerBinder
}

func DefaultOptions() Options {
	return Options{
		Width:      WIDTH,
		Height:     HEIGHT,
		Margin:     DefaultMargin,
		DateLayout: DEFAULT_DATE_LAYOUT,
	}
}

// LineChart is the container: it owns the scales and scene built from the current props. It is not safe for
// concurrent use.
type LineChart struct {
	props Props
	opts  Options

	plotWidth  float64
	plotHeight float64

	xScale TimeScale
	yScale LinearScale

	markers     map[string][]Marker
	axisLayer   *Group
	seriesLayer *Group
}

func New(props Props, opts Options) *LineChart {
	if opts.DateLayout == "" {
		opts.DateLayout = DEFAULT_DATE_LAYOUT
	}
	c := &LineChart{opts: opts}
	c.plotWidth = opts.Width - (opts.Margin.Left + opts.Margin.Right)
	c.plotHeight = opts.Height - (opts.Margin.Top + opts.Margin.Bottom)
	c.SetProps(props)
	return c
}

// SetProps replaces the props and rebuilds everything.
func (c *LineChart) SetProps(props Props) {
	if props.XFn == nil {
		props.XFn = models.Observation.Time
	}
	if props.Data == nil {
		props.Data = models.NewDataset(nil, nil)
	}
	c.props = props
	c.Rebuild()
}

// SetDataset rebuilds only when the dataset is a different one, and reports whether it did.
func (c *LineChart) SetDataset(dataset *models.Dataset) bool {
	if dataset == c.props.Data {
		return false
	}
	props := c.props
	props.Data = dataset
	c.SetProps(props)
	return true
}

// Rebuild recomputes the scales and every layer from the current props.
func (c *LineChart) Rebuild() {
	data := c.props.Data
	c.xScale = buildTimeScale(data.Sessions().Observations(), data.Events().Observations(), c.props.XFn, c.plotWidth)
	if c.props.YDomain != nil {
		c.yScale = NewLinearScale(c.props.YDomain[0], c.props.YDomain[1], c.plotHeight, 0)
	} else {
		c.yScale = buildValueScale(data, c.plotHeight)
	}

	c.axisLayer = axisLayer(c.xScale, c.yScale, c.plotWidth, c.plotHeight, c.opts.Margin)

	c.seriesLayer = &Group{
		Element:   Element{Class: "seriesLayer"},
		Transform: translate(c.opts.Margin.Left, c.opts.Margin.Top),
	}
	c.markers = make(map[string][]Marker)
	// Events last so they sit on top
	for _, s := range data.Series() {
		if s == nil {
			continue
		}
		markers := project(s, c.xScale, c.yScale, c.props.XFn)
		c.markers[s.Key()] = markers
		c.seriesLayer.Add(line(s, markers), dots(s, markers, c.opts.Binder))
	}
}

func (c *LineChart) Dataset() *models.Dataset {
	return c.props.Data
}

func (c *LineChart) XScale() TimeScale {
	return c.xScale
}

func (c *LineChart) YScale() LinearScale {
	return c.yScale
}

func (c *LineChart) PlotWidth() float64 {
	return c.plotWidth
}

func (c *LineChart) PlotHeight() float64 {
	return c.plotHeight
}

func (c *LineChart) Options() Options {
	return c.opts
}

func (c *LineChart) Markers(seriesKey string) []Marker {
	return c.markers[seriesKey]
}

// XSlide is the negated x position of the first events observation, 0 without events.
func (c *LineChart) XSlide() float64 {
	first, ok := c.props.Data.Events().At(0)
	if !ok {
		return 0
	}
	return -c.xScale.Scale(c.props.XFn(first))
}

// Hover reports the marker at index of the series to the reporter, positioned next to the marker in canvas space.
func (c *LineChart) Hover(reporter HoverReporter, seriesKey string, index int) error {
	markers, ok := c.markers[seriesKey]
	if !ok || index < 0 || index >= len(markers) {
		return fmt.Errorf("%w %s[%d]", ErrNoMarker, seriesKey, index)
	}
	m := markers[index]
	reporter.Enter(Hover{
		X:     c.opts.Margin.Left + m.X + TOOLTIP_OFFSET_X + c.props.PositionX,
		Y:     c.opts.Margin.Top + m.Y + TOOLTIP_OFFSET_Y + c.props.PositionY,
		Views: FormatViews(m.Observation.Views()),
		Date:  c.FormatDate(c.props.XFn(m.Observation)),
	})
	return nil
}

func (c *LineChart) Leave(reporter HoverReporter) {
	reporter.Leave()
}

// FormatViews groups thousands and drops trailing zeros, 1234.50 becomes "1,234.5".
func FormatViews(views float64) string {
	return humanize.Commaf(views)
}

// FormatDate formats in UTC so every viewer sees the same label.
func (c *LineChart) FormatDate(t time.Time) string {
	return t.UTC().Format(c.opts.DateLayout)
}

// Scene assembles the complete svg with the tooltip drawn for state.
func (c *LineChart) Scene(state State) *Document {
	doc := &Document{
		Element: Element{Class: "linechart"},
		Width:   c.opts.Width,
		Height:  c.opts.Height,
	}
	doc.Add(
		c.axisLayer,
		c.seriesLayer,
		&ForeignObject{
			Element: Element{Class: "tooltipLayer", Style: "pointer-events:none;overflow:visible"},
			Width:   c.opts.Width,
			Height:  c.opts.Height,
			HTML:    tooltipHTML(state),
		},
	)
	return doc
}

func (c *LineChart) WriteSVG(w io.Writer, state State) error {
	_, err := c.Scene(state).WriteTo(w)
	return err
}
