package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linechart/store"
)

func TestNodeEncoding(t *testing.T) {
	g := &Group{Element: Element{Class: "a"}, Transform: translate(40, 20)}
	g.Add(
		&Circle{Element: Element{Attrs: []Attr{{"data-x", `"q"`}}}, CX: 1.005, CY: 2, R: 4, Fill: "#fff"},
		&Text{X: 1, Y: 2, Content: "a<b"},
	)
	var b strings.Builder
	g.writeSVG(&b)

	assert.Equal(t,
		`<g class="a" transform="translate(40,20)">`+
			`<circle data-x="&#34;q&#34;" cx="1" cy="2" r="4" fill="#fff"/>`+
			`<text x="1" y="2">a&lt;b</text>`+
			`</g>`,
		b.String())
}

func TestSceneLayers(t *testing.T) {
	c := New(Props{Data: store.SampleDataset()}, DefaultOptions())
	doc := c.Scene(State{})

	require.Len(t, doc.Children, 3)
	axes := doc.Children[0].(*Group)
	series := doc.Children[1].(*Group)
	assert.Equal(t, "axisLayer", axes.Class)
	assert.Equal(t, "translate(40,20)", axes.Transform)
	assert.Equal(t, "translate(40,20)", series.Transform)

	require.Len(t, axes.Children, 3)
	assert.Equal(t, "yGrid", axes.Children[0].(*Group).Class)
	assert.Equal(t, "xAxis", axes.Children[1].(*Group).Class)
	assert.Equal(t, "translate(0,390)", axes.Children[1].(*Group).Transform)
	assert.Equal(t, "yAxis", axes.Children[2].(*Group).Class)

	// sessions line, sessions dots, events line, events dots
	require.Len(t, series.Children, 4)
	assert.Equal(t, "line sessions", series.Children[0].(*Path).Class)
	assert.Equal(t, "dots sessions", series.Children[1].(*Group).Class)
	assert.Equal(t, "line events", series.Children[2].(*Path).Class)
	assert.Equal(t, "dots events", series.Children[3].(*Group).Class)
	assert.Equal(t, store.SESSIONS_COLOUR, series.Children[0].(*Path).Stroke)
	assert.Equal(t, store.EVENTS_COLOUR, series.Children[2].(*Path).Stroke)
}

func TestSVGMarkup(t *testing.T) {
	c := New(Props{Data: store.SampleDataset()}, DefaultOptions())
	svg := c.Scene(State{}).String()

	assert.True(t, strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg" class="linechart" width="800" height="430"`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))

	// Gridlines are dashed and light, axis lines are suppressed
	assert.Contains(t, svg, `stroke="#DCDCDC" stroke-dasharray="3"`)
	assert.Contains(t, svg, `class="domain" style="display:none"`)

	circles := strings.Count(svg, "<circle")
	assert.Equal(t, 28, circles)
	assert.Contains(t, svg, `id="tooltip"`)
}

func TestBinderAttrs(t *testing.T) {
	opts := DefaultOptions()
	opts.Binder = func(m Marker) []Attr {
		return []Attr{{Name: "data-series", Value: m.Series}}
	}
	c := New(Props{Data: exampleDataset()}, opts)
	svg := c.Scene(State{}).String()

	assert.Equal(t, 2, strings.Count(svg, `data-series="sessions"`))
	assert.Equal(t, 2, strings.Count(svg, `data-series="events"`))
}
