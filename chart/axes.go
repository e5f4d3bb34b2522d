package chart

const (
	GRID_COLOUR     = "#DCDCDC"
	GRID_DASH_ARRAY = "3"
	LABEL_COLOUR    = "currentColor"
	LABEL_FONT_SIZE = 10
	TICK_SIZE       = 6
	TICK_PADDING    = 3
)

// hidden keeps axis lines in the markup for layout but doesn't draw them.
const hidden = "display:none"

// yGrid draws a dashed line across the plot at every value tick.
func yGrid(y LinearScale, plotWidth float64) *Group {
	r0, r1 := y.Range()
	grid := &Group{Element: Element{Class: "yGrid"}}
	grid.Add(&Path{
		Element: Element{Class: "domain", Style: hidden},
		D:       "M0," + num(r0) + "V" + num(r1),
		Fill:    "none",
		Stroke:  LABEL_COLOUR,
	})
	for _, v := range y.Ticks(DEFAULT_TICK_COUNT) {
		grid.Add(&Group{
			Element:   Element{Class: "tick"},
			Transform: translate(0, y.Scale(v)),
			Children: []Node{
				&Line{
					X2:              plotWidth,
					Stroke:          GRID_COLOUR,
					StrokeDashArray: GRID_DASH_ARRAY,
				},
			},
		})
	}
	return grid
}

// xAxis labels the time ticks along the bottom of the plot.
func xAxis(x TimeScale, plotHeight float64) *Group {
	r0, r1 := x.Range()
	axis := &Group{
		Element:   Element{Class: "xAxis"},
		Transform: translate(0, plotHeight),
	}
	axis.Add(&Path{
		Element: Element{Class: "domain", Style: hidden},
		D:       "M" + num(r0) + ",0H" + num(r1),
		Fill:    "none",
		Stroke:  LABEL_COLOUR,
	})
	format := x.TickFormat()
	for _, t := range x.Ticks(DEFAULT_TICK_COUNT) {
		axis.Add(&Group{
			Element:   Element{Class: "tick"},
			Transform: translate(x.Scale(t), 0),
			Children: []Node{
				&Line{Element: Element{Style: hidden}, Y2: TICK_SIZE, Stroke: LABEL_COLOUR},
				&Text{
					Y:        TICK_SIZE + TICK_PADDING,
					Dy:       "0.71em",
					Anchor:   "middle",
					Fill:     LABEL_COLOUR,
					FontSize: LABEL_FONT_SIZE,
					Content:  format(t),
				},
			},
		})
	}
	return axis
}

// yAxis labels the value ticks along the left edge of the plot.
func yAxis(y LinearScale) *Group {
	r0, r1 := y.Range()
	axis := &Group{Element: Element{Class: "yAxis"}}
	axis.Add(&Path{
		Element: Element{Class: "domain", Style: hidden},
		D:       "M0," + num(r0) + "V" + num(r1),
		Fill:    "none",
		Stroke:  LABEL_COLOUR,
	})
	format := y.TickFormat(DEFAULT_TICK_COUNT)
	for _, v := range y.Ticks(DEFAULT_TICK_COUNT) {
		axis.Add(&Group{
			Element:   Element{Class: "tick"},
			Transform: translate(0, y.Scale(v)),
			Children: []Node{
				&Line{Element: Element{Style: hidden}, X2: -TICK_SIZE, Stroke: LABEL_COLOUR},
				&Text{
					X:        -(TICK_SIZE + TICK_PADDING),
					Dy:       "0.32em",
					Anchor:   "end",
					Fill:     LABEL_COLOUR,
					FontSize: LABEL_FONT_SIZE,
					Content:  format(v),
				},
			},
		})
	}
	return axis
}

// axisLayer stacks grid, x axis and y axis, in that order.
func axisLayer(x TimeScale, y LinearScale, plotWidth, plotHeight float64, margin Margin) *Group {
	layer := &Group{
		Element:   Element{Class: "axisLayer"},
		Transform: translate(margin.Left, margin.Top),
	}
	layer.Add(
		yGrid(y, plotWidth),
		xAxis(x, plotHeight),
		yAxis(y),
	)
	return layer
}
