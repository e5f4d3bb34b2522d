// Package snapshot rasterises the line chart to png for places that can't embed svg.
package snapshot

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"linechart/chart"
	"linechart/models"
)

var ErrNotEnoughData = errors.New("not enough data for a png snapshot")

// PNG renders the same domains, ticks and colours as the svg chart. The rasteriser can't draw a zero width range so
// a degenerate dataset is refused with ErrNotEnoughData.
func PNG(w io.Writer, lc *chart.LineChart) error {
	x0, x1 := lc.XScale().Domain()
	y0, y1 := lc.YScale().Domain()
	if !x1.After(x0) || !(y1 > y0) {
		return ErrNotEnoughData
	}

	opts := lc.Options()
	timeLabel := lc.XScale().TickFormat()
	valueLabel := lc.YScale().TickFormat(chart.DEFAULT_TICK_COUNT)

	var xTicks []gochart.Tick
	for _, t := range lc.XScale().Ticks(chart.DEFAULT_TICK_COUNT) {
		xTicks = append(xTicks, gochart.Tick{Value: gochart.TimeToFloat64(t), Label: timeLabel(t)})
	}
	var yTicks []gochart.Tick
	var gridLines []gochart.GridLine
	for _, v := range lc.YScale().Ticks(chart.DEFAULT_TICK_COUNT) {
		yTicks = append(yTicks, gochart.Tick{Value: v, Label: valueLabel(v)})
		gridLines = append(gridLines, gochart.GridLine{Value: v})
	}

	var series []gochart.Series
	for _, s := range lc.Dataset().Series() {
		if s == nil || s.Len() == 0 {
			continue
		}
		series = append(series, timeSeries(s))
	}

	graph := gochart.Chart{
		Width:  int(opts.Width),
		Height: int(opts.Height),
		Background: gochart.Style{
			Padding: gochart.Box{
				Top:    int(opts.Margin.Top),
				Right:  int(opts.Margin.Right),
				Bottom: int(opts.Margin.Bottom),
				Left:   int(opts.Margin.Left),
			},
		},
		XAxis: gochart.XAxis{
			Range: &gochart.ContinuousRange{Min: gochart.TimeToFloat64(x0), Max: gochart.TimeToFloat64(x1)},
			Ticks: xTicks,
		},
		YAxis: gochart.YAxis{
			Range:     &gochart.ContinuousRange{Min: y0, Max: y1},
			Ticks:     yTicks,
			GridLines: gridLines,
			GridMajorStyle: gochart.Style{
				StrokeColor:     colour(chart.GRID_COLOUR),
				StrokeWidth:     1,
				StrokeDashArray: []float64{3},
			},
		},
		Series: series,
	}
	graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}

	if err := graph.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}

func timeSeries(s *models.Series) gochart.TimeSeries {
	xs := make([]time.Time, s.Len())
	ys := make([]float64, s.Len())
	for i, o := range s.Observations() {
		xs[i] = o.Time()
		ys[i] = o.Views()
	}
	c := colour(s.Colour())
	return gochart.TimeSeries{
		Name: s.Description(),
		Style: gochart.Style{
			StrokeColor: c,
			StrokeWidth: chart.LINE_WIDTH,
			DotColor:    c,
			DotWidth:    chart.DOT_RADIUS,
		},
		XValues: xs,
		YValues: ys,
	}
}

func colour(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
