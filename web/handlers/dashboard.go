package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"strings"
	"sync"

	ds "github.com/starfederation/datastar-go/datastar"

	"linechart/chart"
	"linechart/events"
	"linechart/snapshot"
	"linechart/store"
	"linechart/web"
)

const TITLE = "Views"

// MAX_TOOLTIPS bounds how many clients can hold a visible tooltip at once.
const MAX_TOOLTIPS = 1024

type Dashboard struct {
	templates *template.Template
	current   *store.Current

	mu       sync.Mutex
	chart    *chart.LineChart
	version  int
	tooltips map[string]*chart.Tooltip // clientID -> tooltip, only while visible
}

type hoverSig struct {
	Hover struct {
		Series string `json:"series"`
		Index  int    `json:"index"`
	} `json:"hover"`
}

type chartData struct {
	Version int
	SVG     template.HTML
}

func NewDashboard(current *store.Current, opts chart.Options) (dashboard *Dashboard, err error) {
	opts.Binder = hoverBinding
	dashboard = &Dashboard{
		current:  current,
		chart:    chart.New(chart.Props{Data: current.Get()}, opts),
		version:  current.Version(),
		tooltips: make(map[string]*chart.Tooltip),
	}
	dashboard.templates, err = template.New("").ParseFS(web.Templates, "templates/linechart/*.gohtml")
	return dashboard, err
}

// hoverBinding makes each dot report itself to the server on hover.
func hoverBinding(m chart.Marker) []chart.Attr {
	return []chart.Attr{
		{Name: "data-on:mouseenter", Value: fmt.Sprintf("$hover.series = '%s'; $hover.index = %d; @post('/hover')", m.Series, m.Index)},
		{Name: "data-on:mouseleave", Value: "@post('/leave')"},
	}
}

func (d *Dashboard) Templates() *template.Template {
	return d.templates
}

func (d *Dashboard) Handlers() map[string]func(w http.ResponseWriter, r *http.Request) {
	return map[string]func(w http.ResponseWriter, r *http.Request){
		"/hover": d.HoverHandler,
		"/leave": d.LeaveHandler,
	}
}

func (d *Dashboard) Data(clientID string) map[string]interface{} {
	data, err := d.chartData(clientID)
	if err != nil {
		log.Printf("couldn't render chart: %s", err)
	}
	return map[string]interface{}{
		"title": TITLE,
		"chart": data,
	}
}

func (d *Dashboard) WriteSVG(w io.Writer, clientID string) error {
	state := d.stateFor(clientID)
	var err error
	d.withChart(func(c *chart.LineChart) {
		err = c.WriteSVG(w, state)
	})
	return err
}

func (d *Dashboard) WritePNG(w io.Writer) error {
	var err error
	d.withChart(func(c *chart.LineChart) {
		err = snapshot.PNG(w, c)
	})
	return err
}

// GeneratePatchOnEvent re-renders the whole chart for a new dataset and returns a closure that patches the client.
func (d *Dashboard) GeneratePatchOnEvent(event *events.Event, clientID string) func(*ds.ServerSentEventGenerator) error {
	data, err := d.chartData(clientID)
	if err != nil {
		log.Printf("couldn't render chart for dataset version %d: %s", event.Version, err)
		return nil
	}

	var writer strings.Builder
	if err := d.templates.ExecuteTemplate(&writer, "linechart", data); err != nil {
		log.Printf("error executing linechart template: %s", err)
		return nil
	}

	return func(sse *ds.ServerSentEventGenerator) error {
		return sse.PatchElements(writer.String())
	}
}

// HoverHandler is called when the pointer enters a dot.
func (d *Dashboard) HoverHandler(w http.ResponseWriter, r *http.Request) {
	var sig hoverSig
	if err := ds.ReadSignals(r, &sig); err != nil {
		log.Printf("error reading signals: %s", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	clientID := getClientID(w, r)

	// Enter overwrites the whole state, so a fresh tooltip replaces the client's old one
	tooltip := chart.NewTooltip()
	var err error
	d.withChart(func(c *chart.LineChart) {
		err = c.Hover(tooltip, sig.Hover.Series, sig.Hover.Index)
	})
	if errors.Is(err, chart.ErrNoMarker) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	d.storeTooltip(clientID, tooltip)

	d.patchTooltip(w, r, tooltip.State())
}

// LeaveHandler is called when the pointer leaves a dot. A hidden tooltip is the same as none so the client's entry
// is dropped.
func (d *Dashboard) LeaveHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)

	d.mu.Lock()
	tooltip, ok := d.tooltips[clientID]
	delete(d.tooltips, clientID)
	d.mu.Unlock()

	if ok {
		d.withChart(func(c *chart.LineChart) {
			c.Leave(tooltip)
		})
	}
	d.patchTooltip(w, r, chart.State{})
}

func (d *Dashboard) patchTooltip(w http.ResponseWriter, r *http.Request, state chart.State) {
	var buf bytes.Buffer
	if err := chart.RenderTooltip(&buf, state); err != nil {
		log.Printf("couldn't render tooltip: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	sse := ds.NewSSE(w, r)
	if err := sse.PatchElements(buf.String()); err != nil { // morphs the target element by ID
		log.Printf("couldn't patch tooltip: %s", err)
	}
}

func (d *Dashboard) chartData(clientID string) (chartData, error) {
	var svg strings.Builder
	if err := d.WriteSVG(&svg, clientID); err != nil {
		return chartData{}, err
	}
	d.mu.Lock()
	version := d.version
	d.mu.Unlock()
	return chartData{version, template.HTML(svg.String())}, nil
}

// withChart runs f with the chart rebuilt for the current dataset. The chart isn't safe for concurrent use so f runs
// under the dashboard lock.
func (d *Dashboard) withChart(f func(c *chart.LineChart)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if version := d.current.Version(); version != d.version {
		d.chart.SetDataset(d.current.Get())
		d.version = version
	}
	f(d.chart)
}

// stateFor is what clientID's tooltip shows, hidden for clients that never hovered.
func (d *Dashboard) stateFor(clientID string) chart.State {
	d.mu.Lock()
	tooltip, ok := d.tooltips[clientID]
	d.mu.Unlock()
	if !ok {
		return chart.State{}
	}
	return tooltip.State()
}

// storeTooltip sets clientID's tooltip. When full, an arbitrary other client loses theirs.
func (d *Dashboard) storeTooltip(clientID string, tooltip *chart.Tooltip) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.tooltips[clientID]; !ok && len(d.tooltips) >= MAX_TOOLTIPS {
		for evicted := range d.tooltips {
			delete(d.tooltips, evicted)
			break
		}
	}
	d.tooltips[clientID] = tooltip
}

// Tooltips is how many clients currently hold a tooltip.
func (d *Dashboard) Tooltips() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.tooltips)
}
