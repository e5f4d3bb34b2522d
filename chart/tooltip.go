package chart

import (
	"html/template"
	"io"
	"strings"
	"sync"
)

const (
	TOOLTIP_ID     = "tooltip"
	TOOLTIP_WIDTH  = 200
	TOOLTIP_HEIGHT = 300
)

// Offset from the hovered marker so the tooltip isn't drawn under the pointer.
const (
	TOOLTIP_OFFSET_X = 10
	TOOLTIP_OFFSET_Y = -40
)

// State is what the tooltip shows. X and Y are canvas coordinates.
type State struct {
	Visible bool
	X       float64
	Y       float64
	Views   string
	Date    string
}

// Hover is reported by a marker when the pointer enters it.
type Hover struct {
	X     float64
	Y     float64
	Views string
	Date  string
}

// HoverReporter receives hover changes from markers.
type HoverReporter interface {
	Enter(h Hover)
	Leave()
}

// Tooltip holds the interaction state for one viewer. Markers write to it through HoverReporter, the tooltip
// overlay reads it through State.
type Tooltip struct {
	mu    sync.Mutex
	state State
}

func NewTooltip() *Tooltip {
	return &Tooltip{}
}

// Enter overwrites whatever was shown before.
func (t *Tooltip) Enter(h Hover) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = State{
		Visible: true,
		X:       h.X,
		Y:       h.Y,
		Views:   h.Views,
		Date:    h.Date,
	}
}

func (t *Tooltip) Leave() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.state = State{}
}

func (t *Tooltip) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

var tooltipTemplate = template.Must(template.New("tooltip").Funcs(template.FuncMap{
	"num": num,
}).Parse(
	`<div id="{{.ID}}" xmlns="http://www.w3.org/1999/xhtml" class="tooltip"` +
		`{{if .State.Visible}} style="position:absolute;left:{{num .State.X}}px;top:{{num .State.Y}}px;width:{{.Width}}px;max-height:{{.Height}}px;"` +
		`{{else}} style="display:none;"{{end}}>` +
		`{{if .State.Visible}}<div>Views: {{.State.Views}}</div><div>Date: {{.State.Date}}</div>{{end}}` +
		`</div>`,
))

// RenderTooltip writes the tooltip overlay for state. The element keeps the same id whether visible or not so it
// can be patched in place.
func RenderTooltip(w io.Writer, state State) error {
	return tooltipTemplate.Execute(w, struct {
		ID     string
		Width  int
		Height int
		State  State
	}{TOOLTIP_ID, TOOLTIP_WIDTH, TOOLTIP_HEIGHT, state})
}

func tooltipHTML(state State) string {
	var b strings.Builder
	// The template only fails on a broken writer, strings.Builder never is
	_ = RenderTooltip(&b, state)
	return b.String()
}
