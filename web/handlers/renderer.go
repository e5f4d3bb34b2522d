package handlers

import (
	"html/template"
	"io"
	"net/http"

	ds "github.com/starfederation/datastar-go/datastar"

	"linechart/events"
)

type Renderer interface {
	Templates() *template.Template
	// Handlers are datastar actions, they are routed for POST only.
	Handlers() map[string]func(w http.ResponseWriter, r *http.Request)
	Data(clientID string) map[string]interface{}
	WriteSVG(w io.Writer, clientID string) error
	WritePNG(w io.Writer) error
	GeneratePatchOnEvent(event *events.Event, clientID string) func(*ds.ServerSentEventGenerator) error
}
