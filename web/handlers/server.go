package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	ds "github.com/starfederation/datastar-go/datastar"

	"linechart/events"
	"linechart/middlewares"
	"linechart/snapshot"
	"linechart/web"
)

type Server struct {
	renderer Renderer
	hub      *events.Hub
	handler  *mux.Router
}

func NewServer(renderer Renderer, hub *events.Hub, logger *log.Logger) *Server {
	s := &Server{
		renderer: renderer,
		hub:      hub,
	}

	r := mux.NewRouter()
	r.Use(middlewares.Logging(logger))
	r.HandleFunc("/", s.IndexHandler).Methods(http.MethodGet)
	r.HandleFunc("/chart.svg", s.SVGHandler).Methods(http.MethodGet)
	r.HandleFunc("/chart.png", s.PNGHandler).Methods(http.MethodGet)
	r.HandleFunc("/updates", s.UpdatesHandler).Methods(http.MethodGet)
	r.HandleFunc("/health", s.HealthHandler).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(http.FileServer(http.FS(web.Static)))

	for path, uiHandler := range renderer.Handlers() {
		r.HandleFunc(path, uiHandler).Methods(http.MethodPost)
	}

	s.handler = r

	return s
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start(addr string) error {
	log.Printf("listening on %s …", addr)
	return http.ListenAndServe(addr, s.handler)
}

// IndexHandler is the main entrypoint for the UI
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)
	err := s.renderer.Templates().ExecuteTemplate(w, "index", s.renderer.Data(clientID))
	if err != nil {
		log.Printf("couldn't execute template for index %s", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// SVGHandler serves the chart as a standalone svg, drawn with this client's tooltip.
func (s *Server) SVGHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)
	var buf bytes.Buffer
	if err := s.renderer.WriteSVG(&buf, clientID); err != nil {
		log.Printf("couldn't render svg: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) PNGHandler(w http.ResponseWriter, _ *http.Request) {
	var buf bytes.Buffer
	err := s.renderer.WritePNG(&buf)
	if errors.Is(err, snapshot.ErrNotEnoughData) {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		log.Printf("couldn't render png: %s", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(buf.Bytes())
}

// UpdatesHandler streams a fresh chart to the client every time a new dataset is published.
func (s *Server) UpdatesHandler(w http.ResponseWriter, r *http.Request) {
	clientID := getClientID(w, r)
	_, updates, cancel := s.hub.Subscribe()
	defer cancel()

	sse := ds.NewSSE(w, r)

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-updates:
			if !ok {
				return
			}
			patch := s.renderer.GeneratePatchOnEvent(event, clientID)
			if patch == nil {
				continue
			}
			if err := patch(sse); err != nil {
				log.Printf("error patching chart for dataset version %d: %s", event.Version, err)
				return
			}
		}
	}
}

func (s *Server) HealthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"status":      "healthy",
		"subscribers": s.hub.Subscribers(),
	})
}
