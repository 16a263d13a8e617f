// Package http exposes a read-only introspection surface over the
// command registry: the command catalog as JSON and the prometheus
// metrics of the session.
package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/gsh/pkg/registry"
)

// CommandInfo is the JSON shape of one catalog entry.
type CommandInfo struct {
	Name       string `json:"name"`
	Synopsis   string `json:"synopsis"`
	Help       string `json:"help"`
	ReturnType string `json:"returnType"`
}

// Server serves the catalog of a registry.
type Server struct {
	Registry *registry.Registry
}

// NewHandler creates the HTTP handler. gatherer may be nil to skip the
// /metrics endpoint.
func NewHandler(reg *registry.Registry, gatherer prometheus.Gatherer) http.Handler {
	s := &Server{Registry: reg}
	r := chi.NewRouter()

	r.Get("/healthz", s.getHealth)
	r.Get("/commands", s.listCommands)
	r.Get("/commands/{name}", s.getCommand)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) listCommands(w http.ResponseWriter, r *http.Request) {
	commands := s.Registry.Commands()
	infos := make([]CommandInfo, 0, len(commands))
	for _, c := range commands {
		infos = append(infos, CommandInfo{
			Name:       c.Name(),
			Synopsis:   c.Synopsis(),
			Help:       c.Help(),
			ReturnType: c.ReturnType().String(),
		})
	}
	writeJSON(w, http.StatusOK, infos)
}

func (s *Server) getCommand(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	c, found := s.Registry.Find(name)
	if !found {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "command not found"})
		return
	}
	writeJSON(w, http.StatusOK, CommandInfo{
		Name:       c.Name(),
		Synopsis:   c.Synopsis(),
		Help:       c.Help(),
		ReturnType: c.ReturnType().String(),
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
