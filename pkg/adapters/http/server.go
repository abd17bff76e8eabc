package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/espalier/pkg/domain"
	"github.com/aretw0/espalier/pkg/observability"
)

// Analyzer defines the read-only analysis surface the HTTP adapter exposes.
type Analyzer interface {
	Nodes() []*domain.StateNode
	Edges() ([]domain.Edge, error)
	Adjacency() (domain.AdjacencyMap, error)
	Paths() (domain.PathMap, error)
	Mermaid() (string, error)
}

// Server exposes the analysis operations as a JSON API.
type Server struct {
	chart   Analyzer
	metrics *observability.Metrics
}

// NewHandler creates the HTTP handler for a chart, with Prometheus
// metrics on /metrics and permissive CORS for visualization frontends.
func NewHandler(chart Analyzer) http.Handler {
	registry := prometheus.NewRegistry()
	server := &Server{
		chart:   chart,
		metrics: observability.NewMetrics(registry),
	}

	r := chi.NewRouter()
	r.Get("/nodes", server.handleNodes)
	r.Get("/edges", server.handleEdges)
	r.Get("/adjacency", server.handleAdjacency)
	r.Get("/paths", server.handlePaths)
	r.Get("/graph.mmd", server.handleMermaid)
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleNodes(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, "nodes", func() (any, error) {
		return s.chart.Nodes(), nil
	})
}

func (s *Server) handleEdges(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, "edges", func() (any, error) {
		return s.chart.Edges()
	})
}

func (s *Server) handleAdjacency(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, "adjacency", func() (any, error) {
		return s.chart.Adjacency()
	})
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, "paths", func() (any, error) {
		return s.chart.Paths()
	})
}

func (s *Server) handleMermaid(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	output, err := s.chart.Mermaid()
	if err != nil {
		s.metrics.Observe("mermaid", "error", time.Since(start))
		http.Error(w, fmt.Sprintf("graph generation failed: %v", err), http.StatusUnprocessableEntity)
		slog.Error("Mermaid generation failed", "error", err)
		return
	}
	s.metrics.Observe("mermaid", "ok", time.Since(start))
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(output))
}

// respondJSON runs one analysis operation, records metrics, and writes the
// result. Resolution and structural defects map to 422: the request was
// fine, the machine definition is not.
func (s *Server) respondJSON(w http.ResponseWriter, operation string, fn func() (any, error)) {
	start := time.Now()
	result, err := fn()
	if err != nil {
		s.metrics.Observe(operation, "error", time.Since(start))
		http.Error(w, fmt.Sprintf("analysis failed: %v", err), http.StatusUnprocessableEntity)
		slog.Error("Analysis failed", "operation", operation, "error", err)
		return
	}
	s.metrics.Observe(operation, "ok", time.Since(start))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("Response encoding failed", "operation", operation, "error", err)
	}
}
