// Package http serves read-only queries over a frozen registry. The
// registry is immutable, so handlers share it without locking.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hepkit/decfile/pkg/decay"
	"github.com/hepkit/decfile/pkg/registry"
)

// Server exposes the query surface of one parsed decay file.
type Server struct {
	reg     *registry.Registry
	logger  *slog.Logger
	metrics *metrics
}

type metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)
	return &metrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "decfile_http_requests_total",
			Help: "HTTP requests served, by route and status code.",
		}, []string{"route", "code"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "decfile_http_request_duration_seconds",
			Help:    "HTTP request latency, by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// NewHandler creates the HTTP handler for a frozen registry. Metrics are
// registered on promReg; pass prometheus.NewRegistry() for an isolated set.
func NewHandler(reg *registry.Registry, logger *slog.Logger, promReg *prometheus.Registry) http.Handler {
	s := &Server{
		reg:     reg,
		logger:  logger,
		metrics: newMetrics(promReg),
	}

	r := chi.NewRouter()
	r.Get("/particles", s.instrument("particles", s.listParticles))
	r.Get("/particles/{name}", s.instrument("particle", s.getBlock))
	r.Get("/particles/{name}/chain", s.instrument("chain", s.getChain))
	r.Get("/particles/{name}/final-states", s.instrument("final-states", s.getFinalStates))
	r.Get("/findings", s.instrument("findings", s.getFindings))
	r.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	return r
}

// instrument wraps a handler with the request counter and latency histogram.
func (s *Server) instrument(route string, h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		timer := prometheus.NewTimer(s.metrics.duration.WithLabelValues(route))
		defer timer.ObserveDuration()
		sw := &statusWriter{ResponseWriter: w, code: http.StatusOK}
		h(sw, r)
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(sw.code)).Inc()
	}
}

type statusWriter struct {
	http.ResponseWriter
	code int
}

func (w *statusWriter) WriteHeader(code int) {
	w.code = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) listParticles(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{
		"particles": s.reg.Particles(),
		"decays":    s.reg.NumDecays(),
	})
}

func (s *Server) getBlock(w http.ResponseWriter, r *http.Request) {
	name, ok := particleName(w, r)
	if !ok {
		return
	}
	block, found := s.reg.Block(name)
	if !found {
		http.Error(w, "unknown particle: "+name, http.StatusNotFound)
		return
	}
	s.writeJSON(w, block)
}

func (s *Server) getChain(w http.ResponseWriter, r *http.Request) {
	name, ok := particleName(w, r)
	if !ok {
		return
	}
	opts, err := chainOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	node, err := s.reg.ResolveChain(name, opts...)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	s.writeJSON(w, node)
}

func (s *Server) getFinalStates(w http.ResponseWriter, r *http.Request) {
	name, ok := particleName(w, r)
	if !ok {
		return
	}
	opts, err := chainOptions(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	seq, err := s.reg.FinalStates(name, opts...)
	if err != nil {
		s.writeQueryError(w, err)
		return
	}
	var states []decay.FinalState
	for fs, err := range seq {
		if err != nil {
			s.writeQueryError(w, err)
			return
		}
		states = append(states, fs)
	}
	s.writeJSON(w, map[string]any{"particle": name, "final_states": states})
}

func (s *Server) getFindings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]any{"findings": s.reg.Findings()})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

func (s *Server) writeQueryError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, decay.ErrDecayNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, decay.ErrDepthExceeded):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// particleName extracts and unescapes the {name} route parameter. Particle
// names carry URL-hostile characters (J/psi, D*+), so clients percent-encode
// them.
func particleName(w http.ResponseWriter, r *http.Request) (string, bool) {
	raw := chi.URLParam(r, "name")
	name, err := url.PathUnescape(raw)
	if err != nil {
		http.Error(w, "invalid particle name", http.StatusBadRequest)
		return "", false
	}
	return name, true
}

func chainOptions(r *http.Request) ([]registry.ChainOption, error) {
	var opts []registry.ChainOption
	if d := r.URL.Query().Get("depth"); d != "" {
		n, err := strconv.Atoi(d)
		if err != nil || n < 1 {
			return nil, errors.New("depth must be a positive integer")
		}
		opts = append(opts, registry.MaxDepth(n))
	}
	if stops, ok := r.URL.Query()["stop"]; ok {
		opts = append(opts, registry.StopAt(stops...))
	}
	return opts, nil
}
