// Package server serves address validation over HTTP.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/Amr-9/GrsValidator/internal/metrics"
	"github.com/Amr-9/GrsValidator/pkg/batch"
	"github.com/Amr-9/GrsValidator/pkg/chaincfg"
)

const (
	// MaxBodyBytes caps the size of a POST body.
	MaxBodyBytes = 1 << 20
	// MaxBatch caps the number of addresses in one POST.
	MaxBatch = 10000

	shutdownTimeout = 5 * time.Second
)

// Options configures a Server.
type Options struct {
	Listen  string
	Workers int
	// Network is applied when a request names none. Empty accepts all.
	Network chaincfg.Network
}

// Server is the HTTP validation service.
type Server struct {
	opt      Options
	router   chi.Router
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	log      *logrus.Entry
}

// ValidateRequest is the body of POST /v1/validate. Addresses may hold any
// JSON value; anything but a string is reported invalid.
type ValidateRequest struct {
	Addresses []any  `json:"addresses"`
	Network   string `json:"network"`
}

// ValidateResponse is the body returned by POST /v1/validate.
type ValidateResponse struct {
	Results []batch.Result `json:"results"`
	Stats   batch.Stats    `json:"stats"`
}

// NetworkInfo describes a network on GET /v1/networks.
type NetworkInfo struct {
	Name             chaincfg.Network `json:"name" yaml:"name"`
	PubKeyHashAddrID byte             `json:"p2pkh_version" yaml:"p2pkh_version"`
	ScriptHashAddrID byte             `json:"p2sh_version" yaml:"p2sh_version"`
	Bech32HRPSegwit  string           `json:"bech32_hrp" yaml:"bech32_hrp"`
}

// NetworkInfos describes every supported network.
func NetworkInfos() []NetworkInfo {
	var out []NetworkInfo
	for _, p := range chaincfg.Networks() {
		out = append(out, NetworkInfo{
			Name:             p.Name,
			PubKeyHashAddrID: p.PubKeyHashAddrID,
			ScriptHashAddrID: p.ScriptHashAddrID,
			Bech32HRPSegwit:  p.Bech32HRPSegwit,
		})
	}
	return out
}

type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// New creates a Server. m may be nil to disable metrics.
func New(opt Options, m *metrics.Metrics) *Server {
	s := &Server{
		opt:     opt,
		metrics: m,
		log:     logrus.WithField("component", "server"),
	}
	if m != nil {
		s.registry = m.NewRegistry()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	if s.registry != nil {
		r.Handle("/metrics", metrics.Handler(s.registry))
	}
	r.Route("/v1", func(r chi.Router) {
		r.Get("/networks", s.handleNetworks)
		r.Get("/validate/{address}", s.handleValidateOne)
		r.Post("/validate", s.handleValidateMany)
	})
	s.router = r
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe listens on the configured address and serves until ctx is
// done.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opt.Listen)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", s.opt.Listen, err)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is done, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(ln) }()
	s.log.WithField("addr", ln.Addr().String()).Info("serving")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Info("stopped")
	return nil
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.WithFields(logrus.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"status":   ww.Status(),
			"bytes":    ww.BytesWritten(),
			"duration": time.Since(start),
			"request":  middleware.GetReqID(r.Context()),
		}).Debug("request")
	})
}

// network resolves the network a request asks for, falling back to the
// server default.
func (s *Server) network(name string) (chaincfg.Network, error) {
	if name == "" {
		return s.opt.Network, nil
	}
	return chaincfg.ParseNetwork(name)
}

func (s *Server) checker(network chaincfg.Network) *batch.Checker {
	opts := []batch.Option{
		batch.WithWorkers(s.opt.Workers),
		batch.WithNetwork(network),
		batch.WithLogger(s.log),
	}
	if s.metrics != nil {
		opts = append(opts, batch.WithObserver(s.metrics.Observer(metrics.SourceHTTP)))
	}
	return batch.NewChecker(opts...)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleNetworks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, NetworkInfos())
}

func (s *Server) handleValidateOne(w http.ResponseWriter, r *http.Request) {
	network, err := s.network(r.URL.Query().Get("network"))
	if err != nil {
		s.writeError(w, err, http.StatusBadRequest)
		return
	}

	results, err := s.checker(network).CheckAll(r.Context(), []string{chi.URLParam(r, "address")})
	if err != nil {
		s.writeError(w, err, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, results[0])
}

func (s *Server) handleValidateMany(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.writeError(w, err, http.StatusRequestEntityTooLarge)
			return
		}
		s.writeError(w, fmt.Errorf("invalid request body: %w", err), http.StatusBadRequest)
		return
	}
	if len(req.Addresses) > MaxBatch {
		err := fmt.Errorf("%d addresses exceed the limit of %d", len(req.Addresses), MaxBatch)
		s.writeError(w, err, http.StatusRequestEntityTooLarge)
		return
	}

	network, err := s.network(req.Network)
	if err != nil {
		s.writeError(w, err, http.StatusBadRequest)
		return
	}

	c := s.checker(network)
	start := time.Now()
	results, err := c.CheckValues(r.Context(), req.Addresses)
	if err != nil {
		s.writeError(w, err, http.StatusServiceUnavailable)
		return
	}
	s.metrics.ObserveBatch(time.Since(start))

	writeJSON(w, http.StatusOK, ValidateResponse{Results: results, Stats: c.Stats()})
}

func (s *Server) writeError(w http.ResponseWriter, err error, status int) {
	s.log.WithError(err).WithField("status", status).Warn("request failed")
	writeJSON(w, status, errorResponse{Error: err.Error(), Status: status})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	if err := enc.Encode(v); err != nil {
		// can't return the error at this point
		logrus.WithError(err).Error("failed to write JSON response")
	}
}
