// Package server serves label sheets over HTTP.
//
// Routes:
//
//	GET  /healthz           build information
//	GET  /api/v1/layouts    geometry of every sheet layout
//	POST /api/v1/labels     render a sheet; ?layout=3x6&format=pdf
//
// The labels endpoint takes a JSON object of label fields. Company-block
// fields that are absent fall back to the configured footer; every other
// field is required. Layout and format are validated strictly. Errors are
// JSON objects {"code", "message"}.
//
// With cache_dir configured, rendered documents are kept for [DocumentTTL]
// and identical requests are answered from the cache. The X-Cache response
// header reports HIT or MISS.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/novaent/labelsheet/pkg/cache"
	"github.com/novaent/labelsheet/pkg/config"
	"github.com/novaent/labelsheet/pkg/pipeline"
)

const (
	// MaxBodyBytes caps the size of a label request body.
	MaxBodyBytes = 64 << 10

	// DocumentTTL is how long a cached document is served.
	DocumentTTL = 24 * time.Hour

	shutdownTimeout = 10 * time.Second
)

// Server renders label sheets for HTTP clients.
type Server struct {
	cfg    *config.Config
	runner *pipeline.Runner
	logger *log.Logger
	cache  cache.Cache
	router chi.Router
	now    func() time.Time
}

// New creates a server. A nil config means [config.Default]; a nil logger
// discards output.
func New(cfg *config.Config, logger *log.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	s := &Server{
		cfg:    cfg,
		runner: pipeline.NewRunner(logger),
		logger: logger,
		cache:  cache.NewNullCache(),
		now:    time.Now,
	}
	if cfg.CacheDir != "" {
		fc, err := cache.NewFileCache(cfg.CacheDir)
		if err != nil {
			logger.Warn("document cache disabled", "dir", cfg.CacheDir, "err", err)
		} else {
			s.cache = fc
		}
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.accessLog)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/layouts", s.handleLayouts)
		r.Post("/labels", s.handleLabels)
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Code: "NOT_FOUND", Message: "no route for " + r.URL.Path})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Code: "METHOD_NOT_ALLOWED", Message: r.Method + " not allowed"})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		defer s.cache.Close()
		return srv.Shutdown(shutdownCtx)
	}
}
