// Package api exposes the FlowBoard HTTP surface.
//
// The API is deliberately small: board shape listing, the seed operation,
// and asynchronous clip jobs. Handlers translate HTTP to the pkg layer and
// back; all domain behavior lives in pkg/seed, pkg/boards, and pkg/jobs.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/flowboardhq/flowboard/pkg/boards"
	"github.com/flowboardhq/flowboard/pkg/jobs"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Server wires the HTTP router to the board and job stores.
type Server struct {
	boards     boards.Store
	jobs       *jobs.Service
	logger     *log.Logger
	corsOrigin string
	router     chi.Router
	httpServer *http.Server
}

// Config holds the server's listen address and CORS origin.
type Config struct {
	Addr       string
	CORSOrigin string
}

// NewServer builds a server around the given stores.
// If logger is nil, log.Default() is used.
func NewServer(cfg Config, store boards.Store, jobSvc *jobs.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		boards:     store,
		jobs:       jobSvc,
		logger:     logger,
		corsOrigin: cfg.CORSOrigin,
	}
	s.router = s.routes()
	s.httpServer = &http.Server{
		Addr:              cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return s
}

// Handler returns the configured router, mostly for tests.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.cors)
	r.Use(localPrincipal)

	r.Get("/health", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/boards", s.handleListBoards)
		r.Route("/boards/{boardID}", func(r chi.Router) {
			r.Get("/shapes", s.handleListShapes)
			r.Post("/seed", s.handleSeed)
		})
		r.Route("/jobs/clip", func(r chi.Router) {
			r.Post("/", s.handleSubmitClip)
			r.Get("/{jobID}", s.handleClipStatus)
		})
	})

	return r
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully and waits for in-flight clip jobs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	serveErr := make(chan error, 1)
	s.logger.Info("api listening", "addr", s.httpServer.Addr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		if s.jobs != nil {
			s.jobs.Wait()
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}
