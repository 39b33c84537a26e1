// Package server serves the ornament tree over HTTP.
//
// Routes:
//
//	GET /                      HTML page, ?selected=<id> opens the detail panel
//	GET /tree.{format}         svg, json, png or pdf, with ?selected=<id>
//	GET /api/layout            placement with diagnostics, ?count=<n> overrides the catalog size
//	GET /api/projects          catalog in paint order
//	GET /api/projects/{id}     one project and its ornament position
//	GET /healthz               liveness
//
// Selection lives in the query string, so the server holds no per-user state.
package server

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/ornatree/pkg/pipeline"
	"github.com/matzehuels/ornatree/pkg/project"
	"github.com/matzehuels/ornatree/pkg/render/palette"
)

// Options configures a Server. Zero durations fall back to the defaults.
type Options struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	Title           string
	Palette         palette.Palette
}

func (o *Options) setDefaults() {
	if o.Addr == "" {
		o.Addr = ":8080"
	}
	if o.ReadTimeout == 0 {
		o.ReadTimeout = 10 * time.Second
	}
	if o.WriteTimeout == 0 {
		o.WriteTimeout = 30 * time.Second
	}
	if o.ShutdownTimeout == 0 {
		o.ShutdownTimeout = 5 * time.Second
	}
	o.Palette = o.Palette.WithDefaults()
}

// Server renders one catalog on demand.
type Server struct {
	runner  *pipeline.Runner
	catalog *project.Catalog
	logger  *log.Logger
	opts    Options
	router  chi.Router
}

// New builds the router. The runner's cache and generator are shared by all
// requests.
func New(runner *pipeline.Runner, catalog *project.Catalog, logger *log.Logger, opts Options) *Server {
	opts.setDefaults()
	if logger == nil {
		logger = runner.Logger
	}
	s := &Server{
		runner:  runner,
		catalog: catalog,
		logger:  logger,
		opts:    opts,
		router:  chi.NewRouter(),
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.loggingMiddleware)

	r.Get("/", s.handlePage)
	r.Get("/tree.{format}", s.handleTree)
	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/layout", s.handleLayout)
		r.Get("/projects", s.handleProjects)
		r.Get("/projects/{id}", s.handleProject)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSONError(w, http.StatusNotFound, "NOT_FOUND", "no route for "+r.URL.Path)
	})
}

// Handler returns the root handler, for tests or embedding.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("serving ornament tree", "addr", ln.Addr().String(), "projects", s.catalog.Len())
		if err := srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	s.logger.Info("shutting down server")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
