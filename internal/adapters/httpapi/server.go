package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"romannumeral/go-backend/internal/platform/ratelimiter"
	"romannumeral/go-backend/pkg/models"
)

const DefaultAddr = "127.0.0.1:8080"

// Options configures the HTTP server. Zero values fall back to defaults.
type Options struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
	AllowedOrigins    []string
	Limiter           *ratelimiter.MapLimiter
	Metrics           MetricsSink
	Logger            *slog.Logger
}

// MetricsSink is the subset of platform/metrics the server needs.
type MetricsSink interface {
	RecordRateLimited()
}

// Route mounts a handler on an exact path.
type Route struct {
	Path    string
	Handler http.Handler
}

type Server struct {
	httpServer *http.Server
	logger     *slog.Logger
	opts       Options
	origins    map[string]struct{}
	now        func() time.Time
}

func NewServer(opts Options, routes ...Route) *Server {
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}
	if opts.ReadHeaderTimeout == 0 {
		opts.ReadHeaderTimeout = 5 * time.Second
	}
	if opts.ShutdownTimeout == 0 {
		opts.ShutdownTimeout = 5 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	s := &Server{
		logger:  opts.Logger,
		opts:    opts,
		origins: make(map[string]struct{}, len(opts.AllowedOrigins)),
		now:     time.Now,
	}
	for _, origin := range opts.AllowedOrigins {
		s.origins[origin] = struct{}{}
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealth)
	for _, route := range routes {
		mux.Handle(route.Path, route.Handler)
	}
	mux.HandleFunc("/", s.handleNotFound)

	s.httpServer = &http.Server{
		Addr:              opts.Addr,
		Handler:           s.wrap(mux),
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		ReadTimeout:       opts.ReadTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		ErrorLog:          slog.NewLogLogger(opts.Logger.Handler(), slog.LevelError),
	}
	return s
}

// Handler returns the fully wrapped handler; used by tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return nil
	default:
	}

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an already bound listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "component", "httpapi", "addr", ln.Addr().String())
		err := s.httpServer.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
			return
		}
		errCh <- err
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return err
		}
		s.logger.Info("http server stopped", "component", "httpapi")
		return <-errCh
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.writeError(w, r, http.StatusMethodNotAllowed, "method "+r.Method+" is not allowed")
		return
	}
	writeJSON(w, http.StatusOK, models.HealthStatus{Status: "ok"})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.writeError(w, r, http.StatusNotFound, "no handler for "+r.URL.Path)
}

// writeError answers with an unclassified ErrorDetails (errorCode 0).
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, models.NewErrorDetails(s.now(), 0, message, models.RequestDetails(r.URL.Path)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
