package daemonserver

import (
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"romannumeral/go-backend/internal/adapters/httpapi"
	"romannumeral/go-backend/internal/composition/daemonconfig"
	"romannumeral/go-backend/internal/domains/romannumeral"
	romanrest "romannumeral/go-backend/internal/domains/romannumeral/adapters/rest"
	"romannumeral/go-backend/internal/platform/metrics"
	"romannumeral/go-backend/internal/platform/ratelimiter"
)

// Daemon bundles the wired HTTP server with the metrics it reports to.
type Daemon struct {
	Server  *httpapi.Server
	Metrics *metrics.ServiceMetrics
}

// New wires the conversion module, metrics and rate limiting into one server.
// A nil registry gets a private one.
func New(cfg daemonconfig.Config, logger *slog.Logger, reg *prometheus.Registry) (*Daemon, error) {
	if logger == nil {
		logger = slog.Default()
	}
	m, err := metrics.New(reg)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	var limiter *ratelimiter.MapLimiter
	if cfg.RateLimit.Enabled {
		limiter = ratelimiter.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	}

	module := romannumeral.NewModule()
	routes := []httpapi.Route{
		{Path: romanrest.Path, Handler: romanrest.NewHandler(module.Service, m, logger)},
	}
	if cfg.Metrics.Enabled {
		routes = append(routes, httpapi.Route{Path: cfg.Metrics.Path, Handler: m.Handler()})
	}

	srv := httpapi.NewServer(httpapi.Options{
		Addr:              cfg.Server.Addr,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
		ShutdownTimeout:   cfg.Server.ShutdownTimeout,
		AllowedOrigins:    cfg.CORS.AllowedOrigins,
		Limiter:           limiter,
		Metrics:           m,
		Logger:            logger,
	}, routes...)

	return &Daemon{Server: srv, Metrics: m}, nil
}
