package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"romannumeral/go-backend/internal/composition/daemonconfig"
	"romannumeral/go-backend/internal/composition/daemonserver"
	"romannumeral/go-backend/internal/platform/logging"
)

type serveOptions struct {
	configPath string
	addr       string
	logLevel   string
	logFormat  string
}

func serveCmd() *cobra.Command {
	var opts serveOptions

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP conversion daemon until SIGINT/SIGTERM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, opts)
		},
	}

	c.Flags().StringVarP(&opts.configPath, "config", "c", "", "Path to config.yaml (optional; defaults to configs/config.yaml when present)")
	c.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (overrides config and ROMAN_HTTP_ADDR)")
	c.Flags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug | info | warn | error")
	c.Flags().StringVar(&opts.logFormat, "log-format", "", "Log format: json | text")
	return c
}

func resolveServeConfig(opts serveOptions) (daemonconfig.Config, error) {
	cfg, err := daemonconfig.Load(opts.configPath)
	if err != nil {
		return daemonconfig.Config{}, err
	}
	if opts.addr != "" {
		cfg.Server.Addr = opts.addr
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.logFormat != "" {
		cfg.Log.Format = opts.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return daemonconfig.Config{}, err
	}
	return cfg, nil
}

func runServe(ctx context.Context, opts serveOptions) error {
	cfg, err := resolveServeConfig(opts)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger, err := logging.New(os.Stdout, cfg.Log)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	daemon, err := daemonserver.New(cfg, logger, reg)
	if err != nil {
		return err
	}

	logger.Info("romannumeral daemon starting",
		"addr", daemon.Server.Addr(),
		"rate_limit", cfg.RateLimit.Enabled,
		"metrics_path", cfg.Metrics.Path,
	)
	if err := daemon.Server.Run(ctx); err != nil {
		logger.Error("romannumeral daemon failed", "error", err.Error())
		return err
	}
	logger.Info("romannumeral daemon stopped")
	return nil
}
