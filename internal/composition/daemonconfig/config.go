package daemonconfig

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"romannumeral/go-backend/internal/platform/logging"
)

const DefaultHTTPAddr = "127.0.0.1:8080"

var DefaultConfigCandidates = []string{
	"configs/config.yaml",
}

type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
	Log       logging.Config
	CORS      CORSConfig
}

type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

type RateLimitConfig struct {
	Enabled bool
	RPS     float64
	Burst   int
	IdleTTL time.Duration
}

type MetricsConfig struct {
	Enabled bool
	Path    string
}

type CORSConfig struct {
	// AllowedOrigins holds exact origins; when empty only loopback hosts pass.
	AllowedOrigins []string
}

// fileConfig mirrors config.yaml; pointers distinguish "unset" from zero.
type fileConfig struct {
	Server struct {
		Addr              string        `yaml:"addr"`
		ReadHeaderTimeout time.Duration `yaml:"readHeaderTimeout"`
		ReadTimeout       time.Duration `yaml:"readTimeout"`
		WriteTimeout      time.Duration `yaml:"writeTimeout"`
		IdleTimeout       time.Duration `yaml:"idleTimeout"`
		ShutdownTimeout   time.Duration `yaml:"shutdownTimeout"`
	} `yaml:"server"`
	RateLimit struct {
		Enabled *bool         `yaml:"enabled"`
		RPS     float64       `yaml:"rps"`
		Burst   int           `yaml:"burst"`
		IdleTTL time.Duration `yaml:"idleTTL"`
	} `yaml:"rateLimit"`
	Metrics struct {
		Enabled *bool  `yaml:"enabled"`
		Path    string `yaml:"path"`
	} `yaml:"metrics"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"cors"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:              DefaultHTTPAddr,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       10 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			ShutdownTimeout:   5 * time.Second,
		},
		RateLimit: RateLimitConfig{
			Enabled: true,
			RPS:     30,
			Burst:   60,
			IdleTTL: 10 * time.Minute,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		Log: logging.Config{
			Level:  "info",
			Format: logging.FormatJSON,
		},
	}
}

// Load resolves defaults, then the first readable config file, then env.
// An explicit path must exist and parse; default candidates are skipped
// when missing or invalid.
func Load(configPath string) (Config, error) {
	cfg := Default()

	if configPath != "" {
		parsed, err := readFile(configPath)
		if err != nil {
			return Config{}, err
		}
		Merge(&cfg, parsed)
	} else {
		for _, path := range DefaultConfigCandidates {
			parsed, err := readFile(path)
			if err != nil {
				continue
			}
			Merge(&cfg, parsed)
			break
		}
	}

	ApplyEnvOverrides(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readFile(path string) (fileConfig, error) {
	var parsed fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return parsed, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return parsed, fmt.Errorf("parse config %s: %w", path, err)
	}
	return parsed, nil
}

func Merge(dst *Config, src fileConfig) {
	if src.Server.Addr != "" {
		dst.Server.Addr = src.Server.Addr
	}
	if src.Server.ReadHeaderTimeout != 0 {
		dst.Server.ReadHeaderTimeout = src.Server.ReadHeaderTimeout
	}
	if src.Server.ReadTimeout != 0 {
		dst.Server.ReadTimeout = src.Server.ReadTimeout
	}
	if src.Server.WriteTimeout != 0 {
		dst.Server.WriteTimeout = src.Server.WriteTimeout
	}
	if src.Server.IdleTimeout != 0 {
		dst.Server.IdleTimeout = src.Server.IdleTimeout
	}
	if src.Server.ShutdownTimeout != 0 {
		dst.Server.ShutdownTimeout = src.Server.ShutdownTimeout
	}
	if src.RateLimit.Enabled != nil {
		dst.RateLimit.Enabled = *src.RateLimit.Enabled
	}
	if src.RateLimit.RPS != 0 {
		dst.RateLimit.RPS = src.RateLimit.RPS
	}
	if src.RateLimit.Burst != 0 {
		dst.RateLimit.Burst = src.RateLimit.Burst
	}
	if src.RateLimit.IdleTTL != 0 {
		dst.RateLimit.IdleTTL = src.RateLimit.IdleTTL
	}
	if src.Metrics.Enabled != nil {
		dst.Metrics.Enabled = *src.Metrics.Enabled
	}
	if src.Metrics.Path != "" {
		dst.Metrics.Path = src.Metrics.Path
	}
	if src.Log.Level != "" {
		dst.Log.Level = src.Log.Level
	}
	if src.Log.Format != "" {
		dst.Log.Format = src.Log.Format
	}
	if src.CORS.AllowedOrigins != nil {
		dst.CORS.AllowedOrigins = normalizeOrigins(src.CORS.AllowedOrigins)
	}
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		errs = append(errs, errors.New("rateLimit.rps and rateLimit.burst must be positive when rate limiting is enabled"))
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path %q must start with /", c.Metrics.Path))
	}
	if c.Metrics.Enabled {
		switch c.Metrics.Path {
		case "/", "/healthz", "/romannumeral":
			errs = append(errs, fmt.Errorf("metrics.path %q collides with a built-in route", c.Metrics.Path))
		}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(strings.TrimSpace(c.Log.Format)) {
	case "", logging.FormatJSON, logging.FormatText:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

func normalizeOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, origin := range in {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if _, ok := seen[origin]; ok {
			continue
		}
		seen[origin] = struct{}{}
		out = append(out, origin)
	}
	return out
}
