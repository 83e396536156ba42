package daemonconfig

import (
	"os"
	"strconv"
	"strings"
)

const (
	envDeployment       = "ROMAN_ENV"
	envHTTPAddr         = "ROMAN_HTTP_ADDR"
	envRateLimitEnabled = "ROMAN_RATE_LIMIT_ENABLED"
	envRateLimitRPS     = "ROMAN_RATE_LIMIT_RPS"
	envRateLimitBurst   = "ROMAN_RATE_LIMIT_BURST"
	envMetricsEnabled   = "ROMAN_METRICS_ENABLED"
	envMetricsPath      = "ROMAN_METRICS_PATH"
	envLogLevel         = "ROMAN_LOG_LEVEL"
	envLogFormat        = "ROMAN_LOG_FORMAT"
	envCORSOrigins      = "ROMAN_CORS_ALLOWED_ORIGINS"
)

// ApplyEnvOverrides applies ROMAN_* variables on top of cfg. Unparseable
// values are ignored.
func ApplyEnvOverrides(cfg *Config) {
	if isTestEnv() {
		cfg.RateLimit.Enabled = false
	}
	if addr := envString(envHTTPAddr); addr != "" {
		cfg.Server.Addr = addr
	}
	cfg.RateLimit.Enabled = envBoolWithFallback(envRateLimitEnabled, cfg.RateLimit.Enabled)
	cfg.RateLimit.RPS = envPositiveFloatWithFallback(envRateLimitRPS, cfg.RateLimit.RPS)
	cfg.RateLimit.Burst = envPositiveIntWithFallback(envRateLimitBurst, cfg.RateLimit.Burst)
	cfg.Metrics.Enabled = envBoolWithFallback(envMetricsEnabled, cfg.Metrics.Enabled)
	if path := envString(envMetricsPath); path != "" {
		cfg.Metrics.Path = path
	}
	if level := envString(envLogLevel); level != "" {
		cfg.Log.Level = level
	}
	if format := envString(envLogFormat); format != "" {
		cfg.Log.Format = format
	}
	if origins := envCSV(envCORSOrigins); origins != nil {
		cfg.CORS.AllowedOrigins = normalizeOrigins(origins)
	}
}

func isTestEnv() bool {
	switch strings.ToLower(envString(envDeployment)) {
	case "test", "testing":
		return true
	default:
		return false
	}
}

func envString(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envCSV(key string) []string {
	raw := envString(key)
	if raw == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

func envBoolWithFallback(key string, fallback bool) bool {
	raw := strings.ToLower(envString(key))
	switch raw {
	case "":
		return fallback
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func envPositiveIntWithFallback(key string, fallback int) int {
	raw := envString(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envPositiveFloatWithFallback(key string, fallback float64) float64 {
	raw := envString(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}
