package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/pabigot/idstyle/internal/severity"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Lint tool defaults.
	ConfigFile string
	Severity   severity.Severity
	LintLimit  int
	MaxLimit   int

	// Input limits.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from IDSTYLE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("IDSTYLE_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("IDSTYLE_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("IDSTYLE_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("IDSTYLE_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("IDSTYLE_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ConfigFile:         os.Getenv("IDSTYLE_CONFIG"),
		Severity:           envSeverity("IDSTYLE_SEVERITY", severity.SeverityError),
		LintLimit:          envInt("IDSTYLE_LINT_LIMIT", 100),
		MaxLimit:           envInt("IDSTYLE_MAX_LIMIT", 1000),
		MaxInlineSize:      int64(envInt("IDSTYLE_MAX_INLINE_SIZE", 10*1024*1024)),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

// envSeverity accepts the config file spellings except "off".
func envSeverity(key string, fallback severity.Severity) severity.Severity {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	sev, err := severity.Parse(v)
	if err != nil || !sev.Enabled() {
		slog.Warn("invalid severity env var, using default", "key", key, "value", v, "default", fallback.String())
		return fallback
	}
	return sev
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
