package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pabigot/idstyle/internal/severity"
)

// clearIDSTYLEEnv clears all IDSTYLE_* env vars to isolate tests from the ambient environment.
func clearIDSTYLEEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"IDSTYLE_CACHE_ENABLED", "IDSTYLE_CACHE_MAX_SIZE",
		"IDSTYLE_CACHE_FILE_TTL", "IDSTYLE_CACHE_CONTENT_TTL",
		"IDSTYLE_CACHE_SWEEP_INTERVAL", "IDSTYLE_CONFIG",
		"IDSTYLE_SEVERITY", "IDSTYLE_LINT_LIMIT",
		"IDSTYLE_MAX_LIMIT", "IDSTYLE_MAX_INLINE_SIZE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearIDSTYLEEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 60*time.Second, c.CacheSweepInterval)
	assert.Empty(t, c.ConfigFile)
	assert.Equal(t, severity.SeverityError, c.Severity)
	assert.Equal(t, 100, c.LintLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearIDSTYLEEnv(t)
	t.Setenv("IDSTYLE_CACHE_ENABLED", "false")
	t.Setenv("IDSTYLE_CACHE_MAX_SIZE", "50")
	t.Setenv("IDSTYLE_CACHE_FILE_TTL", "30m")
	t.Setenv("IDSTYLE_CACHE_CONTENT_TTL", "10m")
	t.Setenv("IDSTYLE_CACHE_SWEEP_INTERVAL", "30s")
	t.Setenv("IDSTYLE_CONFIG", "/etc/idstyle.yaml")
	t.Setenv("IDSTYLE_SEVERITY", "warn")
	t.Setenv("IDSTYLE_LINT_LIMIT", "20")
	t.Setenv("IDSTYLE_MAX_LIMIT", "500")
	t.Setenv("IDSTYLE_MAX_INLINE_SIZE", "2048")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 30*time.Second, c.CacheSweepInterval)
	assert.Equal(t, "/etc/idstyle.yaml", c.ConfigFile)
	assert.Equal(t, severity.SeverityWarning, c.Severity)
	assert.Equal(t, 20, c.LintLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(2048), c.MaxInlineSize)
}

func TestLoadConfig_InvalidValues(t *testing.T) {
	clearIDSTYLEEnv(t)
	t.Setenv("IDSTYLE_CACHE_ENABLED", "maybe")
	t.Setenv("IDSTYLE_CACHE_MAX_SIZE", "-3")
	t.Setenv("IDSTYLE_CACHE_FILE_TTL", "forever")
	t.Setenv("IDSTYLE_SEVERITY", "off")
	t.Setenv("IDSTYLE_LINT_LIMIT", "lots")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, severity.SeverityError, c.Severity, "off is not a usable default")
	assert.Equal(t, 100, c.LintLimit)
}

func TestEnvSeverity(t *testing.T) {
	tests := []struct {
		value string
		want  severity.Severity
	}{
		{"", severity.SeverityError},
		{"warn", severity.SeverityWarning},
		{"1", severity.SeverityWarning},
		{"ERROR", severity.SeverityError},
		{"bogus", severity.SeverityError},
		{"0", severity.SeverityError},
	}
	for _, tt := range tests {
		t.Setenv("IDSTYLE_TEST_SEVERITY", tt.value)
		assert.Equal(t, tt.want, envSeverity("IDSTYLE_TEST_SEVERITY", severity.SeverityError), tt.value)
	}
}
