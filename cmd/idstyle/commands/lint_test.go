package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/pabigot/idstyle/internal/cliutil"
)

func TestSetupLintFlags(t *testing.T) {
	fs, flags := SetupLintFlags()
	require.NoError(t, fs.Parse([]string{"-c", "cfg.yaml", "--format", "json", "-q", "-j", "4", "--max-warnings", "0", "a.json"}))
	assert.Equal(t, "cfg.yaml", flags.Config)
	assert.Equal(t, cliutil.FormatJSON, flags.Format)
	assert.True(t, flags.Quiet)
	assert.Equal(t, 4, flags.Concurrency)
	assert.Equal(t, 0, flags.MaxWarnings)
	assert.Equal(t, []string{"a.json"}, fs.Args())

	fs, flags = SetupLintFlags()
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, cliutil.FormatText, flags.Format)
	assert.Equal(t, -1, flags.MaxWarnings)
	assert.False(t, flags.Verbose)
}

func TestHandleLintText(t *testing.T) {
	fixture, err := filepath.Abs(assignTree)
	require.NoError(t, err)
	t.Chdir(t.TempDir())
	stdout, stderr := captureOutput(t)

	err = HandleLint([]string{fixture})
	require.ErrorIs(t, err, ErrLintFailed)

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "assign.json:1:5: Identifier 'snake_prop' does not conform. [affixed-ids]")
	assert.Contains(t, lines[1], "assign.json:1:18: Identifier 'foo_bar' does not conform. [affixed-ids]")
	assert.Contains(t, stderr.String(), "✗ 2 error(s) in 1 file(s)")
}

func TestHandleLintPasses(t *testing.T) {
	stdout, stderr := captureOutput(t)

	opts := `{"ignoredIdentifiers": ["snake_prop", "foo_bar"]}`
	require.NoError(t, HandleLint([]string{"--rule-options", opts, assignTree}))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "✓ 1 file(s) passed")
}

func TestHandleLintWarnings(t *testing.T) {
	t.Run("warnings pass", func(t *testing.T) {
		_, stderr := captureOutput(t)
		require.NoError(t, HandleLint([]string{"--rule-options", "{}", "--severity", "warn", assignTree}))
		assert.Contains(t, stderr.String(), "with 2 warning(s)")
	})

	t.Run("max warnings", func(t *testing.T) {
		_, stderr := captureOutput(t)
		err := HandleLint([]string{"--rule-options", "{}", "--severity", "warn", "--max-warnings", "1", assignTree})
		require.ErrorIs(t, err, ErrLintFailed)
		assert.Contains(t, stderr.String(), "too many warnings: 2")
	})
}

func TestHandleLintStructured(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		err := HandleLint([]string{"--rule-options", "{}", "--format", "json", assignTree})
		require.ErrorIs(t, err, ErrLintFailed)

		var report lintReport
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		assert.False(t, report.Valid)
		assert.Equal(t, "inline", report.Rules)
		assert.Equal(t, 2, report.Errors)
		require.Len(t, report.Files, 1)
		assert.Equal(t, 3, report.Files[0].Identifiers)
		require.Len(t, report.Files[0].Issues, 2)
		assert.Equal(t, "snake_prop", report.Files[0].Issues[0].Name)
		assert.Equal(t, 5, report.Files[0].Issues[0].Column)
	})

	t.Run("yaml", func(t *testing.T) {
		stdout, _ := captureOutput(t)
		err := HandleLint([]string{"--rule-options", "{}", "--format", "yaml", assignTree})
		require.ErrorIs(t, err, ErrLintFailed)

		var report map[string]any
		require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &report))
		assert.Equal(t, false, report["valid"])
		assert.Equal(t, 2, report["errors"])
	})
}

func TestHandleLintStdin(t *testing.T) {
	stdout, _ := captureOutput(t)
	data, err := os.ReadFile(assignTree)
	require.NoError(t, err)
	Stdin = strings.NewReader(string(data))

	err = HandleLint([]string{"--rule-options", `{"ignoredIdentifiers": ["snake_prop"]}`, "-"})
	require.ErrorIs(t, err, ErrLintFailed)
	assert.Contains(t, stdout.String(), "<stdin>:1:18: Identifier 'foo_bar' does not conform.")
	assert.NotContains(t, stdout.String(), "snake_prop")
}

func TestHandleLintQuiet(t *testing.T) {
	stdout, stderr := captureOutput(t)
	err := HandleLint([]string{"--rule-options", "{}", "-q", assignTree})
	require.ErrorIs(t, err, ErrLintFailed)
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestHandleLintHelp(t *testing.T) {
	_, stderr := captureOutput(t)
	require.NoError(t, HandleLint([]string{"--help"}))
	assert.Contains(t, stderr.String(), "Usage: idstyle lint")
}

func TestHandleLintErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no args", nil, "requires at least one file path"},
		{"stdin mixed", []string{"-", assignTree}, "cannot be combined"},
		{"bad format", []string{"--format", "xml", assignTree}, "invalid format 'xml'"},
		{"bad input format", []string{"--input-format", "toml", assignTree}, "invalid --input-format"},
		{"bad rule options", []string{"--rule-options", `{"nope": 1}`, assignTree}, "unknown option"},
		{"missing file", []string{"--rule-options", "{}", "missing.json"}, "missing.json"},
		{"unknown flag", []string{"--bogus", assignTree}, "bogus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			captureOutput(t)
			err := HandleLint(tt.args)
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrLintFailed)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
