// Package commands provides CLI command handlers for idstyle.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"

	"github.com/pabigot/idstyle/config"
	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/internal/severity"
	"github.com/pabigot/idstyle/rules"
	"github.com/pabigot/idstyle/rules/affixedids"
)

// Standard streams used by the handlers. Tests replace them.
var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

// ErrLintFailed is returned by HandleLint when error-level issues were
// found or the warning budget was exceeded. The caller exits non-zero
// without printing it.
var ErrLintFailed = errors.New("lint failed")

// ruleSource selects where the active rules come from.
type ruleSource struct {
	configPath  string
	ruleOptions string
	severity    string
}

// resolve returns the active rules: inline --rule-options first, then an
// explicit --config, then a config file found from the working directory,
// then the built-in default.
func (s ruleSource) resolve() ([]rules.Configured, string, error) {
	if s.ruleOptions != "" {
		if s.configPath != "" {
			return nil, "", fmt.Errorf("--rule-options and --config are mutually exclusive")
		}
		sev := severity.SeverityError
		if s.severity != "" {
			var err error
			if sev, err = severity.Parse(s.severity); err != nil {
				return nil, "", err
			}
			if !sev.Enabled() {
				return nil, "", fmt.Errorf("--severity must be warn or error")
			}
		}
		rule, err := decodeRuleOptions(s.ruleOptions)
		if err != nil {
			return nil, "", err
		}
		return []rules.Configured{{Rule: rule, Severity: sev}}, "inline", nil
	}
	if s.severity != "" {
		return nil, "", fmt.Errorf("--severity applies only to --rule-options")
	}

	path := s.configPath
	if path == "" {
		if wd, err := os.Getwd(); err == nil {
			path, _ = config.Find(wd)
		}
	}
	cfg := config.Default()
	source := "default"
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, "", err
		}
		source = path
	}
	active, err := cfg.Activate(rules.Default())
	if err != nil {
		return nil, "", err
	}
	return active, source, nil
}

// decodeRuleOptions builds an affixed-ids rule from a JSON options object.
func decodeRuleOptions(data string) (*rules.AffixedIDs, error) {
	var v any
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return nil, fmt.Errorf("invalid --rule-options JSON: %w", err)
	}
	raw, err := affixedids.Decode(v)
	if err != nil {
		return nil, err
	}
	return rules.NewAffixedIDsRule(affixedids.WithRaw(raw))
}

// newLogger returns a debug logger on Stderr when verbose is set, and nil
// otherwise.
func newLogger(verbose bool) estree.Logger {
	if !verbose {
		return nil
	}
	h := slog.NewTextHandler(Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})
	return estree.NewSlogAdapter(slog.New(h))
}
