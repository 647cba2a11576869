package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"go.yaml.in/yaml/v4"

	"github.com/pabigot/idstyle/idserrors"
	"github.com/pabigot/idstyle/internal/fileutil"
	"github.com/pabigot/idstyle/internal/severity"
	"github.com/pabigot/idstyle/rules"
	"github.com/pabigot/idstyle/rules/affixedids"
)

// FileNames are the configuration file names Find looks for, in order.
var FileNames = []string{".idstyle.yaml", ".idstyle.yml", ".idstyle.json"}

// Config is a decoded configuration file.
type Config struct {
	// Path is the file the configuration was loaded from ("" if built in code)
	Path string `yaml:"-"`
	// Rules maps rule names to their configuration
	Rules map[string]RuleConfig `yaml:"rules"`
}

// RuleConfig is one ESLint-style rule entry.
type RuleConfig struct {
	Severity severity.Severity
	Options  []any
}

// Default returns the configuration used when no file is found:
// affixed-ids at error level with default options.
func Default() *Config {
	return &Config{
		Rules: map[string]RuleConfig{
			affixedids.Name: {Severity: severity.SeverityError},
		},
	}
}

// Load reads and decodes the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: failed to read file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse decodes a YAML or JSON configuration document.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &Config{Rules: map[string]RuleConfig{}}, nil
		}
		var cerr *idserrors.ConfigError
		if errors.As(err, &cerr) {
			return nil, err
		}
		return nil, &idserrors.ConfigError{Message: "invalid configuration document", Cause: err}
	}
	if cfg.Rules == nil {
		cfg.Rules = map[string]RuleConfig{}
	}
	return cfg, nil
}

// Find looks for a configuration file in dir and its parents and returns
// the first one found.
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		for _, name := range FileNames {
			path := filepath.Join(dir, name)
			if fileutil.IsRegular(path) {
				return path, true
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// Activate builds the enabled rules from reg, sorted by rule name. Rules at
// severity off are skipped but their options are still validated.
func (c *Config) Activate(reg *rules.Registry) ([]rules.Configured, error) {
	names := make([]string, 0, len(c.Rules))
	for name := range c.Rules {
		names = append(names, name)
	}
	slices.Sort(names)

	var active []rules.Configured
	for _, name := range names {
		rc := c.Rules[name]
		rule, err := reg.New(name, rc.Options)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if !rc.Severity.Enabled() {
			continue
		}
		active = append(active, rules.Configured{Rule: rule, Severity: rc.Severity})
	}
	return active, nil
}

// UnmarshalYAML decodes a severity scalar or a [severity, options...] list.
func (r *RuleConfig) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		sev, err := decodeSeverity(node)
		if err != nil {
			return err
		}
		*r = RuleConfig{Severity: sev}
		return nil
	case yaml.SequenceNode:
		if len(node.Content) == 0 {
			return &idserrors.ConfigError{Message: fmt.Sprintf("line %d: empty rule entry", node.Line)}
		}
		sev, err := decodeSeverity(node.Content[0])
		if err != nil {
			return err
		}
		out := RuleConfig{Severity: sev}
		for _, item := range node.Content[1:] {
			var v any
			if err := item.Decode(&v); err != nil {
				return err
			}
			out.Options = append(out.Options, v)
		}
		*r = out
		return nil
	default:
		return &idserrors.ConfigError{
			Message: fmt.Sprintf("line %d: rule entry must be a severity or a list", node.Line),
		}
	}
}

func decodeSeverity(node *yaml.Node) (severity.Severity, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return severity.SeverityOff, err
	}
	sev, err := severity.Parse(v)
	if err != nil {
		return severity.SeverityOff, &idserrors.ConfigError{
			Option:  "severity",
			Value:   v,
			Message: fmt.Sprintf("line %d", node.Line),
			Cause:   err,
		}
	}
	return sev, nil
}

// MarshalYAML encodes the entry in list form.
func (r RuleConfig) MarshalYAML() (any, error) {
	if len(r.Options) == 0 {
		return r.Severity.String(), nil
	}
	return append([]any{r.Severity.String()}, r.Options...), nil
}

// Marshal encodes c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
