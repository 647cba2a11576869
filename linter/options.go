package linter

import (
	"context"
	"fmt"
	"io"

	"github.com/pabigot/idstyle/config"
	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/internal/options"
	"github.com/pabigot/idstyle/internal/severity"
	"github.com/pabigot/idstyle/rules"
	"github.com/pabigot/idstyle/rules/affixedids"
)

// Option is a function that configures a lint operation
type Option func(*lintConfig) error

type lintConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte
	parsed   *estree.ParseResult

	ctx        context.Context
	cfg        *config.Config
	registry   *rules.Registry
	active     []rules.Configured
	ruleOpts   []affixedids.Option
	sourceName *string
	format     estree.SourceFormat
	logger     estree.Logger
	maxDepth   int
}

// LintWithOptions lints one ESTree document using functional options.
//
// Rules come from, in order of precedence: WithRules, WithRuleOptions (the
// affixed-ids rule at error level), WithConfig, or the default
// configuration.
//
// Example:
//
//	result, err := linter.LintWithOptions(
//	    linter.WithFilePath("app.estree.json"),
//	    linter.WithRuleOptions(affixedids.WithIgnoreCalls(false)),
//	)
func LintWithOptions(opts ...Option) (*LintResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("linter: invalid options: %w", err)
	}

	active, err := cfg.activeRules()
	if err != nil {
		return nil, fmt.Errorf("linter: %w", err)
	}
	l := &Linter{
		Rules:    active,
		Logger:   cfg.logger,
		MaxDepth: cfg.maxDepth,
		Format:   cfg.format,
	}
	ctx := cfg.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	var result *LintResult
	switch {
	case cfg.filePath != nil:
		result, err = l.LintFile(ctx, *cfg.filePath)
	case cfg.reader != nil:
		result, err = l.LintReader(ctx, cfg.reader)
	case cfg.bytes != nil:
		result, err = l.LintBytes(ctx, cfg.bytes)
	default:
		result, err = l.LintParsed(ctx, cfg.parsed)
	}
	if err != nil {
		return nil, err
	}
	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
		for i := range result.Issues {
			result.Issues[i].File = *cfg.sourceName
		}
	}
	return result, nil
}

func (c *lintConfig) activeRules() ([]rules.Configured, error) {
	if c.active != nil {
		return c.active, nil
	}
	if c.ruleOpts != nil {
		r, err := rules.NewAffixedIDsRule(c.ruleOpts...)
		if err != nil {
			return nil, err
		}
		return []rules.Configured{{Rule: r, Severity: severity.SeverityError}}, nil
	}
	cfg := c.cfg
	if cfg == nil {
		cfg = config.Default()
	}
	reg := c.registry
	if reg == nil {
		reg = rules.Default()
	}
	return cfg.Activate(reg)
}

func applyOptions(opts ...Option) (*lintConfig, error) {
	cfg := &lintConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ExactlyOne(
		"must specify an input source (use WithFilePath, WithReader, WithBytes or WithParsed)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil, cfg.parsed != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies an ESTree document file as the input source
func WithFilePath(path string) Option {
	return func(cfg *lintConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *lintConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *lintConfig) error {
		cfg.bytes = data
		return nil
	}
}

// WithParsed specifies an already decoded document as the input source
func WithParsed(result *estree.ParseResult) Option {
	return func(cfg *lintConfig) error {
		if result == nil {
			return fmt.Errorf("nil ParseResult")
		}
		cfg.parsed = result
		return nil
	}
}

// WithContext sets the context for cancellation
func WithContext(ctx context.Context) Option {
	return func(cfg *lintConfig) error {
		cfg.ctx = ctx
		return nil
	}
}

// WithConfig sets the rule configuration
func WithConfig(c *config.Config) Option {
	return func(cfg *lintConfig) error {
		cfg.cfg = c
		return nil
	}
}

// WithConfigFile loads the rule configuration from path
func WithConfigFile(path string) Option {
	return func(cfg *lintConfig) error {
		c, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg.cfg = c
		return nil
	}
}

// WithRegistry sets the registry configured rules are looked up in
func WithRegistry(reg *rules.Registry) Option {
	return func(cfg *lintConfig) error {
		cfg.registry = reg
		return nil
	}
}

// WithRules sets the enabled rules directly
func WithRules(active ...rules.Configured) Option {
	return func(cfg *lintConfig) error {
		cfg.active = append([]rules.Configured{}, active...)
		return nil
	}
}

// WithRuleOptions runs only affixed-ids, at error level, with opts
func WithRuleOptions(opts ...affixedids.Option) Option {
	return func(cfg *lintConfig) error {
		cfg.ruleOpts = append([]affixedids.Option{}, opts...)
		return nil
	}
}

// WithSourceName overrides the source path reported in results and issues
func WithSourceName(name string) Option {
	return func(cfg *lintConfig) error {
		cfg.sourceName = &name
		return nil
	}
}

// WithFormat forces the input format instead of detecting it
func WithFormat(format estree.SourceFormat) Option {
	return func(cfg *lintConfig) error {
		cfg.format = format
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l estree.Logger) Option {
	return func(cfg *lintConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxDepth sets the maximum node nesting depth (0 uses the default)
func WithMaxDepth(depth int) Option {
	return func(cfg *lintConfig) error {
		if depth < 0 {
			return fmt.Errorf("max depth must not be negative: %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}
