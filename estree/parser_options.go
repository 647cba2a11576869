package estree

import (
	"fmt"
	"io"

	"github.com/pabigot/idstyle/internal/options"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	format      SourceFormat
	logger      Logger
	maxFileSize int64
	maxDepth    int
	sourceName  *string
}

// ParseWithOptions decodes an ESTree document using functional options.
//
// Example:
//
//	result, err := estree.ParseWithOptions(
//	    estree.WithFilePath("app.estree.json"),
//	    estree.WithMaxDepth(2000),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("estree: invalid options: %w", err)
	}

	p := &Parser{
		Logger:      cfg.logger,
		Format:      cfg.format,
		MaxFileSize: cfg.maxFileSize,
		MaxDepth:    cfg.maxDepth,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}
	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.ExactlyOne(
		"estree: must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"estree: must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		cfg.bytes = data
		return nil
	}
}

// WithFormat forces the input format instead of detecting it
func WithFormat(format SourceFormat) Option {
	return func(cfg *parseConfig) error {
		cfg.format = format
		return nil
	}
}

// WithLogger sets the structured logger
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize sets the maximum document size in bytes (0 uses the default)
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return fmt.Errorf("max file size must not be negative: %d", size)
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithMaxDepth sets the maximum node nesting depth (0 uses the default)
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if depth < 0 {
			return fmt.Errorf("max depth must not be negative: %d", depth)
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithSourceName overrides SourcePath in the result, e.g. for stdin input
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
