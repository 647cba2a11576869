package affixedids

import (
	"fmt"

	"github.com/pabigot/idstyle/idserrors"
)

// Option names as they appear in configuration files.
const (
	OptBaseStyle              = "baseStyle"
	OptIgnoreCalls            = "ignoreCalls"
	OptIgnoreProperties       = "ignoreProperties"
	OptIgnoreReadProperties   = "ignoreReadProperties"
	OptIgnoredIdentifiers     = "ignoredIdentifiers"
	OptStripPrefixUnderscores = "stripPrefixUnderscores"
	OptStripSuffixUnderscores = "stripSuffixUnderscores"
	OptAllowedPrefixes        = "allowedPrefixes"
	OptAllowedSuffixes        = "allowedSuffixes"
)

// CamelCase is the name of the default base style.
const CamelCase = "camelcase"

// RawOptions is the unresolved rule configuration. Nil pointers and nil
// slices mean "not set"; an empty non-nil slice is a configured empty list.
type RawOptions struct {
	BaseStyle              *Spec
	IgnoreCalls            *bool
	IgnoreProperties       *bool
	IgnoreReadProperties   *bool
	IgnoredIdentifiers     []Spec
	StripPrefixUnderscores *bool
	StripSuffixUnderscores *bool
	AllowedPrefixes        []Spec
	AllowedSuffixes        []Spec
}

// Options is the resolved rule configuration. It must not be modified after
// Normalize returns it.
type Options struct {
	BaseStyle              BaseStyle
	IgnoreCalls            bool
	IgnoreProperties       bool
	IgnoreReadProperties   bool
	StripPrefixUnderscores bool
	StripSuffixUnderscores bool

	// Nil when the list was not configured.
	IgnoredIdentifiers []Matcher
	AllowedPrefixes    []Matcher
	AllowedSuffixes    []Matcher
}

// Normalize resolves defaults and compiles every matcher in raw.
// The first invalid option is returned as an *idserrors.ConfigError.
func Normalize(raw RawOptions) (*Options, error) {
	o := &Options{
		IgnoreCalls:            boolOr(raw.IgnoreCalls, true),
		IgnoreProperties:       boolOr(raw.IgnoreProperties, false),
		IgnoreReadProperties:   boolOr(raw.IgnoreReadProperties, true),
		StripPrefixUnderscores: boolOr(raw.StripPrefixUnderscores, true),
		StripSuffixUnderscores: boolOr(raw.StripSuffixUnderscores, true),
	}

	style, err := resolveBaseStyle(raw.BaseStyle)
	if err != nil {
		return nil, err
	}
	o.BaseStyle = style

	if o.IgnoredIdentifiers, err = compileList(OptIgnoredIdentifiers, raw.IgnoredIdentifiers); err != nil {
		return nil, err
	}
	if o.AllowedPrefixes, err = compileList(OptAllowedPrefixes, raw.AllowedPrefixes); err != nil {
		return nil, err
	}
	if o.AllowedSuffixes, err = compileList(OptAllowedSuffixes, raw.AllowedSuffixes); err != nil {
		return nil, err
	}
	return o, nil
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func resolveBaseStyle(spec *Spec) (BaseStyle, error) {
	if spec == nil {
		return camelCaseStyle{}, nil
	}
	if !spec.IsPattern {
		if spec.Text == CamelCase {
			return camelCaseStyle{}, nil
		}
		return nil, &idserrors.ConfigError{
			Option:  OptBaseStyle,
			Value:   spec.Text,
			Message: fmt.Sprintf("unknown base style, expected %q or a pattern", CamelCase),
		}
	}
	re, err := compilePattern(spec.Pattern, spec.Flags)
	if err != nil {
		return nil, &idserrors.ConfigError{
			Option:  OptBaseStyle,
			Value:   spec.String(),
			Message: "invalid pattern",
			Cause:   err,
		}
	}
	return patternStyle{re: re, source: *spec}, nil
}

func compileList(option string, specs []Spec) ([]Matcher, error) {
	if specs == nil {
		return nil, nil
	}
	matchers := make([]Matcher, 0, len(specs))
	for i, s := range specs {
		m, err := Compile(s)
		if err != nil {
			return nil, &idserrors.ConfigError{
				Option:  fmt.Sprintf("%s[%d]", option, i),
				Value:   s.String(),
				Message: "invalid pattern",
				Cause:   err,
			}
		}
		matchers = append(matchers, m)
	}
	return matchers, nil
}

// Option configures a Rule.
type Option func(*RawOptions)

// WithRaw replaces every option with the values in raw.
// Options applied after WithRaw override individual fields.
func WithRaw(raw RawOptions) Option {
	return func(r *RawOptions) { *r = raw }
}

// WithBaseStyle sets the base style, either Literal(CamelCase) or a Pattern.
func WithBaseStyle(style Spec) Option {
	return func(r *RawOptions) { r.BaseStyle = &style }
}

// WithIgnoreCalls controls whether callee and argument identifiers are exempt.
// Default: true
func WithIgnoreCalls(v bool) Option {
	return func(r *RawOptions) { r.IgnoreCalls = &v }
}

// WithIgnoreProperties controls whether property keys and member properties are exempt.
// Default: false
func WithIgnoreProperties(v bool) Option {
	return func(r *RawOptions) { r.IgnoreProperties = &v }
}

// WithIgnoreReadProperties controls whether member properties that are read are exempt.
// Default: true
func WithIgnoreReadProperties(v bool) Option {
	return func(r *RawOptions) { r.IgnoreReadProperties = &v }
}

// WithIgnoredIdentifiers sets identifiers that are never diagnosed.
func WithIgnoredIdentifiers(specs ...Spec) Option {
	return func(r *RawOptions) { r.IgnoredIdentifiers = append([]Spec{}, specs...) }
}

// WithStripPrefixUnderscores controls removal of leading underscores.
// Default: true
func WithStripPrefixUnderscores(v bool) Option {
	return func(r *RawOptions) { r.StripPrefixUnderscores = &v }
}

// WithStripSuffixUnderscores controls removal of trailing underscores.
// Default: true
func WithStripSuffixUnderscores(v bool) Option {
	return func(r *RawOptions) { r.StripSuffixUnderscores = &v }
}

// WithAllowedPrefixes sets the prefixes that may be removed, first match wins.
func WithAllowedPrefixes(specs ...Spec) Option {
	return func(r *RawOptions) { r.AllowedPrefixes = append([]Spec{}, specs...) }
}

// WithAllowedSuffixes sets the suffixes that may be removed, first match wins.
func WithAllowedSuffixes(specs ...Spec) Option {
	return func(r *RawOptions) { r.AllowedSuffixes = append([]Spec{}, specs...) }
}
