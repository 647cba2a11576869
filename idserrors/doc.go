// Package idserrors provides structured error types for the idstyle library.
//
// Import path: github.com/pabigot/idstyle/idserrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to tell a malformed rule configuration apart from an
// unreadable syntax tree.
//
// # Error Types
//
//   - [ParseError]: JSON/YAML decoding failures and malformed ESTree documents
//   - [ConfigError]: Invalid rule options or configuration files
//   - [ResourceLimitError]: Resource exhaustion (tree depth, file size)
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrConfig]: Matches any [ConfigError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//
// # Usage Examples
//
//	rule, err := affixedids.New(affixedids.WithAllowedPrefixes(affixedids.Pattern("(", "")))
//	var cfgErr *idserrors.ConfigError
//	if errors.As(err, &cfgErr) {
//	    fmt.Printf("bad option %s: %s\n", cfgErr.Option, cfgErr.Message)
//	}
//
// All error types support error chaining via the Cause field and Unwrap().
package idserrors
