// Package issues provides the issue type reported by the linter, the
// analyzer host and the MCP server.
package issues

import (
	"fmt"

	"github.com/pabigot/idstyle/internal/severity"
)

// Issue represents a single rule violation.
type Issue struct {
	// Rule is the reporting rule's name (e.g. "affixed-ids")
	Rule string `json:"rule" yaml:"rule"`
	// Path is the JSON path to the offending node (e.g. "$.body[0].expression.left")
	Path string `json:"path" yaml:"path"`
	// Message is a human-readable description of the issue
	Message string `json:"message" yaml:"message"`
	// Severity is the configured level of the reporting rule
	Severity severity.Severity `json:"severity" yaml:"severity"`
	// Name is the offending identifier as written
	Name string `json:"name" yaml:"name"`
	// File is the source file path (empty when unknown)
	File string `json:"file,omitempty" yaml:"file,omitempty"`
	// Line is the 1-based line number in the source file (0 if unknown)
	Line int `json:"line,omitempty" yaml:"line,omitempty"`
	// Column is the 1-based column number in the source file (0 if unknown)
	Column int `json:"column,omitempty" yaml:"column,omitempty"`
	// Suggestion is a conforming spelling of Name, when the rule has one
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// String returns a formatted string representation of the issue.
// Uses "✗" for errors and "⚠" for warnings.
func (i Issue) String() string {
	var symbol string
	switch i.Severity {
	case severity.SeverityError:
		symbol = "✗"
	case severity.SeverityWarning:
		symbol = "⚠"
	default:
		symbol = "?"
	}

	result := fmt.Sprintf("%s %s: %s", symbol, i.Location(), i.Message)
	if i.Rule != "" {
		result += fmt.Sprintf(" [%s]", i.Rule)
	}
	return result
}

// Location returns the source location in IDE-friendly format.
// Returns "file:line:column" if file is set, "line:column" if only line is set,
// or the JSON path if location is unknown.
func (i Issue) Location() string {
	if i.Line == 0 {
		if i.File != "" {
			return fmt.Sprintf("%s %s", i.File, i.Path)
		}
		return i.Path
	}
	if i.File != "" {
		return fmt.Sprintf("%s:%d:%d", i.File, i.Line, i.Column)
	}
	return fmt.Sprintf("%d:%d", i.Line, i.Column)
}

// HasLocation returns true if this issue has source location information.
func (i Issue) HasLocation() bool {
	return i.Line > 0
}

// Count returns the number of error-level and warning-level issues.
func Count(list []Issue) (errors, warnings int) {
	for _, i := range list {
		switch i.Severity {
		case severity.SeverityError:
			errors++
		case severity.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
