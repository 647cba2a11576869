// Package severity provides the rule severity levels used by configuration
// files and reported issues.
//
// The levels follow ESLint: "off" (0) disables a rule, "warn" (1) reports
// without failing, "error" (2) reports and fails the run.
package severity

import (
	"fmt"
	"strings"
)

// Severity is the level a rule reports at.
type Severity int

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = iota

	// SeverityWarning reports violations without failing the run.
	SeverityWarning

	// SeverityError reports violations and fails the run.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarning:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Enabled reports whether a rule at this level runs at all.
func (s Severity) Enabled() bool {
	return s == SeverityWarning || s == SeverityError
}

// Parse converts a configuration value to a Severity. It accepts the names
// "off", "warn", "warning" and "error" (any case) and the numbers 0, 1, 2.
func Parse(v any) (Severity, error) {
	switch x := v.(type) {
	case Severity:
		if x < SeverityOff || x > SeverityError {
			return SeverityOff, fmt.Errorf("invalid severity %d", int(x))
		}
		return x, nil
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "off", "0":
			return SeverityOff, nil
		case "warn", "warning", "1":
			return SeverityWarning, nil
		case "error", "2":
			return SeverityError, nil
		}
		return SeverityOff, fmt.Errorf("invalid severity %q (expected off, warn or error)", x)
	case int:
		return fromInt(int64(x))
	case int64:
		return fromInt(x)
	case uint64:
		return fromInt(int64(x))
	case float64:
		if x != float64(int64(x)) {
			return SeverityOff, fmt.Errorf("invalid severity %v", x)
		}
		return fromInt(int64(x))
	default:
		return SeverityOff, fmt.Errorf("invalid severity of type %T", v)
	}
}

func fromInt(n int64) (Severity, error) {
	if n < 0 || n > int64(SeverityError) {
		return SeverityOff, fmt.Errorf("invalid severity %d (expected 0, 1 or 2)", n)
	}
	return Severity(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
