package affixedids

import (
	"fmt"
	"regexp"
	"strings"
)

// Spec is an uncompiled matcher: either a literal string or a pattern with
// optional flags. The zero value is the empty literal.
type Spec struct {
	// Text is the literal to compare against (unused for patterns)
	Text string
	// Pattern is the regular expression source (patterns only)
	Pattern string
	// Flags holds JavaScript-style pattern flags such as "i" (patterns only)
	Flags string
	// IsPattern selects between literal and pattern matching
	IsPattern bool
}

// Literal returns a Spec matching s exactly.
func Literal(s string) Spec {
	return Spec{Text: s}
}

// Pattern returns a Spec matching the regular expression pattern.
func Pattern(pattern, flags string) Spec {
	return Spec{Pattern: pattern, Flags: flags, IsPattern: true}
}

// String returns the literal text, or the pattern in /pattern/flags form.
func (s Spec) String() string {
	if !s.IsPattern {
		return s.Text
	}
	return "/" + s.Pattern + "/" + s.Flags
}

// Matcher is a compiled Spec.
type Matcher struct {
	literal string
	re      *regexp.Regexp
	source  Spec
}

// Compile compiles a Spec into a Matcher.
func Compile(s Spec) (Matcher, error) {
	if !s.IsPattern {
		return Matcher{literal: s.Text, source: s}, nil
	}
	re, err := compilePattern(s.Pattern, s.Flags)
	if err != nil {
		return Matcher{}, err
	}
	return Matcher{re: re, source: s}, nil
}

// IsPattern reports whether the matcher was built from a pattern.
func (m Matcher) IsPattern() bool {
	return m.re != nil
}

// Spec returns the Spec the matcher was compiled from.
func (m Matcher) Spec() Spec {
	return m.source
}

// String returns the source form of the matcher.
func (m Matcher) String() string {
	return m.source.String()
}

// Matches reports whether s equals the literal or contains a pattern match.
func (m Matcher) Matches(s string) bool {
	if m.re == nil {
		return m.literal == s
	}
	return m.re.MatchString(s)
}

// prefixEnd returns the length of the prefix m removes from s, or -1.
// The removed span must be non-empty and leave at least one character.
func (m Matcher) prefixEnd(s string) int {
	end := -1
	if m.re == nil {
		if strings.HasPrefix(s, m.literal) {
			end = len(m.literal)
		}
	} else if loc := m.re.FindStringIndex(s); loc != nil && loc[0] == 0 {
		end = loc[1]
	}
	if end <= 0 || end >= len(s) {
		return -1
	}
	return end
}

// suffixStart returns the offset at which the suffix m removes from s begins,
// or -1. Patterns use the leftmost match, which must end at the end of s.
// An empty match at the end of s yields len(s): it removes nothing but still
// counts as the suffix that matched.
func (m Matcher) suffixStart(s string) int {
	start := -1
	if m.re == nil {
		if strings.HasSuffix(s, m.literal) {
			start = len(s) - len(m.literal)
		}
	} else if loc := m.re.FindStringIndex(s); loc != nil && loc[1] == len(s) {
		start = loc[0]
	}
	if start <= 0 {
		return -1
	}
	return start
}

// compilePattern translates JavaScript-style flags into RE2 inline flags.
// The sticky flag anchors the pattern at the start of the input; the global,
// unicode and indices flags do not change test semantics and are accepted.
func compilePattern(pattern, flags string) (*regexp.Regexp, error) {
	var inline strings.Builder
	sticky := false
	seen := make(map[rune]bool, len(flags))
	for _, f := range flags {
		if seen[f] {
			return nil, fmt.Errorf("duplicate flag %q", f)
		}
		seen[f] = true
		switch f {
		case 'i', 'm', 's':
			inline.WriteRune(f)
		case 'y':
			sticky = true
		case 'g', 'u', 'd':
		default:
			return nil, fmt.Errorf("unsupported flag %q", f)
		}
	}

	expr := pattern
	if sticky {
		expr = `\A(?:` + expr + `)`
	}
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + expr
	}
	return regexp.Compile(expr)
}
