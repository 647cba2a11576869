package affixedids

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// BaseStyle decides whether a stripped identifier conforms.
type BaseStyle interface {
	// Accepts reports whether name conforms to the style.
	Accepts(name string) bool
	// String describes the style for logs and error messages.
	String() string
}

// camelCaseStyle accepts names without underscores, and names that are
// already entirely upper case such as MAX_VALUE.
type camelCaseStyle struct{}

func (camelCaseStyle) Accepts(name string) bool {
	if !strings.Contains(name, "_") {
		return true
	}
	// cases.Caser is stateful, so one is built per call.
	return cases.Upper(language.Und).String(name) == name
}

func (camelCaseStyle) String() string {
	return CamelCase
}

// patternStyle accepts names containing a match of re. The pattern is not
// implicitly anchored.
type patternStyle struct {
	re     *regexp.Regexp
	source Spec
}

func (p patternStyle) Accepts(name string) bool {
	return p.re.MatchString(name)
}

func (p patternStyle) String() string {
	return p.source.String()
}
