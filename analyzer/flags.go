package analyzer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pabigot/idstyle/rules/affixedids"
)

// specList is a comma-separated list of literals and /pattern/flags entries.
type specList struct {
	specs []affixedids.Spec
	set   bool
}

func (l *specList) String() string {
	if l == nil {
		return ""
	}
	parts := make([]string, len(l.specs))
	for i, s := range l.specs {
		parts[i] = s.String()
	}
	return strings.Join(parts, ",")
}

func (l *specList) Set(v string) error {
	l.specs = l.specs[:0]
	l.set = true
	for _, entry := range strings.Split(v, ",") {
		if entry == "" {
			continue
		}
		l.specs = append(l.specs, parseSpec(entry))
	}
	return nil
}

// parseSpec reads "/re/flags" as a pattern and anything else as a literal.
func parseSpec(s string) affixedids.Spec {
	if len(s) >= 2 && s[0] == '/' {
		if end := strings.LastIndexByte(s, '/'); end > 0 {
			return affixedids.Pattern(s[1:end], s[end+1:])
		}
	}
	return affixedids.Literal(s)
}

// optBool is a boolean flag that remembers whether it was given.
type optBool struct {
	v   bool
	set bool
}

func (b *optBool) String() string {
	if b == nil || !b.set {
		return ""
	}
	return strconv.FormatBool(b.v)
}

func (b *optBool) Set(v string) error {
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid boolean %q", v)
	}
	b.v, b.set = parsed, true
	return nil
}

func (b *optBool) IsBoolFlag() bool { return true }
