package affixedids

import (
	"strings"

	"github.com/pabigot/idstyle/internal/naming"
)

// Strip removes the permitted affixes from name. In order: the leading
// underscore run, the trailing underscore run, the first matching allowed
// prefix and the first matching allowed suffix. Each step is skipped when
// the corresponding option is off or the list is not configured.
func (o *Options) Strip(name string) string {
	start, end := o.span(name)
	return name[start:end]
}

// span returns the bounds of the part of name left after stripping.
func (o *Options) span(name string) (start, end int) {
	end = len(name)
	if o.StripPrefixUnderscores {
		start = len(name) - len(strings.TrimLeft(name, "_"))
	}
	if o.StripSuffixUnderscores {
		end = start + len(strings.TrimRight(name[start:], "_"))
	}
	for _, p := range o.AllowedPrefixes {
		if n := p.prefixEnd(name[start:end]); n > 0 {
			start += n
			break
		}
	}
	for _, s := range o.AllowedSuffixes {
		if n := s.suffixStart(name[start:end]); n > 0 {
			end = start + n
			break
		}
	}
	return start, end
}

// Suggest proposes a conforming spelling of name: the stripped part is
// rewritten in camelCase and the affixes are kept as written. It reports
// false when name already conforms or the rewrite would not satisfy the
// base style either.
func (r *Rule) Suggest(name string) (string, bool) {
	if r.Conforms(name) {
		return "", false
	}
	start, end := r.opts.span(name)
	core := naming.ToCamelCase(name[start:end])
	if core == "" || !r.opts.BaseStyle.Accepts(core) {
		return "", false
	}
	return name[:start] + core + name[end:], true
}
