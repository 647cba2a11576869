package affixedids

import "fmt"

// Name is the registry name of the rule.
const Name = "affixed-ids"

// Meta describes the rule.
type Meta struct {
	Name        string
	Description string
	Category    string
	Recommended bool
}

// RuleMeta returns the rule's metadata.
func RuleMeta() Meta {
	return Meta{
		Name:        Name,
		Description: "Enforce ID style excluding affixes",
		Category:    "Stylistic Issues",
		Recommended: false,
	}
}

// Message returns the diagnostic text for name.
func Message(name string) string {
	return fmt.Sprintf("Identifier '%s' does not conform.", name)
}

// Rule is an activated affixed-ids rule with resolved options.
type Rule struct {
	opts *Options
}

// New resolves opts into a Rule. Invalid configuration is reported as an
// *idserrors.ConfigError wrapped with the package prefix.
func New(opts ...Option) (*Rule, error) {
	var raw RawOptions
	for _, opt := range opts {
		opt(&raw)
	}
	o, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("affixedids: %w", err)
	}
	return &Rule{opts: o}, nil
}

// Options returns the resolved options. Callers must not modify them.
func (r *Rule) Options() *Options {
	return r.opts
}

// IsIgnored reports whether name is on the ignored identifier list.
func (r *Rule) IsIgnored(name string) bool {
	for _, m := range r.opts.IgnoredIdentifiers {
		if m.Matches(name) {
			return true
		}
	}
	return false
}

// Conforms reports whether name needs no diagnostic regardless of where it
// appears: it is ignored, strips to nothing, or passes the base style.
func (r *Rule) Conforms(name string) bool {
	if r.IsIgnored(name) {
		return true
	}
	stripped := r.opts.Strip(name)
	return stripped == "" || r.opts.BaseStyle.Accepts(stripped)
}

// Diagnostic reports a non-conforming identifier occurrence.
type Diagnostic[N any] struct {
	// Node is the identifier node the diagnostic is attached to
	Node N
	// Name is the original, unstripped identifier
	Name string
	// Message is the diagnostic text
	Message string
}

// Check evaluates one identifier occurrence and returns a diagnostic when it
// does not conform and its position does not exempt it.
func Check[N any](r *Rule, tree Ancestry[N], name string, node N) (Diagnostic[N], bool) {
	if r.Conforms(name) {
		return Diagnostic[N]{}, false
	}
	if Classify(tree, node, r.opts) == Exempt {
		return Diagnostic[N]{}, false
	}
	return Diagnostic[N]{Node: node, Name: name, Message: Message(name)}, true
}
