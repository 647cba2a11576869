package rules

import (
	"fmt"
	"slices"
	"sync"

	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/idserrors"
	"github.com/pabigot/idstyle/internal/severity"
	"github.com/pabigot/idstyle/rules/affixedids"
)

// Tree is the ancestry view a rule inspects around an identifier.
type Tree = affixedids.Ancestry[*estree.Node]

// Meta describes a rule.
type Meta struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Category    string   `json:"category" yaml:"category"`
	Recommended bool     `json:"recommended" yaml:"recommended"`
	Options     []string `json:"options,omitempty" yaml:"options,omitempty"`
}

// Rule is a configured rule instance. Implementations must be safe for
// concurrent use once constructed.
type Rule interface {
	// Meta returns the rule's metadata.
	Meta() Meta
	// CheckIdentifier returns a message when id, at its position in tree,
	// violates the rule.
	CheckIdentifier(tree Tree, id *estree.Node) (string, bool)
}

// Suggester is implemented by rules that can propose a conforming spelling
// for a name they report.
type Suggester interface {
	Suggest(name string) (string, bool)
}

// Configured is an enabled rule with the severity it reports at.
type Configured struct {
	Rule     Rule
	Severity severity.Severity
}

// Factory builds a Rule from the options that follow the severity in an
// ESLint-style rule entry. opts is empty when the entry has no options.
type Factory func(opts []any) (Rule, error)

type entry struct {
	meta    Meta
	factory Factory
}

// Registry maps rule names to factories. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{rules: make(map[string]entry)}
}

// Register adds a rule. Registering a name twice is an error.
func (r *Registry) Register(meta Meta, factory Factory) error {
	if meta.Name == "" {
		return fmt.Errorf("rules: rule name is required")
	}
	if factory == nil {
		return fmt.Errorf("rules: nil factory for %s", meta.Name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, dup := r.rules[meta.Name]; dup {
		return fmt.Errorf("rules: duplicate rule %s", meta.Name)
	}
	r.rules[meta.Name] = entry{meta: meta, factory: factory}
	return nil
}

// Lookup returns the metadata for name.
func (r *Registry) Lookup(name string) (Meta, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.rules[name]
	return e.meta, ok
}

// Names returns the registered rule names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Metas returns metadata for every registered rule, sorted by name.
func (r *Registry) Metas() []Meta {
	names := r.Names()
	metas := make([]Meta, 0, len(names))
	for _, name := range names {
		m, _ := r.Lookup(name)
		metas = append(metas, m)
	}
	return metas
}

// New builds the named rule. An unknown name is reported as a
// *idserrors.ConfigError.
func (r *Registry) New(name string, opts []any) (Rule, error) {
	r.mu.RLock()
	e, ok := r.rules[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &idserrors.ConfigError{Option: "rules." + name, Message: "unknown rule"}
	}
	rule, err := e.factory(opts)
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", name, err)
	}
	return rule, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the registry of built-in rules.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		if err := defaultRegistry.Register(AffixedIDsMeta(), NewAffixedIDs); err != nil {
			panic(err)
		}
	})
	return defaultRegistry
}
