package analyzer

import (
	"flag"
	"fmt"
	"go/ast"
	"sync"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/pabigot/idstyle/config"
	"github.com/pabigot/idstyle/rules/affixedids"
)

const doc = `check identifier style after removing allowed affixes

affixedids reports identifiers that are neither camelCase nor ALL_CAPS once
leading and trailing underscores and any allowed prefix or suffix are
removed. Call positions and read selectors are exempt by default.`

// Analyzer checks Go identifiers with the default options.
var Analyzer = New()

type settings struct {
	base []affixedids.Option

	configPath           string
	baseStyle            string
	ignored              specList
	prefixes             specList
	suffixes             specList
	ignoreCalls          optBool
	ignoreProperties     optBool
	ignoreReadProperties optBool
	stripPrefix          optBool
	stripSuffix          optBool

	once     sync.Once
	rule     *affixedids.Rule
	disabled bool
	err      error
}

// New returns an Analyzer whose rule starts from opts. A -config file
// replaces opts; individual flags override both.
func New(opts ...affixedids.Option) *analysis.Analyzer {
	s := &settings{base: opts}
	a := &analysis.Analyzer{
		Name:     "affixedids",
		Doc:      doc,
		URL:      "https://pkg.go.dev/github.com/pabigot/idstyle/analyzer",
		Run:      s.run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}
	s.register(&a.Flags)
	return a
}

func (s *settings) register(fs *flag.FlagSet) {
	fs.StringVar(&s.configPath, "config", "", "idstyle configuration file to read affixed-ids options from")
	fs.StringVar(&s.baseStyle, "base-style", "", "base style: camelcase or /pattern/flags")
	fs.Var(&s.ignored, "ignored", "comma-separated identifiers that are never reported")
	fs.Var(&s.prefixes, "prefixes", "comma-separated allowed prefixes")
	fs.Var(&s.suffixes, "suffixes", "comma-separated allowed suffixes")
	fs.Var(&s.ignoreCalls, "ignore-calls", "exempt callees and call arguments (default true)")
	fs.Var(&s.ignoreProperties, "ignore-properties", "exempt selectors and composite literal keys (default false)")
	fs.Var(&s.ignoreReadProperties, "ignore-read-properties", "exempt selectors that are read (default true)")
	fs.Var(&s.stripPrefix, "strip-prefix-underscores", "remove leading underscores (default true)")
	fs.Var(&s.stripSuffix, "strip-suffix-underscores", "remove trailing underscores (default true)")
}

// options assembles the rule options. It reports false when the
// configuration file turns the rule off.
func (s *settings) options() ([]affixedids.Option, bool, error) {
	opts := append([]affixedids.Option{}, s.base...)

	if s.configPath != "" {
		cfg, err := config.Load(s.configPath)
		if err != nil {
			return nil, false, err
		}
		if rc, ok := cfg.Rules[affixedids.Name]; ok {
			if !rc.Severity.Enabled() {
				return nil, false, nil
			}
			if len(rc.Options) > 1 {
				return nil, false, fmt.Errorf("%s: expected a single options object", affixedids.Name)
			}
			if len(rc.Options) == 1 {
				raw, err := affixedids.Decode(rc.Options[0])
				if err != nil {
					return nil, false, err
				}
				opts = append(opts, affixedids.WithRaw(raw))
			}
		}
	}

	if s.baseStyle != "" {
		opts = append(opts, affixedids.WithBaseStyle(parseSpec(s.baseStyle)))
	}
	if s.ignored.set {
		opts = append(opts, affixedids.WithIgnoredIdentifiers(s.ignored.specs...))
	}
	if s.prefixes.set {
		opts = append(opts, affixedids.WithAllowedPrefixes(s.prefixes.specs...))
	}
	if s.suffixes.set {
		opts = append(opts, affixedids.WithAllowedSuffixes(s.suffixes.specs...))
	}
	if s.ignoreCalls.set {
		opts = append(opts, affixedids.WithIgnoreCalls(s.ignoreCalls.v))
	}
	if s.ignoreProperties.set {
		opts = append(opts, affixedids.WithIgnoreProperties(s.ignoreProperties.v))
	}
	if s.ignoreReadProperties.set {
		opts = append(opts, affixedids.WithIgnoreReadProperties(s.ignoreReadProperties.v))
	}
	if s.stripPrefix.set {
		opts = append(opts, affixedids.WithStripPrefixUnderscores(s.stripPrefix.v))
	}
	if s.stripSuffix.set {
		opts = append(opts, affixedids.WithStripSuffixUnderscores(s.stripSuffix.v))
	}
	return opts, true, nil
}

// build constructs the rule once; flags are fixed before the first pass.
func (s *settings) build() (*affixedids.Rule, bool, error) {
	s.once.Do(func() {
		opts, enabled, err := s.options()
		if err != nil || !enabled {
			s.disabled, s.err = !enabled, err
			return
		}
		s.rule, s.err = affixedids.New(opts...)
	})
	return s.rule, s.disabled, s.err
}

func (s *settings) run(pass *analysis.Pass) (any, error) {
	rule, disabled, err := s.build()
	if err != nil {
		return nil, fmt.Errorf("affixedids: %w", err)
	}
	if disabled {
		return nil, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	skip := make(map[*ast.File]bool)
	for _, f := range pass.Files {
		if ast.IsGenerated(f) {
			skip[f] = true
		}
	}

	nodeFilter := []ast.Node{(*ast.Ident)(nil)}
	insp.WithStack(nodeFilter, func(n ast.Node, push bool, stack []ast.Node) bool {
		if !push {
			return true
		}
		if f, ok := stack[0].(*ast.File); ok && skip[f] {
			return false
		}
		id := n.(*ast.Ident)
		tree := stackTree(stack)
		if parent, ok := tree.Parent(id); ok {
			switch parent.(type) {
			case *ast.File, *ast.ImportSpec:
				return true
			}
		}
		if d, bad := affixedids.Check(rule, tree, id.Name, ast.Node(id)); bad {
			pass.Report(analysis.Diagnostic{
				Pos:      id.Pos(),
				End:      id.End(),
				Category: affixedids.Name,
				Message:  d.Message,
			})
		}
		return true
	})
	return nil, nil
}
