// Package affixedids implements the affixed-ids naming rule.
//
// The rule checks that an identifier matches a base style (camelCase or
// CONSTANT_CASE by default) once leading and trailing underscores and at most
// one allowed prefix and one allowed suffix have been removed. Identifiers in
// certain syntactic positions (call callees and arguments, object literal
// keys, property reads) can be exempted.
//
// # Configuration
//
// Options are resolved once, either from functional options:
//
//	rule, err := affixedids.New(
//	    affixedids.WithAllowedPrefixes(affixedids.Literal("opt_"), affixedids.Pattern("any[a-zA-Z]*_", "")),
//	    affixedids.WithIgnoreProperties(true),
//	)
//
// or from a decoded configuration object (JSON or YAML):
//
//	var raw affixedids.RawOptions
//	if err := yaml.Unmarshal(data, &raw); err != nil { ... }
//	rule, err := affixedids.New(affixedids.WithRaw(raw))
//
// Malformed patterns, unknown flags and unknown option keys are reported as
// *idserrors.ConfigError when the rule is constructed.
//
// # Checking identifiers
//
// The rule does not own a syntax tree. Hosts describe their tree through the
// [Ancestry] interface and call [Check] once per identifier occurrence:
//
//	if d, ok := affixedids.Check(rule, tree, ident.Name, ident); ok {
//	    report(d.Node, d.Message)
//	}
//
// A [Rule] is immutable after construction and safe for concurrent use.
package affixedids
