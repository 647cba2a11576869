// Package idstyle checks identifier naming in syntax trees against a base
// style after permitted affixes are stripped.
//
// The checking logic lives in a single rule, affixed-ids, which judges one
// identifier occurrence at a time: it strips leading and trailing underscore
// runs and at most one configured prefix and suffix, tests the remainder
// against a base style (camelCase or ALL_CAPS by default, or a pattern), and
// exempts occurrences whose syntactic role makes the name externally imposed
// (call sites, object keys, property reads).
//
// # Packages
//
//   - rules/affixedids: the rule core, independent of any particular tree
//   - rules: the rule registry and rule metadata
//   - estree: ESTree documents (JSON or YAML) decoded into a node model
//   - walker: depth-first traversal with parent tracking
//   - linter: applies configured rules to ESTree documents
//   - config: ESLint-style rule configuration files
//   - analyzer: a go/analysis pass applying the rule to Go identifiers
//   - idserrors: structured error types
//
// # Quick Start
//
// Lint an ESTree document produced by any ECMAScript parser:
//
//	result, err := linter.LintWithOptions(
//	    linter.WithFilePath("app.estree.json"),
//	    linter.WithRuleOptions(affixedids.WithAllowedPrefixes(affixedids.Literal("opt"))),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, iss := range result.Issues {
//	    fmt.Println(iss.String())
//	}
//
// Or from the command line, reading a tree from stdin:
//
//	npx espree-cli app.js | idstyle lint -
//
// Check a Go package:
//
//	go run github.com/pabigot/idstyle/cmd/affixedids-vet ./...
package idstyle
