// Package analyzer runs the affixed-ids rule over Go source as a
// golang.org/x/tools/go/analysis Analyzer.
//
// Go syntax maps onto the rule's parent kinds as follows:
//
//	SelectorExpr                 member access (X object, Sel property)
//	KeyValueExpr in CompositeLit object-literal property (Key, Value)
//	CallExpr                     call (Fun callee, Args arguments)
//	AssignStmt                   assignment (Lhs left, Rhs right)
//
// Package clause names, import names and generated files are not checked.
//
// Options come from an idstyle configuration file (-config) and are then
// overridden by individual flags:
//
//	affixedids-vet -prefixes=opt_,/any[a-zA-Z]*_/ -ignore-calls=false ./...
//
// List flags take comma-separated entries; an entry written as /pattern/flags
// is a pattern, anything else a literal.
package analyzer
