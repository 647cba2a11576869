// Package linter applies identifier rules to ESTree documents.
//
// The linter decodes a document with the estree package, walks it with the
// walker package, and hands every Identifier to each enabled rule together
// with an ancestry view built from the walk. ESTree node types map onto the
// rule's parent kinds as follows:
//
//	MemberExpression      member access (object, property)
//	Property              object-literal property (key, value)
//	CallExpression        call (callee, arguments)
//	AssignmentExpression  assignment (left, right)
//
// Babel's OptionalMemberExpression, OptionalCallExpression and ObjectProperty
// map like their ESTree counterparts.
//
// Issues carry the rule name, message, severity, JSON path and, when the
// document has loc information, a 1-based line and column.
//
// # Usage
//
//	result, err := linter.LintWithOptions(
//	    linter.WithFilePath("app.estree.json"),
//	    linter.WithConfigFile(".idstyle.yaml"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, iss := range result.Issues {
//	    fmt.Println(iss.String())
//	}
//
// [Linter.LintFiles] lints many documents concurrently.
package linter
