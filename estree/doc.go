// Package estree decodes ESTree syntax trees into a generic node model.
//
// ESTree is the AST format shared by ECMAScript tools such as espree, acorn
// and @babel/parser (with the estree plugin). Any of them can dump a program
// as JSON; this package reads such dumps, in JSON or YAML, so that idstyle
// rules can run without embedding a JavaScript parser.
//
// Each [Node] keeps its type, identifier name, source location, child nodes
// per property (in ESTree visitor-key order) and the remaining properties as
// plain attributes. Nodes have no parent pointers; use the walker package for
// ancestry.
//
// JSON input is decoded with github.com/goccy/go-json. YAML input is decoded
// with go.yaml.in/yaml/v4.
//
// # Usage
//
//	result, err := estree.ParseWithOptions(estree.WithFilePath("app.json"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d identifiers\n", result.Stats.IdentifierCount)
package estree
