// Package testutil provides ESTree fixture builders and scenario archives
// for unit tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/pabigot/idstyle/internal/fileutil"
)

// Node is a generic ESTree node, as a JSON or YAML dump would hold it.
type Node = map[string]any

// Ident returns an Identifier node.
func Ident(name string) Node {
	return Node{"type": "Identifier", "name": name}
}

// Num returns a numeric Literal node.
func Num(v float64) Node {
	return Node{"type": "Literal", "value": v}
}

// Assign returns `left = right`.
func Assign(left, right Node) Node {
	return Node{"type": "AssignmentExpression", "operator": "=", "left": left, "right": right}
}

// Member returns `object.property`.
func Member(object, property Node) Node {
	return Node{"type": "MemberExpression", "computed": false, "object": object, "property": property}
}

// Index returns `object[property]`.
func Index(object, property Node) Node {
	return Node{"type": "MemberExpression", "computed": true, "object": object, "property": property}
}

// Call returns `callee(args...)`.
func Call(callee Node, args ...Node) Node {
	list := make([]any, len(args))
	for i, a := range args {
		list[i] = a
	}
	return Node{"type": "CallExpression", "callee": callee, "arguments": list}
}

// Object returns an object literal with the given properties.
func Object(props ...Node) Node {
	list := make([]any, len(props))
	for i, p := range props {
		list[i] = p
	}
	return Node{"type": "ObjectExpression", "properties": list}
}

// Prop returns an init Property `key: value`.
func Prop(key, value Node) Node {
	return Node{"type": "Property", "kind": "init", "key": key, "value": value}
}

// Binary returns `left op right`.
func Binary(op string, left, right Node) Node {
	return Node{"type": "BinaryExpression", "operator": op, "left": left, "right": right}
}

// Program wraps each expression in an ExpressionStatement.
func Program(exprs ...Node) Node {
	body := make([]any, len(exprs))
	for i, e := range exprs {
		body[i] = Node{"type": "ExpressionStatement", "expression": e}
	}
	return Node{"type": "Program", "sourceType": "script", "body": body}
}

// At sets a single-line loc on n (0-based column, as in ESTree) and returns n.
func At(n Node, line, column int) Node {
	width := 1
	if name, ok := n["name"].(string); ok {
		width = len(name)
	}
	n["loc"] = Node{
		"start": Node{"line": line, "column": column},
		"end":   Node{"line": line, "column": column + width},
	}
	return n
}

// MarshalJSON encodes n with go-json, failing the test on error.
func MarshalJSON(t *testing.T, n Node) []byte {
	t.Helper()
	data, err := json.Marshal(n)
	if err != nil {
		t.Fatalf("Failed to marshal node to JSON: %v", err)
	}
	return data
}

// WriteTempYAML marshals a document to YAML and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempYAML(t *testing.T, doc any) string {
	t.Helper()

	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal document to YAML: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "tree.yaml")
	if err := os.WriteFile(tmpFile, data, fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary YAML file: %v", err)
	}

	return tmpFile
}

// WriteTempJSON marshals a document to JSON and writes it to a temporary file.
// Returns the path to the temporary file.
// The file is automatically cleaned up when the test completes (via t.TempDir).
func WriteTempJSON(t *testing.T, doc any) string {
	t.Helper()

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		t.Fatalf("Failed to marshal document to JSON: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "tree.json")
	if err := os.WriteFile(tmpFile, data, fileutil.OwnerReadWrite); err != nil {
		t.Fatalf("Failed to write temporary JSON file: %v", err)
	}

	return tmpFile
}
