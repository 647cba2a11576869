package estree

import (
	"fmt"
	"slices"
)

// Node types the rule engine and walker give special treatment.
const (
	TypeProgram              = "Program"
	TypeIdentifier           = "Identifier"
	TypeMemberExpression     = "MemberExpression"
	TypeProperty             = "Property"
	TypeCallExpression       = "CallExpression"
	TypeAssignmentExpression = "AssignmentExpression"
)

// Position is a point in the original source. Line is 1-based and Column is
// 0-based, as in ESTree.
type Position struct {
	Line   int `json:"line"   yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// SourceLocation is the ESTree loc object.
type SourceLocation struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end"   yaml:"end"`
}

// field is one child-bearing property of a node.
type field struct {
	nodes []*Node
	list  bool
}

// Node is one ESTree node. Child nodes are kept per property name; every
// other property (operator, computed, value, range, ...) is kept in Attrs.
//
// Nodes carry no parent pointer. Ancestry is available from the walker.
type Node struct {
	// Type is the ESTree node type, e.g. "Identifier"
	Type string
	// Name is the identifier text for Identifier nodes
	Name string
	// Loc is the source location, nil when the producer omitted it
	Loc *SourceLocation
	// Attrs holds scalar and non-node properties
	Attrs map[string]any

	fields map[string]field
}

// NewNode returns an empty node of the given type.
func NewNode(typ string) *Node {
	return &Node{Type: typ}
}

// NewIdentifier returns an Identifier node.
func NewIdentifier(name string) *Node {
	return &Node{Type: TypeIdentifier, Name: name}
}

// Set stores child under key and returns n for chaining. A nil child clears key.
func (n *Node) Set(key string, child *Node) *Node {
	if child == nil {
		delete(n.fields, key)
		return n
	}
	if n.fields == nil {
		n.fields = make(map[string]field)
	}
	n.fields[key] = field{nodes: []*Node{child}}
	return n
}

// SetList stores children under key as an array property and returns n.
func (n *Node) SetList(key string, children ...*Node) *Node {
	if n.fields == nil {
		n.fields = make(map[string]field)
	}
	n.fields[key] = field{nodes: slices.Clone(children), list: true}
	return n
}

// SetAttr stores a non-node property and returns n.
func (n *Node) SetAttr(key string, v any) *Node {
	if n.Attrs == nil {
		n.Attrs = make(map[string]any)
	}
	n.Attrs[key] = v
	return n
}

// Child returns the single node stored under key, or nil.
func (n *Node) Child(key string) *Node {
	f, ok := n.fields[key]
	if !ok || f.list || len(f.nodes) == 0 {
		return nil
	}
	return f.nodes[0]
}

// Children returns the nodes stored under key. Array holes are nil entries.
func (n *Node) Children(key string) []*Node {
	return n.fields[key].nodes
}

// IsList reports whether key holds an array property.
func (n *Node) IsList(key string) bool {
	return n.fields[key].list
}

// Keys returns the child-bearing property names in traversal order: the
// ESTree visitor keys for n.Type first, then any others sorted by name.
func (n *Node) Keys() []string {
	if len(n.fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(n.fields))
	known := visitorKeys[n.Type]
	for _, k := range known {
		if _, ok := n.fields[k]; ok {
			keys = append(keys, k)
		}
	}
	var extra []string
	for k := range n.fields {
		if !slices.Contains(known, k) {
			extra = append(extra, k)
		}
	}
	slices.Sort(extra)
	return append(keys, extra...)
}

// FieldOf returns the property of n that holds child, and its array index
// (-1 for non-array properties). It returns "" when child is not a direct child.
func (n *Node) FieldOf(child *Node) (string, int) {
	for _, k := range n.Keys() {
		f := n.fields[k]
		for i, c := range f.nodes {
			if c == child {
				if f.list {
					return k, i
				}
				return k, -1
			}
		}
	}
	return "", -1
}

// Bool returns the boolean attribute key, false if absent or not a bool.
func (n *Node) Bool(key string) bool {
	b, _ := n.Attrs[key].(bool)
	return b
}

// IsIdentifier reports whether n is an Identifier node.
func (n *Node) IsIdentifier() bool {
	return n != nil && n.Type == TypeIdentifier
}

// String returns a short description such as Identifier(snake_id).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	if n.Name != "" {
		return fmt.Sprintf("%s(%s)", n.Type, n.Name)
	}
	return n.Type
}
