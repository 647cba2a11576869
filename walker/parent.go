package walker

import "github.com/pabigot/idstyle/estree"

// ParentInfo provides information about a parent node in the traversal.
type ParentInfo struct {
	// Node is the parent node
	Node *estree.Node

	// JSONPath is the JSON path to this parent node
	JSONPath string

	// Field and Index locate Node within its own parent, as in WalkContext.
	Field string
	Index int

	// Parent is the grandparent, enabling ancestor chain traversal.
	// nil for the root.
	Parent *ParentInfo
}

// Ancestors returns all ancestors from immediate parent to root.
// The first element is the immediate parent, the last is the root.
func (wc *WalkContext) Ancestors() []*ParentInfo {
	var ancestors []*ParentInfo
	for p := wc.Parent; p != nil; p = p.Parent {
		ancestors = append(ancestors, p)
	}
	return ancestors
}

// Depth returns the number of ancestors (nesting depth).
func (wc *WalkContext) Depth() int {
	depth := 0
	for p := wc.Parent; p != nil; p = p.Parent {
		depth++
	}
	return depth
}

// NearestOfType returns the closest ancestor with the given ESTree type.
func (wc *WalkContext) NearestOfType(typ string) (*estree.Node, bool) {
	for p := wc.Parent; p != nil; p = p.Parent {
		if p.Node.Type == typ {
			return p.Node, true
		}
	}
	return nil, false
}
