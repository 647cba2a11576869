package walker

import (
	"context"

	"github.com/pabigot/idstyle/estree"
)

// WalkContext provides contextual information about the current node being visited.
// It follows the http.Request pattern for context access.
type WalkContext struct {
	// JSONPath is the full JSON path to the current node.
	// Example: "$.body[0].expression.left.property"
	JSONPath string

	// Field is the parent property holding the current node ("" for the root).
	Field string

	// Index is the position within Field for array properties, -1 otherwise.
	Index int

	// Parent describes the immediate parent. nil for the root.
	Parent *ParentInfo

	ctx context.Context
}

// Context returns the context.Context for cancellation and deadline propagation.
// Returns context.Background() if no context was set.
func (wc *WalkContext) Context() context.Context {
	if wc.ctx == nil {
		return context.Background()
	}
	return wc.ctx
}

// WithContext returns a shallow copy of WalkContext with the new context.
func (wc *WalkContext) WithContext(ctx context.Context) *WalkContext {
	wc2 := *wc
	wc2.ctx = ctx
	return &wc2
}

// IsRoot reports whether the current node is the walk root.
func (wc *WalkContext) IsRoot() bool {
	return wc.Parent == nil
}

// ParentNode returns the immediate parent node, if any.
func (wc *WalkContext) ParentNode() (*estree.Node, bool) {
	if wc.Parent == nil {
		return nil, false
	}
	return wc.Parent.Node, true
}
