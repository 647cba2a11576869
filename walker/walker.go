package walker

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/idserrors"
)

// Action controls the walker's behavior after visiting a node.
type Action int

const (
	// Continue continues walking normally, visiting children and siblings.
	Continue Action = iota

	// SkipChildren skips all children of the current node but continues with siblings.
	SkipChildren

	// Stop stops the walk immediately. No more nodes will be visited.
	Stop
)

// IsValid returns true if the action is one of the defined constants.
func (a Action) IsValid() bool {
	return a >= Continue && a <= Stop
}

// String returns a string representation of the action.
func (a Action) String() string {
	switch a {
	case Continue:
		return "Continue"
	case SkipChildren:
		return "SkipChildren"
	case Stop:
		return "Stop"
	default:
		return fmt.Sprintf("Action(%d)", a)
	}
}

// NodeHandler is called for every node, before its children.
type NodeHandler func(wc *WalkContext, n *estree.Node) Action

// IdentifierHandler is called for each Identifier node, after the NodeHandler.
type IdentifierHandler func(wc *WalkContext, id *estree.Node) Action

// NodePostHandler is called for every node after its children were walked.
// It is not called for nodes whose handler returned SkipChildren or Stop.
type NodePostHandler func(wc *WalkContext, n *estree.Node)

// DefaultMaxDepth is the default nesting limit for a walk.
const DefaultMaxDepth = estree.DefaultMaxDepth

// Walker traverses ESTree nodes depth-first in visitor-key order.
type Walker struct {
	onNode       NodeHandler
	onIdentifier IdentifierHandler
	onNodePost   NodePostHandler

	maxDepth int
	userCtx  context.Context

	// Input sources for WalkWithOptions
	filePath *string
	parsed   *estree.ParseResult

	stopped bool
}

// New creates a new Walker with default settings.
func New() *Walker {
	return &Walker{maxDepth: DefaultMaxDepth}
}

// Walk traverses the tree rooted at root and calls registered handlers for
// each node. It returns a *idserrors.ResourceLimitError when the tree is
// deeper than the limit, and the context error if the context is cancelled.
func Walk(root *estree.Node, opts ...Option) error {
	if root == nil {
		return fmt.Errorf("walker: nil root node")
	}
	w := New()
	for _, opt := range opts {
		opt(w)
	}
	return w.walk(root)
}

func (w *Walker) walk(root *estree.Node) error {
	w.stopped = false
	ctx := w.userCtx
	if ctx == nil {
		ctx = context.Background()
	}
	return w.visit(root, &WalkContext{JSONPath: "$", Index: -1, ctx: ctx}, 0)
}

func (w *Walker) visit(n *estree.Node, wc *WalkContext, depth int) error {
	if err := wc.ctx.Err(); err != nil {
		return fmt.Errorf("walker: %w", err)
	}
	if depth > w.maxDepth {
		return &idserrors.ResourceLimitError{
			ResourceType: "tree_depth",
			Limit:        int64(w.maxDepth),
			Actual:       int64(depth),
			Message:      "at " + wc.JSONPath,
		}
	}

	if w.onNode != nil {
		if !w.handleAction(w.onNode(wc, n)) {
			return nil
		}
	}
	if w.onIdentifier != nil && n.IsIdentifier() {
		if !w.handleAction(w.onIdentifier(wc, n)) {
			return nil
		}
	}

	keys := n.Keys()
	if len(keys) > 0 {
		parent := &ParentInfo{
			Node:     n,
			JSONPath: wc.JSONPath,
			Field:    wc.Field,
			Index:    wc.Index,
			Parent:   wc.Parent,
		}
		for _, key := range keys {
			base := wc.JSONPath + "." + key
			if !n.IsList(key) {
				child := n.Child(key)
				cwc := &WalkContext{JSONPath: base, Field: key, Index: -1, Parent: parent, ctx: wc.ctx}
				if err := w.visit(child, cwc, depth+1); err != nil {
					return err
				}
				if w.stopped {
					return nil
				}
				continue
			}
			for i, child := range n.Children(key) {
				if child == nil {
					continue
				}
				cwc := &WalkContext{
					JSONPath: base + "[" + strconv.Itoa(i) + "]",
					Field:    key,
					Index:    i,
					Parent:   parent,
					ctx:      wc.ctx,
				}
				if err := w.visit(child, cwc, depth+1); err != nil {
					return err
				}
				if w.stopped {
					return nil
				}
			}
		}
	}

	if w.onNodePost != nil {
		w.onNodePost(wc, n)
	}
	return nil
}

// handleAction processes the action returned by a handler.
// Returns true if walking should continue to children.
func (w *Walker) handleAction(action Action) bool {
	switch action {
	case Stop:
		w.stopped = true
		return false
	case SkipChildren:
		return false
	default:
		return true
	}
}
