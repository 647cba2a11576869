// Package walker provides depth-first traversal of ESTree node trees.
//
// Nodes are visited in visitor-key order (the order an ESLint rule sees them).
// Each handler receives a [WalkContext] carrying the JSON path of the node,
// the parent property it sits in, and the chain of ancestors, which is how
// rules answer "who is my parent" without parent pointers in the tree.
//
// # Flow control
//
// Handlers return an [Action]: Continue, SkipChildren, or Stop. A walk also
// ends early when its context is cancelled (see [WithUserContext]) or when the
// tree is deeper than [WithMaxDepth] allows.
//
// # Example
//
//	err := walker.Walk(result.Program,
//	    walker.WithIdentifierHandler(func(wc *walker.WalkContext, id *estree.Node) walker.Action {
//	        if p, ok := wc.ParentNode(); ok && p.Type == estree.TypeCallExpression {
//	            fmt.Println("call involving", id.Name)
//	        }
//	        return walker.Continue
//	    }),
//	)
package walker
