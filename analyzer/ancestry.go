package analyzer

import (
	"go/ast"
	"slices"

	"github.com/pabigot/idstyle/rules/affixedids"
)

// stackTree answers ancestry questions from an inspector traversal stack.
// The stack runs from the *ast.File down to the current node.
type stackTree []ast.Node

var _ affixedids.Ancestry[ast.Node] = stackTree(nil)

func (s stackTree) Parent(n ast.Node) (ast.Node, bool) {
	for i := len(s) - 1; i > 0; i-- {
		if s[i] == n {
			return s[i-1], true
		}
	}
	return nil, false
}

func (s stackTree) Kind(n ast.Node) affixedids.Kind {
	switch n.(type) {
	case *ast.SelectorExpr:
		return affixedids.KindMemberAccess
	case *ast.KeyValueExpr:
		if p, ok := s.Parent(n); ok {
			if _, lit := p.(*ast.CompositeLit); lit {
				return affixedids.KindObjectProperty
			}
		}
	case *ast.CallExpr:
		return affixedids.KindCall
	case *ast.AssignStmt:
		return affixedids.KindAssignment
	}
	return affixedids.KindOther
}

func (s stackTree) Role(parent, child ast.Node) affixedids.Role {
	switch p := parent.(type) {
	case *ast.SelectorExpr:
		switch child {
		case ast.Node(p.X):
			return affixedids.RoleObject
		case ast.Node(p.Sel):
			return affixedids.RoleProperty
		}
	case *ast.KeyValueExpr:
		switch child {
		case ast.Node(p.Key):
			return affixedids.RoleKey
		case ast.Node(p.Value):
			return affixedids.RoleValue
		}
	case *ast.CallExpr:
		if child == ast.Node(p.Fun) {
			return affixedids.RoleCallee
		}
		if containsExpr(p.Args, child) {
			return affixedids.RoleArgument
		}
	case *ast.AssignStmt:
		if containsExpr(p.Lhs, child) {
			return affixedids.RoleLeft
		}
		if containsExpr(p.Rhs, child) {
			return affixedids.RoleRight
		}
	}
	return affixedids.RoleOther
}

func containsExpr(list []ast.Expr, n ast.Node) bool {
	return slices.ContainsFunc(list, func(e ast.Expr) bool { return ast.Node(e) == n })
}
