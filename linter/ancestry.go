package linter

import (
	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/rules/affixedids"
	"github.com/pabigot/idstyle/walker"
)

// ancestry answers parent, kind and role questions for one identifier from
// the walker's parent chain.
type ancestry struct {
	wc   *walker.WalkContext
	node *estree.Node
}

var _ affixedids.Ancestry[*estree.Node] = ancestry{}

func (a ancestry) Parent(n *estree.Node) (*estree.Node, bool) {
	if n == a.node {
		if a.wc.Parent == nil {
			return nil, false
		}
		return a.wc.Parent.Node, true
	}
	for p := a.wc.Parent; p != nil; p = p.Parent {
		if p.Node == n {
			if p.Parent == nil {
				return nil, false
			}
			return p.Parent.Node, true
		}
	}
	return nil, false
}

func (a ancestry) Kind(n *estree.Node) affixedids.Kind {
	return KindOf(n)
}

func (a ancestry) Role(parent, child *estree.Node) affixedids.Role {
	return RoleOf(parent, child)
}

// KindOf maps an ESTree node type to the rule's parent kinds. Babel's
// optional-chain and ObjectProperty variants map like their ESTree forms.
func KindOf(n *estree.Node) affixedids.Kind {
	switch n.Type {
	case estree.TypeMemberExpression, "OptionalMemberExpression":
		return affixedids.KindMemberAccess
	case estree.TypeProperty, "ObjectProperty":
		return affixedids.KindObjectProperty
	case estree.TypeCallExpression, "OptionalCallExpression":
		return affixedids.KindCall
	case estree.TypeAssignmentExpression:
		return affixedids.KindAssignment
	default:
		return affixedids.KindOther
	}
}

// RoleOf reports which slot of parent holds child.
func RoleOf(parent, child *estree.Node) affixedids.Role {
	field, _ := parent.FieldOf(child)
	switch KindOf(parent) {
	case affixedids.KindMemberAccess:
		switch field {
		case "object":
			return affixedids.RoleObject
		case "property":
			return affixedids.RoleProperty
		}
	case affixedids.KindObjectProperty:
		switch field {
		case "key":
			return affixedids.RoleKey
		case "value":
			return affixedids.RoleValue
		}
	case affixedids.KindCall:
		switch field {
		case "callee":
			return affixedids.RoleCallee
		case "arguments":
			return affixedids.RoleArgument
		}
	case affixedids.KindAssignment:
		switch field {
		case "left":
			return affixedids.RoleLeft
		case "right":
			return affixedids.RoleRight
		}
	}
	return affixedids.RoleOther
}
