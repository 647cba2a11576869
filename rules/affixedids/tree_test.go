package affixedids

// node is a minimal parent-linked tree used to drive the classifier.
type node struct {
	name   string
	kind   Kind
	role   Role
	parent *node
}

type tree struct{}

func (tree) Parent(n *node) (*node, bool) { return n.parent, n.parent != nil }
func (tree) Kind(n *node) Kind            { return n.kind }
func (tree) Role(_, child *node) Role     { return child.role }

func ident(name string) *node {
	return &node{name: name}
}

// under attaches child to a new node of kind k in role r and returns the parent.
func under(child *node, k Kind, r Role) *node {
	p := &node{kind: k}
	child.parent = p
	child.role = r
	return p
}

// memberProperty builds `<obj>.<name>` and places the member access in role r
// of a grandparent of kind gk. It returns the property identifier.
func memberProperty(name string, gk Kind, r Role) *node {
	id := ident(name)
	member := under(id, KindMemberAccess, RoleProperty)
	under(member, gk, r)
	return id
}

// inRole returns an identifier held in role r of a parent of kind k.
func inRole(name string, k Kind, r Role) *node {
	id := ident(name)
	under(id, k, r)
	return id
}
