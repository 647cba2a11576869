package affixedids

import "fmt"

// Kind is the syntactic category of a tree node, as far as the rule cares.
type Kind int

const (
	// KindOther is any node the rule has no special handling for.
	KindOther Kind = iota
	// KindMemberAccess is a member access such as obj.prop.
	KindMemberAccess
	// KindObjectProperty is a key/value entry of an object literal.
	KindObjectProperty
	// KindCall is a call expression.
	KindCall
	// KindAssignment is an assignment expression or statement.
	KindAssignment
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindOther:
		return "other"
	case KindMemberAccess:
		return "member-access"
	case KindObjectProperty:
		return "object-property"
	case KindCall:
		return "call"
	case KindAssignment:
		return "assignment"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Role is the slot a child occupies within its parent.
type Role int

const (
	RoleOther    Role = iota
	RoleObject        // object side of a member access
	RoleProperty      // property side of a member access
	RoleKey           // key of an object literal property
	RoleValue         // value of an object literal property
	RoleCallee        // function being called
	RoleArgument      // call argument
	RoleLeft          // assignment target
	RoleRight         // assigned value
)

// Ancestry gives the rule read-only access to a host's syntax tree.
// Only the immediate parent and, for member accesses, the grandparent of an
// identifier are ever inspected.
type Ancestry[N any] interface {
	// Parent returns the immediate parent of n, or false at the root.
	Parent(n N) (N, bool)
	// Kind classifies n.
	Kind(n N) Kind
	// Role reports which slot of parent holds child.
	Role(parent, child N) Role
}

// Verdict is the outcome of classifying an occurrence's context.
type Verdict int

const (
	// Diagnose means the occurrence must be reported.
	Diagnose Verdict = iota
	// Exempt means the occurrence's position suppresses the diagnostic.
	Exempt
)

// String returns a string representation of the verdict.
func (v Verdict) String() string {
	if v == Exempt {
		return "exempt"
	}
	return "diagnose"
}

// Classify decides whether the position of node exempts it. It is only
// meaningful for names that already failed the base style.
func Classify[N any](tree Ancestry[N], node N, o *Options) Verdict {
	parent, ok := tree.Parent(node)
	if !ok {
		return Diagnose
	}

	switch tree.Kind(parent) {
	case KindMemberAccess:
		return classifyMember(tree, node, parent, o)
	case KindObjectProperty:
		if o.IgnoreProperties && tree.Role(parent, node) == RoleKey {
			return Exempt
		}
	case KindCall:
		if o.IgnoreCalls {
			return Exempt
		}
	}
	return Diagnose
}

func classifyMember[N any](tree Ancestry[N], node, member N, o *Options) Verdict {
	// The object of a member access is always a use of the identifier itself.
	if tree.Role(member, node) == RoleObject {
		return Diagnose
	}
	if o.IgnoreProperties {
		return Exempt
	}

	grand, ok := tree.Parent(member)
	if !ok || tree.Kind(grand) != KindAssignment {
		if o.IgnoreReadProperties {
			return Exempt
		}
		return Diagnose
	}

	// Writes through a member access stay diagnosable.
	if o.IgnoreReadProperties && tree.Role(grand, member) == RoleRight {
		return Exempt
	}
	return Diagnose
}
