package walker

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/idserrors"
)

// sampleTree builds: foo_bar(obj.snake_prop, [, x]);
func sampleTree() *estree.Node {
	member := estree.NewNode(estree.TypeMemberExpression).
		Set("object", estree.NewIdentifier("obj")).
		Set("property", estree.NewIdentifier("snake_prop"))
	array := estree.NewNode("ArrayExpression").SetList("elements", nil, estree.NewIdentifier("x"))
	call := estree.NewNode(estree.TypeCallExpression).
		SetList("arguments", member, array).
		Set("callee", estree.NewIdentifier("foo_bar"))
	stmt := estree.NewNode("ExpressionStatement").Set("expression", call)
	return estree.NewNode(estree.TypeProgram).SetList("body", stmt)
}

func TestWalkOrder(t *testing.T) {
	var paths []string
	err := Walk(sampleTree(), WithNodeHandler(func(wc *WalkContext, n *estree.Node) Action {
		paths = append(paths, wc.JSONPath+" "+n.String())
		return Continue
	}))
	require.NoError(t, err)

	want := []string{
		"$ Program",
		"$.body[0] ExpressionStatement",
		"$.body[0].expression CallExpression",
		"$.body[0].expression.callee Identifier(foo_bar)",
		"$.body[0].expression.arguments[0] MemberExpression",
		"$.body[0].expression.arguments[0].object Identifier(obj)",
		"$.body[0].expression.arguments[0].property Identifier(snake_prop)",
		"$.body[0].expression.arguments[1] ArrayExpression",
		"$.body[0].expression.arguments[1].elements[1] Identifier(x)",
	}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("visit order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkContextFields(t *testing.T) {
	type seen struct {
		Name       string
		Field      string
		Index      int
		Depth      int
		ParentType string
		ParentSlot string
	}
	var got []seen
	err := Walk(sampleTree(), WithIdentifierHandler(func(wc *WalkContext, id *estree.Node) Action {
		p, ok := wc.ParentNode()
		require.True(t, ok)
		got = append(got, seen{
			Name:       id.Name,
			Field:      wc.Field,
			Index:      wc.Index,
			Depth:      wc.Depth(),
			ParentType: p.Type,
			ParentSlot: wc.Parent.Field,
		})
		return Continue
	}))
	require.NoError(t, err)

	want := []seen{
		{"foo_bar", "callee", -1, 3, "CallExpression", "expression"},
		{"obj", "object", -1, 4, "MemberExpression", "arguments"},
		{"snake_prop", "property", -1, 4, "MemberExpression", "arguments"},
		{"x", "elements", 1, 4, "ArrayExpression", "arguments"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("identifier contexts mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkActions(t *testing.T) {
	t.Run("SkipChildren", func(t *testing.T) {
		var names []string
		err := Walk(sampleTree(),
			WithNodeHandler(func(_ *WalkContext, n *estree.Node) Action {
				if n.Type == estree.TypeMemberExpression {
					return SkipChildren
				}
				return Continue
			}),
			WithIdentifierHandler(func(_ *WalkContext, id *estree.Node) Action {
				names = append(names, id.Name)
				return Continue
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{"foo_bar", "x"}, names)
	})

	t.Run("Stop", func(t *testing.T) {
		var names []string
		err := Walk(sampleTree(), WithIdentifierHandler(func(_ *WalkContext, id *estree.Node) Action {
			names = append(names, id.Name)
			if id.Name == "obj" {
				return Stop
			}
			return Continue
		}))
		require.NoError(t, err)
		assert.Equal(t, []string{"foo_bar", "obj"}, names)
	})

	t.Run("post handler", func(t *testing.T) {
		var order []string
		err := Walk(sampleTree(),
			WithNodeHandler(func(_ *WalkContext, n *estree.Node) Action {
				if n.Type == "ArrayExpression" {
					return SkipChildren
				}
				return Continue
			}),
			WithNodePostHandler(func(_ *WalkContext, n *estree.Node) {
				order = append(order, n.String())
			}),
		)
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Identifier(foo_bar)",
			"Identifier(obj)",
			"Identifier(snake_prop)",
			"MemberExpression",
			"CallExpression",
			"ExpressionStatement",
			"Program",
		}, order)
	})
}

func TestWalkMaxDepth(t *testing.T) {
	err := Walk(sampleTree(), WithMaxDepth(2))
	require.Error(t, err)
	var rle *idserrors.ResourceLimitError
	require.True(t, errors.As(err, &rle))
	assert.Equal(t, "tree_depth", rle.ResourceType)
	assert.Equal(t, int64(2), rle.Limit)

	assert.NoError(t, Walk(sampleTree(), WithMaxDepth(0)), "non-positive keeps the default")
}

func TestWalkContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var visited int
	err := Walk(sampleTree(),
		WithUserContext(ctx),
		WithNodeHandler(func(wc *WalkContext, _ *estree.Node) Action {
			visited++
			assert.Equal(t, ctx, wc.Context())
			if visited == 2 {
				cancel()
			}
			return Continue
		}),
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 2, visited)
}

func TestWalkNilRoot(t *testing.T) {
	err := Walk(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil root")
}

func TestAction(t *testing.T) {
	assert.Equal(t, "Continue", Continue.String())
	assert.Equal(t, "SkipChildren", SkipChildren.String())
	assert.Equal(t, "Stop", Stop.String())
	assert.Equal(t, "Action(7)", Action(7).String())
	assert.True(t, Stop.IsValid())
	assert.False(t, Action(-1).IsValid())
}
