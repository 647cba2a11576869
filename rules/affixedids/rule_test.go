package affixedids

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assignTarget(name string) *node {
	return inRole(name, KindAssignment, RoleLeft)
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		opts     []Option
		node     *node
		wantDiag bool
	}{
		{name: "snake case target", node: assignTarget("snake_id"), wantDiag: true},
		{name: "constant", node: assignTarget("CONSTANTS_ARE_FINE")},
		{name: "camel case", node: assignTarget("camelCase")},
		{name: "allowed prefix", opts: []Option{WithAllowedPrefixes(Literal("opt_"))}, node: assignTarget("opt_id")},
		{name: "prefix not at start", opts: []Option{WithAllowedPrefixes(Literal("opt_"))}, node: assignTarget("xopt_id"), wantDiag: true},
		{name: "ignored literal", opts: []Option{WithIgnoredIdentifiers(Literal("snake_id"))}, node: assignTarget("snake_id")},
		{
			name:     "ignored list matches the raw name",
			opts:     []Option{WithIgnoredIdentifiers(Literal("snake_id"))},
			node:     assignTarget("snake_id_"),
			wantDiag: true,
		},
		{
			name: "ignored pattern",
			opts: []Option{WithIgnoredIdentifiers(Pattern("_ignored_", "i"))},
			node: assignTarget("any_iGnOrEd_id"),
		},
		{name: "strips to nothing", node: assignTarget("__")},
		{
			name:     "leading underscore kept",
			opts:     []Option{WithStripPrefixUnderscores(false)},
			node:     assignTarget("_id"),
			wantDiag: true,
		},
		{
			name:     "pattern base style",
			opts:     []Option{WithBaseStyle(Pattern("^[a-z]", ""))},
			node:     assignTarget("Upper"),
			wantDiag: true,
		},
		{
			name: "property write with ignoreProperties",
			opts: []Option{WithIgnoreProperties(true)},
			node: memberProperty("snake_id", KindAssignment, RoleLeft),
		},
		{
			name:     "callee without ignoreCalls",
			opts:     []Option{WithIgnoreCalls(false)},
			node:     inRole("snake_id", KindCall, RoleCallee),
			wantDiag: true,
		},
		{
			name:     "object literal key",
			node:     inRole("snake_id", KindObjectProperty, RoleKey),
			wantDiag: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := New(tt.opts...)
			require.NoError(t, err)

			d, ok := Check[*node](rule, tree{}, tt.node.name, tt.node)
			assert.Equal(t, tt.wantDiag, ok)
			if tt.wantDiag {
				assert.Same(t, tt.node, d.Node)
				assert.Equal(t, tt.node.name, d.Name)
				assert.Equal(t, "Identifier '"+tt.node.name+"' does not conform.", d.Message)
			} else {
				assert.Nil(t, d.Node)
			}
		})
	}
}

func TestCheckObjectSideOfMemberAccess(t *testing.T) {
	rule, err := New(WithIgnoreProperties(true))
	require.NoError(t, err)

	// snake_id.prop = 3
	obj := ident("snake_id")
	prop := ident("prop")
	member := under(obj, KindMemberAccess, RoleObject)
	prop.parent, prop.role = member, RoleProperty
	under(member, KindAssignment, RoleLeft)

	d, ok := Check[*node](rule, tree{}, obj.name, obj)
	require.True(t, ok)
	assert.Same(t, obj, d.Node)
	assert.Equal(t, "Identifier 'snake_id' does not conform.", d.Message)

	_, ok = Check[*node](rule, tree{}, prop.name, prop)
	assert.False(t, ok)
}

func TestConforms(t *testing.T) {
	rule, err := New(WithAllowedSuffixes(Literal("_opt")), WithIgnoredIdentifiers(Pattern("^legacy_", "")))
	require.NoError(t, err)

	assert.True(t, rule.Conforms("id_opt"))
	assert.True(t, rule.Conforms("legacy_thing"))
	assert.True(t, rule.IsIgnored("legacy_thing"))
	assert.False(t, rule.IsIgnored("id_opt"))
	assert.False(t, rule.Conforms("id_optx"))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "Identifier 'snake_id' does not conform.", Message("snake_id"))
	assert.Equal(t, "Identifier '' does not conform.", Message(""))
}

func TestRuleMeta(t *testing.T) {
	meta := RuleMeta()
	assert.Equal(t, "affixed-ids", meta.Name)
	assert.Equal(t, "Stylistic Issues", meta.Category)
	assert.False(t, meta.Recommended)
	assert.NotEmpty(t, meta.Description)
}
