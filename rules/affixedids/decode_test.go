package affixedids

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"

	"github.com/pabigot/idstyle/idserrors"
)

func TestDecode(t *testing.T) {
	raw, err := Decode(map[string]any{
		"baseStyle":              map[string]any{"regex": map[string]any{"pattern": "^[a-z]"}},
		"ignoreCalls":            false,
		"ignoredIdentifiers":     []any{"snake_id", map[string]any{"pattern": "_ignored_", "flags": "i"}},
		"allowedPrefixes":        []any{"opt_", map[string]any{"regex": map[string]any{"pattern": "any[a-zA-Z]*_"}}},
		"allowedSuffixes":        []any{},
		"stripPrefixUnderscores": true,
	})
	require.NoError(t, err)

	require.NotNil(t, raw.BaseStyle)
	assert.Equal(t, Pattern("^[a-z]", ""), *raw.BaseStyle)
	require.NotNil(t, raw.IgnoreCalls)
	assert.False(t, *raw.IgnoreCalls)
	assert.Nil(t, raw.IgnoreProperties)
	assert.Equal(t, []Spec{Literal("snake_id"), Pattern("_ignored_", "i")}, raw.IgnoredIdentifiers)
	assert.Equal(t, []Spec{Literal("opt_"), Pattern("any[a-zA-Z]*_", "")}, raw.AllowedPrefixes)
	assert.NotNil(t, raw.AllowedSuffixes)
	assert.Empty(t, raw.AllowedSuffixes)
	require.NotNil(t, raw.StripPrefixUnderscores)
	assert.True(t, *raw.StripPrefixUnderscores)
}

func TestDecodeNil(t *testing.T) {
	raw, err := Decode(nil)
	require.NoError(t, err)
	assert.Equal(t, RawOptions{}, raw)
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name       string
		input      any
		wantOption string
	}{
		{name: "not an object", input: []any{"x"}, wantOption: ""},
		{name: "unknown option", input: map[string]any{"ignoreEverything": true}, wantOption: "ignoreEverything"},
		{name: "bool of wrong type", input: map[string]any{"ignoreCalls": "yes"}, wantOption: "ignoreCalls"},
		{name: "list of wrong type", input: map[string]any{"allowedPrefixes": "opt_"}, wantOption: "allowedPrefixes"},
		{name: "list entry of wrong type", input: map[string]any{"allowedPrefixes": []any{3}}, wantOption: "allowedPrefixes[0]"},
		{
			name:       "pattern missing",
			input:      map[string]any{"allowedSuffixes": []any{map[string]any{"flags": "i"}}},
			wantOption: "allowedSuffixes[0]",
		},
		{
			name:       "unknown descriptor key",
			input:      map[string]any{"allowedSuffixes": []any{map[string]any{"pattern": "x", "global": true}}},
			wantOption: "allowedSuffixes[0].global",
		},
		{
			name:       "regex wrapper with siblings",
			input:      map[string]any{"baseStyle": map[string]any{"regex": map[string]any{"pattern": "x"}, "pattern": "y"}},
			wantOption: "baseStyle",
		},
		{
			name:       "pattern not a string",
			input:      map[string]any{"baseStyle": map[string]any{"pattern": 7}},
			wantOption: "baseStyle.pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			var cfgErr *idserrors.ConfigError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantOption, cfgErr.Option)
		})
	}
}

func TestRawOptionsUnmarshalJSON(t *testing.T) {
	var raw RawOptions
	err := json.Unmarshal([]byte(`{"ignoreProperties": true, "allowedPrefixes": ["opt_", {"regex": {"pattern": "any[a-zA-Z]*_"}}]}`), &raw)
	require.NoError(t, err)
	require.NotNil(t, raw.IgnoreProperties)
	assert.True(t, *raw.IgnoreProperties)
	assert.Equal(t, []Spec{Literal("opt_"), Pattern("any[a-zA-Z]*_", "")}, raw.AllowedPrefixes)

	err = json.Unmarshal([]byte(`{"ignoreProperty": true}`), &raw)
	assert.ErrorIs(t, err, idserrors.ErrConfig)
}

func TestRawOptionsUnmarshalYAML(t *testing.T) {
	src := `
baseStyle: camelcase
ignoreReadProperties: false
allowedSuffixes:
  - pattern: _any[a-zA-Z]*
  - _opt
`
	var raw RawOptions
	require.NoError(t, yaml.Unmarshal([]byte(src), &raw))
	require.NotNil(t, raw.BaseStyle)
	assert.Equal(t, Literal(CamelCase), *raw.BaseStyle)
	require.NotNil(t, raw.IgnoreReadProperties)
	assert.False(t, *raw.IgnoreReadProperties)
	assert.Equal(t, []Spec{Pattern("_any[a-zA-Z]*", ""), Literal("_opt")}, raw.AllowedSuffixes)

	err := yaml.Unmarshal([]byte("stripPrefixUnderscores: 1\n"), &raw)
	assert.ErrorIs(t, err, idserrors.ErrConfig)
}
