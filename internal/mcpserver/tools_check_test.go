package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckIdentifierTool(t *testing.T) {
	_, output, err := handleCheckIdentifier(context.Background(), &mcp.CallToolRequest{}, checkInput{
		Names: []string{"camelCase", "snake_id", "opt_fooBar", "__proto__", "legacy_name"},
		Options: map[string]any{
			"allowedPrefixes":    []any{"opt_"},
			"ignoredIdentifiers": []any{map[string]any{"regex": map[string]any{"pattern": "^legacy_"}}},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 4, output.Conforming)
	assert.Equal(t, 1, output.NonConforming)
	assert.Equal(t, []checkResult{
		{Name: "camelCase", Stripped: "camelCase", Conforms: true},
		{Name: "snake_id", Stripped: "snake_id", Conforms: false, Suggestion: "snakeId"},
		{Name: "opt_fooBar", Stripped: "fooBar", Conforms: true},
		{Name: "__proto__", Stripped: "proto", Conforms: true},
		{Name: "legacy_name", Ignored: true, Stripped: "legacy_name", Conforms: true},
	}, output.Results)
}

func TestCheckIdentifierTool_Errors(t *testing.T) {
	res, _, err := handleCheckIdentifier(context.Background(), &mcp.CallToolRequest{}, checkInput{})
	require.NoError(t, err)
	assert.True(t, res.IsError)

	res, _, err = handleCheckIdentifier(context.Background(), &mcp.CallToolRequest{}, checkInput{
		Names:   []string{"x"},
		Options: map[string]any{"baseStyle": "snake"},
	})
	require.NoError(t, err)
	require.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(*mcp.TextContent).Text, "baseStyle")
}
