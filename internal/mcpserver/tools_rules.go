package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pabigot/idstyle/rules"
)

type rulesInput struct{}

type rulesOutput struct {
	Rules []rules.Meta `json:"rules"`
}

func handleRules(_ context.Context, _ *mcp.CallToolRequest, _ rulesInput) (*mcp.CallToolResult, rulesOutput, error) {
	return nil, rulesOutput{Rules: rules.Default().Metas()}, nil
}
