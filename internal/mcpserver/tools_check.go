package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pabigot/idstyle/rules/affixedids"
)

type checkInput struct {
	Names   []string       `json:"names"             jsonschema:"Identifier names to check"`
	Options map[string]any `json:"options,omitempty" jsonschema:"affixed-ids options object (defaults when omitted)"`
}

type checkResult struct {
	Name       string `json:"name"`
	Ignored    bool   `json:"ignored"`
	Stripped   string `json:"stripped"`
	Conforms   bool   `json:"conforms"`
	Suggestion string `json:"suggestion,omitempty"`
}

type checkOutput struct {
	Conforming    int           `json:"conforming"`
	NonConforming int           `json:"non_conforming"`
	Results       []checkResult `json:"results"`
}

func handleCheckIdentifier(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	if len(input.Names) == 0 {
		return errResult(fmt.Errorf("names must not be empty")), checkOutput{}, nil
	}
	raw, err := affixedids.Decode(input.Options)
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}
	rule, err := affixedids.New(affixedids.WithRaw(raw))
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{Results: make([]checkResult, 0, len(input.Names))}
	for _, name := range input.Names {
		res := checkResult{
			Name:     name,
			Ignored:  rule.IsIgnored(name),
			Stripped: rule.Options().Strip(name),
			Conforms: rule.Conforms(name),
		}
		res.Suggestion, _ = rule.Suggest(name)
		if res.Conforms {
			output.Conforming++
		} else {
			output.NonConforming++
		}
		output.Results = append(output.Results, res)
	}
	return nil, output, nil
}
