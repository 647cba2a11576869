package mcpserver

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pabigot/idstyle/config"
	"github.com/pabigot/idstyle/internal/issues"
	"github.com/pabigot/idstyle/internal/severity"
	"github.com/pabigot/idstyle/linter"
	"github.com/pabigot/idstyle/rules"
)

type lintInput struct {
	Tree     treeInput      `json:"tree"                jsonschema:"The ESTree document to lint"`
	Options  map[string]any `json:"options,omitempty"   jsonschema:"Inline affixed-ids options object, e.g. {allowedPrefixes: [opt_]}"`
	Config   string         `json:"config,omitempty"    jsonschema:"Path to an .idstyle.yaml or .idstyle.json config file"`
	Severity string         `json:"severity,omitempty"  jsonschema:"Severity for inline options: warn or error (default from IDSTYLE_SEVERITY)"`
	Name     string         `json:"name,omitempty"      jsonschema:"Only return issues whose identifier matches this name or glob"`
	GroupBy  string         `json:"group_by,omitempty"  jsonschema:"Return counts grouped by name or severity instead of issues"`
	Offset   int            `json:"offset,omitempty"    jsonschema:"Skip the first N issues (for pagination)"`
	Limit    int            `json:"limit,omitempty"     jsonschema:"Maximum number of issues to return (default 100)"`
}

type lintIssue struct {
	Rule       string `json:"rule"`
	Path       string `json:"path"`
	Name       string `json:"name"`
	Message    string `json:"message"`
	Severity   string `json:"severity"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

type lintOutput struct {
	Valid           bool         `json:"valid"`
	Rules           []string     `json:"rules"`
	IdentifierCount int          `json:"identifier_count"`
	ErrorCount      int          `json:"error_count"`
	WarningCount    int          `json:"warning_count"`
	Matched         int          `json:"matched"`
	Returned        int          `json:"returned"`
	Issues          []lintIssue  `json:"issues,omitempty"`
	Groups          []groupCount `json:"groups,omitempty"`
}

// activeRules picks the rule set for a call: inline options, then an
// explicit config file, then IDSTYLE_CONFIG, then the default configuration.
func (in lintInput) activeRules() ([]rules.Configured, error) {
	if in.Options != nil {
		sev := cfg.Severity
		if in.Severity != "" {
			var err error
			if sev, err = severity.Parse(in.Severity); err != nil {
				return nil, err
			}
		}
		r, err := rules.NewAffixedIDs([]any{in.Options})
		if err != nil {
			return nil, err
		}
		if !sev.Enabled() {
			return nil, nil
		}
		return []rules.Configured{{Rule: r, Severity: sev}}, nil
	}
	if in.Severity != "" {
		return nil, fmt.Errorf("severity applies only to inline options")
	}

	c := config.Default()
	path := in.Config
	if path == "" {
		path = cfg.ConfigFile
	}
	if path != "" {
		var err error
		if c, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	return c.Activate(rules.Default())
}

func handleLint(ctx context.Context, _ *mcp.CallToolRequest, input lintInput) (*mcp.CallToolResult, lintOutput, error) {
	if input.Options != nil && input.Config != "" {
		return errResult(fmt.Errorf("options and config are mutually exclusive")), lintOutput{}, nil
	}
	if err := validateGroupBy(input.GroupBy, []string{"name", "severity"}); err != nil {
		return errResult(err), lintOutput{}, nil
	}
	if err := validateGlobPattern(input.Name); err != nil {
		return errResult(err), lintOutput{}, nil
	}

	active, err := input.activeRules()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}
	parsed, err := input.Tree.resolve()
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}
	result, err := linter.New(active...).LintParsed(ctx, parsed)
	if err != nil {
		return errResult(err), lintOutput{}, nil
	}

	output := lintOutput{
		Valid:           result.Valid,
		Rules:           make([]string, 0, len(active)),
		IdentifierCount: result.Stats.IdentifierCount,
		ErrorCount:      result.ErrorCount,
		WarningCount:    result.WarningCount,
	}
	for _, cr := range active {
		output.Rules = append(output.Rules, cr.Rule.Meta().Name)
	}

	matched := makeSlice[issues.Issue](len(result.Issues))
	for _, iss := range result.Issues {
		if matchGlob(input.Name, iss.Name) {
			matched = append(matched, iss)
		}
	}
	output.Matched = len(matched)

	switch strings.ToLower(input.GroupBy) {
	case "name":
		output.Groups = groupAndSort(matched, func(iss issues.Issue) string { return iss.Name })
		return nil, output, nil
	case "severity":
		output.Groups = groupAndSort(matched, func(iss issues.Issue) string { return iss.Severity.String() })
		return nil, output, nil
	}

	page := paginate(matched, input.Offset, input.Limit)
	output.Issues = makeSlice[lintIssue](len(page))
	for _, iss := range page {
		output.Issues = append(output.Issues, lintIssue{
			Rule:       iss.Rule,
			Path:       iss.Path,
			Name:       iss.Name,
			Message:    iss.Message,
			Severity:   iss.Severity.String(),
			Line:       iss.Line,
			Column:     iss.Column,
			Suggestion: iss.Suggestion,
		})
	}
	output.Returned = len(output.Issues)
	return nil, output, nil
}
