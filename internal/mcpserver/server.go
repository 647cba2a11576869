// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes idstyle linting as MCP tools over stdio.
package mcpserver

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pabigot/idstyle"
)

const serverInstructions = `idstyle MCP server: checks identifier style in ESTree syntax trees.

Tools:
- lint: run the configured rules over an ESTree document (JSON or YAML, as produced by espree, acorn or @babel/parser with estree output).
- check_identifier: test bare names against affixed-ids options without a tree.
- rules: list available rules and their options.

Configuration: defaults come from IDSTYLE_* environment variables set in your MCP client config.

Key settings:
- IDSTYLE_CONFIG: path to an .idstyle.yaml used when a call gives no options
- IDSTYLE_SEVERITY (default: error): severity for rules configured inline
- IDSTYLE_LINT_LIMIT (default: 100): default issue page size
- IDSTYLE_CACHE_ENABLED (default: true): disable tree caching entirely
- IDSTYLE_CACHE_FILE_TTL (default: 15m): cache TTL for file inputs

Caching: decoded trees are cached per session. File entries use path+mtime as key; inline content uses a content hash. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		treeCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "idstyle", Version: idstyle.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "lint",
		Description: "Lint an ESTree syntax tree (JSON or YAML) for identifier style. Rule options can be given inline as the affixed-ids options object, or via a config file; otherwise IDSTYLE_CONFIG or the default configuration applies. Returns issues with JSON path, name, severity and line/column when the tree has loc data. Filter with name (glob), summarise with group_by (name or severity), and page with offset/limit.",
	}, handleLint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check_identifier",
		Description: "Check bare identifier names against affixed-ids options without a syntax tree. Reports for each name whether it is ignored, the name left after removing underscores and allowed affixes, and whether that passes the base style. Positional exemptions (calls, property reads) need a tree; use lint for those.",
	}, handleCheckIdentifier)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "rules",
		Description: "List the available rules with description, category and option names.",
	}, handleRules)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.LintLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.LintLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// pathPattern matches an absolute path token (Unix or Windows drive) that
// starts the message or follows whitespace, a quote, "(" or "=". The token
// ends at whitespace, a quote, a parenthesis or ":".
var pathPattern = regexp.MustCompile(`(^|[\s'"(=])(?:/|[A-Za-z]:\\)[^\s'"():]*`)

// sanitizeError replaces absolute filesystem paths in error messages with
// <path> so MCP clients never see the server's directory layout.
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "${1}<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// groupCount represents a single group in group_by results.
type groupCount struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// groupAndSort groups items by key, sorts by count descending (ties
// broken alphabetically by key), and returns the sorted groups.
func groupAndSort[T any](items []T, keyFn func(T) string) []groupCount {
	counts := make(map[string]int)
	for _, item := range items {
		counts[keyFn(item)]++
	}
	groups := make([]groupCount, 0, len(counts))
	for key, count := range counts {
		groups = append(groups, groupCount{Key: key, Count: count})
	}
	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Count != groups[j].Count {
			return groups[i].Count > groups[j].Count
		}
		return groups[i].Key < groups[j].Key
	})
	return groups
}

// validateGroupBy checks that group_by is one of the allowed values.
func validateGroupBy(groupBy string, allowed []string) error {
	if groupBy == "" {
		return nil
	}
	for _, a := range allowed {
		if strings.EqualFold(groupBy, a) {
			return nil
		}
	}
	return fmt.Errorf("invalid group_by value %q; valid values: %s", groupBy, strings.Join(allowed, ", "))
}

// validateGlobPattern checks whether a glob pattern is syntactically valid.
// Call this once before a filter loop so matchGlob never encounters an
// invalid pattern at match time.
func validateGlobPattern(pattern string) error {
	if pattern == "" || !strings.ContainsAny(pattern, "*?[") {
		return nil
	}
	if _, err := filepath.Match(pattern, ""); err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	return nil
}

// matchGlob reports whether name matches pattern. A pattern without glob
// metacharacters must match exactly.
func matchGlob(pattern, name string) bool {
	if pattern == "" {
		return true
	}
	if !strings.ContainsAny(pattern, "*?[") {
		return pattern == name
	}
	ok, _ := filepath.Match(pattern, name)
	return ok
}
