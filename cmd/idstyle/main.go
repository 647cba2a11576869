// Command idstyle checks identifier naming in ESTree syntax trees.
package main

import (
	"errors"
	"os"

	"github.com/pabigot/idstyle"
	"github.com/pabigot/idstyle/cmd/idstyle/commands"
	"github.com/pabigot/idstyle/internal/cliutil"
)

var commandNames = []string{"lint", "check", "rules", "mcp", "version", "help"}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run dispatches a command and returns the process exit code.
func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	var handler func([]string) error
	switch command := args[0]; command {
	case "version", "-v", "--version":
		cliutil.Writef(commands.Stdout, "idstyle v%s\n", idstyle.Version())
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "lint":
		handler = commands.HandleLint
	case "check":
		handler = commands.HandleCheck
	case "rules":
		handler = commands.HandleRules
	case "mcp":
		handler = commands.HandleMCP
	default:
		cliutil.Writef(commands.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			cliutil.Writef(commands.Stderr, "Did you mean '%s'?\n", s)
		}
		cliutil.Writef(commands.Stderr, "\n")
		printUsage()
		return 1
	}

	if err := handler(args[1:]); err != nil {
		if !errors.Is(err, commands.ErrLintFailed) {
			cliutil.Writef(commands.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

func printUsage() {
	w := commands.Stderr
	cliutil.Writef(w, "idstyle - identifier style checks for ESTree syntax trees\n\n")
	cliutil.Writef(w, "Usage:\n")
	cliutil.Writef(w, "  idstyle <command> [flags] [args]\n\n")
	cliutil.Writef(w, "Commands:\n")
	cliutil.Writef(w, "  lint      Lint ESTree documents with the configured rules\n")
	cliutil.Writef(w, "  check     Check bare names against affixed-ids options\n")
	cliutil.Writef(w, "  rules     List available rules\n")
	cliutil.Writef(w, "  mcp       Serve the tools over MCP on stdio\n")
	cliutil.Writef(w, "  version   Show version information\n")
	cliutil.Writef(w, "  help      Show this help message\n\n")
	cliutil.Writef(w, "Run 'idstyle <command> --help' for more information on a command.\n")
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" if none is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}
