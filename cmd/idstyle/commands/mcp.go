package commands

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/pabigot/idstyle/internal/cliutil"
	"github.com/pabigot/idstyle/internal/mcpserver"
)

// HandleMCP runs the MCP server over stdio until the client disconnects or
// the process is interrupted.
func HandleMCP(args []string) error {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	fs.SetOutput(Stderr)
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: idstyle mcp\n\n")
		cliutil.Writef(fs.Output(), "Serve the lint, check_identifier and rules tools over MCP on stdio.\n")
		cliutil.Writef(fs.Output(), "Settings come from IDSTYLE_* environment variables.\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
