package commands

import (
	"errors"
	"flag"
	"strings"

	"github.com/pabigot/idstyle/internal/cliutil"
	"github.com/pabigot/idstyle/rules"
)

// RulesFlags contains flags for the rules command
type RulesFlags struct {
	Format string
}

// SetupRulesFlags creates and configures a FlagSet for the rules command.
func SetupRulesFlags() (*flag.FlagSet, *RulesFlags) {
	fs := flag.NewFlagSet("rules", flag.ContinueOnError)
	flags := &RulesFlags{}
	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, or yaml")
	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: idstyle rules [flags]\n\n")
		cliutil.Writef(fs.Output(), "List the available rules and their options.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
	}
	return fs, flags
}

// HandleRules executes the rules command
func HandleRules(args []string) error {
	fs, flags := SetupRulesFlags()
	fs.SetOutput(Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if err := cliutil.ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	metas := rules.Default().Metas()
	if flags.Format != cliutil.FormatText {
		return cliutil.OutputStructured(Stdout, metas, flags.Format)
	}
	for _, m := range metas {
		cliutil.Writef(Stdout, "%s (%s)\n", m.Name, m.Category)
		cliutil.Writef(Stdout, "  %s\n", m.Description)
		if len(m.Options) > 0 {
			cliutil.Writef(Stdout, "  options: %s\n", strings.Join(m.Options, ", "))
		}
	}
	return nil
}
