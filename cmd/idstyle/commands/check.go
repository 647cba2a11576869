package commands

import (
	"errors"
	"flag"
	"fmt"

	"github.com/pabigot/idstyle/config"
	"github.com/pabigot/idstyle/internal/cliutil"
	"github.com/pabigot/idstyle/rules/affixedids"
)

// CheckFlags contains flags for the check command
type CheckFlags struct {
	Config      string
	RuleOptions string
	Format      string
}

// SetupCheckFlags creates and configures a FlagSet for the check command.
func SetupCheckFlags() (*flag.FlagSet, *CheckFlags) {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	flags := &CheckFlags{}

	fs.StringVar(&flags.Config, "c", "", "read affixed-ids options from this configuration file")
	fs.StringVar(&flags.Config, "config", "", "read affixed-ids options from this configuration file")
	fs.StringVar(&flags.RuleOptions, "rule-options", "", "affixed-ids options as a JSON object")
	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, or yaml")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: idstyle check [flags] <name...>\n\n")
		cliutil.Writef(fs.Output(), "Check bare identifier names against the affixed-ids options.\n")
		cliutil.Writef(fs.Output(), "Positional exemptions (calls, property reads) are not applied.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  idstyle check fooBar foo_bar\n")
		cliutil.Writef(fs.Output(), "  idstyle check --rule-options '{\"allowedPrefixes\":[\"opt_\"]}' opt_fooBar\n")
	}

	return fs, flags
}

type checkResult struct {
	Name       string `json:"name" yaml:"name"`
	Ignored    bool   `json:"ignored" yaml:"ignored"`
	Stripped   string `json:"stripped" yaml:"stripped"`
	Conforms   bool   `json:"conforms" yaml:"conforms"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// HandleCheck executes the check command. Non-conforming names make it
// return ErrLintFailed.
func HandleCheck(args []string) error {
	fs, flags := SetupCheckFlags()
	fs.SetOutput(Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("check command requires at least one identifier name")
	}
	if err := cliutil.ValidateOutputFormat(flags.Format); err != nil {
		return err
	}

	rule, err := checkRule(flags)
	if err != nil {
		return err
	}

	results := make([]checkResult, 0, fs.NArg())
	failed := false
	for _, name := range fs.Args() {
		res := checkResult{
			Name:     name,
			Ignored:  rule.IsIgnored(name),
			Stripped: rule.Options().Strip(name),
			Conforms: rule.Conforms(name),
		}
		res.Suggestion, _ = rule.Suggest(name)
		failed = failed || !res.Conforms
		results = append(results, res)
	}

	if flags.Format != cliutil.FormatText {
		if err := cliutil.OutputStructured(Stdout, results, flags.Format); err != nil {
			return err
		}
	} else {
		for _, res := range results {
			switch {
			case res.Ignored:
				cliutil.Writef(Stdout, "✓ %s (ignored)\n", res.Name)
			case res.Conforms:
				cliutil.Writef(Stdout, "✓ %s\n", res.Name)
			default:
				cliutil.Writef(Stdout, "✗ %s (checked as %q)", affixedids.Message(res.Name), res.Stripped)
				if res.Suggestion != "" {
					cliutil.Writef(Stdout, ", try %s", res.Suggestion)
				}
				cliutil.Writef(Stdout, "\n")
			}
		}
	}
	if failed {
		return ErrLintFailed
	}
	return nil
}

// checkRule builds the rule from --rule-options or from the affixed-ids
// entry of --config. A config entry at severity off still supplies its
// options.
func checkRule(flags *CheckFlags) (*affixedids.Rule, error) {
	if flags.RuleOptions != "" {
		if flags.Config != "" {
			return nil, fmt.Errorf("--rule-options and --config are mutually exclusive")
		}
		r, err := decodeRuleOptions(flags.RuleOptions)
		if err != nil {
			return nil, err
		}
		return r.Rule(), nil
	}
	if flags.Config == "" {
		return affixedids.New()
	}
	cfg, err := config.Load(flags.Config)
	if err != nil {
		return nil, err
	}
	rc, ok := cfg.Rules[affixedids.Name]
	if !ok || len(rc.Options) == 0 {
		return affixedids.New()
	}
	if len(rc.Options) > 1 {
		return nil, fmt.Errorf("config: %s: expected a single options object", affixedids.Name)
	}
	raw, err := affixedids.Decode(rc.Options[0])
	if err != nil {
		return nil, err
	}
	return affixedids.New(affixedids.WithRaw(raw))
}
