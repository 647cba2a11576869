package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"slices"
	"time"

	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/internal/cliutil"
	"github.com/pabigot/idstyle/internal/issues"
	"github.com/pabigot/idstyle/linter"
)

// LintFlags contains flags for the lint command
type LintFlags struct {
	Config      string
	RuleOptions string
	Severity    string
	Format      string
	InputFormat string
	Quiet       bool
	Verbose     bool
	MaxDepth    int
	Concurrency int
	MaxWarnings int
}

// SetupLintFlags creates and configures a FlagSet for the lint command.
// Returns the FlagSet and a LintFlags struct with bound flag variables.
func SetupLintFlags() (*flag.FlagSet, *LintFlags) {
	fs := flag.NewFlagSet("lint", flag.ContinueOnError)
	flags := &LintFlags{}

	fs.StringVar(&flags.Config, "c", "", "configuration file (default: search for .idstyle.yaml upward from the working directory)")
	fs.StringVar(&flags.Config, "config", "", "configuration file (default: search for .idstyle.yaml upward from the working directory)")
	fs.StringVar(&flags.RuleOptions, "rule-options", "", "affixed-ids options as a JSON object (replaces the configuration file)")
	fs.StringVar(&flags.Severity, "severity", "", "severity for --rule-options: warn or error (default error)")
	fs.StringVar(&flags.Format, "format", cliutil.FormatText, "output format: text, json, or yaml")
	fs.StringVar(&flags.InputFormat, "input-format", "", "force the input format: json or yaml (default: detect)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: no output, only the exit status")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: no output, only the exit status")
	fs.BoolVar(&flags.Verbose, "v", false, "log debug output to stderr")
	fs.IntVar(&flags.MaxDepth, "max-depth", 0, "maximum node nesting depth (0 uses the default)")
	fs.IntVar(&flags.Concurrency, "j", 0, "number of files linted in parallel (0 means no limit)")
	fs.IntVar(&flags.MaxWarnings, "max-warnings", -1, "fail when more warnings than this are reported (-1 disables)")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: idstyle lint [flags] <file...|->\n\n")
		cliutil.Writef(fs.Output(), "Check identifier names in ESTree syntax trees (JSON or YAML).\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  idstyle lint app.estree.json\n")
		cliutil.Writef(fs.Output(), "  npx espree-cli app.js | idstyle lint -\n")
		cliutil.Writef(fs.Output(), "  idstyle lint --rule-options '{\"allowedPrefixes\":[\"opt_\"]}' *.json\n")
		cliutil.Writef(fs.Output(), "  idstyle lint --format json app.estree.json | jq '.errors'\n")
		cliutil.Writef(fs.Output(), "\nExit Codes:\n")
		cliutil.Writef(fs.Output(), "  0    No error-level issues\n")
		cliutil.Writef(fs.Output(), "  1    Error-level issues found, too many warnings, or a failure\n")
	}

	return fs, flags
}

type fileReport struct {
	File        string         `json:"file" yaml:"file"`
	Format      string         `json:"format" yaml:"format"`
	Identifiers int            `json:"identifiers" yaml:"identifiers"`
	Valid       bool           `json:"valid" yaml:"valid"`
	Issues      []issues.Issue `json:"issues" yaml:"issues"`
}

type lintReport struct {
	Valid    bool         `json:"valid" yaml:"valid"`
	Rules    string       `json:"rules" yaml:"rules"`
	Errors   int          `json:"errors" yaml:"errors"`
	Warnings int          `json:"warnings" yaml:"warnings"`
	Files    []fileReport `json:"files" yaml:"files"`
}

// HandleLint executes the lint command. It returns ErrLintFailed when the
// documents were linted but did not pass.
func HandleLint(args []string) error {
	fs, flags := SetupLintFlags()
	fs.SetOutput(Stderr)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("lint command requires at least one file path or '-' for stdin")
	}
	paths := fs.Args()
	if slices.Contains(paths, cliutil.StdinFilePath) && len(paths) > 1 {
		return fmt.Errorf("'-' (stdin) cannot be combined with other inputs")
	}

	if err := cliutil.ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	inputFormat, err := estree.ParseSourceFormat(flags.InputFormat)
	if err != nil {
		return fmt.Errorf("invalid --input-format: %w", err)
	}

	active, source, err := ruleSource{
		configPath:  flags.Config,
		ruleOptions: flags.RuleOptions,
		severity:    flags.Severity,
	}.resolve()
	if err != nil {
		return err
	}

	l := linter.New(active...)
	l.Logger = newLogger(flags.Verbose)
	l.MaxDepth = flags.MaxDepth
	l.Format = inputFormat
	l.Concurrency = flags.Concurrency

	ctx := context.Background()
	startTime := time.Now()
	var results []*linter.LintResult
	if paths[0] == cliutil.StdinFilePath {
		parsed, err := estree.ParseWithOptions(
			estree.WithReader(Stdin),
			estree.WithSourceName(cliutil.FormatPath(cliutil.StdinFilePath)),
			estree.WithFormat(inputFormat),
			estree.WithLogger(l.Logger),
			estree.WithMaxDepth(flags.MaxDepth),
		)
		if err != nil {
			return fmt.Errorf("parsing stdin: %w", err)
		}
		res, err := l.LintParsed(ctx, parsed)
		if err != nil {
			return err
		}
		results = []*linter.LintResult{res}
	} else {
		if results, err = l.LintFiles(ctx, paths); err != nil {
			return err
		}
	}
	summary := linter.Summarize(results)
	failed := summary.Failed() || (flags.MaxWarnings >= 0 && summary.Warnings > flags.MaxWarnings)

	if flags.Quiet {
		if failed {
			return ErrLintFailed
		}
		return nil
	}

	if flags.Format == cliutil.FormatJSON || flags.Format == cliutil.FormatYAML {
		report := lintReport{
			Valid:    !failed,
			Rules:    source,
			Errors:   summary.Errors,
			Warnings: summary.Warnings,
			Files:    make([]fileReport, 0, len(results)),
		}
		for _, r := range results {
			report.Files = append(report.Files, fileReport{
				File:        r.SourcePath,
				Format:      string(r.SourceFormat),
				Identifiers: r.Stats.IdentifierCount,
				Valid:       r.Valid,
				Issues:      r.Issues,
			})
		}
		if err := cliutil.OutputStructured(Stdout, report, flags.Format); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			for _, iss := range r.Issues {
				cliutil.Writef(Stdout, "%s\n", iss.String())
			}
		}
		writeLintSummary(summary, failed, time.Since(startTime))
	}

	if failed {
		return ErrLintFailed
	}
	return nil
}

func writeLintSummary(s linter.Summary, failed bool, elapsed time.Duration) {
	switch {
	case !failed:
		cliutil.Writef(Stderr, "✓ %d file(s) passed", s.Files)
		if s.Warnings > 0 {
			cliutil.Writef(Stderr, " with %d warning(s)", s.Warnings)
		}
	case s.Errors > 0:
		cliutil.Writef(Stderr, "✗ %d error(s)", s.Errors)
		if s.Warnings > 0 {
			cliutil.Writef(Stderr, ", %d warning(s)", s.Warnings)
		}
		cliutil.Writef(Stderr, " in %d file(s)", s.Files)
	default:
		cliutil.Writef(Stderr, "✗ too many warnings: %d", s.Warnings)
	}
	cliutil.Writef(Stderr, " (%v)\n", elapsed.Round(time.Millisecond))
}
