package linter

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/internal/issues"
	"github.com/pabigot/idstyle/internal/severity"
	"github.com/pabigot/idstyle/rules"
	"github.com/pabigot/idstyle/walker"
)

// Linter applies configured rules to ESTree documents. A Linter is safe for
// concurrent use once its fields are set.
type Linter struct {
	// Rules are the enabled rules
	Rules []rules.Configured
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger estree.Logger
	// MaxDepth limits node nesting (0 uses the default)
	MaxDepth int
	// MaxFileSize limits document size in bytes (0 uses the default)
	MaxFileSize int64
	// Format forces the input format ("" detects it)
	Format estree.SourceFormat
	// Concurrency bounds LintFiles parallelism (0 means one per file)
	Concurrency int
}

// New creates a Linter running the given rules.
func New(active ...rules.Configured) *Linter {
	return &Linter{Rules: active}
}

// LintResult contains the outcome of linting one document.
type LintResult struct {
	// Valid is true if no error-level issues were found (warnings are allowed)
	Valid bool
	// SourcePath is the linted document's source path
	SourcePath string
	// SourceFormat is the format of the source document
	SourceFormat estree.SourceFormat
	// Issues are all reported issues in traversal order
	Issues []issues.Issue
	// ErrorCount is the number of error-level issues
	ErrorCount int
	// WarningCount is the number of warning-level issues
	WarningCount int
	// Stats contains node counts for the document
	Stats estree.Stats
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// LintTime is the time taken to walk the tree and run the rules
	LintTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

func (l *Linter) log() estree.Logger {
	return estree.LoggerOrNop(l.Logger)
}

func (l *Linter) parser() *estree.Parser {
	return &estree.Parser{
		Logger:      l.Logger,
		Format:      l.Format,
		MaxFileSize: l.MaxFileSize,
		MaxDepth:    l.MaxDepth,
	}
}

// LintFile parses and lints the document at path.
func (l *Linter) LintFile(ctx context.Context, path string) (*LintResult, error) {
	parsed, err := l.parser().Parse(path)
	if err != nil {
		return nil, fmt.Errorf("linter: %w", err)
	}
	return l.LintParsed(ctx, parsed)
}

// LintReader parses and lints a document read from r.
func (l *Linter) LintReader(ctx context.Context, r io.Reader) (*LintResult, error) {
	parsed, err := l.parser().ParseReader(r)
	if err != nil {
		return nil, fmt.Errorf("linter: %w", err)
	}
	return l.LintParsed(ctx, parsed)
}

// LintBytes parses and lints an in-memory document.
func (l *Linter) LintBytes(ctx context.Context, data []byte) (*LintResult, error) {
	parsed, err := l.parser().ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("linter: %w", err)
	}
	return l.LintParsed(ctx, parsed)
}

// LintParsed lints an already decoded document.
func (l *Linter) LintParsed(ctx context.Context, parsed *estree.ParseResult) (*LintResult, error) {
	if parsed == nil || parsed.Program == nil {
		return nil, fmt.Errorf("linter: nil Program in ParseResult")
	}
	log := l.log().With("source", parsed.SourcePath)

	start := time.Now()
	result := &LintResult{
		SourcePath:   parsed.SourcePath,
		SourceFormat: parsed.SourceFormat,
		Issues:       make([]issues.Issue, 0),
		Stats:        parsed.Stats,
		LoadTime:     parsed.LoadTime,
		SourceSize:   parsed.SourceSize,
	}

	opts := []walker.Option{
		walker.WithUserContext(ctx),
		walker.WithIdentifierHandler(func(wc *walker.WalkContext, id *estree.Node) walker.Action {
			tree := ancestry{wc: wc, node: id}
			for _, cr := range l.Rules {
				msg, bad := cr.Rule.CheckIdentifier(tree, id)
				if !bad {
					continue
				}
				result.Issues = append(result.Issues, l.issue(cr, parsed.SourcePath, wc, id, msg))
			}
			return walker.Continue
		}),
	}
	if l.MaxDepth > 0 {
		opts = append(opts, walker.WithMaxDepth(l.MaxDepth))
	}
	if err := walker.Walk(parsed.Program, opts...); err != nil {
		return nil, fmt.Errorf("linter: %s: %w", parsed.SourcePath, err)
	}

	result.ErrorCount, result.WarningCount = issues.Count(result.Issues)
	result.Valid = result.ErrorCount == 0
	result.LintTime = time.Since(start)
	log.Debug("linted document",
		"rules", len(l.Rules),
		"identifiers", parsed.Stats.IdentifierCount,
		"errors", result.ErrorCount,
		"warnings", result.WarningCount,
	)
	return result, nil
}

func (l *Linter) issue(cr rules.Configured, file string, wc *walker.WalkContext, id *estree.Node, msg string) issues.Issue {
	iss := issues.Issue{
		Rule:     cr.Rule.Meta().Name,
		Path:     wc.JSONPath,
		Message:  msg,
		Severity: cr.Severity,
		Name:     id.Name,
		File:     file,
	}
	if s, ok := cr.Rule.(rules.Suggester); ok {
		iss.Suggestion, _ = s.Suggest(id.Name)
	}
	if id.Loc != nil && id.Loc.Start.Line > 0 {
		iss.Line = id.Loc.Start.Line
		// ESTree columns are 0-based
		iss.Column = id.Loc.Start.Column + 1
	}
	return iss
}

// LintFiles lints paths concurrently and returns results in input order.
// The first parse or walk error cancels the remaining files.
func (l *Linter) LintFiles(ctx context.Context, paths []string) ([]*LintResult, error) {
	results := make([]*LintResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	if l.Concurrency > 0 {
		g.SetLimit(l.Concurrency)
	}
	for i, path := range paths {
		g.Go(func() error {
			res, err := l.LintFile(gctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	l.log().Debug("linted files", "count", len(paths))
	return results, nil
}

// Summary totals a set of results.
type Summary struct {
	Files    int
	Errors   int
	Warnings int
}

// Summarize totals results.
func Summarize(results []*LintResult) Summary {
	s := Summary{Files: len(results)}
	for _, r := range results {
		s.Errors += r.ErrorCount
		s.Warnings += r.WarningCount
	}
	return s
}

// Failed reports whether any error-level issue was found.
func (s Summary) Failed() bool {
	return s.Errors > 0
}

// MaxSeverity returns the highest severity among the results' issues.
func MaxSeverity(results []*LintResult) severity.Severity {
	highest := severity.SeverityOff
	for _, r := range results {
		for _, iss := range r.Issues {
			if iss.Severity > highest {
				highest = iss.Severity
			}
		}
	}
	return highest
}
