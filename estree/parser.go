package estree

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pabigot/idstyle/idserrors"
)

// DefaultMaxFileSize is the default limit on document size (64 MiB).
const DefaultMaxFileSize int64 = 64 << 20

// Parser decodes ESTree documents. The zero value is usable.
type Parser struct {
	// Logger is the structured logger for debug output.
	// If nil, logging is disabled (default)
	Logger Logger
	// Format forces the input format. SourceFormatUnknown (or "") detects it
	// from the file extension, then from content.
	Format SourceFormat
	// MaxFileSize is the maximum document size in bytes. Default: 64 MiB
	MaxFileSize int64
	// MaxDepth is the maximum node nesting depth. Default: DefaultMaxDepth
	MaxDepth int
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// Stats summarizes a decoded document.
type Stats struct {
	NodeCount       int // Total number of nodes
	IdentifierCount int // Number of Identifier nodes
	MaxDepth        int // Deepest nesting level (the root is 0)
}

// ParseResult contains a decoded ESTree document and metadata.
//
// Callers should treat the result as read-only: the linter and walker share
// Program nodes across goroutines.
type ParseResult struct {
	// SourcePath is the document's input source path. If the source was not
	// a file path, it is the name of the method ending in '.yaml' or '.json'.
	SourcePath string
	// SourceFormat is the format the document was decoded from
	SourceFormat SourceFormat
	// Program is the root node, normally of type Program
	Program *Node
	// Stats contains node counts for the document
	Stats Stats
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

func (p *Parser) log() Logger {
	return LoggerOrNop(p.Logger)
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

func (p *Parser) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}

// Parse reads and decodes the ESTree document at path.
func (p *Parser) Parse(path string) (*ParseResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("estree: failed to read file: %w", err)
	}
	if limit := p.maxFileSize(); info.Size() > limit {
		return nil, &idserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       info.Size(),
			Message:      path,
		}
	}

	loadStart := time.Now()
	data, err := os.ReadFile(path)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("estree: failed to read file: %w", err)
	}

	format := p.Format
	if format == "" || format == SourceFormatUnknown {
		format = detectFormatFromPath(path)
	}
	res, err := p.parse(data, format, path)
	if err != nil {
		return nil, err
	}
	res.SourcePath = path
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader decodes an ESTree document from r.
// SourcePath is set to ParseReader.json or ParseReader.yaml.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	limit := p.maxFileSize()
	loadStart := time.Now()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, fmt.Errorf("estree: failed to read data: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, &idserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      "reader input",
		}
	}
	res, err := p.parse(data, p.Format, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseReader." + string(res.SourceFormat)
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes an ESTree document from data.
// SourcePath is set to ParseBytes.json or ParseBytes.yaml.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if limit := p.maxFileSize(); int64(len(data)) > limit {
		return nil, &idserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Actual:       int64(len(data)),
		}
	}
	res, err := p.parse(data, p.Format, "ParseBytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "ParseBytes." + string(res.SourceFormat)
	return res, nil
}

func (p *Parser) parse(data []byte, format SourceFormat, source string) (*ParseResult, error) {
	if format == "" || format == SourceFormatUnknown {
		format = detectFormatFromContent(data)
	}
	if format == SourceFormatUnknown {
		return nil, &idserrors.ParseError{Path: source, Message: "empty document"}
	}

	raw, err := decodeRaw(data, format, source)
	if err != nil {
		return nil, err
	}
	b := &builder{source: source, maxDepth: p.maxDepth()}
	root, err := b.node(raw, "$", 0)
	if err != nil {
		return nil, err
	}
	if root.Type != TypeProgram {
		p.log().Warn("document root is not a Program", "source", source, "type", root.Type)
	}
	p.log().Debug("decoded ESTree document",
		"source", source,
		"format", format,
		"size", FormatBytes(int64(len(data))),
		"nodes", b.stats.NodeCount,
		"identifiers", b.stats.IdentifierCount,
	)
	return &ParseResult{
		SourceFormat: format,
		Program:      root,
		Stats:        b.stats,
		SourceSize:   int64(len(data)),
	}, nil
}
