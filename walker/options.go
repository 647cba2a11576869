package walker

import (
	"context"
	"fmt"

	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/internal/options"
)

// Option configures the walker.
type Option func(*Walker)

// WithNodeHandler sets the handler called for every node.
func WithNodeHandler(fn NodeHandler) Option {
	return func(w *Walker) { w.onNode = fn }
}

// WithIdentifierHandler sets the handler called for each Identifier.
func WithIdentifierHandler(fn IdentifierHandler) Option {
	return func(w *Walker) { w.onIdentifier = fn }
}

// WithNodePostHandler sets the handler called after a node's children.
func WithNodePostHandler(fn NodePostHandler) Option {
	return func(w *Walker) { w.onNodePost = fn }
}

// WithMaxDepth sets the maximum nesting depth.
// If depth is <= 0, the default is kept.
func WithMaxDepth(depth int) Option {
	return func(w *Walker) {
		if depth > 0 {
			w.maxDepth = depth
		}
	}
}

// WithUserContext sets the context for cancellation and deadline propagation.
// The context is available to handlers via wc.Context().
func WithUserContext(ctx context.Context) Option {
	return func(w *Walker) {
		w.userCtx = ctx
	}
}

// WithFilePath specifies an ESTree document to parse and walk.
func WithFilePath(path string) Option {
	return func(w *Walker) {
		w.filePath = &path
	}
}

// WithParsed specifies a pre-parsed result to walk.
func WithParsed(result *estree.ParseResult) Option {
	return func(w *Walker) {
		w.parsed = result
	}
}

// WalkWithOptions walks a document using functional options for input,
// handlers, and configuration.
//
// Example:
//
//	walker.WalkWithOptions(
//	    walker.WithFilePath("app.estree.json"),
//	    walker.WithIdentifierHandler(func(wc *walker.WalkContext, id *estree.Node) walker.Action {
//	        fmt.Println(wc.JSONPath, id.Name)
//	        return walker.Continue
//	    }),
//	)
func WalkWithOptions(opts ...Option) error {
	w := New()
	for _, opt := range opts {
		opt(w)
	}

	if err := options.ExactlyOne(
		"walker: no input source specified: use WithFilePath or WithParsed",
		"walker: multiple input sources specified: use only one",
		w.filePath != nil, w.parsed != nil,
	); err != nil {
		return err
	}

	result := w.parsed
	if result == nil {
		var err error
		result, err = estree.New().Parse(*w.filePath)
		if err != nil {
			return fmt.Errorf("walker: failed to parse: %w", err)
		}
	}
	if result.Program == nil {
		return fmt.Errorf("walker: nil Program in ParseResult")
	}
	return w.walk(result.Program)
}
