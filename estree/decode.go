package estree

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/pabigot/idstyle/idserrors"
)

// DefaultMaxDepth is the default limit on node nesting.
const DefaultMaxDepth = 5000

// decodeRaw decodes data into generic values. JSON input takes the go-json
// fast path; anything else goes through the YAML decoder, which also
// accepts JSON.
func decodeRaw(data []byte, format SourceFormat, source string) (any, error) {
	var raw any
	if format == SourceFormatJSON {
		if err := json.Unmarshal(data, &raw); err != nil {
			perr := &idserrors.ParseError{Path: source, Message: "invalid JSON", Cause: err}
			var syn *json.SyntaxError
			if errors.As(err, &syn) {
				perr.Line, perr.Column = offsetPosition(data, syn.Offset)
			}
			return nil, perr
		}
		return raw, nil
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &idserrors.ParseError{Path: source, Message: "invalid YAML", Cause: err}
	}
	return raw, nil
}

// offsetPosition returns the 1-based line and column of the byte at offset.
func offsetPosition(data []byte, offset int64) (int, int) {
	if offset <= 0 || offset > int64(len(data)) {
		return 0, 0
	}
	prefix := data[:offset]
	line := bytes.Count(prefix, []byte{'\n'}) + 1
	col := int(offset) - bytes.LastIndexByte(prefix, '\n')
	return line, col
}

// builder converts generic decoded values into Nodes.
type builder struct {
	source   string
	maxDepth int
	stats    Stats
}

func (b *builder) parseErr(path, format string, args ...any) error {
	return &idserrors.ParseError{Path: b.source, Message: path + ": " + fmt.Sprintf(format, args...)}
}

// node builds the node at path from v, which must be an object with a
// string "type" property.
func (b *builder) node(v any, path string, depth int) (*Node, error) {
	if depth > b.maxDepth {
		return nil, &idserrors.ResourceLimitError{
			ResourceType: "tree_depth",
			Limit:        int64(b.maxDepth),
			Actual:       int64(depth),
			Message:      "at " + path,
		}
	}
	m, ok := asMap(v)
	if !ok {
		return nil, b.parseErr(path, "expected node object, got %T", v)
	}
	typ, ok := m["type"].(string)
	if !ok || typ == "" {
		return nil, b.parseErr(path, "node has no type")
	}

	n := &Node{Type: typ}
	b.stats.NodeCount++
	if depth > b.stats.MaxDepth {
		b.stats.MaxDepth = depth
	}
	if typ == TypeIdentifier {
		b.stats.IdentifierCount++
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		val := m[k]
		switch k {
		case "type":
			continue
		case "name":
			if s, ok := val.(string); ok {
				n.Name = s
				continue
			}
		case "loc":
			if loc, ok := decodeLoc(val); ok {
				n.Loc = loc
				continue
			}
		}
		childPath := path + "." + k
		switch {
		case isNodeValue(val):
			child, err := b.node(val, childPath, depth+1)
			if err != nil {
				return nil, err
			}
			n.Set(k, child)
		case isNodeList(val, slices.Contains(visitorKeys[typ], k)):
			items := val.([]any)
			children := make([]*Node, len(items))
			for i, item := range items {
				if item == nil {
					continue
				}
				child, err := b.node(item, childPath+"["+strconv.Itoa(i)+"]", depth+1)
				if err != nil {
					return nil, err
				}
				children[i] = child
			}
			n.SetList(k, children...)
		default:
			n.SetAttr(k, val)
		}
	}
	return n, nil
}

// isNodeValue reports whether v is an object carrying a string "type".
func isNodeValue(v any) bool {
	m, ok := asMap(v)
	if !ok {
		return false
	}
	typ, ok := m["type"].(string)
	return ok && typ != ""
}

// isNodeList reports whether v is an array of nodes and holes. An empty
// array counts only when the property is a known child key.
func isNodeList(v any, knownKey bool) bool {
	items, ok := v.([]any)
	if !ok {
		return false
	}
	if len(items) == 0 {
		return knownKey
	}
	sawNode := false
	for _, item := range items {
		switch {
		case item == nil:
		case isNodeValue(item):
			sawNode = true
		default:
			return false
		}
	}
	return sawNode
}

func decodeLoc(v any) (*SourceLocation, bool) {
	m, ok := asMap(v)
	if !ok {
		return nil, false
	}
	start, ok1 := decodePosition(m["start"])
	end, ok2 := decodePosition(m["end"])
	if !ok1 || !ok2 {
		return nil, false
	}
	return &SourceLocation{Start: start, End: end}, true
}

func decodePosition(v any) (Position, bool) {
	m, ok := asMap(v)
	if !ok {
		return Position{}, false
	}
	line, ok1 := toInt(m["line"])
	col, ok2 := toInt(m["column"])
	return Position{Line: line, Column: col}, ok1 && ok2
}

// asMap normalizes the map shapes produced by the JSON and YAML decoders.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}
