package walker

import "github.com/pabigot/idstyle/estree"

// IdentifierInfo describes one collected identifier occurrence.
type IdentifierInfo struct {
	// Node is the Identifier node.
	Node *estree.Node

	// JSONPath is the full JSON path to the identifier.
	JSONPath string

	// Field is the parent property holding the identifier.
	Field string

	// ParentType is the ESTree type of the parent node ("" at the root).
	ParentType string
}

// IdentifierCollector holds identifiers collected during a walk.
type IdentifierCollector struct {
	// All contains all identifier occurrences in traversal order.
	All []*IdentifierInfo

	// ByName groups occurrences by identifier name.
	ByName map[string][]*IdentifierInfo
}

// Names returns the distinct identifier names in first-seen order.
func (c *IdentifierCollector) Names() []string {
	names := make([]string, 0, len(c.ByName))
	seen := make(map[string]bool, len(c.ByName))
	for _, info := range c.All {
		if !seen[info.Node.Name] {
			seen[info.Node.Name] = true
			names = append(names, info.Node.Name)
		}
	}
	return names
}

// CollectIdentifiers walks the tree and collects all Identifier occurrences.
func CollectIdentifiers(root *estree.Node) (*IdentifierCollector, error) {
	collector := &IdentifierCollector{
		All:    make([]*IdentifierInfo, 0),
		ByName: make(map[string][]*IdentifierInfo),
	}

	err := Walk(root,
		WithIdentifierHandler(func(wc *WalkContext, id *estree.Node) Action {
			info := &IdentifierInfo{
				Node:     id,
				JSONPath: wc.JSONPath,
				Field:    wc.Field,
			}
			if p, ok := wc.ParentNode(); ok {
				info.ParentType = p.Type
			}
			collector.All = append(collector.All, info)
			collector.ByName[id.Name] = append(collector.ByName[id.Name], info)
			return Continue
		}),
	)
	if err != nil {
		return nil, err
	}
	return collector, nil
}
