package rules

import (
	"github.com/pabigot/idstyle/estree"
	"github.com/pabigot/idstyle/idserrors"
	"github.com/pabigot/idstyle/rules/affixedids"
)

// AffixedIDs adapts the affixed-ids rule to the registry.
type AffixedIDs struct {
	rule *affixedids.Rule
}

// AffixedIDsMeta returns the registry metadata for affixed-ids.
func AffixedIDsMeta() Meta {
	m := affixedids.RuleMeta()
	return Meta{
		Name:        m.Name,
		Description: m.Description,
		Category:    m.Category,
		Recommended: m.Recommended,
		Options: []string{
			affixedids.OptBaseStyle,
			affixedids.OptIgnoreCalls,
			affixedids.OptIgnoreProperties,
			affixedids.OptIgnoreReadProperties,
			affixedids.OptIgnoredIdentifiers,
			affixedids.OptStripPrefixUnderscores,
			affixedids.OptStripSuffixUnderscores,
			affixedids.OptAllowedPrefixes,
			affixedids.OptAllowedSuffixes,
		},
	}
}

// NewAffixedIDs is the Factory for affixed-ids. opts holds at most one
// options object.
func NewAffixedIDs(opts []any) (Rule, error) {
	var extra []affixedids.Option
	switch len(opts) {
	case 0:
	case 1:
		raw, err := affixedids.Decode(opts[0])
		if err != nil {
			return nil, err
		}
		extra = append(extra, affixedids.WithRaw(raw))
	default:
		return nil, &idserrors.ConfigError{
			Option:  affixedids.Name,
			Message: "expected a single options object",
		}
	}
	rule, err := NewAffixedIDsRule(extra...)
	if err != nil {
		return nil, err
	}
	return rule, nil
}

// NewAffixedIDsRule builds the rule from functional options.
func NewAffixedIDsRule(opts ...affixedids.Option) (*AffixedIDs, error) {
	r, err := affixedids.New(opts...)
	if err != nil {
		return nil, err
	}
	return &AffixedIDs{rule: r}, nil
}

// Meta implements Rule.
func (a *AffixedIDs) Meta() Meta {
	return AffixedIDsMeta()
}

// Rule returns the underlying rule.
func (a *AffixedIDs) Rule() *affixedids.Rule {
	return a.rule
}

// Suggest implements Suggester.
func (a *AffixedIDs) Suggest(name string) (string, bool) {
	return a.rule.Suggest(name)
}

// CheckIdentifier implements Rule.
func (a *AffixedIDs) CheckIdentifier(tree Tree, id *estree.Node) (string, bool) {
	d, ok := affixedids.Check(a.rule, tree, id.Name, id)
	if !ok {
		return "", false
	}
	return d.Message, true
}
