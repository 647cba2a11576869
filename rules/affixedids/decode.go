package affixedids

import (
	"fmt"
	"maps"
	"slices"

	json "github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"

	"github.com/pabigot/idstyle/idserrors"
)

// Decode converts a generic configuration object, as produced by decoding
// JSON or YAML into an any, into RawOptions. A nil value yields all defaults.
//
// List entries are either strings or pattern descriptors. Both descriptor
// shapes are accepted:
//
//	{pattern: "any[a-zA-Z]*_", flags: "i"}
//	{regex: {pattern: "any[a-zA-Z]*_", flags: "i"}}
//
// Unknown keys and values of the wrong type are reported as
// *idserrors.ConfigError.
func Decode(v any) (RawOptions, error) {
	var raw RawOptions
	if v == nil {
		return raw, nil
	}
	m, ok := asMap(v)
	if !ok {
		return raw, &idserrors.ConfigError{Value: v, Message: "rule options must be an object"}
	}

	var err error
	for _, key := range slices.Sorted(maps.Keys(m)) {
		val := m[key]
		switch key {
		case OptBaseStyle:
			var s Spec
			if s, err = decodeSpec(key, val); err == nil {
				raw.BaseStyle = &s
			}
		case OptIgnoreCalls:
			raw.IgnoreCalls, err = decodeBool(key, val)
		case OptIgnoreProperties:
			raw.IgnoreProperties, err = decodeBool(key, val)
		case OptIgnoreReadProperties:
			raw.IgnoreReadProperties, err = decodeBool(key, val)
		case OptStripPrefixUnderscores:
			raw.StripPrefixUnderscores, err = decodeBool(key, val)
		case OptStripSuffixUnderscores:
			raw.StripSuffixUnderscores, err = decodeBool(key, val)
		case OptIgnoredIdentifiers:
			raw.IgnoredIdentifiers, err = decodeSpecList(key, val)
		case OptAllowedPrefixes:
			raw.AllowedPrefixes, err = decodeSpecList(key, val)
		case OptAllowedSuffixes:
			raw.AllowedSuffixes, err = decodeSpecList(key, val)
		default:
			err = &idserrors.ConfigError{Option: key, Message: "unknown option"}
		}
		if err != nil {
			return RawOptions{}, err
		}
	}
	return raw, nil
}

// UnmarshalJSON decodes rule options from a JSON object.
func (r *RawOptions) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	raw, err := Decode(v)
	if err != nil {
		return err
	}
	*r = raw
	return nil
}

// UnmarshalYAML decodes rule options from a YAML mapping.
func (r *RawOptions) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}
	raw, err := Decode(v)
	if err != nil {
		return err
	}
	*r = raw
	return nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			ks, ok := k.(string)
			if !ok {
				return nil, false
			}
			out[ks] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func decodeBool(key string, v any) (*bool, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, &idserrors.ConfigError{Option: key, Value: v, Message: "must be a boolean"}
	}
	return &b, nil
}

func decodeSpecList(key string, v any) ([]Spec, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, &idserrors.ConfigError{Option: key, Value: v, Message: "must be an array"}
	}
	specs := make([]Spec, 0, len(items))
	for i, item := range items {
		s, err := decodeSpec(fmt.Sprintf("%s[%d]", key, i), item)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	return specs, nil
}

func decodeSpec(key string, v any) (Spec, error) {
	if s, ok := v.(string); ok {
		return Literal(s), nil
	}
	m, ok := asMap(v)
	if !ok {
		return Spec{}, &idserrors.ConfigError{Option: key, Value: v, Message: "must be a string or a pattern object"}
	}
	if inner, nested := m["regex"]; nested {
		if len(m) != 1 {
			return Spec{}, &idserrors.ConfigError{Option: key, Message: "regex descriptor must not have other keys"}
		}
		if m, ok = asMap(inner); !ok {
			return Spec{}, &idserrors.ConfigError{Option: key + ".regex", Value: inner, Message: "must be an object"}
		}
	}

	var spec Spec
	spec.IsPattern = true
	for k, val := range m {
		s, isString := val.(string)
		switch {
		case k != "pattern" && k != "flags":
			return Spec{}, &idserrors.ConfigError{Option: key + "." + k, Message: "unknown pattern property"}
		case !isString:
			return Spec{}, &idserrors.ConfigError{Option: key + "." + k, Value: val, Message: "must be a string"}
		case k == "pattern":
			spec.Pattern = s
		default:
			spec.Flags = s
		}
	}
	if _, ok := m["pattern"]; !ok {
		return Spec{}, &idserrors.ConfigError{Option: key, Message: "pattern is required"}
	}
	return spec, nil
}
