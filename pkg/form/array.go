package form

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// LayoutArray is the persisted form of a Layout. Entries are bool, string or
// []string; see the package documentation for the grammar.
type LayoutArray []any

// ParseLayoutArray decodes a layout array stored as JSON or YAML.
func ParseLayoutArray(data []byte) (LayoutArray, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return LayoutArray{}, nil
	}

	var raw []any
	if err := json.Unmarshal(data, &raw); err != nil {
		if yamlErr := yaml.Unmarshal(data, &raw); yamlErr != nil {
			return nil, fmt.Errorf("form: parse layout array: invalid JSON or YAML: %w", yamlErr)
		}
	}
	return LayoutArray(raw).Normalize()
}

// Normalize returns a copy whose field rows are []string. Decoders produce
// []any for nested lists; those are accepted as long as every element is a
// string.
func (a LayoutArray) Normalize() (LayoutArray, error) {
	out := make(LayoutArray, 0, len(a))
	for idx, item := range a {
		switch v := item.(type) {
		case bool, string:
			out = append(out, v)
		default:
			entries, err := normaliseEntries(item)
			if err != nil {
				return nil, fmt.Errorf("form: layout entry %d: %w", idx, err)
			}
			out = append(out, entries)
		}
	}
	return out, nil
}

func normaliseEntries(value any) ([]string, error) {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out, nil
	case []any:
		out := make([]string, 0, len(v))
		for _, element := range v {
			s, ok := element.(string)
			if !ok {
				return nil, fmt.Errorf("%w: row entry %v (%T) is not a string", ErrInvalidDescriptor, element, element)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %v (%T)", ErrInvalidDescriptor, value, value)
	}
}
