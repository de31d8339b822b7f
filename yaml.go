package jptr

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// UnmarshalYAML decodes YAML data into the document model: mappings become D
// with member order preserved, sequences become A, scalars keep goccy's
// native Go types. Mapping keys that are not strings are stringified, since
// pointer tokens are strings.
func UnmarshalYAML(data []byte) (any, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(data, &v, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("failed to parse YAML document: %w", err)
	}
	return fromYAML(v), nil
}

// fromYAML rewrites goccy's decoded value tree into D/A form.
func fromYAML(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		d := make(D, 0, len(val))
		for _, item := range val {
			key, ok := item.Key.(string)
			if !ok {
				key = fmt.Sprint(item.Key)
			}
			d = append(d, E{Key: key, Value: fromYAML(item.Value)})
		}
		return d
	case []any:
		a := make(A, 0, len(val))
		for _, elem := range val {
			a = append(a, fromYAML(elem))
		}
		return a
	default:
		return val
	}
}
