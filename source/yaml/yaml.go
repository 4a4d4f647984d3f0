// Package yaml provides a gomold.Driver backed by gopkg.in/yaml.v3, so
// schemas mold YAML documents the same way they mold JSON.
package yaml

import (
	"fmt"

	yamlv3 "gopkg.in/yaml.v3"

	gomold "github.com/reoring/gomold"
)

// Driver returns a gomold.Driver backed by gopkg.in/yaml.v3.
func Driver() gomold.Driver { return yamlDriver{} }

type yamlDriver struct{}

func (yamlDriver) Unmarshal(data []byte) (any, error) {
	var out any
	if err := yamlv3.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return normalize(out)
}

func (yamlDriver) Marshal(v any) ([]byte, error) {
	return yamlv3.Marshal(v)
}

func (yamlDriver) Name() string { return "yaml" }

// normalize rewrites a yaml.v3 tree into the driver contract: objects as
// map[string]any, sequences as []any. Mappings with non-string keys are
// rejected rather than silently stringified.
func normalize(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			nv, err := normalize(el)
			if err != nil {
				return nil, err
			}
			out[k] = nv
		}
		return out, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, el := range t {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("yaml: mapping key %v is not a string", k)
			}
			nv, err := normalize(el)
			if err != nil {
				return nil, err
			}
			out[ks] = nv
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			nv, err := normalize(el)
			if err != nil {
				return nil, err
			}
			out[i] = nv
		}
		return out, nil
	default:
		return v, nil
	}
}
