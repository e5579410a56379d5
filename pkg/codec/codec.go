// Package codec bridges model instances to encoded text. The core engine
// deals exclusively in JSON-compatible value trees; this package owns the
// text boundary for JSON and YAML payloads.
package codec

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-objectmodel/pkg/model"
)

// MarshalJSON serializes an instance and encodes the value tree as JSON.
func MarshalJSON(inst *model.Instance) ([]byte, error) {
	tree, err := inst.Serialize()
	if err != nil {
		return nil, err
	}
	payload, err := json.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("codec: encode json: %w", err)
	}
	return payload, nil
}

// UnmarshalJSON decodes a JSON object and deserializes it into the instance.
// Unknown keys are ignored per the engine's lenient deserialize contract.
func UnmarshalJSON(inst *model.Instance, data []byte) error {
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("codec: decode json: %w", err)
	}
	return inst.Deserialize(tree)
}

// DecodeJSON reads a JSON object from r and deserializes it into the
// instance.
func DecodeJSON(inst *model.Instance, r io.Reader) error {
	var tree map[string]any
	if err := json.NewDecoder(r).Decode(&tree); err != nil {
		return fmt.Errorf("codec: decode json: %w", err)
	}
	return inst.Deserialize(tree)
}

// MarshalYAML serializes an instance and encodes the value tree as YAML.
func MarshalYAML(inst *model.Instance) ([]byte, error) {
	tree, err := inst.Serialize()
	if err != nil {
		return nil, err
	}
	payload, err := yaml.Marshal(tree)
	if err != nil {
		return nil, fmt.Errorf("codec: encode yaml: %w", err)
	}
	return payload, nil
}

// UnmarshalYAML decodes a YAML mapping and deserializes it into the instance.
func UnmarshalYAML(inst *model.Instance, data []byte) error {
	var tree map[string]any
	if err := yaml.Unmarshal(data, &tree); err != nil {
		return fmt.Errorf("codec: decode yaml: %w", err)
	}
	return inst.Deserialize(normalizeTree(tree))
}

// normalizeTree rewrites nested YAML mappings into the map[string]any shape
// the engine expects. yaml.v3 decodes nested mappings into map[string]any
// already, but sequences of mappings need their elements normalized too.
func normalizeTree(tree map[string]any) map[string]any {
	for key, value := range tree {
		tree[key] = normalizeValue(value)
	}
	return tree
}

func normalizeValue(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return normalizeTree(v)
	case []any:
		for i, element := range v {
			v[i] = normalizeValue(element)
		}
		return v
	default:
		return v
	}
}
