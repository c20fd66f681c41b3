package i18n

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/CUSTIS-public/CUSTIS.i18n/culture"
)

// The wire shape is a flat culture-name -> string map. When a document
// repeats a key, the last occurrence wins: encoding/json behaves that
// way natively, while the YAML mapping is walked node by node because
// yaml.v3's map decoder rejects duplicate keys. Names are canonicalized
// on the way in, so "en_US" and "en-US" land on the same entry.

// MarshalJSON implements json.Marshaler.
func (s MultiCulturalString) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.flatten())
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *MultiCulturalString) UnmarshalJSON(data []byte) error {
	var flat map[string]string
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	return s.unflatten(flat)
}

// MarshalYAML implements yaml.Marshaler.
func (s MultiCulturalString) MarshalYAML() (any, error) {
	return s.flatten(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *MultiCulturalString) UnmarshalYAML(node *yaml.Node) error {
	if node.Tag == "!!null" {
		*s = Empty
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("cannot unmarshal yaml %s into a culture map", node.Tag)
	}

	flat := make(map[string]string, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name, value string
		if err := node.Content[i].Decode(&name); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&value); err != nil {
			return err
		}
		flat[name] = value
	}
	return s.unflatten(flat)
}

func (s MultiCulturalString) flatten() map[string]string {
	flat := make(map[string]string, len(s.values))
	for name, e := range s.values {
		flat[name] = e.value
	}
	return flat
}

func (s *MultiCulturalString) unflatten(flat map[string]string) error {
	if len(flat) == 0 {
		*s = Empty
		return nil
	}
	values := make(map[string]entry, len(flat))
	for name, value := range flat {
		tag, err := culture.Parse(name)
		if err != nil {
			return err
		}
		values[tag.String()] = entry{tag: tag, value: value}
	}
	*s = MultiCulturalString{values: values}
	return nil
}
