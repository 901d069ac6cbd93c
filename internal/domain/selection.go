package domain

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Selection requests Quantity instances of a catalog property
type Selection struct {
	PropertyID string `yaml:"property_id" json:"propertyId"`
	Quantity   int    `yaml:"quantity" json:"quantity"`
}

// Selections keeps the order in which properties were selected. It decodes from
// either an object ({"id": qty}, key order preserved) or a list of Selection.
type Selections []Selection

// UnmarshalJSON implements ordered decoding of the object form
func (s *Selections) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*s = nil
		return nil
	}
	if trimmed[0] == '[' {
		var list []Selection
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return err
		}
		*s = list
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return err
	}
	var out Selections
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		id, ok := tok.(string)
		if !ok {
			return fmt.Errorf("selection key must be a string, got %T", tok)
		}
		var qty int
		if err := dec.Decode(&qty); err != nil {
			return fmt.Errorf("selection %q: %w", id, err)
		}
		out = append(out, Selection{PropertyID: id, Quantity: qty})
	}
	*s = out
	return nil
}

// UnmarshalYAML implements ordered decoding of the mapping form
func (s *Selections) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.SequenceNode:
		var list []Selection
		if err := value.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	case yaml.MappingNode:
		out := make(Selections, 0, len(value.Content)/2)
		for i := 0; i+1 < len(value.Content); i += 2 {
			var qty int
			if err := value.Content[i+1].Decode(&qty); err != nil {
				return fmt.Errorf("selection %q: %w", value.Content[i].Value, err)
			}
			out = append(out, Selection{PropertyID: value.Content[i].Value, Quantity: qty})
		}
		*s = out
		return nil
	default:
		return fmt.Errorf("selections must be a mapping or a list")
	}
}

// Total returns the number of requested instances
func (s Selections) Total() int {
	n := 0
	for _, sel := range s {
		if sel.Quantity > 0 {
			n += sel.Quantity
		}
	}
	return n
}
