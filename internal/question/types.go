package question

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Set is a loaded question list.
type Set struct {
	Questions []Question `json:"questions" yaml:"questions"`
}

// Question is the wire shape of a single question record.
type Question struct {
	ID            ID       `json:"id" yaml:"id"`
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options" yaml:"options"`
	CorrectOption int      `json:"correctOption" yaml:"correctOption"`
	Points        int      `json:"points" yaml:"points"`
}

// ID is an opaque question identifier. Question sources emit both
// numeric and string ids; both decode to the same string form.
type ID string

// UnmarshalJSON accepts a JSON string or number.
func (id *ID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		*id = ID(value)
		return nil
	}
	var number json.Number
	if err := json.Unmarshal(data, &number); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*id = ID(number.String())
	return nil
}

// UnmarshalYAML accepts any scalar.
func (id *ID) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("id must be a scalar (line %d)", node.Line)
	}
	*id = ID(node.Value)
	return nil
}
