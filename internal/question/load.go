package question

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format identifies the encoding of a question payload.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatForPath picks the payload format from a file extension.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads, validates, and normalizes a question file.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("read questions: %w", err)
	}
	return Decode(data, FormatForPath(path))
}

// Decode parses a payload, validates it against the question schema, and
// normalizes it. The payload is either a list of questions or an object
// with a "questions" list.
func Decode(data []byte, format Format) (Set, error) {
	canonical, err := canonicalJSON(data, format)
	if err != nil {
		return Set{}, err
	}
	if err := validateSchema(canonical); err != nil {
		return Set{}, err
	}
	set, err := parseJSONSet(canonical)
	if err != nil {
		return Set{}, err
	}
	return NormalizeSet(set)
}

// canonicalJSON converts a payload to JSON so one schema covers both formats.
func canonicalJSON(data []byte, format Format) ([]byte, error) {
	if format == FormatJSON {
		return data, nil
	}
	var value any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&value); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("parse yaml: empty document")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	out, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	return out, nil
}

func parseJSONSet(data []byte) (Set, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var questions []Question
		if err := decodeSingle(trimmed, &questions); err != nil {
			return Set{}, err
		}
		return Set{Questions: questions}, nil
	}
	var set Set
	if err := decodeSingle(trimmed, &set); err != nil {
		return Set{}, err
	}
	return set, nil
}

func decodeSingle(data []byte, target any) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return fmt.Errorf("parse json: multiple documents are not supported")
		}
		return fmt.Errorf("parse json: %w", err)
	}
	return nil
}
