package config

import (
	"bytes"
	"fmt"
	"os"
	"sort"

	"github.com/disgoorg/json"
	"github.com/sharptimer/timerhook/types"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"
)

// Source is a flat key/value document with typed accessors.
// Accessors return types.ErrSettingMissing or types.ErrSettingType.
type Source interface {
	String(key string) (string, error)
	Int(key string) (int, error)
	Bool(key string) (bool, error)
	Keys() []string
}

func ReadSource(path string) (Source, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}

	source, err := ParseSource(data)
	if err != nil {
		return nil, data, err
	}
	return source, data, nil
}

// ParseSource reads a JSON object, or a YAML mapping for anything that is not one.
func ParseSource(data []byte) (Source, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("%w: document is empty", types.ErrSourceUnavailable)
	}

	if trimmed[0] == '{' {
		source, err := parseJSONSource(trimmed)
		if err != nil {
			return nil, err
		}
		return source, nil
	}

	source, err := parseYAMLSource(trimmed)
	if err != nil {
		return nil, err
	}
	return source, nil
}

// JSONSource keeps the raw value of every top level property.
type JSONSource struct {
	fields map[string]json.RawMessage
}

func parseJSONSource(data []byte) (*JSONSource, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}
	return &JSONSource{fields: fields}, nil
}

func (s *JSONSource) lookup(key string) (json.RawMessage, error) {
	raw, ok := s.fields[key]
	if !ok || bytes.Equal(raw, []byte("null")) {
		return nil, types.ErrSettingMissing
	}
	return raw, nil
}

func (s *JSONSource) decode(key string, value any) error {
	raw, err := s.lookup(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, value); err != nil {
		return fmt.Errorf("%w: %v", types.ErrSettingType, err)
	}
	return nil
}

func (s *JSONSource) String(key string) (string, error) {
	var value string
	err := s.decode(key, &value)
	return value, err
}

// Int only accepts whole numbers that fit in 32 bits.
func (s *JSONSource) Int(key string) (int, error) {
	var value int32
	err := s.decode(key, &value)
	return int(value), err
}

func (s *JSONSource) Bool(key string) (bool, error) {
	var value bool
	err := s.decode(key, &value)
	return value, err
}

func (s *JSONSource) Keys() []string {
	keys := maps.Keys(s.fields)
	sort.Strings(keys)
	return keys
}

// YAMLSource reads settings from a YAML mapping.
type YAMLSource struct {
	fields map[string]*yaml.Node
}

func parseYAMLSource(data []byte) (*YAMLSource, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrSourceUnavailable, err)
	}

	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 || root.Content[0].Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping at the document root", types.ErrSourceUnavailable)
	}

	mapping := root.Content[0]
	fields := make(map[string]*yaml.Node, len(mapping.Content)/2)
	for i := 0; i+1 < len(mapping.Content); i += 2 {
		// later keys win, same as the JSON reader
		fields[mapping.Content[i].Value] = mapping.Content[i+1]
	}

	return &YAMLSource{fields: fields}, nil
}

func (s *YAMLSource) scalar(key, tag string) (*yaml.Node, error) {
	node, ok := s.fields[key]
	if !ok || node.ShortTag() == "!!null" {
		return nil, types.ErrSettingMissing
	}
	if node.Kind != yaml.ScalarNode || node.ShortTag() != tag {
		return nil, fmt.Errorf("%w: expected %s, found %s", types.ErrSettingType, tag, node.ShortTag())
	}
	return node, nil
}

func (s *YAMLSource) String(key string) (string, error) {
	node, err := s.scalar(key, "!!str")
	if err != nil {
		return "", err
	}
	return node.Value, nil
}

func (s *YAMLSource) Int(key string) (int, error) {
	node, err := s.scalar(key, "!!int")
	if err != nil {
		return 0, err
	}

	var value int
	if err := node.Decode(&value); err != nil {
		return 0, fmt.Errorf("%w: %v", types.ErrSettingType, err)
	}
	return value, nil
}

func (s *YAMLSource) Bool(key string) (bool, error) {
	node, err := s.scalar(key, "!!bool")
	if err != nil {
		return false, err
	}

	var value bool
	if err := node.Decode(&value); err != nil {
		return false, fmt.Errorf("%w: %v", types.ErrSettingType, err)
	}
	return value, nil
}

func (s *YAMLSource) Keys() []string {
	keys := maps.Keys(s.fields)
	sort.Strings(keys)
	return keys
}
