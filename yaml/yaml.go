// Package yaml reads stylesheets written in YAML.
package yaml

import (
	"fmt"
	"os"

	"github.com/fwojciec/mdnative"
	"gopkg.in/yaml.v3"
)

// UnmarshalStyleSheet decodes a stylesheet: a mapping from style names to
// flat attribute mappings.
func UnmarshalStyleSheet(data []byte) (mdnative.StyleSheet, error) {
	var raw map[string]map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal stylesheet: %w", err)
	}
	ss := make(mdnative.StyleSheet, len(raw))
	for name, attrs := range raw {
		ss[name] = mdnative.Style(attrs)
	}
	if err := mdnative.ValidateStyleSheet(ss); err != nil {
		return nil, err
	}
	return ss, nil
}

// LoadStyleSheet reads a stylesheet from a YAML file.
func LoadStyleSheet(path string) (mdnative.StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalStyleSheet(data)
}
