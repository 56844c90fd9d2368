// Package json reads and writes stylesheets and element trees as JSON.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/mdnative"
)

// UnmarshalStyleSheet decodes a stylesheet: an object mapping style names
// to flat attribute objects.
func UnmarshalStyleSheet(data []byte) (mdnative.StyleSheet, error) {
	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
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

// MarshalStyleSheet encodes a stylesheet as indented JSON.
func MarshalStyleSheet(ss mdnative.StyleSheet) ([]byte, error) {
	if err := mdnative.ValidateStyleSheet(ss); err != nil {
		return nil, err
	}
	return json.MarshalIndent(ss, "", "  ")
}

// LoadStyleSheet reads a stylesheet from a JSON file.
func LoadStyleSheet(path string) (mdnative.StyleSheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalStyleSheet(data)
}

// SaveStyleSheet writes a stylesheet to a JSON file, creating parent
// directories as needed.
func SaveStyleSheet(path string, ss mdnative.StyleSheet) error {
	data, err := MarshalStyleSheet(ss)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return writeFile(path, data)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
