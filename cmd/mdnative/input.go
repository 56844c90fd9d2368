package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/mdnative"
	"github.com/fwojciec/mdnative/fs"
	mdjson "github.com/fwojciec/mdnative/json"
	"github.com/fwojciec/mdnative/yaml"
	"golang.org/x/term"
)

type source struct {
	name string
	text string
}

// readSources expands inputs into files and reads each one. Stdin is the
// only source when inputs is empty.
func readSources(inputs []string, stdin io.Reader) ([]source, error) {
	if len(inputs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return []source{{name: "stdin", text: string(data)}}, nil
	}
	paths, err := fs.Inputs(inputs)
	if err != nil {
		return nil, err
	}
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		sources = append(sources, source{name: path, text: string(data)})
	}
	return sources, nil
}

// loadStyleSheet picks the decoder from the file extension.
func loadStyleSheet(path string) (mdnative.StyleSheet, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return mdjson.LoadStyleSheet(path)
	case ".yaml", ".yml":
		return yaml.LoadStyleSheet(path)
	default:
		return nil, fmt.Errorf("%w: stylesheet %q", mdnative.ErrUnsupportedFormat, path)
	}
}

func resolveWidth(width int, w io.Writer) int {
	if width > 0 {
		return width
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil && cols > 0 {
			return cols
		}
	}
	return defaultWidth
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
