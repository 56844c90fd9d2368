package bubbletea_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdnative"
	bt "github.com/fwojciec/mdnative/bubbletea"
	"github.com/fwojciec/mdnative/mock"
	"github.com/stretchr/testify/require"
)

// textDoc returns a document holding a single text element.
func textDoc(title, text string) bt.Document {
	return bt.Document{
		Title:   title,
		Element: &mdnative.Element{Component: mdnative.ComponentText, Text: text},
	}
}

// echoPainter paints text elements verbatim and records the last width.
func echoPainter(width *int) *mock.Painter {
	return &mock.Painter{
		PaintFn: func(el *mdnative.Element, w int) string {
			if width != nil {
				*width = w
			}
			return el.Text
		},
	}
}

// initModel creates a model and sends a WindowSizeMsg to initialize the viewport.
func initModel(t *testing.T, p mdnative.Painter, docs ...bt.Document) bt.Model {
	t.Helper()
	return updateModel(t, bt.New(docs, p), tea.WindowSizeMsg{Width: 80, Height: 24})
}

// updateModel sends a message and returns the updated Model.
func updateModel(t *testing.T, m bt.Model, msg tea.Msg) bt.Model {
	t.Helper()
	updated, _ := m.Update(msg)
	model, ok := updated.(bt.Model)
	require.True(t, ok)
	return model
}
