// Package bubbletea provides a Bubble Tea preview for rendered markdown.
// The document scrolls in a viewport and is repainted whenever the
// terminal width changes.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdnative"
)

// Document is one rendered markdown source.
type Document struct {
	Title   string
	Element *mdnative.Element
}

// Run creates and runs the Bubble Tea program. It blocks until the program
// exits. When ctx is cancelled the program quits.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

// DocumentMsg replaces the document with the same title, or appends it
// when no document has that title.
type DocumentMsg struct {
	Document Document
}
