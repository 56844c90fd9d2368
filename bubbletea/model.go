package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/mdnative"
)

var _ tea.Model = Model{}

// Model is the Bubble Tea model of the preview.
type Model struct {
	// Viewport is the scrollable document area. Exported for test access.
	Viewport viewport.Model

	painter mdnative.Painter
	styles  Styles

	docs    []Document
	current int
	ready   bool
}

// New creates a preview of docs painted with p.
func New(docs []Document, p mdnative.Painter) Model {
	return Model{
		painter: p,
		styles:  NewStyles(),
		docs:    docs,
	}
}

// Current returns the index of the displayed document.
func (m Model) Current() int { return m.current }

// Documents returns the number of documents.
func (m Model) Documents() int { return len(m.docs) }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "n", "tab":
			return m.show(m.current + 1), nil
		case "p", "shift+tab":
			return m.show(m.current - 1), nil
		}

	case DocumentMsg:
		m = m.upsert(msg.Document)
		return m.repaint(), nil
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	vpHeight := msg.Height - statusHeight
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m.repaint()
}

// show switches to document i, wrapping around.
func (m Model) show(i int) Model {
	if len(m.docs) < 2 {
		return m
	}
	m.current = (i + len(m.docs)) % len(m.docs)
	m = m.repaint()
	m.Viewport.GotoTop()
	return m
}

func (m Model) upsert(doc Document) Model {
	for i, d := range m.docs {
		if d.Title == doc.Title {
			docs := make([]Document, len(m.docs))
			copy(docs, m.docs)
			docs[i] = doc
			m.docs = docs
			return m
		}
	}
	m.docs = append(m.docs[:len(m.docs):len(m.docs)], doc)
	return m
}

func (m Model) repaint() Model {
	if !m.ready || len(m.docs) == 0 {
		return m
	}
	m.Viewport.SetContent(m.painter.Paint(m.docs[m.current].Element, m.Viewport.Width))
	return m
}

func (m Model) statusLine() string {
	if len(m.docs) == 0 {
		return m.styles.Muted.Render("no documents · q to quit")
	}
	title := m.styles.Title.Render(m.docs[m.current].Title)
	info := fmt.Sprintf(" %d/%d · %3.f%% · q to quit", m.current+1, len(m.docs), m.Viewport.ScrollPercent()*100)
	if len(m.docs) > 1 {
		info += " · n/p to switch"
	}
	return title + m.styles.Muted.Render(info)
}
