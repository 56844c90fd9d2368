package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the preview chrome.
type Styles struct {
	Title lipgloss.Style
	Muted lipgloss.Style
}

// NewStyles returns the default preview styles. Colors are ANSI indices so
// the terminal theme decides the actual colors.
func NewStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Foreground(ansiColor(5)).Bold(true),
		Muted: lipgloss.NewStyle().Foreground(ansiColor(8)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
