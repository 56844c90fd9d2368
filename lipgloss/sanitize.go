package lipgloss

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// tabWidth is the number of spaces a tab expands to.
const tabWidth = 4

// sanitize makes document text safe to paint. Escape sequences embedded in
// the markdown are removed so they cannot restyle or move the cursor, CRLF
// becomes LF, tabs expand to spaces and other control characters are
// dropped. Newlines survive for code blocks.
func sanitize(s string) string {
	s = ansi.Strip(s)
	s = strings.ReplaceAll(s, "\r\n", "\n")

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\t':
			b.WriteString(strings.Repeat(" ", tabWidth))
		case r == '\n' || (r > 0x1F && r != 0x7F):
			b.WriteRune(r)
		}
	}
	return b.String()
}
