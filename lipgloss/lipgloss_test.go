package lipgloss_test

import (
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdnative"
	"github.com/fwojciec/mdnative/goldmark"
	mdlipgloss "github.com/fwojciec/mdnative/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ansiRE = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

// trimLines drops the padding lipgloss adds at the end of each line.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func TestMain(m *testing.M) {
	// Force ANSI color output so styled elements produce escape codes.
	lipgloss.SetColorProfile(termenv.ANSI)
	os.Exit(m.Run())
}

// paint renders markdown source through the full pipeline.
func paint(t *testing.T, src string, width int, opts ...mdnative.RenderOption) string {
	t.Helper()
	r := mdnative.NewRenderer(goldmark.NewParser(goldmark.WithGFM()))
	el, err := r.Render(src, opts...)
	require.NoError(t, err)
	return mdlipgloss.NewPainter().Paint(el, width)
}

func TestPainter_Paint(t *testing.T) {
	t.Parallel()

	t.Run("nil element paints nothing", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", mdlipgloss.NewPainter().Paint(nil, 80))
	})

	t.Run("plain paragraph", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, stripANSI(paint(t, "hello world", 80)), "hello world")
	})

	t.Run("escape sequences in text are not passed through", func(t *testing.T) {
		t.Parallel()
		out := paint(t, "before \x1b]0;pwned\x07after", 80)
		assert.NotContains(t, out, "pwned")
		assert.NotContains(t, out, "\x07")
	})

	t.Run("heading renders with distinct styling", func(t *testing.T) {
		t.Parallel()
		heading := paint(t, "# Title", 80)
		paragraph := paint(t, "Title", 80)
		assert.Contains(t, stripANSI(heading), "Title")
		assert.NotEqual(t, heading, paragraph)
	})

	t.Run("user stylesheet changes output", func(t *testing.T) {
		t.Parallel()
		plain := paint(t, "# Title", 80)
		styled := paint(t, "# Title", 80, mdnative.WithStyleSheet(mdnative.StyleSheet{
			"heading1": {"color": "1"},
		}))
		assert.NotEqual(t, plain, styled)
		assert.Equal(t, stripANSI(plain), stripANSI(styled))
	})

	t.Run("bullet list", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "- one\n- two\n- three", 80))
		assert.Contains(t, out, "• one")
		assert.Contains(t, out, "• two")
		assert.Contains(t, out, "• three")
	})

	t.Run("ordered list", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "1. first\n2. second", 80))
		assert.Contains(t, out, "1. first")
		assert.Contains(t, out, "2. second")
	})

	t.Run("nested list", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "- outer\n  - inner one\n  - inner two", 80))
		assert.Contains(t, out, "• outer")
		assert.Contains(t, out, "• inner one")
		assert.Contains(t, out, "• inner two")
	})

	t.Run("nested lists end with a single blank line", func(t *testing.T) {
		t.Parallel()
		out := trimLines(stripANSI(paint(t, "- a\n  - b\n    - c\n\nafter", 40)))
		assert.NotContains(t, out, "\n\n\n")
		assert.Regexp(t, `• c\n\nafter`, out)
	})

	t.Run("blockquote has no trailing blank line inside its border", func(t *testing.T) {
		t.Parallel()
		out := trimLines(stripANSI(paint(t, "> one\n> two\n\nafter", 40)))
		assert.Contains(t, out, "│ one two\n\nafter")
		for _, line := range strings.Split(out, "\n") {
			assert.NotEqual(t, "│", strings.TrimSpace(line))
		}
	})

	t.Run("paragraph wraps to width", func(t *testing.T) {
		t.Parallel()
		long := "word1 word2 word3 word4 word5 word6 word7 word8 word9 word10 word11 word12"
		out := stripANSI(paint(t, long, 30))
		assert.Contains(t, out, "word1")
		assert.Contains(t, out, "word12")
		lines := strings.Split(out, "\n")
		assert.Greater(t, len(lines), 1)
		for _, line := range lines {
			assert.LessOrEqual(t, lipgloss.Width(line), 30, "line too wide: %q", line)
		}
	})

	t.Run("inline styles keep text", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "a **bold** and *italic* and `code` and ~~gone~~", 80))
		assert.Contains(t, out, "a bold and italic and code and gone")
	})

	t.Run("fenced code block keeps lines", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "```go\nfmt.Println(\"hello world\")\n```", 20))
		assert.Contains(t, out, `fmt.Println("hello world")`)
	})

	t.Run("image shows source", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "![alt](https://example.com/img.png)", 80))
		assert.Contains(t, out, "[image: https://example.com/img.png]")
	})

	t.Run("thematic break draws a rule", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "above\n\n---\n\nbelow", 20))
		assert.Contains(t, out, "above")
		assert.Contains(t, out, strings.Repeat("─", 20))
		assert.Contains(t, out, "below")
	})

	t.Run("blockquote has a left border", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "> quoted", 80))
		assert.Contains(t, out, "│")
		assert.Contains(t, out, "quoted")
	})

	t.Run("table cells share a line", func(t *testing.T) {
		t.Parallel()
		out := stripANSI(paint(t, "| left | right |\n|---|---|\n| 1 | 2 |", 40))
		found := false
		for _, line := range strings.Split(out, "\n") {
			if strings.Contains(line, "left") && strings.Contains(line, "right") {
				found = true
			}
		}
		assert.True(t, found, "header cells not on one line:\n%s", out)
	})

	t.Run("width zero defaults to 80", func(t *testing.T) {
		t.Parallel()
		assert.Contains(t, stripANSI(paint(t, "hello world", 0)), "hello world")
	})
}

func TestPainter_Elements(t *testing.T) {
	t.Parallel()

	p := mdlipgloss.NewPainter()

	t.Run("text transform", func(t *testing.T) {
		t.Parallel()
		el := &mdnative.Element{
			Component: mdnative.ComponentText,
			Text:      "shout",
			Style:     mdnative.Style{"textTransform": "uppercase"},
		}
		assert.Equal(t, "SHOUT", stripANSI(p.Paint(el, 80)))
	})

	t.Run("row places children side by side", func(t *testing.T) {
		t.Parallel()
		el := &mdnative.Element{
			Component: mdnative.ComponentView,
			Style:     mdnative.Style{"flexDirection": "row"},
			Children: []*mdnative.Element{
				{Component: mdnative.ComponentText, Text: "> "},
				{Component: mdnative.ComponentView, Children: []*mdnative.Element{
					{Component: mdnative.ComponentText, Text: "a"},
					{Component: mdnative.ComponentText, Text: "b"},
				}},
			},
		}
		assert.Equal(t, "> a\n  b", stripANSI(p.Paint(el, 80)))
	})

	t.Run("column stacks children", func(t *testing.T) {
		t.Parallel()
		el := &mdnative.Element{
			Component: mdnative.ComponentScrollView,
			Children: []*mdnative.Element{
				{Component: mdnative.ComponentText, Text: "a"},
				{Component: mdnative.ComponentText, Text: "b"},
			},
		}
		assert.Equal(t, "a\nb", stripANSI(p.Paint(el, 80)))
	})

	t.Run("long image source is truncated", func(t *testing.T) {
		t.Parallel()
		el := &mdnative.Element{
			Component: mdnative.ComponentImage,
			Source:    &mdnative.ImageSource{URI: strings.Repeat("x", 100)},
		}
		out := stripANSI(p.Paint(el, 20))
		assert.LessOrEqual(t, lipgloss.Width(out), 20)
		assert.True(t, strings.HasSuffix(out, "…"))
	})

	t.Run("padding indents content", func(t *testing.T) {
		t.Parallel()
		el := &mdnative.Element{
			Component: mdnative.ComponentView,
			Style:     mdnative.Style{"paddingLeft": 2.0},
			Children:  []*mdnative.Element{{Component: mdnative.ComponentText, Text: "x"}},
		}
		assert.Equal(t, "  x", stripANSI(p.Paint(el, 80)))
	})
}
