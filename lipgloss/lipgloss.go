// Package lipgloss paints mdnative element trees as ANSI-styled terminal
// text using lipgloss for styling and reflow for word wrapping.
package lipgloss

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/mdnative"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
	"github.com/rivo/uniseg"
)

var _ mdnative.Painter = (*Painter)(nil)

// Painter realizes elements as terminal text. Views stack their children
// vertically, or horizontally with flexDirection "row". Views with flexWrap
// "wrap" hold inline content that is flowed and word-wrapped.
type Painter struct {
	// RuleChar draws childless views with a bottom border.
	RuleChar string
}

// NewPainter returns a Painter with default settings.
func NewPainter() *Painter {
	return &Painter{RuleChar: "─"}
}

// Paint renders el to fit within width cells.
func (p *Painter) Paint(el *mdnative.Element, width int) string {
	if el == nil {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	return strings.TrimRight(p.paint(el, width), "\n ")
}

func (p *Painter) paint(el *mdnative.Element, width int) string {
	if el == nil {
		return ""
	}
	switch el.Component {
	case mdnative.ComponentText:
		return textStyle(el.Style).Render(transform(el.Style, el.Text))
	case mdnative.ComponentImage:
		box := boxStyle(el.Style)
		return box.Render(imageLabel(el, width-box.GetHorizontalFrameSize()))
	}

	box := boxStyle(el.Style)
	inner := width - box.GetHorizontalFrameSize()
	if inner < 1 {
		inner = 1
	}

	var content string
	switch {
	case len(el.Children) == 0 && el.Style.Num("borderBottomWidth") > 0:
		rule := lipgloss.NewStyle().Foreground(color(el.Style, "borderBottomColor", "borderColor"))
		box = spacingStyle(el.Style)
		content = rule.Render(strings.Repeat(p.RuleChar, inner))
	case el.Style.Str("flexWrap") == "wrap":
		content = wrap.String(wordwrap.String(p.inline(el, nil), inner), inner)
	case el.Style.Str("flexDirection") == "row":
		content = p.row(el.Children, inner)
	default:
		content = p.column(el.Children, inner)
	}
	return box.Render(content)
}

// column stacks children. The bottom margin of the last child is dropped
// so nested blocks do not pile up blank lines at the end of their parent.
func (p *Painter) column(children []*mdnative.Element, width int) string {
	parts := make([]string, 0, len(children))
	for i, c := range children {
		if i == len(children)-1 {
			c = withoutBottomMargin(c)
		}
		if s := p.paint(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func withoutBottomMargin(el *mdnative.Element) *mdnative.Element {
	if el == nil || (el.Style.Num("marginBottom") == 0 && el.Style.Num("margin") == 0) {
		return el
	}
	out := *el
	out.Style = el.Style.Clone()
	out.Style["marginBottom"] = 0
	return &out
}

// row gives text children their natural width and splits what is left
// evenly among the other children.
func (p *Painter) row(children []*mdnative.Element, width int) string {
	remaining := width
	flexible := 0
	for _, c := range children {
		if c == nil {
			continue
		}
		if c.Component == mdnative.ComponentText {
			remaining -= uniseg.StringWidth(transform(c.Style, c.Text))
			continue
		}
		flexible++
	}
	share := 1
	if flexible > 0 && remaining > flexible {
		share = remaining / flexible
	}

	parts := make([]string, 0, len(children))
	for _, c := range children {
		w := share
		if c != nil && c.Component == mdnative.ComponentText {
			w = width
		}
		parts = append(parts, p.paint(c, w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// inline flattens the text below el into one styled run. A background set
// on an inline view, such as a code span, carries over to its text.
func (p *Painter) inline(el *mdnative.Element, bg lipgloss.TerminalColor) string {
	if el == nil {
		return ""
	}
	switch el.Component {
	case mdnative.ComponentText:
		st := textStyle(el.Style)
		if bg != nil {
			if _, ok := st.GetBackground().(lipgloss.NoColor); ok {
				st = st.Background(bg)
			}
		}
		return st.Render(transform(el.Style, el.Text))
	case mdnative.ComponentImage:
		return imageLabel(el, 0)
	}
	if c := color(el.Style, "backgroundColor"); c != (lipgloss.NoColor{}) {
		bg = c
	}
	var b strings.Builder
	for _, c := range el.Children {
		b.WriteString(p.inline(c, bg))
	}
	return b.String()
}

// imageLabel describes an image in text, truncated to width when width is
// positive.
func imageLabel(el *mdnative.Element, width int) string {
	uri := ""
	if el.Source != nil {
		uri = el.Source.URI
	}
	label := "[image: " + sanitize(uri) + "]"
	if width > 0 {
		label = runewidth.Truncate(label, width, "…")
	}
	return label
}

// transform sanitizes text and applies textTransform.
func transform(s mdnative.Style, text string) string {
	text = sanitize(text)
	switch s.Str("textTransform") {
	case "uppercase":
		return strings.ToUpper(text)
	case "lowercase":
		return strings.ToLower(text)
	}
	return text
}
