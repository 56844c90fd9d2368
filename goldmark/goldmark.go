// Package goldmark parses markdown into mdnative node trees using goldmark.
package goldmark

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/fwojciec/mdnative"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

var _ mdnative.Parser = (*Parser)(nil)

// Parser implements mdnative.Parser over a goldmark parser. Parser options
// are fixed at construction; a Parser is safe for concurrent use.
type Parser struct {
	md       goldmark.Markdown
	maxBytes int
	htmlText bool
}

// Option configures a Parser.
type Option func(*config)

type config struct {
	extensions []goldmark.Extender
	maxBytes   int
	htmlText   bool
}

// WithGFM enables GitHub Flavored Markdown: tables, strikethrough,
// autolinks and task lists.
func WithGFM() Option {
	return func(c *config) {
		c.extensions = append(c.extensions, extension.GFM)
	}
}

// WithFootnotes enables footnote syntax.
func WithFootnotes() Option {
	return func(c *config) {
		c.extensions = append(c.extensions, extension.Footnote)
	}
}

// WithExtensions adds arbitrary goldmark extensions. Node kinds the
// converter does not know become nodes typed after the kind name.
func WithExtensions(ext ...goldmark.Extender) Option {
	return func(c *config) {
		c.extensions = append(c.extensions, ext...)
	}
}

// WithMaxBytes rejects sources longer than n bytes. Zero means no limit.
func WithMaxBytes(n int) Option {
	return func(c *config) {
		c.maxBytes = n
	}
}

// WithHTMLText replaces raw HTML with the text it would display. Tags,
// comments, scripts and styles are dropped.
func WithHTMLText() Option {
	return func(c *config) {
		c.htmlText = true
	}
}

// NewParser creates a Parser. Without options it parses CommonMark.
func NewParser(opts ...Option) *Parser {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Parser{
		md:       goldmark.New(goldmark.WithExtensions(cfg.extensions...)),
		maxBytes: cfg.maxBytes,
		htmlText: cfg.htmlText,
	}
}

// Parse implements mdnative.Parser. The root is a container node.
func (p *Parser) Parse(source string) (*mdnative.Node, error) {
	if p.maxBytes > 0 && len(source) > p.maxBytes {
		return nil, fmt.Errorf("source is %d bytes, limit is %d", len(source), p.maxBytes)
	}
	src := []byte(source)
	doc := p.md.Parser().Parse(text.NewReader(src))
	c := converter{source: src, htmlText: p.htmlText}
	return c.convert(doc), nil
}

type converter struct {
	source   []byte
	htmlText bool
}

func (c *converter) convert(n ast.Node) *mdnative.Node {
	out := c.node(n)
	switch n := n.(type) {
	case *ast.HTMLBlock:
		s := c.lines(n)
		if c.htmlText {
			s = strings.TrimSpace(htmlText(s))
		}
		if s != "" {
			out.Append(&mdnative.Node{Type: mdnative.NodeText, Text: s})
		}
		return out
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		if s := c.lines(n); s != "" {
			out.Append(&mdnative.Node{Type: mdnative.NodeText, Text: s})
		}
		return out
	case *ast.Image:
		// Alt text has no place inside an image element.
		return out
	case *ast.AutoLink:
		out.Append(&mdnative.Node{Type: mdnative.NodeText, Text: string(n.URL(c.source))})
		return out
	case *east.FootnoteLink:
		out.Append(&mdnative.Node{Type: mdnative.NodeText, Text: "[" + strconv.Itoa(n.Index) + "]"})
		return out
	}
	c.children(n, out)
	return out
}

// children converts the children of n into out. Runs of adjacent inline
// text become a single text node.
func (c *converter) children(n ast.Node, out *mdnative.Node) {
	var run strings.Builder
	flush := func() {
		if run.Len() == 0 {
			return
		}
		out.Append(&mdnative.Node{Type: mdnative.NodeText, Text: run.String()})
		run.Reset()
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if s, ok := c.inlineText(child); ok {
			run.WriteString(s)
			continue
		}
		flush()
		out.Append(c.convert(child))
	}
	flush()
}

// inlineText returns the literal text of plain text nodes.
func (c *converter) inlineText(n ast.Node) (string, bool) {
	switch n := n.(type) {
	case *ast.Text:
		s := c.text(n)
		switch {
		case n.HardLineBreak():
			s += "\n"
		case n.SoftLineBreak():
			s += " "
		}
		return s, true
	case *ast.String:
		return string(n.Value), true
	case *ast.RawHTML:
		var b bytes.Buffer
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.source))
		}
		if c.htmlText {
			return htmlText(b.String()), true
		}
		return b.String(), true
	case *east.TaskCheckBox:
		if n.IsChecked {
			return "[x] ", true
		}
		return "[ ] ", true
	}
	return "", false
}

// text returns the content of n with backslash escapes and entity
// references resolved. Raw segments, such as code span content, are kept.
func (c *converter) text(n *ast.Text) string {
	value := n.Segment.Value(c.source)
	if n.IsRaw() {
		return string(value)
	}
	value = util.UnescapePunctuations(value)
	value = util.ResolveNumericReferences(value)
	value = util.ResolveEntityNames(value)
	return string(value)
}

func (c *converter) lines(n ast.Node) string {
	var b bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(c.source))
	}
	return strings.TrimRight(b.String(), "\n")
}

// node returns an empty node carrying the type and attributes of n.
func (c *converter) node(n ast.Node) *mdnative.Node {
	switch n := n.(type) {
	case *ast.Document:
		return &mdnative.Node{Type: mdnative.NodeContainer}
	case *ast.Heading:
		return &mdnative.Node{Type: mdnative.NodeHeading, Depth: n.Level}
	case *ast.Paragraph:
		return &mdnative.Node{Type: mdnative.NodeParagraph}
	case *ast.TextBlock:
		return &mdnative.Node{Type: mdnative.NodeTextBlock}
	case *ast.List:
		return &mdnative.Node{Type: mdnative.NodeList, Ordered: n.IsOrdered()}
	case *ast.ListItem:
		return &mdnative.Node{Type: mdnative.NodeListItem}
	case *ast.Image:
		return &mdnative.Node{Type: mdnative.NodeImage, Href: string(n.Destination)}
	case *ast.Link:
		return &mdnative.Node{Type: mdnative.NodeLink, Href: string(n.Destination)}
	case *ast.AutoLink:
		return &mdnative.Node{Type: mdnative.NodeLink, Href: string(n.URL(c.source))}
	case *ast.Blockquote:
		return &mdnative.Node{Type: mdnative.NodeBlockquote}
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		return &mdnative.Node{Type: mdnative.NodeCode}
	case *ast.CodeSpan:
		return &mdnative.Node{Type: mdnative.NodeCodespan}
	case *ast.Emphasis:
		if n.Level >= 2 {
			return &mdnative.Node{Type: mdnative.NodeStrong}
		}
		return &mdnative.Node{Type: mdnative.NodeEm}
	case *ast.ThematicBreak:
		return &mdnative.Node{Type: mdnative.NodeHR}
	case *ast.HTMLBlock:
		return &mdnative.Node{Type: mdnative.NodeHTML}
	case *east.Strikethrough:
		return &mdnative.Node{Type: mdnative.NodeDel}
	case *east.Table:
		return &mdnative.Node{Type: mdnative.NodeTable}
	case *east.TableHeader, *east.TableRow:
		return &mdnative.Node{Type: mdnative.NodeTableRow}
	case *east.TableCell:
		return &mdnative.Node{Type: mdnative.NodeTableCell}
	}
	return &mdnative.Node{Type: mdnative.NodeType(snakeCase(n.Kind().String()))}
}

// snakeCase turns a kind name such as "FootnoteList" into "footnote_list".
func snakeCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
