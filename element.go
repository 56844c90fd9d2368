package mdnative

import "strconv"

// Component names a native UI primitive.
type Component string

// Native primitives an Element can be realized as.
const (
	ComponentView       Component = "View"
	ComponentText       Component = "Text"
	ComponentScrollView Component = "ScrollView"
	ComponentImage      Component = "Image"
)

// Element is one node of the rendered tree. Text elements carry their
// content in Text; every other element carries Children.
type Element struct {
	Component Component
	Key       string
	Style     Style
	Text      string
	Children  []*Element

	// Source is the image location, set on Image elements only.
	Source *ImageSource

	// Markdown is the raw node a custom builder chose to forward.
	Markdown *Node
}

// ImageSource locates image data.
type ImageSource struct {
	URI string
}

// ListStyles holds the prefix styles for list items.
type ListStyles struct {
	Bullet Style
	Number Style
}

// Props is everything a builder receives for one node.
type Props struct {
	Key      string
	Style    Style
	Text     string
	Children []*Element

	// ListStyles is set for list nodes only.
	ListStyles *ListStyles

	// Markdown is the source node. It is only passed to builders that are
	// not a Primitive.
	Markdown *Node
}

// ElementBuilder constructs the element for a node.
type ElementBuilder interface {
	Build(p Props) *Element
}

// BuilderFunc adapts a function to ElementBuilder.
type BuilderFunc func(p Props) *Element

// Build calls f(p).
func (f BuilderFunc) Build(p Props) *Element { return f(p) }

// Primitive builds a plain element of the named component. Nodes handled by
// a Primitive receive no markdown-specific data.
type Primitive Component

// Build implements ElementBuilder.
func (c Primitive) Build(p Props) *Element {
	return &Element{
		Component: Component(c),
		Key:       p.Key,
		Style:     p.Style,
		Text:      p.Text,
		Children:  p.Children,
		Markdown:  p.Markdown,
	}
}

// ListBuilder lays out each rendered list item in a row behind a bullet or
// number prefix.
var ListBuilder ElementBuilder = BuilderFunc(buildList)

func buildList(p Props) *Element {
	var ls ListStyles
	if p.ListStyles != nil {
		ls = *p.ListStyles
	}
	ordered := p.Markdown != nil && p.Markdown.Ordered

	rows := make([]*Element, len(p.Children))
	for i, child := range p.Children {
		rows[i] = &Element{
			Component: ComponentView,
			Key:       "list-el-" + strconv.Itoa(i),
			Style:     Style{"flexDirection": "row", "flex": 1},
			Children: []*Element{
				{
					Component: ComponentText,
					Style:     prefixStyle(ls, ordered),
					Text:      listPrefix(i, ordered),
				},
				child,
			},
		}
	}
	p.Children = rows
	return Primitive(ComponentView).Build(p)
}

func listPrefix(i int, ordered bool) string {
	if ordered {
		return strconv.Itoa(i+1) + ". "
	}
	return "• "
}

func prefixStyle(ls ListStyles, ordered bool) Style {
	if ordered {
		return ls.Number.Clone()
	}
	return ls.Bullet.Clone()
}

// ImageBuilder renders an image node, taking the source from the node's
// Href.
var ImageBuilder ElementBuilder = BuilderFunc(buildImage)

func buildImage(p Props) *Element {
	md := p.Markdown
	p.Markdown = nil
	el := Primitive(ComponentImage).Build(p)
	if md != nil {
		el.Source = &ImageSource{URI: md.Href}
	}
	return el
}

// Painter realizes an element tree as text no wider than width cells.
type Painter interface {
	Paint(el *Element, width int) string
}
