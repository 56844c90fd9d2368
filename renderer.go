package mdnative

import (
	"fmt"
	"strconv"
)

// Parser turns markdown source into a node tree. Implementations must
// return a finite acyclic tree whose non-root nodes have their parent set.
// Parser options are fixed when the parser is constructed.
type Parser interface {
	Parse(source string) (*Node, error)
}

// Renderer renders markdown into element trees. A Renderer holds no
// per-render state and is safe for concurrent use once configured.
type Renderer struct {
	parser   Parser
	registry *Registry
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithRegistry replaces the default builder registry. The registry is
// cloned, so later changes to r do not affect the Renderer.
func WithRegistry(r *Registry) RendererOption {
	return func(rd *Renderer) {
		if r != nil {
			rd.registry = r.Clone()
		}
	}
}

// NewRenderer creates a Renderer that parses with p.
func NewRenderer(p Parser, opts ...RendererOption) *Renderer {
	r := &Renderer{parser: p, registry: DefaultRegistry()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Registry returns a copy of the renderer's builder registry.
func (r *Renderer) Registry() *Registry { return r.registry.Clone() }

// RenderOption configures a single render.
type RenderOption func(*renderConfig)

type renderConfig struct {
	styles StyleSheet
	style  Style
	key    string
}

// WithStyleSheet sets the user stylesheet. Its entries override the
// built-in ones key by key; attributes it leaves out keep their defaults.
func WithStyleSheet(ss StyleSheet) RenderOption {
	return func(c *renderConfig) {
		c.styles = ss
	}
}

// WithStyle sets a style applied to the root element with the highest
// precedence.
func WithStyle(s Style) RenderOption {
	return func(c *renderConfig) {
		c.style = s
	}
}

// WithKey sets the key of the root element.
func WithKey(key string) RenderOption {
	return func(c *renderConfig) {
		c.key = key
	}
}

// Render parses source and renders the resulting tree. Parser errors are
// returned wrapped in ErrParse.
func (r *Renderer) Render(source string, opts ...RenderOption) (*Element, error) {
	root, err := r.parser.Parse(source)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return r.RenderNode(root, opts...), nil
}

// RenderNode renders an already parsed tree.
func (r *Renderer) RenderNode(root *Node, opts ...RenderOption) *Element {
	var cfg renderConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return r.render(root, &cfg, cfg.key, cfg.style)
}

func (r *Renderer) render(n *Node, cfg *renderConfig, key string, override Style) *Element {
	builder := r.registry.Lookup(n.Type)
	isText := n.IsText()

	var styles []Style
	if isText {
		styles = AncestorTextStyles(n, cfg.styles)
	}
	styles = append(styles, ResolveStyles(n, cfg.styles, isText)...)
	if override != nil {
		styles = append(styles, override)
	}

	p := Props{
		Key:   key,
		Style: Flatten(styles...),
	}
	if isText {
		p.Text = n.Text
	} else if len(n.Children) > 0 {
		p.Children = make([]*Element, len(n.Children))
		for i, c := range n.Children {
			p.Children[i] = r.render(c, cfg, "child-"+strconv.Itoa(i), nil)
		}
	}
	if n.Type == NodeList {
		ls := listStyles(cfg.styles)
		p.ListStyles = &ls
	}
	if _, ok := builder.(Primitive); !ok {
		p.Markdown = n
	}
	return builder.Build(p)
}
