package mdnative

// Registry maps node types to element builders. Types without an entry
// render as a plain View. The zero value is an empty registry.
type Registry struct {
	builders map[NodeType]ElementBuilder
}

// DefaultRegistry returns a new registry holding the built-in builders:
// containers scroll, text renders as Text, and images and lists get their
// own layout.
func DefaultRegistry() *Registry {
	r := &Registry{}
	r.Register(NodeContainer, Primitive(ComponentScrollView))
	r.Register(NodeText, Primitive(ComponentText))
	r.Register(NodeImage, ImageBuilder)
	r.Register(NodeList, ListBuilder)
	return r
}

// Register sets the builder for t, replacing any previous one. A nil
// builder removes the entry.
func (r *Registry) Register(t NodeType, b ElementBuilder) {
	if b == nil {
		delete(r.builders, t)
		return
	}
	if r.builders == nil {
		r.builders = make(map[NodeType]ElementBuilder)
	}
	r.builders[t] = b
}

// Lookup returns the builder for t, or a plain View primitive when none is
// registered.
func (r *Registry) Lookup(t NodeType) ElementBuilder {
	if b, ok := r.builders[t]; ok {
		return b
	}
	return Primitive(ComponentView)
}

// Clone returns an independent copy of r.
func (r *Registry) Clone() *Registry {
	out := &Registry{builders: make(map[NodeType]ElementBuilder, len(r.builders))}
	for t, b := range r.builders {
		out.builders[t] = b
	}
	return out
}
