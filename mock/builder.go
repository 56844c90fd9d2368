package mock

import "github.com/fwojciec/mdnative"

// ElementBuilder is a test double for mdnative.ElementBuilder.
// Set BuildFn before calling Build.
type ElementBuilder struct {
	BuildFn func(p mdnative.Props) *mdnative.Element
}

// Build delegates to BuildFn.
func (b *ElementBuilder) Build(p mdnative.Props) *mdnative.Element {
	return b.BuildFn(p)
}
