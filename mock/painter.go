package mock

import "github.com/fwojciec/mdnative"

var _ mdnative.Painter = (*Painter)(nil)

// Painter is a test double for mdnative.Painter.
// Set PaintFn before calling Paint.
type Painter struct {
	PaintFn func(el *mdnative.Element, width int) string
}

// Paint delegates to PaintFn.
func (p *Painter) Paint(el *mdnative.Element, width int) string {
	return p.PaintFn(el, width)
}
