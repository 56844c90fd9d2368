// Package mock provides test doubles for mdnative interfaces using function
// fields.
package mock

import "github.com/fwojciec/mdnative"

// Interface compliance checks.
var (
	_ mdnative.Parser         = (*Parser)(nil)
	_ mdnative.ElementBuilder = (*ElementBuilder)(nil)
)

// Parser is a test double for mdnative.Parser.
// Set ParseFn before calling Parse.
type Parser struct {
	ParseFn func(source string) (*mdnative.Node, error)
}

// Parse delegates to ParseFn.
func (p *Parser) Parse(source string) (*mdnative.Node, error) {
	return p.ParseFn(source)
}
