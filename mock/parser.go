package mock

import "github.com/fwojciec/distill"

var _ distill.Parser = (*Parser)(nil)

// Parser is a mock implementation of distill.Parser.
type Parser struct {
	ParseFn func(baseURL string, rawHTML string) (*distill.Document, error)
}

func (p *Parser) Parse(baseURL string, rawHTML string) (*distill.Document, error) {
	return p.ParseFn(baseURL, rawHTML)
}
