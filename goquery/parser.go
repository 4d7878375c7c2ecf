// Package goquery implements document building and lead-image selection on
// top of golang.org/x/net/html and github.com/PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"strings"

	"github.com/fwojciec/distill"
	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// Ensure Parser implements distill.Parser at compile time.
var _ distill.Parser = (*Parser)(nil)

// Parser builds distill.Documents with the HTML5 parsing algorithm.
//
// Scripting is disabled while parsing, so the content of <noscript> elements
// becomes a regular subtree instead of raw text. The parser never writes
// diagnostics anywhere; malformed markup silently yields a best-effort tree.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a tree from rawHTML bound to baseURL, or to the document's
// own <base href> when it has one.
func (p *Parser) Parse(baseURL string, rawHTML string) (*distill.Document, error) {
	base, err := distill.ValidateBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	root, err := parse(rawHTML)
	if err != nil {
		// x/net/html rejects trees deeper than its open element limit.
		// Flatten the deepest elements and keep their text instead.
		root, err = parse(capDepth(rawHTML, maxDepth))
	}
	if err != nil {
		root, _ = html.Parse(strings.NewReader(""))
	}

	return &distill.Document{Root: root, BaseURL: documentBase(root, base)}, nil
}

func parse(rawHTML string) (*html.Node, error) {
	return html.ParseWithOptions(strings.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
}

// maxDepth stays below the parser's 512 open element limit, leaving room
// for implied and reconstructed elements.
const maxDepth = 400

// capDepth drops start and end tags nested deeper than limit, keeping all
// other tokens verbatim. Depth is counted from explicit tags, which never
// undercounts the parser's stack by more than the implied elements.
func capDepth(rawHTML string, limit int) string {
	var (
		b       strings.Builder
		depth   int
		dropped int
	)
	z := html.NewTokenizer(strings.NewReader(rawHTML))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return b.String()
		}
		raw := z.Raw()
		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if voidElements[string(name)] {
				break
			}
			// Raw text elements hold no child elements, so they can
			// stay and keep their content out of the text.
			if depth >= limit && !rawTextElements[string(name)] {
				dropped++
				continue
			}
			depth++
		case html.EndTagToken:
			name, _ := z.TagName()
			if voidElements[string(name)] {
				break
			}
			if dropped > 0 && !rawTextElements[string(name)] {
				dropped--
				continue
			}
			if depth > 0 {
				depth--
			}
		}
		b.Write(raw)
	}
}

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "keygen": true, "link": true,
	"meta": true, "param": true, "source": true, "track": true, "wbr": true,
}

var rawTextElements = map[string]bool{
	"iframe": true, "noembed": true, "noframes": true, "noscript": true,
	"plaintext": true, "script": true, "style": true, "textarea": true,
	"title": true, "xmp": true,
}

// documentBase honors the first <base href>, resolved against base, the way
// browsers bind a document's base URL. Unusable values are ignored.
func documentBase(root *html.Node, base *url.URL) *url.URL {
	node := dom.QuerySelector(root, "base[href]")
	if node == nil {
		return base
	}
	ref, err := url.Parse(strings.TrimSpace(dom.GetAttribute(node, "href")))
	if err != nil {
		return base
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return base
	}
	return resolved
}
