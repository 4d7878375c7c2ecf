package goquery

import (
	"regexp"
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
)

// hiddenStyle matches inline styles that hide an element.
var hiddenStyle = regexp.MustCompile(`display:\s*none`)

// IsEligible reports whether n may serve as a lead image.
//
// The element and every ancestor element up to the root must pass two checks:
// no inline display:none style, and no class or id containing "header"
// (case-insensitive). The walk is iterative so nesting depth is unbounded.
func IsEligible(n *html.Node) bool {
	for ; n != nil && n.Type == html.ElementNode; n = n.Parent {
		if isHidden(n) || isHeader(n) {
			return false
		}
	}
	return true
}

func isHidden(n *html.Node) bool {
	return hiddenStyle.MatchString(dom.GetAttribute(n, "style"))
}

func isHeader(n *html.Node) bool {
	for _, class := range strings.Fields(dom.ClassName(n)) {
		if strings.Contains(strings.ToLower(class), "header") {
			return true
		}
	}
	return strings.Contains(strings.ToLower(dom.ID(n)), "header")
}
