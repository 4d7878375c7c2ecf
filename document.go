package distill

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Document is a parsed HTML tree bound to the URL it was served from.
// A Document belongs to a single distill call and is never shared.
type Document struct {
	// Root is the document node returned by the HTML parser.
	Root *html.Node

	// BaseURL resolves relative references found in the tree.
	BaseURL *url.URL
}

// ResolveURL returns ref resolved against the document's base URL.
// A reference that cannot be parsed is returned trimmed but otherwise as-is.
func (d *Document) ResolveURL(ref string) string {
	ref = strings.TrimSpace(ref)
	u, err := url.Parse(ref)
	if err != nil || d.BaseURL == nil {
		return ref
	}
	return d.BaseURL.ResolveReference(u).String()
}

// Parser builds a Document from raw HTML.
type Parser interface {
	// Parse builds a tree from rawHTML with relative URLs resolving against
	// baseURL. Malformed HTML produces a best-effort tree, never an error.
	// Returns EINVALID if baseURL is not an absolute URL.
	Parse(baseURL string, rawHTML string) (*Document, error)
}

// ValidateBaseURL parses rawURL and checks that it has a scheme and a host.
func ValidateBaseURL(rawURL string) (*url.URL, error) {
	if rawURL == "" {
		return nil, Errorf(EINVALID, "base URL required")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, Errorf(EINVALID, "invalid base URL: %v", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, Errorf(EINVALID, "base URL %q must include scheme and host", rawURL)
	}
	return u, nil
}
