// Package readability extracts articles with go-shiori/go-readability, a Go
// port of Mozilla's Readability.
package readability

import (
	"fmt"

	"github.com/fwojciec/distill"
	"github.com/go-shiori/dom"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements distill.ArticleExtractor at compile time.
var _ distill.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract the main article from a document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle scores the document's blocks, strips boilerplate, and
// returns the reconstructed article. The algorithm runs on a private copy of
// the tree, so doc is left untouched. Panics inside the library are
// returned as EINTERNAL errors.
func (e *Extractor) ExtractArticle(doc *distill.Document) (article *distill.Article, err error) {
	if doc == nil || doc.Root == nil {
		return nil, distill.Errorf(distill.EINVALID, "empty document")
	}

	defer func() {
		if r := recover(); r != nil {
			article, err = nil, distill.Errorf(distill.EINTERNAL, "readability panicked: %v", r)
		}
	}()

	parsed, err := readability.FromDocument(dom.Clone(doc.Root, true), doc.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("readability: %w", err)
	}

	return &distill.Article{
		Title:         parsed.Title,
		Content:       parsed.Content,
		TextContent:   parsed.TextContent,
		Length:        parsed.Length,
		Excerpt:       parsed.Excerpt,
		Byline:        parsed.Byline,
		Direction:     distill.TextDirection(doc.Root),
		SiteName:      parsed.SiteName,
		Language:      distill.CanonicalLanguage(parsed.Language),
		PublishedTime: parsed.PublishedTime,
	}, nil
}
