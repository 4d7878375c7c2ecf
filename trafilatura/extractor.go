// Package trafilatura provides an alternative article extractor backed by
// go-trafilatura. It is used as a fallback when readability fails.
package trafilatura

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/fwojciec/distill"
	"github.com/go-shiori/dom"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements distill.ArticleExtractor at compile time.
var _ distill.ArticleExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article from a document.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractArticle runs trafilatura on a private copy of the document tree.
func (e *Extractor) ExtractArticle(doc *distill.Document) (article *distill.Article, err error) {
	if doc == nil || doc.Root == nil {
		return nil, distill.Errorf(distill.EINVALID, "empty document")
	}

	defer func() {
		if r := recover(); r != nil {
			article, err = nil, distill.Errorf(distill.EINTERNAL, "trafilatura panicked: %v", r)
		}
	}()

	opts := trafilatura.Options{
		OriginalURL:    doc.BaseURL,
		EnableFallback: true,
	}

	result, err := trafilatura.ExtractDocument(dom.Clone(doc.Root, true), opts)
	if err != nil {
		return nil, fmt.Errorf("trafilatura: %w", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	meta := result.Metadata
	article = &distill.Article{
		Title:       meta.Title,
		Content:     contentHTML,
		TextContent: result.ContentText,
		Length:      utf8.RuneCountInString(result.ContentText),
		Excerpt:     meta.Description,
		Byline:      meta.Author,
		Direction:   distill.TextDirection(doc.Root),
		SiteName:    meta.Sitename,
		Language:    distill.CanonicalLanguage(meta.Language),
	}
	if !meta.Date.IsZero() {
		published := meta.Date
		article.PublishedTime = &published
	}
	return article, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
