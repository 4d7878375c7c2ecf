package distill

import "time"

// Article holds the reader-mode fields recovered from a document.
// Any field the extractor cannot determine is left at its zero value.
type Article struct {
	Title       string
	Content     string // cleaned HTML
	TextContent string
	Length      int
	Excerpt     string
	Byline      string

	// Direction is "ltr", "rtl", or empty when unknown.
	Direction string

	SiteName      string
	Language      string
	PublishedTime *time.Time
}

// ArticleExtractor runs a readability-style transformation over a document.
type ArticleExtractor interface {
	// ExtractArticle returns the primary article of doc. Implementations must
	// not mutate doc; it is shared with the image selector.
	ExtractArticle(doc *Document) (*Article, error)
}

// ImageSelector picks a representative lead image for a document.
type ImageSelector interface {
	// SelectImage returns an absolute image URL, or "" when none qualifies.
	SelectImage(doc *Document) string
}

// Distiller is the core boundary consumed by the HTTP server and the CLI.
type Distiller interface {
	// Distill never fails. Extraction problems surface as a nil Article
	// and an empty Image on the returned Result.
	Distill(baseURL string, rawHTML string) *Result
}
