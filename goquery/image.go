package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/distill"
)

// Ensure ImageSelector implements distill.ImageSelector at compile time.
var _ distill.ImageSelector = (*ImageSelector)(nil)

// ogImage matches the author-curated Open Graph image.
var ogImage = cascadia.MustCompile(`head meta[property="og:image"]`)

// imageScopes lists candidate image selectors from the most specific scope
// to the whole body. Within a scope, <noscript> fallbacks come first since
// lazy-loading pages often keep the real src there.
var imageScopes = []goquery.Matcher{
	cascadia.MustCompile(`div[itemtype$="://schema.org/Product"] noscript img`),
	cascadia.MustCompile(`div[itemtype$="://schema.org/Product"] img`),
	cascadia.MustCompile(`#main noscript img`),
	cascadia.MustCompile(`#main img`),
	cascadia.MustCompile(`main noscript img`),
	cascadia.MustCompile(`main img`),
	cascadia.MustCompile(`*[role="main"] img`),
	cascadia.MustCompile(`body noscript img`),
	cascadia.MustCompile(`body img`),
}

// ImageSelector picks a lead image from a document.
type ImageSelector struct{}

// NewImageSelector creates a new ImageSelector.
func NewImageSelector() *ImageSelector {
	return &ImageSelector{}
}

// SelectImage returns the og:image content when present. Otherwise it walks
// imageScopes in order and returns the resolved src of the first eligible
// image. Returns "" when nothing qualifies.
func (s *ImageSelector) SelectImage(doc *distill.Document) string {
	if doc == nil || doc.Root == nil {
		return ""
	}
	gq := goquery.NewDocumentFromNode(doc.Root)

	if meta := gq.FindMatcher(goquery.SingleMatcher(ogImage)); meta.Length() > 0 {
		return meta.AttrOr("content", "")
	}

	for _, scope := range imageScopes {
		if image, ok := firstEligibleImage(doc, gq.FindMatcher(scope)); ok {
			return image
		}
	}
	return ""
}

// firstEligibleImage returns the resolved src of the first eligible image in
// document order.
func firstEligibleImage(doc *distill.Document, images *goquery.Selection) (string, bool) {
	var (
		found string
		ok    bool
	)
	images.EachWithBreak(func(_ int, img *goquery.Selection) bool {
		if !IsEligible(img.Get(0)) {
			return true
		}
		src, exists := img.Attr("src")
		if !exists || src == "" {
			return true
		}
		found, ok = doc.ResolveURL(src), true
		return false
	})
	return found, ok
}
