package mock

import "github.com/fwojciec/distill"

var _ distill.ArticleExtractor = (*ArticleExtractor)(nil)

// ArticleExtractor is a mock implementation of distill.ArticleExtractor.
type ArticleExtractor struct {
	ExtractArticleFn func(doc *distill.Document) (*distill.Article, error)
}

func (e *ArticleExtractor) ExtractArticle(doc *distill.Document) (*distill.Article, error) {
	return e.ExtractArticleFn(doc)
}

var _ distill.ImageSelector = (*ImageSelector)(nil)

// ImageSelector is a mock implementation of distill.ImageSelector.
type ImageSelector struct {
	SelectImageFn func(doc *distill.Document) string
}

func (s *ImageSelector) SelectImage(doc *distill.Document) string {
	return s.SelectImageFn(doc)
}

var _ distill.Distiller = (*Distiller)(nil)

// Distiller is a mock implementation of distill.Distiller.
type Distiller struct {
	DistillFn func(baseURL string, rawHTML string) *distill.Result
}

func (d *Distiller) Distill(baseURL string, rawHTML string) *distill.Result {
	return d.DistillFn(baseURL, rawHTML)
}
