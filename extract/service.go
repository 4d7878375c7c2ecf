// Package extract composes parsing, article extraction, and lead-image
// selection into a single best-effort distill call.
package extract

import (
	"fmt"
	"log/slog"

	"github.com/fwojciec/distill"
)

// Ensure Service implements distill.Distiller at compile time.
var _ distill.Distiller = (*Service)(nil)

// Service orchestrates a distill call. Parser, Articles and Images are
// required; Fallback and Logger are optional.
type Service struct {
	Parser   distill.Parser
	Articles distill.ArticleExtractor
	Images   distill.ImageSelector

	// Fallback is consulted only when Articles fails.
	Fallback distill.ArticleExtractor

	Logger *slog.Logger
}

// NewService creates a Service with the required collaborators.
func NewService(parser distill.Parser, articles distill.ArticleExtractor, images distill.ImageSelector) *Service {
	return &Service{
		Parser:   parser,
		Articles: articles,
		Images:   images,
	}
}

// Distill builds one document and runs image selection and article
// extraction against it. It never panics and never returns nil: an unusable
// base URL or failed extraction leaves the matching Result fields empty.
func (s *Service) Distill(baseURL string, rawHTML string) *distill.Result {
	result := &distill.Result{}

	doc, err := s.parse(baseURL, rawHTML)
	if err != nil {
		s.logger().Warn("parse document", "url", baseURL, "err", err)
		return result
	}

	// Image selection only reads the tree; extractors work on their own copy.
	result.Image = s.selectImage(doc)
	result.Article = s.extractArticle(doc)

	return result
}

func (s *Service) parse(baseURL, rawHTML string) (doc *distill.Document, err error) {
	defer recoverAs(&err, "parse")
	doc, err = s.Parser.Parse(baseURL, rawHTML)
	if err == nil && (doc == nil || doc.Root == nil) {
		err = distill.Errorf(distill.EINTERNAL, "parser returned an empty document")
	}
	return doc, err
}

func (s *Service) selectImage(doc *distill.Document) (image string) {
	defer func() {
		if r := recover(); r != nil {
			s.logger().Error("select image", "url", documentURL(doc), "err", fmt.Sprint(r))
			image = ""
		}
	}()
	return s.Images.SelectImage(doc)
}

func (s *Service) extractArticle(doc *distill.Document) *distill.Article {
	article, err := s.tryExtract(s.Articles, doc)
	if err == nil {
		return article
	}
	s.logger().Warn("extract article", "url", documentURL(doc), "err", err)

	if s.Fallback == nil {
		return nil
	}
	article, err = s.tryExtract(s.Fallback, doc)
	if err != nil {
		s.logger().Warn("extract article with fallback", "url", documentURL(doc), "err", err)
		return nil
	}
	return article
}

func (s *Service) tryExtract(ext distill.ArticleExtractor, doc *distill.Document) (article *distill.Article, err error) {
	defer recoverAs(&err, "extract article")
	article, err = ext.ExtractArticle(doc)
	if err == nil && article == nil {
		err = distill.Errorf(distill.ENOTFOUND, "no article found")
	}
	return article, err
}

func (s *Service) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

func documentURL(doc *distill.Document) string {
	if doc.BaseURL == nil {
		return ""
	}
	return doc.BaseURL.String()
}

// recoverAs converts a panic in the calling function into an EINTERNAL error.
func recoverAs(err *error, op string) {
	if r := recover(); r != nil {
		*err = distill.Errorf(distill.EINTERNAL, "%s panicked: %v", op, r)
	}
}
