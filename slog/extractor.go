// Package slog provides log/slog decorators for the distill interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingArticleExtractor implements distill.ArticleExtractor.
var _ distill.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with debug logging.
type LoggingArticleExtractor struct {
	next   distill.ArticleExtractor
	name   string
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
// The name identifies the wrapped implementation in log output.
func NewLoggingArticleExtractor(next distill.ArticleExtractor, name string, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, name: name, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the operation.
func (e *LoggingArticleExtractor) ExtractArticle(doc *distill.Document) (article *distill.Article, err error) {
	defer func(begin time.Time) {
		var title string
		var length int
		if article != nil {
			title, length = article.Title, article.Length
		}
		e.logger.Debug("extract article",
			"extractor", e.name,
			"url", documentURL(doc),
			"title", title,
			"length", length,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractArticle(doc)
}

// Ensure LoggingImageSelector implements distill.ImageSelector.
var _ distill.ImageSelector = (*LoggingImageSelector)(nil)

// LoggingImageSelector wraps an ImageSelector with debug logging.
type LoggingImageSelector struct {
	next   distill.ImageSelector
	logger *slog.Logger
}

// NewLoggingImageSelector creates a new LoggingImageSelector.
func NewLoggingImageSelector(next distill.ImageSelector, logger *slog.Logger) *LoggingImageSelector {
	return &LoggingImageSelector{next: next, logger: logger}
}

// SelectImage delegates to the wrapped selector and logs the chosen image.
func (s *LoggingImageSelector) SelectImage(doc *distill.Document) (image string) {
	defer func(begin time.Time) {
		s.logger.Debug("select image",
			"url", documentURL(doc),
			"image", image,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.SelectImage(doc)
}

func documentURL(doc *distill.Document) string {
	if doc == nil || doc.BaseURL == nil {
		return ""
	}
	return doc.BaseURL.String()
}
