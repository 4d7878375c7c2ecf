package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/url"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/mock"
	dslog "github.com/fwojciec/distill/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testDocument(t *testing.T) *distill.Document {
	t.Helper()

	u, err := url.Parse("https://inbox.demo.com/inbox/1")
	require.NoError(t, err)
	return &distill.Document{BaseURL: u}
}

func TestLoggingArticleExtractor_ExtractArticle(t *testing.T) {
	t.Parallel()

	t.Run("logs title, length and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleExtractor{
			ExtractArticleFn: func(*distill.Document) (*distill.Article, error) {
				return &distill.Article{Title: "Digest", Length: 42}, nil
			},
		}

		ext := dslog.NewLoggingArticleExtractor(inner, "readability", debugLogger(&buf))
		article, err := ext.ExtractArticle(testDocument(t))

		require.NoError(t, err)
		assert.Equal(t, "Digest", article.Title)
		output := buf.String()
		assert.Contains(t, output, "extract article")
		assert.Contains(t, output, "extractor=readability")
		assert.Contains(t, output, "url=https://inbox.demo.com/inbox/1")
		assert.Contains(t, output, "title=Digest")
		assert.Contains(t, output, "length=42")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleExtractor{
			ExtractArticleFn: func(*distill.Document) (*distill.Article, error) {
				return nil, errors.New("no candidates")
			},
		}

		ext := dslog.NewLoggingArticleExtractor(inner, "readability", debugLogger(&buf))
		_, err := ext.ExtractArticle(testDocument(t))

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no candidates\"")
	})

	t.Run("tolerates nil document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ArticleExtractor{
			ExtractArticleFn: func(*distill.Document) (*distill.Article, error) {
				return nil, distill.Errorf(distill.EINVALID, "empty document")
			},
		}

		ext := dslog.NewLoggingArticleExtractor(inner, "readability", debugLogger(&buf))
		_, err := ext.ExtractArticle(nil)

		require.Error(t, err)
		assert.Contains(t, buf.String(), "url=\"\"")
	})
}

func TestLoggingImageSelector_SelectImage(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.ImageSelector{
		SelectImageFn: func(*distill.Document) string { return "https://inbox.demo.com/hero.png" },
	}

	sel := dslog.NewLoggingImageSelector(inner, debugLogger(&buf))
	image := sel.SelectImage(testDocument(t))

	assert.Equal(t, "https://inbox.demo.com/hero.png", image)
	output := buf.String()
	assert.Contains(t, output, "select image")
	assert.Contains(t, output, "image=https://inbox.demo.com/hero.png")
}

func TestLoggingDistiller_Distill(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Distiller{
		DistillFn: func(baseURL, rawHTML string) *distill.Result {
			return &distill.Result{Image: "https://inbox.demo.com/hero.png"}
		},
	}

	d := dslog.NewLoggingDistiller(inner, slog.New(slog.NewTextHandler(&buf, nil)))
	result := d.Distill("https://inbox.demo.com/inbox/1", "<p>hello</p>")

	assert.Equal(t, "https://inbox.demo.com/hero.png", result.Image)
	output := buf.String()
	assert.Contains(t, output, "msg=distill")
	assert.Contains(t, output, "bytes=12")
	assert.Contains(t, output, "article=false")
	assert.Contains(t, output, "image=true")
}
