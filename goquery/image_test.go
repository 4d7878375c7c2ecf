package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure ImageSelector implements distill.ImageSelector at compile time.
var _ distill.ImageSelector = (*goquery.ImageSelector)(nil)

func selectImage(t *testing.T, baseURL, html string) string {
	t.Helper()

	doc, err := goquery.NewParser().Parse(baseURL, html)
	require.NoError(t, err)
	return goquery.NewImageSelector().SelectImage(doc)
}

func TestImageSelector_SelectImage(t *testing.T) {
	t.Parallel()

	t.Run("prefers og:image over body images", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:image" content="http://x/a.png"></head><body><img src="http://x/b.png"></body></html>`

		assert.Equal(t, "http://x/a.png", selectImage(t, "http://x", html))
	})

	t.Run("returns og:image content verbatim", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta property="og:image" content="/relative.png"></head><body></body></html>`

		assert.Equal(t, "/relative.png", selectImage(t, "http://x", html))
	})

	t.Run("og:image bypasses eligibility checks", func(t *testing.T) {
		t.Parallel()

		html := `<html id="header" style="display:none"><head><meta property="og:image" content="http://x/a.png"></head><body></body></html>`

		assert.Equal(t, "http://x/a.png", selectImage(t, "http://x", html))
	})

	t.Run("resolves src against base href", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><base href="http://cdn.example.com/"></head><body><img src="a.png"></body></html>`

		assert.Equal(t, "http://cdn.example.com/a.png", selectImage(t, "http://x/inbox/1", html))
	})

	t.Run("ignores og:image outside head", func(t *testing.T) {
		t.Parallel()

		html := `<html><head></head><body><div><meta property="og:image" content="http://x/a.png"></div><img src="http://x/b.png"></body></html>`

		assert.Equal(t, "http://x/b.png", selectImage(t, "http://x", html))
	})

	t.Run("skips header image and picks main image", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><header><img src="http://x/logo.png"></header><main><img src="http://x/hero.png"></main></body></html>`

		assert.Equal(t, "http://x/hero.png", selectImage(t, "http://x", html))
	})

	t.Run("returns empty string for empty body", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, selectImage(t, "http://x", `<html><body></body></html>`))
	})

	t.Run("resolves relative src against base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="main"><img src="/b.png"></div></body></html>`

		assert.Equal(t, "http://x/b.png", selectImage(t, "http://x", html))
	})

	t.Run("prefers product schema images over main", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><img src="/main.png"></main>
<div itemtype="https://schema.org/Product"><img src="/product.png"></div>
</body></html>`

		assert.Equal(t, "http://x/product.png", selectImage(t, "http://x", html))
	})

	t.Run("prefers noscript image within the same scope", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><div id="main">
<img src="/lazy-placeholder.png">
<noscript><img src="/real.png"></noscript>
</div></body></html>`

		assert.Equal(t, "http://x/real.png", selectImage(t, "http://x", html))
	})

	t.Run("prefers #main over main element", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><img src="/main-element.png"></main><section id="main"><img src="/main-id.png"></section></body></html>`

		assert.Equal(t, "http://x/main-id.png", selectImage(t, "http://x", html))
	})

	t.Run("uses role=main before whole body", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><img src="/first.png"><div role="main"><img src="/role.png"></div></body></html>`

		assert.Equal(t, "http://x/role.png", selectImage(t, "http://x", html))
	})

	t.Run("falls back to first eligible body image in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div class="site-header"><img src="/logo.png"></div>
<img style="display: none" src="/tracker.png">
<img src="">
<img alt="no src">
<p><img src="/first.png"></p>
<img src="/second.png">
</body></html>`

		assert.Equal(t, "http://x/first.png", selectImage(t, "http://x", html))
	})

	t.Run("moves to broader scope when narrow scope has no eligible image", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<main><div id="hero-header"><img src="/banner.png"></div></main>
<article><img src="/body.png"></article>
</body></html>`

		assert.Equal(t, "http://x/body.png", selectImage(t, "http://x", html))
	})

	t.Run("returns empty string when every image is ineligible", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
<div style="display:none"><img src="/a.png"></div>
<div class="Header"><img src="/b.png"></div>
</body></html>`

		assert.Empty(t, selectImage(t, "http://x", html))
	})

	t.Run("handles nil document", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, goquery.NewImageSelector().SelectImage(nil))
	})

	t.Run("finds image in deeply nested markup", func(t *testing.T) {
		t.Parallel()

		html := "<html><body>" + strings.Repeat("<div>", 250) + `<img src="/deep.png">` + strings.Repeat("</div>", 250) + "</body></html>"

		assert.Equal(t, "http://x/deep.png", selectImage(t, "http://x", html))
	})
}
