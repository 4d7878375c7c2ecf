package goquery_test

import (
	"testing"

	"github.com/PuerkitoBio/goquery"
	locgoquery "github.com/fwojciec/distill/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestIsEligible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want bool
	}{
		{
			name: "plain image in body",
			html: `<body><div><img id="target" src="a.png"></div></body>`,
			want: true,
		},
		{
			name: "image hidden inline",
			html: `<body><img id="target" style="display:none" src="a.png"></body>`,
			want: false,
		},
		{
			name: "hidden style tolerates whitespace after colon",
			html: `<body><img id="target" style="width: 10px; display:   none" src="a.png"></body>`,
			want: false,
		},
		{
			name: "hidden style keyword is case-sensitive",
			html: `<body><img id="target" style="DISPLAY:NONE" src="a.png"></body>`,
			want: true,
		},
		{
			name: "whitespace before colon is not matched",
			html: `<body><img id="target" style="display : none" src="a.png"></body>`,
			want: true,
		},
		{
			name: "ancestor hidden inline",
			html: `<body><div style="display: none"><p><img id="target" src="a.png"></p></div></body>`,
			want: false,
		},
		{
			name: "header class on ancestor",
			html: `<body><div class="wrap Site-Header-Inner"><img id="target" src="a.png"></div></body>`,
			want: false,
		},
		{
			name: "header id on ancestor",
			html: `<body><div id="mainHEADER"><img id="target" src="a.png"></div></body>`,
			want: false,
		},
		{
			name: "header id on body",
			html: `<body id="page-header"><img id="target" src="a.png"></body>`,
			want: false,
		},
		{
			name: "header element without header class is allowed",
			html: `<body><header><img id="target" src="a.png"></header></body>`,
			want: true,
		},
		{
			name: "other visibility styles are ignored",
			html: `<body><div style="visibility:hidden"><img id="target" src="a.png"></div></body>`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			doc, err := locgoquery.NewParser().Parse("http://x", tt.html)
			require.NoError(t, err)
			target := goquery.NewDocumentFromNode(doc.Root).Find("#target")
			require.Equal(t, 1, target.Length())

			assert.Equal(t, tt.want, locgoquery.IsEligible(target.Get(0)))
		})
	}
}

func TestIsEligible_DeepAncestorChain(t *testing.T) {
	t.Parallel()

	root := &html.Node{Type: html.DocumentNode}
	parent := root
	for range 100000 {
		child := &html.Node{Type: html.ElementNode, Data: "div"}
		parent.AppendChild(child)
		parent = child
	}
	img := &html.Node{Type: html.ElementNode, Data: "img"}
	parent.AppendChild(img)

	assert.True(t, locgoquery.IsEligible(img))

	root.FirstChild.Attr = []html.Attribute{{Key: "class", Val: "header"}}
	assert.False(t, locgoquery.IsEligible(img))
}
