package distill

import (
	"strings"

	"github.com/go-shiori/dom"
	"golang.org/x/net/html"
	"golang.org/x/text/language"
)

// CanonicalLanguage normalizes a BCP 47 language tag such as "EN_us" to
// "en-US". Values that do not parse are returned trimmed.
func CanonicalLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ""
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	return tag.String()
}

// TextDirection returns the declared text direction of a document, taken
// from the dir attribute of <body> or, failing that, <html>.
// Returns "" unless the value is "ltr" or "rtl".
func TextDirection(root *html.Node) string {
	if root == nil {
		return ""
	}
	for _, tag := range []string{"body", "html"} {
		for _, n := range dom.GetElementsByTagName(root, tag) {
			switch dir := strings.ToLower(strings.TrimSpace(dom.GetAttribute(n, "dir"))); dir {
			case "ltr", "rtl":
				return dir
			}
		}
	}
	return ""
}
