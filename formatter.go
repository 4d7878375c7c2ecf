package distill

import "strings"

// MarkdownDocument is a distilled message rendered for reading.
type MarkdownDocument struct {
	Source string // file name or URL the HTML came from
	Title  string
	Image  string
	Body   string // Markdown
}

// FormatMarkdown formats documents as one Markdown stream.
// Uses title if available, falls back to source.
// Documents are separated by horizontal rules.
func FormatMarkdown(docs []*MarkdownDocument) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		header := doc.Title
		if header == "" {
			header = doc.Source
		}
		sections := []string{"# " + header}
		if doc.Image != "" {
			sections = append(sections, "![]("+doc.Image+")")
		}
		if body := strings.TrimSpace(doc.Body); body != "" {
			sections = append(sections, body)
		}
		parts = append(parts, strings.Join(sections, "\n\n"))
	}

	return strings.Join(parts, "\n\n---\n\n")
}
