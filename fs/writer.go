// Package fs writes distilled documents to a directory as Markdown files.
package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fwojciec/distill"
)

// InputToPath converts an input file name to a relative output path.
// Example: mail/2024/welcome.html → welcome.md
func InputToPath(name string) string {
	base := filepath.Base(name)
	if base == "-" || base == "." || base == string(filepath.Separator) {
		return "stdin.md"
	}
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base + ".md"
}

// FormatDocument formats a document with YAML frontmatter.
func FormatDocument(doc *distill.MarkdownDocument) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("source: ")
	b.WriteString(strconv.Quote(doc.Source))
	b.WriteString("\ntitle: ")
	b.WriteString(strconv.Quote(doc.Title))
	if doc.Image != "" {
		b.WriteString("\nimage: ")
		b.WriteString(strconv.Quote(doc.Image))
	}
	b.WriteString("\n---\n\n")
	if body := strings.TrimSpace(doc.Body); body != "" {
		b.WriteString(body)
		b.WriteString("\n")
	}
	return b.String()
}

// Writer writes documents as markdown files to a directory.
// It is not safe for concurrent use.
type Writer struct {
	baseDir string
	used    map[string]bool
}

// NewWriter creates a new Writer that writes to the given base directory.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir, used: make(map[string]bool)}
}

// WriteDocument writes doc to disk and returns the file path. Inputs that
// map to the same name get a numeric suffix instead of overwriting.
func (w *Writer) WriteDocument(doc *distill.MarkdownDocument) (string, error) {
	if doc == nil {
		return "", distill.Errorf(distill.EINVALID, "document required")
	}

	relPath := InputToPath(doc.Source)
	stem := strings.TrimSuffix(relPath, ".md")
	for n := 2; w.used[relPath]; n++ {
		relPath = fmt.Sprintf("%s-%d.md", stem, n)
	}
	w.used[relPath] = true

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", err
	}

	fullPath := filepath.Join(w.baseDir, relPath)
	if err := os.WriteFile(fullPath, []byte(FormatDocument(doc)), 0644); err != nil {
		return "", err
	}
	return fullPath, nil
}
