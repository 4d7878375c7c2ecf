package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fwojciec/distill"
	"github.com/fwojciec/distill/fs"
	"golang.org/x/sync/errgroup"
)

const stdinName = "-"

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	files := c.Files
	if len(files) == 0 {
		files = []string{stdinName}
	}

	if c.BaseURL != "" {
		if _, err := distill.ValidateBaseURL(c.BaseURL); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", distill.ErrorMessage(err))
			return err
		}
	}

	read := c.reader(deps.Stdin)
	results := make([]*distill.Result, len(files))

	concurrency := c.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(concurrency)
	for i, name := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rawHTML, err := read(name)
			if err != nil {
				return err
			}
			results[i] = deps.Distiller.Distill(c.baseURL(), rawHTML)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	if c.Out != "" {
		return writeFiles(deps, fs.NewWriter(c.Out), files, results)
	}
	if c.Format == "markdown" {
		return writeMarkdown(deps, files, results)
	}
	return writeJSON(deps.Stdout, results)
}

func (c *ExtractCmd) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return distill.MessageURL(distill.DefaultEmailBaseURL, "")
}

// reader returns a function that reads a named input. Stdin is consumed at
// most once and shared by every "-" argument.
func (c *ExtractCmd) reader(stdin io.Reader) func(name string) (string, error) {
	readStdin := sync.OnceValues(func() (string, error) {
		if stdin == nil {
			return "", nil
		}
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	})

	return func(name string) (string, error) {
		if name == stdinName {
			return readStdin()
		}
		b, err := os.ReadFile(name)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		return string(b), nil
	}
}

func writeJSON(w io.Writer, results []*distill.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if len(results) == 1 {
		return enc.Encode(results[0])
	}
	return enc.Encode(results)
}

func writeMarkdown(deps *Dependencies, files []string, results []*distill.Result) error {
	docs, err := markdownDocuments(deps, files, results)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(deps.Stdout, distill.FormatMarkdown(docs))
	return err
}

// writeFiles writes one Markdown file per input and prints each path.
func writeFiles(deps *Dependencies, w *fs.Writer, files []string, results []*distill.Result) error {
	docs, err := markdownDocuments(deps, files, results)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		path, err := w.WriteDocument(doc)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: write %s: %s\n", doc.Source, err)
			return err
		}
		fmt.Fprintln(deps.Stdout, path)
	}
	return nil
}

func markdownDocuments(deps *Dependencies, files []string, results []*distill.Result) ([]*distill.MarkdownDocument, error) {
	docs := make([]*distill.MarkdownDocument, len(results))
	for i, result := range results {
		doc := &distill.MarkdownDocument{Source: files[i], Image: result.Image}
		if result.Article != nil {
			doc.Title = result.Article.Title
			if result.Article.Content != "" {
				body, err := deps.Converter.Convert(result.Article.Content)
				if err != nil {
					fmt.Fprintf(deps.Stderr, "error: convert %s: %s\n", files[i], distill.ErrorMessage(err))
					return nil, err
				}
				doc.Body = body
			}
		}
		docs[i] = doc
	}
	return docs, nil
}
