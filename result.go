package distill

import (
	"encoding/json"
	"time"
)

// Result is the single output of a distill call.
type Result struct {
	// Article is nil when extraction failed.
	Article *Article

	// Image is the lead image URL; "" means none was found.
	Image string
}

// resultJSON is the flattened wire shape of a Result. Unknown fields are null.
type resultJSON struct {
	Title         *string `json:"title"`
	Content       *string `json:"content"`
	TextContent   *string `json:"textContent"`
	Length        *int    `json:"length"`
	Excerpt       *string `json:"excerpt"`
	Byline        *string `json:"byline"`
	Dir           *string `json:"dir"`
	SiteName      *string `json:"siteName"`
	Lang          *string `json:"lang"`
	PublishedTime *string `json:"publishedTime"`
	Image         string  `json:"image"`
}

// MarshalJSON flattens the article fields next to the image.
func (r *Result) MarshalJSON() ([]byte, error) {
	out := resultJSON{Image: r.Image}
	if a := r.Article; a != nil {
		length := a.Length
		out.Title = nullable(a.Title)
		out.Content = nullable(a.Content)
		out.TextContent = nullable(a.TextContent)
		out.Length = &length
		out.Excerpt = nullable(a.Excerpt)
		out.Byline = nullable(a.Byline)
		out.Dir = nullable(a.Direction)
		out.SiteName = nullable(a.SiteName)
		out.Lang = nullable(a.Language)
		if a.PublishedTime != nil {
			out.PublishedTime = nullable(a.PublishedTime.Format(time.RFC3339))
		}
	}
	return json.Marshal(out)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
