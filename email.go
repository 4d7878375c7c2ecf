package distill

import (
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// DefaultEmailBaseURL is the origin used for emails when the caller does
// not provide one.
const DefaultEmailBaseURL = "https://inbox.demo.com"

// Email is the subset of a parsed email message the service reads.
// Attachments are never sent.
type Email struct {
	MessageID string  `json:"messageId"`
	Subject   string  `json:"subject"`
	Date      string  `json:"date"`
	HTML      *string `json:"html"`
	Text      *string `json:"text"`
}

// Body returns the HTML body, or "" when the message has none.
func (e *Email) Body() string {
	if e.HTML == nil {
		return ""
	}
	return *e.HTML
}

// MessageURL builds the URL a message is treated as having been served from.
// Messages without an ID get a random one under /messages/.
func MessageURL(baseURL string, messageID string) string {
	baseURL = strings.TrimRight(baseURL, "/")
	if messageID == "" {
		return baseURL + "/messages/" + uuid.NewString()
	}
	return baseURL + "/inbox/" + url.PathEscape(messageID)
}
