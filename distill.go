// Package distill turns raw HTML (typically the HTML body of an email) into
// a reader-mode record: title, cleaned content, excerpt, byline, language,
// text direction, and a representative lead image.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, readability/, gin/).
package distill
