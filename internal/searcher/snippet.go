package searcher

import "strings"

const (
	// DefaultContextChars is the context window on each side of a match.
	DefaultContextChars = 200

	// ellipsis marks a truncation boundary in a snippet.
	ellipsis = "…"
)

// ExtractSnippet returns a bounded excerpt of content centered on the first
// case-insensitive occurrence of the query. If the full query is absent, the
// first occurrence of any individual keyword is used. With no occurrence at
// all, the head of the content is returned; a missing match never becomes
// an error. Truncation boundaries are marked with an ellipsis, and the
// window never splits inside the matched term.
func ExtractSnippet(content, query string, contextChars int) string {
	if contextChars <= 0 {
		contextChars = DefaultContextChars
	}

	lower := strings.ToLower(content)
	q := strings.ToLower(strings.TrimSpace(query))

	matchStart, matchLen := -1, 0
	if q != "" {
		if idx := strings.Index(lower, q); idx >= 0 {
			matchStart, matchLen = idx, len(q)
		} else {
			for _, kw := range keywords(q) {
				idx := strings.Index(lower, kw)
				if idx >= 0 && (matchStart < 0 || idx < matchStart) {
					matchStart, matchLen = idx, len(kw)
				}
			}
		}
	}

	if matchStart < 0 {
		head := 2 * contextChars
		if head >= len(content) {
			return content
		}
		return content[:head] + ellipsis
	}

	start := matchStart - contextChars
	if start < 0 {
		start = 0
	}
	end := matchStart + matchLen + contextChars
	if end > len(content) {
		end = len(content)
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(content[start:end])
	if end < len(content) {
		b.WriteString(ellipsis)
	}
	return b.String()
}
