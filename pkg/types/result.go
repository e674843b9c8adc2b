package types

// SearchSnippet represents a single search result: a bounded excerpt of a
// chunk with enough identity for the caller to locate the full text.
// Snippets are ephemeral and recomputed every query.
type SearchSnippet struct {
	// File is the owning document's path.
	File string

	// Section is the joined header path, e.g. "Introduction > Setup".
	Section string

	// Snippet is the bounded excerpt centered on the query match.
	Snippet string

	// Score is the relevance score. Non-negative, an ordering key only;
	// scores are not comparable across queries.
	Score float64

	// StartChar and EndChar locate the source chunk within the document,
	// for follow-up full-section reads.
	StartChar int
	EndChar   int
}

// Validate checks if the snippet is well formed.
func (s *SearchSnippet) Validate() error {
	if s.File == "" {
		return ErrMissingFileInfo
	}
	if s.Snippet == "" {
		return ErrEmptyContent
	}
	if s.Score < 0 {
		return ErrInvalidRelevanceScore
	}
	return nil
}
