package types

import (
	"errors"
	"strings"
)

// PathSeparator joins header path components for display,
// e.g. "Introduction > Setup > Installation".
const PathSeparator = " > "

// RootSection is the display name for content appearing before any heading.
const RootSection = "(root)"

// Chunk represents a structurally bounded unit of a document's text.
// Chunks are produced in a single left-to-right pass over the document,
// never overlap, and are immutable after creation.
type Chunk struct {
	// DocPath identifies the owning document.
	DocPath string

	// HeaderPath is the ordered sequence of ancestor heading titles plus the
	// chunk's own heading. Empty for content before the first heading.
	HeaderPath []string

	// Content is the chunk text. Never empty after segmentation.
	Content string

	// StartChar and EndChar are character offsets into the owning document's
	// text (end exclusive). For contiguous chunks EndChar-StartChar equals
	// len(Content); paragraph-merged chunks may relax this.
	StartChar int
	EndChar   int

	// Seq is the chunk's position within its document, starting at 0.
	// It is the ordering tie-break for sub-chunks that share a header path.
	Seq int

	// DocLength is the total character length of the owning document,
	// recorded at segmentation time for position-based scoring.
	DocLength int
}

// Section returns the joined header path for display.
func (c *Chunk) Section() string {
	if len(c.HeaderPath) == 0 {
		return RootSection
	}
	return strings.Join(c.HeaderPath, PathSeparator)
}

// Len returns the chunk content length in characters.
func (c *Chunk) Len() int {
	return len(c.Content)
}

// Validate performs structural validation of the chunk.
func (c *Chunk) Validate() error {
	if c.Content == "" {
		return errors.New("chunk content cannot be empty")
	}
	if c.DocPath == "" {
		return errors.New("chunk document path is required")
	}
	if c.StartChar < 0 || c.EndChar < c.StartChar {
		return errors.New("chunk offsets must satisfy 0 <= start <= end")
	}
	if c.Seq < 0 {
		return errors.New("chunk sequence must be non-negative")
	}
	return nil
}
