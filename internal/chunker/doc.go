// Package chunker segments markdown documents into header-scoped,
// size-bounded chunks for retrieval.
//
// Segmentation happens in two stages:
//
//  1. Header split: the text is scanned line by line, recognizing ATX
//     headings (# through ######). A stack of open headings tracks the
//     active header path, so every chunk knows its full heading ancestry.
//     Text before the first heading forms an implicit section with an
//     empty path.
//  2. Paragraph fallback: a section whose content exceeds the size cap
//     (default 1000 characters) is split on blank-line paragraph
//     boundaries, greedily packing consecutive paragraphs into sub-chunks
//     within the cap. A single paragraph longer than the cap becomes its
//     own oversized chunk; losing text mid-sentence is worse than a size
//     overrun.
//
// # Basic Usage
//
//	c := chunker.New()
//	chunks := c.Chunk(markdownText, "guides/setup.md")
//
//	for _, chunk := range chunks {
//	    fmt.Printf("%s: %d chars\n", chunk.Section(), chunk.Len())
//	}
//
// # Invariants
//
// Chunks are produced in a single left-to-right pass and never overlap.
// Ignoring heading lines and whitespace lost at split boundaries, the
// chunks of a document reconstruct its content. Whitespace-only chunks
// (headings with no body) are dropped. Segmentation is a pure function of
// the input text, so concurrent re-chunking of the same document is safe.
package chunker
