// Package types provides shared type definitions for the mdcontext MCP server.
//
// This package defines domain types used across multiple components of
// mdcontext, including documents, chunks, search snippets, and the error
// taxonomy exposed to transport adapters.
//
// # Core Types
//
// Document represents one markdown file discovered by the scanner:
//
//	doc := &types.Document{
//	    Path:    "guides/setup.md",
//	    Content: rawMarkdown,
//	}
//
// Chunk represents a structurally bounded, size-capped unit of a document's
// text, tagged with its heading ancestry:
//
//	chunk := &types.Chunk{
//	    DocPath:    "guides/setup.md",
//	    HeaderPath: []string{"Introduction", "Setup"},
//	    Content:    sectionBody,
//	}
//
// SearchSnippet is the ephemeral, per-query result record: a bounded excerpt
// of a chunk centered on a query match, plus enough identity (file, section
// path) for the caller to follow up with a full-section read.
//
// # Error Taxonomy
//
// Failures from the retrieval core are structured so an automated caller can
// self-correct without a second round trip:
//
//	var snf *types.SectionNotFoundError
//	if errors.As(err, &snf) {
//	    // snf.Available lists the document's real section paths
//	}
//
// All conditions are recoverable; the core has no fatal states.
package types
