package types

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for type validation.
var (
	ErrInvalidQuery          = errors.New("query cannot be empty")
	ErrDuplicateDocument     = errors.New("duplicate document path in collection")
	ErrMissingFileInfo       = errors.New("file info is required")
	ErrEmptyContent          = errors.New("content cannot be empty")
	ErrInvalidRelevanceScore = errors.New("relevance score must be non-negative")
)

// InvalidStrategyError reports a search strategy string that is not in the
// recognized set.
type InvalidStrategyError struct {
	Strategy string
	Valid    []string
}

func (e *InvalidStrategyError) Error() string {
	return fmt.Sprintf("invalid strategy %q: choose from %s",
		e.Strategy, strings.Join(e.Valid, ", "))
}

// UnimplementedStrategyError reports a recognized strategy that is not yet
// built. The message names the currently available fallback so an automated
// caller can retry without guessing.
type UnimplementedStrategyError struct {
	Strategy string
	Fallback string
}

func (e *UnimplementedStrategyError) Error() string {
	return fmt.Sprintf("strategy %q is not implemented; use %q",
		e.Strategy, e.Fallback)
}

// DocumentNotFoundError reports a lookup for a document path that is not in
// the collection.
type DocumentNotFoundError struct {
	Path string
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document not found: %s", e.Path)
}

// SectionNotFoundError reports a section name that matched no chunk of a
// document. Available lists the document's real section paths so the caller
// can self-correct without a second round trip.
type SectionNotFoundError struct {
	Path      string
	Section   string
	Available []string
}

func (e *SectionNotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("section %q not found in %s (document has no sections)",
			e.Section, e.Path)
	}
	return fmt.Sprintf("section %q not found in %s; available sections: %s",
		e.Section, e.Path, strings.Join(e.Available, "; "))
}
