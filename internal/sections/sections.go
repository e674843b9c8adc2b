// Package sections provides navigation over a document's header hierarchy:
// listing sections and reading one section in full by approximate name.
//
// Section-name matching sits behind the Matcher interface, so the default
// substring matcher can be swapped for edit-distance or token-overlap
// matching without touching the accessor's control flow.
package sections

import (
	"strings"

	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

// ChunkSource supplies a document's chunk sequence. Satisfied by
// searcher.Engine, which shares its chunk cache with the accessor.
type ChunkSource interface {
	ChunksFor(doc *types.Document) []*types.Chunk
}

// Matcher scores a section name against a chunk's header path. Zero means
// no match; higher is a better match.
type Matcher interface {
	Match(name string, headerPath []string) int
}

// SectionInfo describes one section for listings.
type SectionInfo struct {
	Path   string // joined header path
	Length int    // content length in characters
}

// Accessor resolves section names against a document's header hierarchy.
type Accessor struct {
	source  ChunkSource
	matcher Matcher
}

// New creates an Accessor with the default substring matcher.
func New(source ChunkSource) *Accessor {
	return NewWithMatcher(source, SubstringMatcher{})
}

// NewWithMatcher creates an Accessor with a custom matcher.
func NewWithMatcher(source ChunkSource, m Matcher) *Accessor {
	return &Accessor{source: source, matcher: m}
}

// ListSections returns every chunk's section path with its content length,
// in document order. A navigation aid, independent of any query.
func (a *Accessor) ListSections(doc *types.Document) []SectionInfo {
	chunks := a.source.ChunksFor(doc)
	infos := make([]SectionInfo, 0, len(chunks))
	for _, chunk := range chunks {
		infos = append(infos, SectionInfo{Path: chunk.Section(), Length: chunk.Len()})
	}
	return infos
}

// ReadSection returns the full content of the chunk whose header path best
// matches the given name. Ties resolve to the first chunk in document
// order. With zero matches it fails with SectionNotFound carrying the full
// list of available section paths.
func (a *Accessor) ReadSection(doc *types.Document, name string) (string, error) {
	chunks := a.source.ChunksFor(doc)

	var best *types.Chunk
	bestStrength := 0
	for _, chunk := range chunks {
		strength := a.matcher.Match(name, chunk.HeaderPath)
		if strength > bestStrength {
			best = chunk
			bestStrength = strength
		}
	}

	if best == nil {
		available := make([]string, 0, len(chunks))
		for _, chunk := range chunks {
			available = append(available, chunk.Section())
		}
		return "", &types.SectionNotFoundError{
			Path:      doc.Path,
			Section:   name,
			Available: available,
		}
	}
	return best.Content, nil
}

// SubstringMatcher matches section names by case-insensitive containment,
// trying the last path component first and falling back to the full joined
// path. Closer lengths score higher, so "Setup" prefers a section titled
// "Setup" over "Setup and Troubleshooting".
type SubstringMatcher struct{}

// Match strengths: a last-component hit always outranks a full-path hit.
const (
	lastComponentBase = 1 << 16
	fullPathBase      = 1 << 8
)

// Match implements Matcher.
func (SubstringMatcher) Match(name string, headerPath []string) int {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" || len(headerPath) == 0 {
		return 0
	}

	last := strings.ToLower(headerPath[len(headerPath)-1])
	if strings.Contains(last, needle) {
		return lastComponentBase - (len(last) - len(needle))
	}

	joined := strings.ToLower(strings.Join(headerPath, types.PathSeparator))
	if strings.Contains(joined, needle) {
		strength := fullPathBase - (len(joined) - len(needle))
		if strength < 1 {
			strength = 1
		}
		return strength
	}
	return 0
}
