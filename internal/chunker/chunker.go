package chunker

import (
	"regexp"
	"strings"

	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

const (
	// DefaultMaxChunkSize is the maximum characters per chunk before a
	// section is split on paragraph boundaries.
	DefaultMaxChunkSize = 1000

	// MaxHeadingLevel is the deepest ATX heading level recognized.
	MaxHeadingLevel = 6
)

// headingPattern matches an ATX heading: 1-6 '#' characters followed by a
// title. Applied to trimmed lines.
var headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

// Chunker segments markdown documents into header-scoped, size-bounded
// chunks. Segmentation is a pure function of the input text; a Chunker is
// safe for concurrent use.
type Chunker struct {
	maxChunkSize int
}

// New creates a Chunker with the default maximum chunk size.
func New() *Chunker {
	return NewWithSize(DefaultMaxChunkSize)
}

// NewWithSize creates a Chunker with a custom maximum chunk size.
// Non-positive sizes fall back to the default.
func NewWithSize(maxChunkSize int) *Chunker {
	if maxChunkSize <= 0 {
		maxChunkSize = DefaultMaxChunkSize
	}
	return &Chunker{maxChunkSize: maxChunkSize}
}

// MaxChunkSize returns the configured size cap.
func (c *Chunker) MaxChunkSize() int {
	return c.maxChunkSize
}

// section is a contiguous run of non-heading text under one header path.
type section struct {
	headerPath []string
	start      int // offset of the first content character in the document
	end        int // offset past the last content character
}

// Chunk segments a document's text into ordered chunks. Sections whose
// content exceeds the size cap are split on blank-line paragraph boundaries;
// a single paragraph longer than the cap becomes its own oversized chunk
// rather than being cut mid-sentence. Chunks with whitespace-only content
// are dropped. An empty document yields zero chunks.
func (c *Chunker) Chunk(content, docPath string) []*types.Chunk {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	sections := splitByHeaders(content)

	chunks := make([]*types.Chunk, 0, len(sections))
	for _, sec := range sections {
		body := content[sec.start:sec.end]
		if strings.TrimSpace(body) == "" {
			continue
		}
		if len(body) <= c.maxChunkSize {
			if chunk := newChunk(content, docPath, sec.headerPath, sec.start, sec.end); chunk != nil {
				chunks = append(chunks, chunk)
			}
			continue
		}
		chunks = append(chunks, c.splitByParagraphs(content, docPath, sec)...)
	}

	for i, chunk := range chunks {
		chunk.Seq = i
		chunk.DocLength = len(content)
	}
	return chunks
}

// splitByHeaders scans the text line by line, maintaining a stack of open
// headings. Each heading at level L pops headings at level >= L and pushes
// itself, so the stack is the active header path. Text before the first
// heading forms an implicit section with an empty path.
func splitByHeaders(content string) []section {
	type openHeading struct {
		level int
		title string
	}

	var (
		sections []section
		stack    []openHeading
		current  = section{start: 0}
		pos      = 0
	)

	flush := func(end int) {
		if end > current.start {
			current.end = end
			sections = append(sections, current)
		}
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lineLen := len(line)
		if i < len(lines)-1 {
			lineLen++ // trailing newline
		}

		m := headingPattern.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			pos += lineLen
			continue
		}

		flush(pos)

		level := len(m[1])
		title := strings.TrimSpace(m[2])
		for len(stack) > 0 && stack[len(stack)-1].level >= level {
			stack = stack[:len(stack)-1]
		}
		stack = append(stack, openHeading{level: level, title: title})

		path := make([]string, len(stack))
		for j, h := range stack {
			path[j] = h.title
		}

		pos += lineLen
		current = section{headerPath: path, start: pos}
	}

	flush(len(content))
	return sections
}

// splitByParagraphs splits an oversized section on blank-line boundaries and
// greedily packs consecutive paragraphs into sub-chunks within the size cap.
// A paragraph is never split across two sub-chunks. Sub-chunks inherit the
// section's header path unchanged; Seq is the display tie-break.
func (c *Chunker) splitByParagraphs(content, docPath string, sec section) []*types.Chunk {
	body := content[sec.start:sec.end]

	type paragraph struct {
		start int // absolute offset in content
		end   int
	}

	var paras []paragraph
	offset := 0
	for _, part := range strings.Split(body, "\n\n") {
		if strings.TrimSpace(part) != "" {
			paras = append(paras, paragraph{
				start: sec.start + offset,
				end:   sec.start + offset + len(part),
			})
		}
		offset += len(part) + 2
	}

	var chunks []*types.Chunk
	var curStart, curEnd int
	open := false

	flush := func() {
		if !open {
			return
		}
		if chunk := newChunk(content, docPath, sec.headerPath, curStart, curEnd); chunk != nil {
			chunks = append(chunks, chunk)
		}
		open = false
	}

	for _, p := range paras {
		paraLen := p.end - p.start
		if open && (curEnd-curStart)+paraLen+2 > c.maxChunkSize {
			flush()
		}
		if !open {
			curStart, curEnd = p.start, p.end
			open = true
			continue
		}
		curEnd = p.end
	}
	flush()

	return chunks
}

// newChunk builds a chunk from a document span, trimming surrounding
// whitespace while keeping offsets aligned with the trimmed content.
// Returns nil for whitespace-only spans.
func newChunk(content, docPath string, headerPath []string, start, end int) *types.Chunk {
	for start < end && isSpace(content[start]) {
		start++
	}
	for end > start && isSpace(content[end-1]) {
		end--
	}
	if start >= end {
		return nil
	}
	return &types.Chunk{
		DocPath:    docPath,
		HeaderPath: headerPath,
		Content:    content[start:end],
		StartChar:  start,
		EndChar:    end,
	}
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
