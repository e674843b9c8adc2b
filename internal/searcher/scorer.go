package searcher

import (
	"strings"

	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

// Relevance heuristic weights. The formula is ad hoc and un-normalized;
// scores are ordering keys only and are not comparable across queries.
const (
	headerPhraseBonus  = 2.0
	headerKeywordBonus = 1.0
	occurrenceBonus    = 0.1
	positionBonus      = 0.5
)

// Scorer scores a single chunk against a query using case-insensitive
// header, content and position heuristics. The zero value is ready to use.
type Scorer struct{}

// Score returns the chunk's relevance for the query. A zero score means no
// match in any form; such chunks are excluded from results entirely.
//
// Additive components:
//   - +2.0 if the full query appears verbatim in the header path text
//   - +1.0 per distinct query keyword appearing in the header path text
//   - +0.1 per occurrence of the full query within the chunk content
//   - +0.5 if the chunk starts within the first 20% of its document
func (Scorer) Score(chunk *types.Chunk, query string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0
	}

	score := 0.0
	header := strings.ToLower(strings.Join(chunk.HeaderPath, types.PathSeparator))

	if strings.Contains(header, q) {
		score += headerPhraseBonus
	}
	for _, kw := range keywords(q) {
		if strings.Contains(header, kw) {
			score += headerKeywordBonus
		}
	}

	content := strings.ToLower(chunk.Content)
	score += float64(strings.Count(content, q)) * occurrenceBonus

	// Position alone never qualifies a chunk: a chunk with no match in any
	// form must stay at zero.
	if score > 0 && chunk.DocLength > 0 && chunk.StartChar*5 < chunk.DocLength {
		score += positionBonus
	}

	return score
}

// keywords tokenizes a lowercased query on whitespace, de-duplicating while
// preserving first-seen order.
func keywords(q string) []string {
	fields := strings.Fields(q)
	seen := make(map[string]struct{}, len(fields))
	out := fields[:0]
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
