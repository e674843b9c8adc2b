// Package searcher implements keyword retrieval over chunked markdown
// documents: relevance scoring, snippet extraction, and ranked
// multi-document search.
//
// # Scoring
//
// The relevance heuristic is case-insensitive and additive:
//
//   - +2.0 full query verbatim in the chunk's header path
//   - +1.0 per distinct query keyword in the header path
//   - +0.1 per occurrence of the full query in the chunk content
//   - +0.5 if the chunk starts within the first 20% of its document
//
// Scores are un-normalized ordering keys; they are not comparable across
// queries. A chunk that matches in no form scores zero and is excluded from
// results entirely.
//
// # Engine
//
// Engine owns an explicit per-document chunk cache and a TTL'd LRU cache of
// query responses. Chunks are computed lazily on first access and
// deduplicated across concurrent callers with singleflight; scoring fans
// out across documents with an errgroup bounded by the CPU count.
//
//	engine := searcher.NewEngine(chunker.New())
//	resp, err := engine.Search(ctx, coll, searcher.SearchRequest{
//	    Query:      "docker install",
//	    MaxResults: 5,
//	    Strategy:   searcher.StrategyKeyword,
//	})
//
// Search is deterministic: ties in score break by document path, then by
// chunk order within the document.
//
// # Strategies
//
// Strategy is a closed variant set. Unknown strings fail with
// InvalidStrategy at the parse boundary; semantic and hybrid are recognized
// but unimplemented and fail with UnimplementedStrategy naming keyword as
// the active fallback. No strategy is ever silently substituted.
package searcher
