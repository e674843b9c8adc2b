package searcher

import (
	"context"
	"crypto/sha256"
	"fmt"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/mdcontext/mdcontext-mcp/internal/chunker"
	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

const (
	// DefaultMaxResults is the result count when the caller does not ask
	// for one.
	DefaultMaxResults = 5

	// MaxResultsCeiling bounds work and response size regardless of what
	// the caller requests.
	MaxResultsCeiling = 50

	// queryCacheSize is the LRU capacity for cached query responses.
	queryCacheSize = 1000

	// defaultCacheTTL is how long a cached query response stays valid.
	defaultCacheTTL = 1 * time.Hour
)

// SearchRequest contains parameters for a search operation.
type SearchRequest struct {
	Query        string
	MaxResults   int
	Strategy     Strategy
	ContextChars int // snippet context window; 0 means default
	UseCache     bool
	CacheTTL     time.Duration
}

// SearchResponse contains ranked snippets and search metadata.
type SearchResponse struct {
	Results      []types.SearchSnippet
	TotalMatches int // chunks that scored above zero, before truncation
	Strategy     Strategy
	Duration     time.Duration
	CacheHit     bool
}

// Stats summarizes a collection as seen by the engine.
type Stats struct {
	DocumentCount int
	ChunkCount    int
	TotalChars    int
	AvgChunkSize  float64
}

// cacheEntry is a cached search response with an expiration time.
type cacheEntry struct {
	response  *SearchResponse
	expiresAt time.Time
}

// Engine orchestrates chunking, scoring, ranking and snippet extraction
// across a document collection. It owns the per-document chunk cache
// explicitly, so independent engines never share state. An Engine is safe
// for concurrent use over a collection that is not being mutated.
type Engine struct {
	chunker *chunker.Chunker
	scorer  Scorer

	mu     sync.RWMutex
	chunks map[string][]*types.Chunk // keyed by document path
	sf     singleflight.Group

	queries    *lru.Cache[[32]byte, *cacheEntry]
	generation uint64 // bumped on invalidation, part of the cache key
}

// NewEngine creates an Engine around the given chunker.
func NewEngine(c *chunker.Chunker) *Engine {
	if c == nil {
		c = chunker.New()
	}
	cache, err := lru.New[[32]byte, *cacheEntry](queryCacheSize)
	if err != nil {
		// Only possible with a non-positive size constant.
		panic(fmt.Sprintf("failed to create query cache: %v", err))
	}
	return &Engine{
		chunker: c,
		chunks:  make(map[string][]*types.Chunk),
		queries: cache,
	}
}

// scoredChunk pairs a chunk with its relevance for one query.
type scoredChunk struct {
	chunk *types.Chunk
	score float64
}

// Search scores every chunk of every document against the query and returns
// the top results. An empty result set is a valid outcome, not an error.
func (e *Engine) Search(ctx context.Context, coll *types.Collection, req SearchRequest) (*SearchResponse, error) {
	start := time.Now()

	if strings.TrimSpace(req.Query) == "" {
		return nil, types.ErrInvalidQuery
	}

	switch req.Strategy {
	case StrategyKeyword:
	case StrategySemantic, StrategyHybrid:
		return nil, &types.UnimplementedStrategyError{
			Strategy: req.Strategy.String(),
			Fallback: StrategyKeyword.String(),
		}
	default:
		return nil, &types.InvalidStrategyError{
			Strategy: req.Strategy.String(),
			Valid:    ValidStrategies(),
		}
	}

	if req.MaxResults <= 0 {
		req.MaxResults = DefaultMaxResults
	}
	if req.MaxResults > MaxResultsCeiling {
		req.MaxResults = MaxResultsCeiling
	}
	if req.CacheTTL <= 0 {
		req.CacheTTL = defaultCacheTTL
	}

	if req.UseCache {
		if cached := e.checkCache(req); cached != nil {
			cached.CacheHit = true
			cached.Duration = time.Since(start)
			return cached, nil
		}
	}

	scored, err := e.scoreCollection(ctx, coll, req.Query)
	if err != nil {
		return nil, err
	}

	sortScored(scored)

	limit := req.MaxResults
	if limit > len(scored) {
		limit = len(scored)
	}

	results := make([]types.SearchSnippet, 0, limit)
	for _, sc := range scored[:limit] {
		results = append(results, types.SearchSnippet{
			File:      sc.chunk.DocPath,
			Section:   sc.chunk.Section(),
			Snippet:   ExtractSnippet(sc.chunk.Content, req.Query, req.ContextChars),
			Score:     sc.score,
			StartChar: sc.chunk.StartChar,
			EndChar:   sc.chunk.EndChar,
		})
	}

	response := &SearchResponse{
		Results:      results,
		TotalMatches: len(scored),
		Strategy:     req.Strategy,
		Duration:     time.Since(start),
	}

	if req.UseCache {
		e.storeCache(req, response)
	}
	return response, nil
}

// scoreCollection fans scoring out across documents and keeps chunks that
// scored above zero.
func (e *Engine) scoreCollection(ctx context.Context, coll *types.Collection, query string) ([]scoredChunk, error) {
	docs := coll.Documents()
	perDoc := make([][]scoredChunk, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var matched []scoredChunk
			for _, chunk := range e.ChunksFor(doc) {
				if score := e.scorer.Score(chunk, query); score > 0 {
					matched = append(matched, scoredChunk{chunk: chunk, score: score})
				}
			}
			perDoc[i] = matched
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var scored []scoredChunk
	for _, matched := range perDoc {
		scored = append(scored, matched...)
	}
	return scored, nil
}

// ChunksFor returns the document's chunk sequence, computing and caching it
// on first access. Concurrent first access to the same document is
// deduplicated; chunking is pure, so a duplicate computation would be
// harmless anyway.
func (e *Engine) ChunksFor(doc *types.Document) []*types.Chunk {
	e.mu.RLock()
	chunks, ok := e.chunks[doc.Path]
	e.mu.RUnlock()
	if ok {
		return chunks
	}

	v, _, _ := e.sf.Do(doc.Path, func() (interface{}, error) {
		e.mu.RLock()
		cached, ok := e.chunks[doc.Path]
		e.mu.RUnlock()
		if ok {
			return cached, nil
		}

		fresh := e.chunker.Chunk(doc.Content, doc.Path)

		e.mu.Lock()
		e.chunks[doc.Path] = fresh
		e.mu.Unlock()
		return fresh, nil
	})
	return v.([]*types.Chunk)
}

// Invalidate drops the cached chunks for one document, forcing recomputation
// on next access. Used when a document's content changes.
func (e *Engine) Invalidate(path string) {
	e.mu.Lock()
	delete(e.chunks, path)
	e.generation++
	e.mu.Unlock()
	e.queries.Purge()
}

// InvalidateAll drops all cached chunks and query responses.
func (e *Engine) InvalidateAll() {
	e.mu.Lock()
	e.chunks = make(map[string][]*types.Chunk)
	e.generation++
	e.mu.Unlock()
	e.queries.Purge()
}

// CollectionStats reports aggregate counts for the collection, chunking any
// documents not yet cached.
func (e *Engine) CollectionStats(coll *types.Collection) Stats {
	stats := Stats{DocumentCount: coll.Len()}
	for _, doc := range coll.Documents() {
		for _, chunk := range e.ChunksFor(doc) {
			stats.ChunkCount++
			stats.TotalChars += chunk.Len()
		}
	}
	if stats.ChunkCount > 0 {
		stats.AvgChunkSize = float64(stats.TotalChars) / float64(stats.ChunkCount)
	}
	return stats
}

// checkCache returns a copy of a live cached response, or nil.
func (e *Engine) checkCache(req SearchRequest) *SearchResponse {
	hash := e.queryHash(req)
	entry, found := e.queries.Get(hash)
	if !found {
		return nil
	}
	if time.Now().After(entry.expiresAt) {
		e.queries.Remove(hash)
		return nil
	}
	return copyResponse(entry.response)
}

// storeCache saves a copy of the response under the request's hash.
func (e *Engine) storeCache(req SearchRequest, response *SearchResponse) {
	e.queries.Add(e.queryHash(req), &cacheEntry{
		response:  copyResponse(response),
		expiresAt: time.Now().Add(req.CacheTTL),
	})
}

// queryHash computes a deterministic key for a search request. The engine
// generation is part of the key, so responses cached before an invalidation
// can never be served after it.
func (e *Engine) queryHash(req SearchRequest) [32]byte {
	e.mu.RLock()
	gen := e.generation
	e.mu.RUnlock()

	var b strings.Builder
	b.WriteString(req.Query)
	b.WriteString("|")
	b.WriteString(req.Strategy.String())
	fmt.Fprintf(&b, "|%d|%d|%d", req.MaxResults, req.ContextChars, gen)
	return sha256.Sum256([]byte(b.String()))
}

// copyResponse duplicates a response so cached entries are never aliased by
// callers.
func copyResponse(src *SearchResponse) *SearchResponse {
	if src == nil {
		return nil
	}
	dst := *src
	dst.Results = make([]types.SearchSnippet, len(src.Results))
	copy(dst.Results, src.Results)
	return &dst
}

// sortScored orders chunks by score descending; ties break by document path
// ascending, then original chunk order, so repeated searches over an
// unchanged collection return identical orderings.
func sortScored(scored []scoredChunk) {
	sort.Slice(scored, func(i, j int) bool {
		a, b := scored[i], scored[j]
		if a.score != b.score {
			return a.score > b.score
		}
		if a.chunk.DocPath != b.chunk.DocPath {
			return a.chunk.DocPath < b.chunk.DocPath
		}
		return a.chunk.Seq < b.chunk.Seq
	})
}
