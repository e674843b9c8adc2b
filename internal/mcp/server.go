package mcp

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mdcontext/mdcontext-mcp/internal/chunker"
	"github.com/mdcontext/mdcontext-mcp/internal/scanner"
	"github.com/mdcontext/mdcontext-mcp/internal/searcher"
	"github.com/mdcontext/mdcontext-mcp/internal/sections"
	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

const (
	// DefaultServerName is the MCP server name when none is configured.
	DefaultServerName = "markdown-docs"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Options configures a Server.
type Options struct {
	Folder       string // knowledge-base root (required)
	Name         string // server name; defaults to DefaultServerName
	MaxChunkSize int    // 0 means chunker default
	ContextChars int    // 0 means snippet default
}

// Server wraps the MCP server with the retrieval engine and its
// collaborators. The collection is scanned eagerly at startup and swapped
// atomically on reload, so concurrent requests always see a consistent
// document set.
type Server struct {
	name     string
	mcp      *server.MCPServer
	scanner  *scanner.Scanner
	engine   *searcher.Engine
	sections *sections.Accessor

	contextChars int

	mu   sync.RWMutex
	coll *types.Collection
}

// NewServer creates an MCP server over the markdown folder.
func NewServer(opts Options) (*Server, error) {
	if opts.Name == "" {
		opts.Name = DefaultServerName
	}

	scan, err := scanner.New(opts.Folder)
	if err != nil {
		return nil, fmt.Errorf("failed to open knowledge base: %w", err)
	}

	coll, err := scan.Scan()
	if err != nil {
		return nil, fmt.Errorf("failed to scan knowledge base: %w", err)
	}

	engine := searcher.NewEngine(chunker.NewWithSize(opts.MaxChunkSize))

	s := &Server{
		name:         opts.Name,
		mcp:          server.NewMCPServer(opts.Name, ServerVersion),
		scanner:      scan,
		engine:       engine,
		sections:     sections.New(engine),
		contextChars: opts.ContextChars,
		coll:         coll,
	}
	s.registerTools()

	log.Printf("serving %d markdown file(s) from %s", coll.Len(), scan.Root())
	return s, nil
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(ctx context.Context) error {
	return server.ServeStdio(s.mcp)
}

// Reload rescans the folder, swaps the collection, and invalidates every
// cache. Called by the file watcher when documents change on disk.
func (s *Server) Reload() error {
	coll, err := s.scanner.Scan()
	if err != nil {
		return fmt.Errorf("failed to rescan knowledge base: %w", err)
	}

	s.mu.Lock()
	s.coll = coll
	s.mu.Unlock()
	s.engine.InvalidateAll()

	log.Printf("reloaded: %d markdown file(s)", coll.Len())
	return nil
}

// collection returns the current document set.
func (s *Server) collection() *types.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.coll
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	s.mcp.AddTool(searchMarkdownTool(), s.handleSearchMarkdown)
	s.mcp.AddTool(readFileTool(), s.handleReadFile)
	s.mcp.AddTool(readFileSectionTool(), s.handleReadFileSection)
	s.mcp.AddTool(listFileSectionsTool(), s.handleListFileSections)
	s.mcp.AddTool(listFilesTool(), s.handleListFiles)
	s.mcp.AddTool(getStatsTool(), s.handleGetStats)
}
