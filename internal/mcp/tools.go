package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mdcontext/mdcontext-mcp/internal/searcher"
	"github.com/mdcontext/mdcontext-mcp/pkg/types"
)

// MCP error codes
const (
	ErrorCodeInvalidParams         = -32602 // Invalid method parameters
	ErrorCodeInternalError         = -32603 // Internal JSON-RPC error
	ErrorCodeDocumentNotFound      = -32001 // Document path not in the collection
	ErrorCodeSectionNotFound       = -32002 // Section name matched no chunk
	ErrorCodeEmptyQuery            = -32004 // Query parameter is empty
	ErrorCodeInvalidStrategy       = -32005 // Strategy string not recognized
	ErrorCodeUnimplementedStrategy = -32006 // Strategy recognized but not built
)

// handleSearchMarkdown handles the search_markdown tool invocation.
func (s *Server) handleSearchMarkdown(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, _ := args["query"].(string)
	maxResults := getIntDefault(args, "max_results", searcher.DefaultMaxResults)
	strategyName := getStringDefault(args, "strategy", "keyword")

	strategy, err := searcher.ParseStrategy(strategyName)
	if err != nil {
		return nil, toMCPError(err)
	}

	response, err := s.engine.Search(ctx, s.collection(), searcher.SearchRequest{
		Query:        query,
		MaxResults:   maxResults,
		Strategy:     strategy,
		ContextChars: s.contextChars,
		UseCache:     true,
	})
	if err != nil {
		return nil, toMCPError(err)
	}

	return mcp.NewToolResultText(formatSearchResults(query, response)), nil
}

// handleReadFile handles the read_file tool invocation.
func (s *Server) handleReadFile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.documentArg(request)
	if err != nil {
		return nil, err
	}
	return mcp.NewToolResultText(doc.Content), nil
}

// handleReadFileSection handles the read_file_section tool invocation.
func (s *Server) handleReadFileSection(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.documentArg(request)
	if err != nil {
		return nil, err
	}

	args, _ := request.Params.Arguments.(map[string]interface{})
	section, _ := args["section"].(string)
	if section == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "section parameter is required", map[string]interface{}{
			"param":  "section",
			"reason": "missing or empty",
		})
	}

	content, err := s.sections.ReadSection(doc, section)
	if err != nil {
		return nil, toMCPError(err)
	}
	return mcp.NewToolResultText(content), nil
}

// handleListFileSections handles the list_file_sections tool invocation.
func (s *Server) handleListFileSections(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc, err := s.documentArg(request)
	if err != nil {
		return nil, err
	}

	infos := s.sections.ListSections(doc)
	entries := make([]map[string]interface{}, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, map[string]interface{}{
			"section_path": info.Path,
			"length":       info.Length,
		})
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"file":     doc.Path,
		"sections": entries,
	})), nil
}

// handleListFiles handles the list_files tool invocation.
func (s *Server) handleListFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	coll := s.collection()
	entries := make([]map[string]interface{}, 0, coll.Len())
	for _, doc := range coll.Documents() {
		entry := map[string]interface{}{"path": doc.Path}
		if doc.Description != "" {
			entry["description"] = doc.Description
		}
		entries = append(entries, entry)
	}

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"count": len(entries),
		"files": entries,
	})), nil
}

// handleGetStats handles the get_stats tool invocation.
func (s *Server) handleGetStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats := s.engine.CollectionStats(s.collection())

	return mcp.NewToolResultText(formatJSON(map[string]interface{}{
		"documents":      stats.DocumentCount,
		"chunks":         stats.ChunkCount,
		"total_chars":    stats.TotalChars,
		"avg_chunk_size": fmt.Sprintf("%.1f", stats.AvgChunkSize),
	})), nil
}

// documentArg resolves the request's path argument against the collection.
func (s *Server) documentArg(request mcp.CallToolRequest) (*types.Document, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	path, _ := args["path"].(string)
	if path == "" {
		return nil, newMCPError(ErrorCodeInvalidParams, "path parameter is required", map[string]interface{}{
			"param":  "path",
			"reason": "missing or empty",
		})
	}

	doc, err := s.collection().Get(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, toMCPError(err)
	}
	return doc, nil
}

// formatSearchResults renders ranked snippets as markdown for the LLM
// client, with a locator back to the full file for each hit.
func formatSearchResults(query string, response *searcher.SearchResponse) string {
	if len(response.Results) == 0 {
		return fmt.Sprintf("No results found for %q (strategy: %s)", query, response.Strategy)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d snippet(s) for %q [%s]:\n\n", len(response.Results), query, response.Strategy)
	for i, snippet := range response.Results {
		fmt.Fprintf(&b, "**%d. %s**\n", i+1, snippet.File)
		fmt.Fprintf(&b, "   Section: %s\n", snippet.Section)
		fmt.Fprintf(&b, "   Score: %.3f\n\n", snippet.Score)
		fmt.Fprintf(&b, "```\n%s\n```\n\n", snippet.Snippet)
	}
	b.WriteString("Tip: use read_file_section to read a matched section in full.\n")
	return b.String()
}

// toMCPError maps core error conditions to MCP error codes with actionable
// data payloads.
func toMCPError(err error) error {
	var (
		invalidStrategy *types.InvalidStrategyError
		unimplemented   *types.UnimplementedStrategyError
		docNotFound     *types.DocumentNotFoundError
		secNotFound     *types.SectionNotFoundError
	)

	switch {
	case errors.Is(err, types.ErrInvalidQuery):
		return newMCPError(ErrorCodeEmptyQuery, "query parameter is required and cannot be empty", map[string]interface{}{
			"param":  "query",
			"reason": "missing or empty",
		})
	case errors.As(err, &invalidStrategy):
		return newMCPError(ErrorCodeInvalidStrategy, err.Error(), map[string]interface{}{
			"param":   "strategy",
			"value":   invalidStrategy.Strategy,
			"allowed": invalidStrategy.Valid,
		})
	case errors.As(err, &unimplemented):
		return newMCPError(ErrorCodeUnimplementedStrategy, err.Error(), map[string]interface{}{
			"param":    "strategy",
			"value":    unimplemented.Strategy,
			"fallback": unimplemented.Fallback,
		})
	case errors.As(err, &docNotFound):
		return newMCPError(ErrorCodeDocumentNotFound, err.Error(), map[string]interface{}{
			"param": "path",
			"value": docNotFound.Path,
		})
	case errors.As(err, &secNotFound):
		return newMCPError(ErrorCodeSectionNotFound, err.Error(), map[string]interface{}{
			"param":     "section",
			"value":     secNotFound.Section,
			"available": secNotFound.Available,
		})
	default:
		return newMCPError(ErrorCodeInternalError, err.Error(), nil)
	}
}

// newMCPError creates a properly formatted MCP error.
func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{Code: code, Message: message, Data: data}
}

// MCPError represents an MCP protocol error.
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

// formatJSON formats a map as indented JSON.
func formatJSON(data map[string]interface{}) string {
	var buf strings.Builder
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Sprintf("%v", data)
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// getIntDefault extracts an integer parameter with a default value.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}

// getStringDefault extracts a string parameter with a default value.
func getStringDefault(args map[string]interface{}, key string, defaultValue string) string {
	if val, ok := args[key].(string); ok && val != "" {
		return val
	}
	return defaultValue
}
