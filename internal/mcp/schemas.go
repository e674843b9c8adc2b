package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mdcontext/mdcontext-mcp/internal/searcher"
)

// searchMarkdownTool returns the tool definition for search_markdown.
func searchMarkdownTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_markdown",
		Description: "Search the markdown knowledge base and return ranked snippets (not full files)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Search term or natural language question",
				},
				"max_results": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of snippets to return (capped at 50)",
					"default":     searcher.DefaultMaxResults,
					"minimum":     1,
					"maximum":     searcher.MaxResultsCeiling,
				},
				"strategy": map[string]interface{}{
					"type":        "string",
					"description": "Search strategy: keyword (implemented), semantic or hybrid (reserved)",
					"enum":        searcher.ValidStrategies(),
					"default":     "keyword",
				},
			},
			Required: []string{"query"},
		},
	}
}

// readFileTool returns the tool definition for read_file.
func readFileTool() mcp.Tool {
	return mcp.Tool{
		Name:        "read_file",
		Description: "Read a full markdown file by its relative path",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path relative to the knowledge-base root, e.g. guides/setup.md",
				},
			},
			Required: []string{"path"},
		},
	}
}

// readFileSectionTool returns the tool definition for read_file_section.
func readFileSectionTool() mcp.Tool {
	return mcp.Tool{
		Name:        "read_file_section",
		Description: "Read one section of a markdown file by approximate section name",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path relative to the knowledge-base root",
				},
				"section": map[string]interface{}{
					"type":        "string",
					"description": "Section name; matched case-insensitively against header paths",
				},
			},
			Required: []string{"path", "section"},
		},
	}
}

// listFileSectionsTool returns the tool definition for list_file_sections.
func listFileSectionsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_file_sections",
		Description: "List a markdown file's section header paths with content lengths",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"path": map[string]interface{}{
					"type":        "string",
					"description": "Path relative to the knowledge-base root",
				},
			},
			Required: []string{"path"},
		},
	}
}

// listFilesTool returns the tool definition for list_files.
func listFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_files",
		Description: "List all markdown files in the knowledge base with short descriptions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}

// getStatsTool returns the tool definition for get_stats.
func getStatsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_stats",
		Description: "Report document count, chunk count and average chunk size for the knowledge base",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}
}
