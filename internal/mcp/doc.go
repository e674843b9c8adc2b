// Package mcp implements the Model Context Protocol (MCP) server for
// mdcontext.
//
// The server exposes six tools to LLM clients over stdio:
//   - search_markdown: ranked snippet search across the knowledge base
//   - read_file: full text of one markdown file
//   - read_file_section: one section by approximate name
//   - list_file_sections: a file's header paths with content lengths
//   - list_files: all files with short descriptions
//   - get_stats: document/chunk counts and average chunk size
//
// # Protocol Overview
//
// MCP is a JSON-RPC 2.0 protocol over stdio transport. The server reads
// requests from stdin and writes responses to stdout; all logging goes to
// stderr.
//
// # Error Handling
//
// Core error conditions map to JSON-RPC error codes with structured data
// payloads designed so an automated caller can self-correct:
//
//   - -32602: invalid params (missing/invalid arguments)
//   - -32603: internal error
//   - -32001: document not found
//   - -32002: section not found (data lists the real section paths)
//   - -32004: empty query
//   - -32005: invalid strategy (data lists the valid values)
//   - -32006: unimplemented strategy (data names the active fallback)
//
// # Reloading
//
// Reload rescans the folder and invalidates every cache; the serve command
// wires it to a file watcher so edits to the markdown tree are picked up
// without a restart.
package mcp
