// mdcontext exposes a folder of markdown files as a searchable MCP server.
package main

import (
	"log"
	"os"
)

func main() {
	// Log to stderr; stdout is reserved for the MCP protocol.
	log.SetOutput(os.Stderr)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
