package main

import (
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "mdcontext",
	Short: "Expose markdown folders as MCP servers",
	Long: `mdcontext serves a directory of markdown files as a searchable
knowledge base over the Model Context Protocol. Documents are split into
header-scoped chunks, scored against queries, and returned as compact,
citeable snippets instead of whole files.`,
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("mdcontext version %s (built %s)\n", version, buildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
