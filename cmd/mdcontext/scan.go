package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdcontext/mdcontext-mcp/internal/chunker"
	"github.com/mdcontext/mdcontext-mcp/internal/scanner"
	"github.com/mdcontext/mdcontext-mcp/internal/searcher"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan a folder and show what would be exposed (dry run)",
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringP("folder", "f", "", "folder containing markdown files (or MDCONTEXT_FOLDER)")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, _ []string) error {
	folder, _ := cmd.Flags().GetString("folder")
	if folder == "" {
		folder = os.Getenv(folderEnvVar)
	}
	if folder == "" {
		return errors.New("no folder specified: use --folder or " + folderEnvVar)
	}

	scan, err := scanner.New(folder)
	if err != nil {
		return err
	}
	coll, err := scan.Scan()
	if err != nil {
		return err
	}

	cmd.Printf("Found %d markdown file(s) in %s\n\n", coll.Len(), scan.Root())
	for _, doc := range coll.Documents() {
		if doc.Description != "" {
			cmd.Printf("  %s — %s\n", doc.Path, doc.Description)
		} else {
			cmd.Printf("  %s\n", doc.Path)
		}
	}

	stats := searcher.NewEngine(chunker.New()).CollectionStats(coll)
	cmd.Printf("\n%d chunk(s), average %.0f chars\n", stats.ChunkCount, stats.AvgChunkSize)
	return nil
}
