package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mdcontext/mdcontext-mcp/internal/mcp"
	"github.com/mdcontext/mdcontext-mcp/internal/scanner"
)

// folderEnvVar overrides the --folder flag when set.
const folderEnvVar = "MDCONTEXT_FOLDER"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the Model Context Protocol server over stdio for a folder of
markdown files.

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "my-notes": {
        "command": "/path/to/mdcontext",
        "args": ["serve", "--folder", "/home/me/notes", "--name", "my-notes"]
      }
    }
  }`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringP("folder", "f", "", "folder containing markdown files (or MDCONTEXT_FOLDER)")
	serveCmd.Flags().StringP("name", "n", mcp.DefaultServerName, "name for the MCP server")
	serveCmd.Flags().Bool("watch", true, "reload when markdown files change on disk")
	serveCmd.Flags().Int("max-chunk-size", 0, "maximum characters per chunk (0 = default)")
	serveCmd.Flags().Int("context-chars", 0, "snippet context characters around a match (0 = default)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	folder, _ := cmd.Flags().GetString("folder")
	if folder == "" {
		folder = os.Getenv(folderEnvVar)
	}
	if folder == "" {
		return errors.New("no folder specified: use --folder or " + folderEnvVar)
	}

	name, _ := cmd.Flags().GetString("name")
	watch, _ := cmd.Flags().GetBool("watch")
	maxChunkSize, _ := cmd.Flags().GetInt("max-chunk-size")
	contextChars, _ := cmd.Flags().GetInt("context-chars")

	log.Printf("mdcontext v%s starting...", version)

	server, err := mcp.NewServer(mcp.Options{
		Folder:       folder,
		Name:         name,
		MaxChunkSize: maxChunkSize,
		ContextChars: contextChars,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		stop, err := watchFolder(ctx, folder, server)
		if err != nil {
			log.Printf("file watching disabled: %v", err)
		} else {
			defer stop()
		}
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		log.Println("MCP server ready, listening on stdio...")
		errChan <- server.Serve(ctx)
	}()

	select {
	case sig := <-sigChan:
		log.Printf("received signal %v, shutting down...", sig)
		cancel()
		return nil
	case err := <-errChan:
		return err
	}
}

// watchFolder reloads the server whenever a markdown file under the folder
// changes. Returns a stop function.
func watchFolder(ctx context.Context, folder string, server *mcp.Server) (func(), error) {
	watcher, err := scanner.NewWatcher(folder)
	if err != nil {
		return nil, err
	}

	events := watcher.Watch(ctx)
	go func() {
		for event := range events {
			log.Printf("detected change: %s", event.Path)
			if err := server.Reload(); err != nil {
				log.Printf("reload failed: %v", err)
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
