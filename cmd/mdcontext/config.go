package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mdcontext/mdcontext-mcp/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mdcontext entries in Claude Desktop's configuration",
}

var configAddCmd = &cobra.Command{
	Use:   "add FOLDER",
	Short: "Register a markdown folder as an MCP server",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = folderBaseName(args[0])
		}

		path, err := config.Path()
		if err != nil {
			return err
		}
		execPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("failed to locate mdcontext binary: %w", err)
		}
		if err := config.AddServer(path, name, args[0], execPath); err != nil {
			return err
		}

		cmd.Printf("Added %q to %s\n", name, path)
		cmd.Println("Restart Claude Desktop to pick up the new server.")
		return nil
	},
}

var configRemoveCmd = &cobra.Command{
	Use:   "remove NAME",
	Short: "Remove a registered server by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		if err := config.RemoveServer(path, args[0]); err != nil {
			return err
		}
		cmd.Printf("Removed %q from %s\n", args[0], path)
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered mdcontext servers",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		servers, err := config.ListServers(path)
		if err != nil {
			return err
		}
		if len(servers) == 0 {
			cmd.Println("No mdcontext servers configured")
			return nil
		}
		cmd.Printf("Configured mdcontext servers (%d):\n", len(servers))
		for name, entry := range servers {
			cmd.Printf("  %s\n    Folder: %s\n", name, entry.Folder())
		}
		return nil
	},
}

var configStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show configuration file status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		path, err := config.Path()
		if err != nil {
			return err
		}
		cmd.Printf("Claude Desktop config: %s\n", path)
		if _, err := os.Stat(path); err != nil {
			cmd.Println("Config exists: false")
			return nil
		}
		cmd.Println("Config exists: true")

		servers, err := config.ListServers(path)
		if err != nil {
			return err
		}
		cmd.Printf("mdcontext servers: %d\n", len(servers))
		return nil
	},
}

func init() {
	configAddCmd.Flags().StringP("name", "n", "", "server name (default: folder name)")
	configCmd.AddCommand(configAddCmd, configRemoveCmd, configListCmd, configStatusCmd)
	rootCmd.AddCommand(configCmd)
}
