package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/lotus-cli/internal/adapters/driving/mcp"
	"github.com/custodia-labs/lotus-cli/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes tools to look up contacts, list upcoming birthdays and
add or search notes, plus lotus://contacts and lotus://notes resources.

By default, the server communicates over stdio using JSON-RPC.

Use --port to start an HTTP server instead, which enables:
  - Testing with MCP Inspector web UI
  - Remote access via HTTP

Use --watch to reload contacts and notes when another lotus process
changes them while the server runs.

Examples:
  # Stdio mode (default)
  lotus mcp serve

  # HTTP mode with live reload
  lotus mcp serve --port 8080 --watch

Desktop client configuration:
  {
    "mcpServers": {
      "lotus": {
        "command": "/path/to/lotus",
        "args": ["mcp", "serve", "--watch"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().BoolP("watch", "w", false, "Reload data when another process changes it")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	watch, err := cmd.Flags().GetBool("watch")
	if err != nil {
		return fmt.Errorf("getting watch flag: %w", err)
	}

	ports := &mcp.Ports{
		Contacts: contactService,
		Notes:    noteService,
		Settings: settingsService,
	}

	server, err := mcp.NewServer(ports)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	if watch {
		if stateWatcher == nil {
			logger.Warn("--watch ignored: no data directory to watch")
		} else {
			go func() {
				if err := stateWatcher.Run(ctx); err != nil {
					logger.Warn("watcher stopped: %v", err)
				}
			}()
		}
	}

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(ctx, addr)
	}

	return server.Run(ctx)
}
