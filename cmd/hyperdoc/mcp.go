package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/hyperdoc/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts hyperdoc as an MCP server over Stdin/Stdout.
This lets AI agents fetch hypermedia documents and follow their links as tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}

		// Keep Stdout clean for JSON-RPC.
		log.SetOutput(os.Stderr)
		slog.SetDefault(s.logger)

		srv := mcp.NewServer(s.client, s.store)
		slog.Info("Starting hyperdoc MCP server (stdio)")
		return srv.ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
