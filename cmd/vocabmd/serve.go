package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	vocabmcp "github.com/gorewood/vocabmd/internal/mcp"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run vocabmd as a Model Context Protocol (MCP) server over stdio.

This exposes the vocabulary catalog and the Markdown export as MCP tools
that any MCP-capable agent environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "vocabmd": {
        "command": "vocabmd",
        "args": ["serve", "--db", "/path/to/vocabulary_builder.sqlite3"]
      }
    }
  }

Flags and config values become the defaults for tool calls that leave
them out.

Available tools: list_dates, list_books, export, preview`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := loadSettings(cmd)
			if err != nil {
				newPrinter(cmd).Error(err)
				return err
			}
			server := vocabmcp.NewServer(buildVersion(), settings)
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}

	addSourceFlags(cmd)
	cmd.Flags().String("out", ".", "Default folder for the export tool")
	return cmd
}
