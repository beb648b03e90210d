package main

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	gostrapmcp "github.com/gorewood/gostrap/internal/mcp"
	"github.com/gorewood/gostrap/internal/output"
)

// newServeCmd creates the serve command for running as an MCP server.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run as MCP server (stdio transport)",
		Long: `Run gostrap as a Model Context Protocol (MCP) server over stdio.

This exposes bootstrapping as MCP tools that any MCP-capable agent
environment can use.

Configure in your agent's MCP settings:
  {
    "mcpServers": {
      "gostrap": {
        "command": "gostrap",
        "args": ["serve"]
      }
    }
  }

Available tools: resolve, bootstrap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				exitErr := output.NewUserError("invalid configuration: " + err.Error())
				newPrinter(cmd).Error(exitErr)
				return exitErr
			}
			server := gostrapmcp.NewServer(buildVersion(), &gostrapmcp.Service{
				Config:     cfg,
				NewFetcher: newFetcher,
			})
			return server.Run(cmd.Context(), &mcp.StdioTransport{})
		},
	}
}
