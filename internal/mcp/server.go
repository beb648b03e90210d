// Package mcp provides a Model Context Protocol server for gostrap.
// It exposes project resolution and bootstrapping as MCP tools so agents can
// scaffold projects without a shell.
package mcp

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/gorewood/gostrap/internal/bootstrap"
	"github.com/gorewood/gostrap/internal/config"
)

// Service holds what the tool handlers need.
type Service struct {
	// Config supplies defaults for inputs the caller leaves empty.
	Config config.Config
	// NewFetcher returns the fetcher for a template ref.
	NewFetcher func(ref string) bootstrap.Fetcher
}

// NewServer creates an MCP server with all gostrap tools registered.
func NewServer(version string, svc *Service) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "gostrap",
		Version: version,
	}, nil)
	registerTools(server, svc)
	return server
}

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// registerTools adds all gostrap tools to the server.
func registerTools(server *mcp.Server, svc *Service) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Preview a bootstrap: the derived project name, title, module path, target directory, and which artifacts and metadata files the run would touch. Makes no changes.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:   true,
			IdempotentHint: true,
			OpenWorldHint:  boolPtr(false),
		},
	}, handleResolve(svc))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "bootstrap",
		Description: "Clone the Go project template into an empty directory, remove template-only artifacts, and rewrite go.mod, Taskfile.yml, README.md and CONTRIBUTING.md for the new project name. Fails if the directory is not empty.",
		Annotations: &mcp.ToolAnnotations{
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(true),
		},
	}, handleBootstrap(svc))
}
