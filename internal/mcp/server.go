// Package mcp serves the Bored API queries as MCP tools over stdio.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/usestring/boredq/internal/mcp/tools"
)

// ActivitySchemaURI is the resource holding the activity JSON Schema.
const ActivitySchemaURI = "bored://schema/activity"

// Server wraps the MCP server with the boredq tools.
type Server struct {
	mcpServer *sdkmcp.Server
	deps      *tools.Deps
}

// NewServer creates a new MCP server with the provided dependencies.
func NewServer(deps *tools.Deps, version string) (*Server, error) {
	if deps == nil {
		return nil, fmt.Errorf("deps is required")
	}

	s := &Server{deps: deps}
	s.mcpServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "boredq",
			Version: version,
		},
		nil,
	)

	s.mcpServer.AddReceivingMiddleware(LoggingMiddleware())
	tools.Register(s.mcpServer, deps)
	if deps.Validator != nil {
		s.registerResources()
	}

	return s, nil
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         ActivitySchemaURI,
		Name:        "Activity Schema",
		Description: "JSON Schema of a successful Bored API activity response.",
		MIMEType:    tools.MimeJSON,
	}, s.handleActivitySchema)
}

func (s *Server) handleActivitySchema(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(s.deps.Validator.Document(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling schema: %w", err)
	}
	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{URI: ActivitySchemaURI, MIMEType: tools.MimeJSON, Text: string(data)},
		},
	}, nil
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
