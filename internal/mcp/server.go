// ABOUTME: MCP server setup for the training store.
// ABOUTME: Wraps the MCP server with store and quest engine access.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/stslabs/motiv8r/internal/quests"
	"github.com/stslabs/motiv8r/internal/session"
	"github.com/stslabs/motiv8r/internal/store"
)

// Server wraps the MCP server with training-store access. An active
// session lives between start_workout and finish_workout calls.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
	engine    *quests.Engine
	active    *session.Session
}

// NewServer creates a new MCP server over the given store.
func NewServer(st *store.Store, engine *quests.Engine) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "motiv8r",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		store:     st,
		engine:    engine,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
