package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/averycrespi/calculator-mcp/internal/tools"
	"github.com/averycrespi/calculator-mcp/pkg/project"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/server"
)

var _ types.Server = &CalculatorServer{}

// CalculatorServer represents the calculator MCP server
type CalculatorServer struct {
	mcpServer *server.MCPServer
	store     types.SessionStore
	config    types.Config
}

// NewCalculatorServer creates a new calculator MCP server
func NewCalculatorServer(config types.Config, store types.SessionStore) *CalculatorServer {
	mcpServer := server.NewMCPServer(project.Name, project.Version,
		server.WithToolCapabilities(false),
	)

	s := &CalculatorServer{
		mcpServer: mcpServer,
		store:     store,
		config:    config,
	}
	s.registerTools()
	return s
}

// MCPServer exposes the underlying MCP server, mainly for tests
func (s *CalculatorServer) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// Start serves MCP over stdio until stdin closes
func (s *CalculatorServer) Start(ctx context.Context) error {
	slog.Info("Starting calculator MCP server", "mode", s.config.Mode, "log_level", s.config.LogLevel)

	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("failed to serve MCP server: %w", err)
	}

	return nil
}

func (s *CalculatorServer) registerTools() {
	all := tools.All(s.store)
	tools.Register(s.mcpServer, all)
	slog.Debug("Registered calculator tools", "count", len(all))
}

// Shutdown releases the default session
func (s *CalculatorServer) Shutdown(ctx context.Context) error {
	s.store.Delete(tools.DefaultSessionID)
	slog.Debug("Calculator MCP server stopped")
	return nil
}
