package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool is implemented by every calculator MCP tool
type Tool interface {
	GetTool() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

// All returns every calculator tool bound to the given session store
func All(store types.SessionStore) []Tool {
	return []Tool{
		NewPressDigitTool(store),
		NewPressDecimalTool(store),
		NewPressOperatorTool(store),
		NewPressEqualsTool(store),
		NewClearTool(store),
		NewPressButtonTool(store),
		NewGetStateTool(store),
		NewEvaluateExpressionTool(),
	}
}

// Register adds tools to an MCP server
func Register(s *server.MCPServer, tools []Tool) {
	for _, t := range tools {
		s.AddTool(t.GetTool(), t.Handle)
	}
}
