package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// ClearTool handles clear button presses
type ClearTool struct {
	store types.SessionStore
}

// NewClearTool creates a new clear tool
func NewClearTool(store types.SessionStore) *ClearTool {
	return &ClearTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *ClearTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolClear,
		mcp.WithDescription("Press the AC button, resetting the display to 0 and clearing the formula."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *ClearTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return pressAndReport(t.store, req, "clear")
}
