package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressDecimalTool handles decimal point button presses
type PressDecimalTool struct {
	store types.SessionStore
}

// NewPressDecimalTool creates a new press decimal tool
func NewPressDecimalTool(store types.SessionStore) *PressDecimalTool {
	return &PressDecimalTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *PressDecimalTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressDecimal,
		mcp.WithDescription("Press the decimal point button. A number holds at most one decimal point; extra presses are ignored."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressDecimalTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return pressAndReport(t.store, req, "decimal")
}
