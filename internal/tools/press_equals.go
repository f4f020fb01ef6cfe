package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressEqualsTool handles equals button presses
type PressEqualsTool struct {
	store types.SessionStore
}

// NewPressEqualsTool creates a new press equals tool
func NewPressEqualsTool(store types.SessionStore) *PressEqualsTool {
	return &PressEqualsTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *PressEqualsTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressEquals,
		mcp.WithDescription("Press the equals button. Evaluates the formula (ignoring a trailing operator), shows the result rounded to 6 decimal places, and appends =result to the formula. Shows Error if the formula cannot be evaluated."),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressEqualsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return pressAndReport(t.store, req, "equals")
}
