package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/formula"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressDigitTool handles digit button presses
type PressDigitTool struct {
	store types.SessionStore
}

// NewPressDigitTool creates a new press digit tool
func NewPressDigitTool(store types.SessionStore) *PressDigitTool {
	return &PressDigitTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *PressDigitTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressDigit,
		mcp.WithDescription("Press a digit button (0-9) on the calculator. "+
			"The first digit replaces the initial 0 on the display; later digits are appended."),
		mcp.WithString("digit",
			mcp.Required(),
			mcp.Description("The digit to press"),
			mcp.Enum("0", "1", "2", "3", "4", "5", "6", "7", "8", "9"),
		),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressDigitTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	digit := mcp.ParseString(req, "digit", "")
	if digit == "" {
		return mcp.NewToolResultError("digit parameter is required"), nil
	}
	if !formula.IsDigit(digit) {
		return mcp.NewToolResultError(fmt.Sprintf("digit must be a single character 0-9, got %q", digit)), nil
	}

	return pressAndReport(t.store, req, digit)
}
