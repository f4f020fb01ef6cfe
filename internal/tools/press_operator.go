package tools

import (
	"context"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/formula"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressOperatorTool handles arithmetic operator button presses
type PressOperatorTool struct {
	store types.SessionStore
}

// NewPressOperatorTool creates a new press operator tool
func NewPressOperatorTool(store types.SessionStore) *PressOperatorTool {
	return &PressOperatorTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *PressOperatorTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressOperator,
		mcp.WithDescription("Press an operator button on the calculator. "+
			"A minus directly after another operator acts as a sign (e.g. 5*-); "+
			"any other repeated operator replaces the previous one."),
		mcp.WithString("operator",
			mcp.Required(),
			mcp.Description("The operator to press"),
			mcp.Enum(formula.OpAdd, formula.OpSubtract, formula.OpMultiply, formula.OpDivide),
		),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressOperatorTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	op := mcp.ParseString(req, "operator", "")
	if op == "" {
		return mcp.NewToolResultError("operator parameter is required"), nil
	}
	if !formula.IsOperator(op) {
		return mcp.NewToolResultError(fmt.Sprintf("operator must be one of + - * /, got %q", op)), nil
	}

	return pressAndReport(t.store, req, op)
}
