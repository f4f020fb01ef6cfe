package tools

import (
	"context"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/engine"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// PressButtonTool handles presses of any button by id or label
type PressButtonTool struct {
	store types.SessionStore
}

// NewPressButtonTool creates a new press button tool
func NewPressButtonTool(store types.SessionStore) *PressButtonTool {
	return &PressButtonTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *PressButtonTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolPressButton,
		mcp.WithDescription("Press any calculator button by element id or label. Valid buttons: "+buttonList()),
		mcp.WithString("button", mcp.Required(), mcp.Description("Button id (e.g. seven, add, equals) or label (e.g. 7, +, =, AC)")),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *PressButtonTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	button := mcp.ParseString(req, "button", "")
	if button == "" {
		return mcp.NewToolResultError("button parameter is required"), nil
	}

	return pressAndReport(t.store, req, button)
}

func buttonList() string {
	var parts []string
	for _, b := range engine.Buttons() {
		parts = append(parts, b.ID+" ("+b.Label+")")
	}
	return strings.Join(parts, ", ")
}
