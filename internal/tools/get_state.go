package tools

import (
	"context"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetStateTool reports the display and formula of a session
type GetStateTool struct {
	store types.SessionStore
}

// NewGetStateTool creates a new get state tool
func NewGetStateTool(store types.SessionStore) *GetStateTool {
	return &GetStateTool{store: store}
}

// GetTool returns the MCP tool definition
func (t *GetStateTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolGetState,
		mcp.WithDescription("Get the calculator display (input) and the accumulated formula without pressing anything"),
		withSessionID(),
	)
}

// Handle processes the tool request
func (t *GetStateTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID := GetSessionID(req)
	state := t.store.GetOrCreate(sessionID).State()
	return marshalResult(results.NewStateToolResult(sessionID, "", state))
}
