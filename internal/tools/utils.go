package tools

import (
	"encoding/json"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/engine"
	"github.com/averycrespi/calculator-mcp/internal/metrics"
	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/pkg/types"

	"github.com/mark3labs/mcp-go/mcp"
)

// withSessionID adds the optional session_id argument shared by all stateful tools
func withSessionID() mcp.ToolOption {
	return mcp.WithString("session_id",
		mcp.Description("Calculator session to act on. Omit to use the default session."),
	)
}

// GetSessionID extracts the session ID from an MCP request, falling back to the default session
func GetSessionID(req mcp.CallToolRequest) string {
	id := mcp.ParseString(req, "session_id", "")
	if id == "" {
		return DefaultSessionID
	}
	return id
}

// pressAndReport presses a button on the request's session and renders the resulting state
func pressAndReport(store types.SessionStore, req mcp.CallToolRequest, button string) (*mcp.CallToolResult, error) {
	b, err := engine.LookupButton(button)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	sessionID := GetSessionID(req)
	calc := store.GetOrCreate(sessionID)
	if err := calc.Press(b.ID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to press %s: %v", b.Label, err)), nil
	}

	state := calc.State()
	metrics.ObservePress(metrics.SurfaceMCP, b.ID, state)
	return marshalResult(results.NewStateToolResult(sessionID, b.Label, state))
}

// marshalResult renders a tool result as indented JSON text
func marshalResult(v any) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to marshal tool result JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
