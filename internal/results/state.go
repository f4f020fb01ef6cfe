package results

import (
	"github.com/averycrespi/calculator-mcp/internal/eval"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

// StateToolResult represents the result of a button-press tool
type StateToolResult struct {
	Message   string        `json:"message"`
	Arguments StateToolArgs `json:"arguments"`
	State     types.State   `json:"state"`
}

// StateToolArgs represents the input arguments of a button-press tool
type StateToolArgs struct {
	SessionID string `json:"session_id"`
	Button    string `json:"button,omitempty"`
}

// NewStateToolResult builds a result for the given session, button and state
func NewStateToolResult(sessionID, button string, state types.State) StateToolResult {
	return StateToolResult{
		Message: stateMessage(button, state),
		Arguments: StateToolArgs{
			SessionID: sessionID,
			Button:    button,
		},
		State: state,
	}
}

func stateMessage(button string, state types.State) string {
	if state.Input == eval.ErrorDisplay {
		return "The formula could not be evaluated. Press clear to start over."
	}
	if button == "" {
		return "Display shows " + state.Input + "."
	}
	return "Pressed " + button + ". Display shows " + state.Input + "."
}
