package results

import "github.com/averycrespi/calculator-mcp/pkg/types"

// SessionResponse is returned by the session endpoints of the web API
type SessionResponse struct {
	SessionID string      `json:"session_id"`
	State     types.State `json:"state"`
}

// StateEvent is pushed to widget clients over the WebSocket after every press
type StateEvent struct {
	Type      string      `json:"type"`
	SessionID string      `json:"session_id"`
	Button    string      `json:"button,omitempty"`
	State     types.State `json:"state"`
	Error     string      `json:"error,omitempty"`
}

// Event types
const (
	EventTypeState = "state"
	EventTypeError = "error"
)

// ErrorResponse is the JSON body of a failed web API request
type ErrorResponse struct {
	Error string `json:"error"`
}
