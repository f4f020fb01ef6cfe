package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/averycrespi/calculator-mcp/internal/results"
	"github.com/averycrespi/calculator-mcp/internal/session"
	"github.com/averycrespi/calculator-mcp/pkg/types"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// callTool invokes a tool handler with the given arguments and returns the result text
func callTool(t *testing.T, tool Tool, arguments map[string]interface{}) (string, bool) {
	t.Helper()

	request := mcp.CallToolRequest{}
	request.Params.Name = tool.GetTool().Name
	request.Params.Arguments = arguments

	result, err := tool.Handle(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	require.Len(t, result.Content, 1)

	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content, got %T", result.Content[0])
	return text.Text, result.IsError
}

func decodeState(t *testing.T, text string) results.StateToolResult {
	t.Helper()
	var result results.StateToolResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	return result
}

func TestAllToolNames(t *testing.T) {
	var names []string
	for _, tool := range All(session.NewManager()) {
		names = append(names, tool.GetTool().Name)
	}
	assert.ElementsMatch(t, []string{
		ToolPressDigit, ToolPressDecimal, ToolPressOperator, ToolPressEquals,
		ToolClear, ToolPressButton, ToolGetState, ToolEvaluateExpression,
	}, names)
}

func TestGetSessionID(t *testing.T) {
	tests := []struct {
		name      string
		arguments map[string]interface{}
		expected  string
	}{
		{name: "Missing uses default", arguments: map[string]interface{}{}, expected: DefaultSessionID},
		{name: "Empty uses default", arguments: map[string]interface{}{"session_id": ""}, expected: DefaultSessionID},
		{name: "Explicit session", arguments: map[string]interface{}{"session_id": "abc"}, expected: "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := mcp.CallToolRequest{}
			request.Params.Arguments = tt.arguments
			assert.Equal(t, tt.expected, GetSessionID(request))
		})
	}
}

func TestButtonToolsEndToEnd(t *testing.T) {
	store := session.NewManager()

	steps := []struct {
		tool      Tool
		arguments map[string]interface{}
	}{
		{NewPressDigitTool(store), map[string]interface{}{"digit": "5"}},
		{NewPressOperatorTool(store), map[string]interface{}{"operator": "+"}},
		{NewPressDigitTool(store), map[string]interface{}{"digit": "3"}},
		{NewPressEqualsTool(store), map[string]interface{}{}},
	}

	var last string
	for _, step := range steps {
		text, isError := callTool(t, step.tool, step.arguments)
		require.False(t, isError, text)
		last = text
	}

	result := decodeState(t, last)
	assert.Equal(t, types.State{Input: "8", Formula: "5+3=8"}, result.State)
	assert.Equal(t, DefaultSessionID, result.Arguments.SessionID)
	assert.Equal(t, "=", result.Arguments.Button)
}

func TestDivisionByZeroShowsError(t *testing.T) {
	store := session.NewManager()
	press := NewPressButtonTool(store)

	var last string
	for _, button := range []string{"six", "divide", "zero", "equals"} {
		text, isError := callTool(t, press, map[string]interface{}{"button": button})
		require.False(t, isError, text)
		last = text
	}

	result := decodeState(t, last)
	assert.Equal(t, "Error", result.State.Input)
	assert.Equal(t, "6/0", result.State.Formula)
}

func TestDecimalAndClearTools(t *testing.T) {
	store := session.NewManager()
	args := map[string]interface{}{"session_id": "s1"}

	text, _ := callTool(t, NewPressDecimalTool(store), args)
	assert.Equal(t, types.State{Input: "0.", Formula: "0."}, decodeState(t, text).State)

	text, _ = callTool(t, NewPressDecimalTool(store), args)
	assert.Equal(t, types.State{Input: "0.", Formula: "0."}, decodeState(t, text).State)

	text, _ = callTool(t, NewClearTool(store), args)
	assert.Equal(t, types.State{Input: "0", Formula: ""}, decodeState(t, text).State)
}

func TestSessionsAreSeparate(t *testing.T) {
	store := session.NewManager()
	digit := NewPressDigitTool(store)

	_, _ = callTool(t, digit, map[string]interface{}{"digit": "1", "session_id": "a"})
	_, _ = callTool(t, digit, map[string]interface{}{"digit": "2", "session_id": "b"})

	text, _ := callTool(t, NewGetStateTool(store), map[string]interface{}{"session_id": "a"})
	assert.Equal(t, "1", decodeState(t, text).State.Input)

	text, _ = callTool(t, NewGetStateTool(store), map[string]interface{}{"session_id": "b"})
	assert.Equal(t, "2", decodeState(t, text).State.Input)
}

func TestToolArgumentErrors(t *testing.T) {
	store := session.NewManager()

	tests := []struct {
		name      string
		tool      Tool
		arguments map[string]interface{}
		contains  string
	}{
		{
			name:      "Missing digit",
			tool:      NewPressDigitTool(store),
			arguments: map[string]interface{}{},
			contains:  "digit parameter is required",
		},
		{
			name:      "Digit tool given operator",
			tool:      NewPressDigitTool(store),
			arguments: map[string]interface{}{"digit": "+"},
			contains:  "digit must be",
		},
		{
			name:      "Operator tool given digit",
			tool:      NewPressOperatorTool(store),
			arguments: map[string]interface{}{"operator": "7"},
			contains:  "operator must be",
		},
		{
			name:      "Unknown button",
			tool:      NewPressButtonTool(store),
			arguments: map[string]interface{}{"button": "percent"},
			contains:  "unknown button",
		},
		{
			name:      "Missing expression",
			tool:      NewEvaluateExpressionTool(),
			arguments: map[string]interface{}{},
			contains:  "expression parameter is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, isError := callTool(t, tt.tool, tt.arguments)
			assert.True(t, isError)
			assert.Contains(t, text, tt.contains)
		})
	}

	assert.Equal(t, 0, store.Len(), "rejected presses must not create sessions")
}

func TestEvaluateExpressionTool(t *testing.T) {
	tool := NewEvaluateExpressionTool()

	text, isError := callTool(t, tool, map[string]interface{}{"expression": "2+3*4"})
	require.False(t, isError)

	var result results.EvaluateToolResult
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	assert.Equal(t, "14", result.Result)
	assert.Equal(t, "2+3*4 = 14", result.Message)
	assert.Nil(t, result.Offset)

	text, isError = callTool(t, tool, map[string]interface{}{"expression": "6/0"})
	require.False(t, isError)

	result = results.EvaluateToolResult{}
	require.NoError(t, json.Unmarshal([]byte(text), &result))
	assert.Empty(t, result.Result)
	assert.Contains(t, result.Error, "division by zero")
	require.NotNil(t, result.Offset)
	assert.Equal(t, 1, *result.Offset)
}
