package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/averycrespi/calculator-mcp/internal/eval"
	"github.com/averycrespi/calculator-mcp/internal/results"

	"github.com/mark3labs/mcp-go/mcp"
)

// EvaluateExpressionTool evaluates a formula without touching any session
type EvaluateExpressionTool struct{}

// NewEvaluateExpressionTool creates a new evaluate expression tool
func NewEvaluateExpressionTool() *EvaluateExpressionTool {
	return &EvaluateExpressionTool{}
}

// GetTool returns the MCP tool definition
func (t *EvaluateExpressionTool) GetTool() mcp.Tool {
	return mcp.NewTool(ToolEvaluateExpression,
		mcp.WithDescription("Evaluate an arithmetic expression built from numbers and + - * / "+
			"using the calculator's rules, returning the result rounded to 6 decimal places"),
		mcp.WithString("expression", mcp.Required(), mcp.Description("Expression to evaluate, e.g. 2+3*4 or 5*-3")),
	)
}

// Handle processes the tool request
func (t *EvaluateExpressionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	expression := mcp.ParseString(req, "expression", "")
	if expression == "" {
		return mcp.NewToolResultError("expression parameter is required"), nil
	}

	toolResult := results.EvaluateToolResult{
		Arguments: results.EvaluateToolArgs{Expression: expression},
	}

	value, err := eval.Evaluate(expression)
	if err != nil {
		toolResult.Message = "The expression could not be evaluated."
		toolResult.Error = err.Error()
		var evalErr *eval.EvaluationError
		if errors.As(err, &evalErr) {
			offset := evalErr.Offset
			toolResult.Offset = &offset
			toolResult.Error = evalErr.Err.Error()
		}
		return marshalResult(toolResult)
	}

	toolResult.Result = eval.FormatNumber(value)
	toolResult.Message = fmt.Sprintf("%s = %s", expression, toolResult.Result)
	return marshalResult(toolResult)
}
