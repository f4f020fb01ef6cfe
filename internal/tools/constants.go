package tools

// Tool names
const (
	ToolPressDigit         = "press_digit"
	ToolPressDecimal       = "press_decimal"
	ToolPressOperator      = "press_operator"
	ToolPressEquals        = "press_equals"
	ToolClear              = "clear"
	ToolPressButton        = "press_button"
	ToolGetState           = "get_state"
	ToolEvaluateExpression = "evaluate_expression"
)

// DefaultSessionID is used when a tool call does not name a session
const DefaultSessionID = "default"
