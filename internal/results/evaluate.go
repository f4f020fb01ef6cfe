package results

// EvaluateToolResult represents the result of the evaluate_expression tool
type EvaluateToolResult struct {
	Message   string           `json:"message"`
	Arguments EvaluateToolArgs `json:"arguments"`
	Result    string           `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
	Offset    *int             `json:"offset,omitempty"`
}

// EvaluateToolArgs represents the input arguments for the evaluate_expression tool
type EvaluateToolArgs struct {
	Expression string `json:"expression"`
}
