package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/averycrespi/calculator-mcp/internal/eval"
	"github.com/averycrespi/calculator-mcp/internal/formula"
	"github.com/averycrespi/calculator-mcp/pkg/types"
)

const initialInput = "0"

var (
	ErrInvalidDigit    = errors.New("invalid digit")
	ErrInvalidOperator = errors.New("invalid operator")
)

var _ types.Calculator = &Engine{}

// Engine is the formula-building state machine behind one calculator widget.
// It is not safe for concurrent use; callers serialize button presses.
type Engine struct {
	input   string
	formula *formula.Formula
}

// New creates an engine showing "0" with an empty formula
func New() *Engine {
	return &Engine{
		input:   initialInput,
		formula: formula.New(),
	}
}

// State returns the current display and formula text
func (e *Engine) State() types.State {
	return types.State{
		Input:   e.input,
		Formula: e.formula.String(),
	}
}

// freshInput reports whether the next digit or decimal point starts a new number
func (e *Engine) freshInput() bool {
	return e.input == initialInput || e.input == eval.ErrorDisplay
}

// DigitPressed handles a press of one of the digit buttons "0" through "9"
func (e *Engine) DigitPressed(digit string) error {
	if !formula.IsDigit(digit) {
		return fmt.Errorf("%w: %q", ErrInvalidDigit, digit)
	}

	if e.freshInput() {
		e.input = digit
	} else {
		e.input += digit
	}
	e.formula.AppendDigit(digit)

	slog.Debug("Digit pressed", "digit", digit, "input", e.input, "formula", e.formula.String())
	return nil
}

// DecimalPressed handles a press of the decimal point button. A number holds
// at most one decimal point; further presses are ignored.
func (e *Engine) DecimalPressed() {
	switch {
	case e.freshInput():
		e.input = "0."
		if e.formula.IsEmpty() {
			e.formula.AppendDigit(initialInput)
		}
		e.formula.AppendDecimalPoint()
	case !strings.Contains(e.input, "."):
		e.input += "."
		e.formula.AppendDecimalPoint()
	default:
		slog.Debug("Ignoring second decimal point", "input", e.input)
		return
	}

	slog.Debug("Decimal pressed", "input", e.input, "formula", e.formula.String())
}

// OperatorPressed handles a press of "+", "-", "*" or "/". A minus directly
// after another operator is kept as a sign; any other run of operators
// collapses so that the formula never ends in more than two operators.
func (e *Engine) OperatorPressed(op string) error {
	if !formula.IsOperator(op) {
		return fmt.Errorf("%w: %q", ErrInvalidOperator, op)
	}

	last := e.formula.LastChar()
	prev := e.formula.PrevChar()

	switch {
	case !formula.IsOperator(last):
		e.formula.AppendOperator(op)
	case op == formula.OpSubtract && last != formula.OpSubtract:
		e.formula.AppendOperator(op)
	case prev != formula.OpSubtract && last == formula.OpSubtract:
		e.formula.ReplaceTrailingOperator(op)
	case prev == formula.OpSubtract && op != formula.OpSubtract:
		e.formula.DropTrailingOperators(2)
		e.formula.AppendOperator(op)
	default:
		e.formula.ReplaceTrailingOperator(op)
	}
	e.input = op

	slog.Debug("Operator pressed", "operator", op, "formula", e.formula.String())
	return nil
}

// EqualsPressed evaluates the formula without its trailing operator. On
// success the display shows the result and the formula gains "=<result>".
// On failure the display shows "Error" and the formula keeps the cleaned
// expression.
func (e *Engine) EqualsPressed() {
	e.formula.DropTrailingOperators(1)

	value, err := eval.EvaluateFormula(e.formula)
	if err != nil {
		var evalErr *eval.EvaluationError
		if errors.As(err, &evalErr) {
			slog.Warn("Failed to evaluate formula", "formula", evalErr.Expression, "offset", evalErr.Offset, "error", evalErr.Err)
		} else {
			slog.Warn("Failed to evaluate formula", "formula", e.formula.String(), "error", err)
		}
		e.input = eval.ErrorDisplay
		return
	}

	result := eval.FormatNumber(value)
	e.input = result
	e.formula.AppendResult(result)

	slog.Debug("Formula evaluated", "formula", e.formula.String(), "result", result)
}

// Clear resets the display to "0" and empties the formula
func (e *Engine) Clear() {
	e.input = initialInput
	e.formula.Reset()
	slog.Debug("Calculator cleared")
}
