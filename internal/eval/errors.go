package eval

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyExpression = errors.New("empty expression")
	ErrUnexpectedToken = errors.New("unexpected token")
	ErrMalformedNumber = errors.New("malformed number")
	ErrNonFinite       = errors.New("result is not a finite number")
)

// EvaluationError is returned when an expression cannot be evaluated
type EvaluationError struct {
	Expression string
	Offset     int
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("failed to evaluate %q at offset %d: %v", e.Expression, e.Offset, e.Err)
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
