package engine

import (
	"errors"
	"fmt"
)

var ErrUnknownButton = errors.New("unknown button")

// ButtonKind represents the role of a calculator button as an enum
type ButtonKind string

const (
	ButtonKindDigit    ButtonKind = "digit"
	ButtonKindDecimal  ButtonKind = "decimal"
	ButtonKindOperator ButtonKind = "operator"
	ButtonKindEquals   ButtonKind = "equals"
	ButtonKindClear    ButtonKind = "clear"
)

// Button describes one calculator key: its element id, visible label and role
type Button struct {
	ID    string     `json:"id"`
	Label string     `json:"label"`
	Kind  ButtonKind `json:"kind"`
}

// Layout order: number pad, operators, equals, clear
var buttons = []Button{
	{ID: "seven", Label: "7", Kind: ButtonKindDigit},
	{ID: "eight", Label: "8", Kind: ButtonKindDigit},
	{ID: "nine", Label: "9", Kind: ButtonKindDigit},
	{ID: "four", Label: "4", Kind: ButtonKindDigit},
	{ID: "five", Label: "5", Kind: ButtonKindDigit},
	{ID: "six", Label: "6", Kind: ButtonKindDigit},
	{ID: "one", Label: "1", Kind: ButtonKindDigit},
	{ID: "two", Label: "2", Kind: ButtonKindDigit},
	{ID: "three", Label: "3", Kind: ButtonKindDigit},
	{ID: "decimal", Label: ".", Kind: ButtonKindDecimal},
	{ID: "zero", Label: "0", Kind: ButtonKindDigit},
	{ID: "add", Label: "+", Kind: ButtonKindOperator},
	{ID: "subtract", Label: "-", Kind: ButtonKindOperator},
	{ID: "multiply", Label: "*", Kind: ButtonKindOperator},
	{ID: "divide", Label: "/", Kind: ButtonKindOperator},
	{ID: "equals", Label: "=", Kind: ButtonKindEquals},
	{ID: "clear", Label: "AC", Kind: ButtonKindClear},
}

var buttonIndex = func() map[string]Button {
	index := make(map[string]Button, 2*len(buttons))
	for _, b := range buttons {
		index[b.ID] = b
		index[b.Label] = b
	}
	return index
}()

// Buttons returns the calculator keys in layout order
func Buttons() []Button {
	out := make([]Button, len(buttons))
	copy(out, buttons)
	return out
}

// LookupButton finds a button by element id ("seven", "add") or label ("7", "+")
func LookupButton(name string) (Button, error) {
	b, ok := buttonIndex[name]
	if !ok {
		return Button{}, fmt.Errorf("%w: %q", ErrUnknownButton, name)
	}
	return b, nil
}

// Press dispatches a button id or label to the matching operation
func (e *Engine) Press(name string) error {
	b, err := LookupButton(name)
	if err != nil {
		return err
	}

	switch b.Kind {
	case ButtonKindDigit:
		return e.DigitPressed(b.Label)
	case ButtonKindDecimal:
		e.DecimalPressed()
	case ButtonKindOperator:
		return e.OperatorPressed(b.Label)
	case ButtonKindEquals:
		e.EqualsPressed()
	case ButtonKindClear:
		e.Clear()
	}
	return nil
}
