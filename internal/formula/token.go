package formula

import "strings"

// TokenKind represents the type of a formula token as an enum
type TokenKind string

const (
	TokenKindNumber   TokenKind = "number"
	TokenKindOperator TokenKind = "operator"
	TokenKindEquals   TokenKind = "equals"
	TokenKindResult   TokenKind = "result"
)

// Operators
const (
	OpAdd      = "+"
	OpSubtract = "-"
	OpMultiply = "*"
	OpDivide   = "/"
)

const (
	decimalPoint = "."
	equalsSign   = "="
)

// Token is one element of a formula: a number literal, an operator,
// the equals sign, or a computed result
type Token struct {
	Kind TokenKind `json:"kind"`
	Text string    `json:"text"`
	// Offset is the byte position of the token in the rendered formula
	Offset int `json:"offset"`
}

// IsOperator reports whether s is one of the four arithmetic operators
func IsOperator(s string) bool {
	switch s {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// IsDigit reports whether s is a single decimal digit
func IsDigit(s string) bool {
	return len(s) == 1 && s[0] >= '0' && s[0] <= '9'
}

func isNumberByte(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// HasDecimalPoint reports whether the number text already has a decimal point
func (t Token) HasDecimalPoint() bool {
	return strings.Contains(t.Text, decimalPoint)
}
