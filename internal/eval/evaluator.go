// Package eval evaluates calculator formulas with a recursive-descent parser
// over the formula token stream.
//
// Grammar:
//
//	expr  := term (('+' | '-') term)*
//	term  := unary (('*' | '/') unary)*
//	unary := ('+' | '-') unary | number
package eval

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/averycrespi/calculator-mcp/internal/formula"
)

// Evaluate parses and computes an arithmetic expression
func Evaluate(expr string) (float64, error) {
	f, err := formula.Parse(expr)
	if err != nil {
		return 0, &EvaluationError{Expression: expr, Err: fmt.Errorf("%w: %v", ErrUnexpectedToken, err)}
	}
	return EvaluateFormula(f)
}

// EvaluateFormula computes the value of an already tokenized formula
func EvaluateFormula(f *formula.Formula) (float64, error) {
	p := &parser{expr: f.String(), tokens: f.Tokens()}
	if len(p.tokens) == 0 {
		return 0, p.fail(0, ErrEmptyExpression)
	}

	value, err := p.parseExpr()
	if err != nil {
		return 0, err
	}
	if tok, ok := p.peek(); ok {
		return 0, p.fail(tok.Offset, fmt.Errorf("%w %q", ErrUnexpectedToken, tok.Text))
	}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, p.fail(0, ErrNonFinite)
	}
	return value, nil
}

type parser struct {
	expr   string
	tokens []formula.Token
	pos    int
}

func (p *parser) peek() (formula.Token, bool) {
	if p.pos >= len(p.tokens) {
		return formula.Token{}, false
	}
	return p.tokens[p.pos], true
}

// acceptOperator consumes the next token if it is one of ops
func (p *parser) acceptOperator(ops ...string) (string, bool) {
	tok, ok := p.peek()
	if !ok || tok.Kind != formula.TokenKindOperator {
		return "", false
	}
	for _, op := range ops {
		if tok.Text == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) parseExpr() (float64, error) {
	left, err := p.parseTerm()
	if err != nil {
		return 0, err
	}
	for {
		op, ok := p.acceptOperator(formula.OpAdd, formula.OpSubtract)
		if !ok {
			return left, nil
		}
		right, err := p.parseTerm()
		if err != nil {
			return 0, err
		}
		if op == formula.OpAdd {
			left += right
		} else {
			left -= right
		}
	}
}

func (p *parser) parseTerm() (float64, error) {
	left, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		tok, _ := p.peek()
		op, ok := p.acceptOperator(formula.OpMultiply, formula.OpDivide)
		if !ok {
			return left, nil
		}
		right, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == formula.OpMultiply {
			left *= right
			continue
		}
		if right == 0 {
			return 0, p.fail(tok.Offset, fmt.Errorf("%w: division by zero", ErrNonFinite))
		}
		left /= right
	}
}

func (p *parser) parseUnary() (float64, error) {
	if op, ok := p.acceptOperator(formula.OpAdd, formula.OpSubtract); ok {
		value, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		if op == formula.OpSubtract {
			return -value, nil
		}
		return value, nil
	}
	return p.parseNumber()
}

func (p *parser) parseNumber() (float64, error) {
	tok, ok := p.peek()
	if !ok {
		return 0, p.fail(len(p.expr), fmt.Errorf("%w: unexpected end of expression", ErrUnexpectedToken))
	}
	if tok.Kind != formula.TokenKindNumber && tok.Kind != formula.TokenKindResult {
		return 0, p.fail(tok.Offset, fmt.Errorf("%w %q", ErrUnexpectedToken, tok.Text))
	}
	value, err := parseLiteral(tok.Text)
	if err != nil {
		return 0, p.fail(tok.Offset, err)
	}
	p.pos++
	return value, nil
}

// parseLiteral accepts "5", "5.", ".5" and "5.5" but not "." or "5.5.5"
func parseLiteral(text string) (float64, error) {
	if text == "." {
		return 0, fmt.Errorf("%w %q", ErrMalformedNumber, text)
	}
	value, err := strconv.ParseFloat(text, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %q is out of range", ErrNonFinite, text)
	}
	if err != nil {
		return 0, fmt.Errorf("%w %q", ErrMalformedNumber, text)
	}
	return value, nil
}

func (p *parser) fail(offset int, err error) error {
	return &EvaluationError{Expression: p.expr, Offset: offset, Err: err}
}
