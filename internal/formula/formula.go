// Package formula holds the accumulated calculator expression as an ordered
// token sequence. Edits at the tail (replacing or dropping a trailing
// operator) are list operations rather than string slicing.
package formula

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCharacter is returned by Parse for bytes outside the formula alphabet
var ErrInvalidCharacter = errors.New("invalid formula character")

// Formula is the accumulated expression text of a calculator session
type Formula struct {
	tokens []Token
}

// New creates an empty formula
func New() *Formula {
	return &Formula{tokens: make([]Token, 0)}
}

// Parse tokenizes formula text. Runs of digits and decimal points become
// number tokens; everything after an equals sign is still tokenized as
// plain numbers and operators.
func Parse(text string) (*Formula, error) {
	f := New()
	for i := 0; i < len(text); {
		b := text[i]
		switch {
		case isNumberByte(b):
			start := i
			for i < len(text) && isNumberByte(text[i]) {
				i++
			}
			f.push(TokenKindNumber, text[start:i])
			continue
		case IsOperator(string(b)):
			f.push(TokenKindOperator, string(b))
		case string(b) == equalsSign:
			f.push(TokenKindEquals, equalsSign)
		default:
			return nil, fmt.Errorf("%w %q at offset %d", ErrInvalidCharacter, b, i)
		}
		i++
	}
	return f, nil
}

// Tokens returns a copy of the token sequence
func (f *Formula) Tokens() []Token {
	out := make([]Token, len(f.tokens))
	copy(out, f.tokens)
	return out
}

// Len returns the number of tokens
func (f *Formula) Len() int {
	return len(f.tokens)
}

// IsEmpty reports whether the formula has no tokens
func (f *Formula) IsEmpty() bool {
	return len(f.tokens) == 0
}

// String renders the formula as the concatenation of its token text
func (f *Formula) String() string {
	var sb strings.Builder
	for _, tok := range f.tokens {
		sb.WriteString(tok.Text)
	}
	return sb.String()
}

// Clone returns an independent copy of the formula
func (f *Formula) Clone() *Formula {
	return &Formula{tokens: f.Tokens()}
}

// Reset drops all tokens
func (f *Formula) Reset() {
	f.tokens = f.tokens[:0]
}

// LastChar returns the final character of the rendered formula, or "" when empty
func (f *Formula) LastChar() string {
	return f.charFromEnd(1)
}

// PrevChar returns the second-to-last character of the rendered formula, or ""
func (f *Formula) PrevChar() string {
	return f.charFromEnd(2)
}

func (f *Formula) charFromEnd(n int) string {
	for i := len(f.tokens) - 1; i >= 0; i-- {
		text := f.tokens[i].Text
		if n <= len(text) {
			return string(text[len(text)-n])
		}
		n -= len(text)
	}
	return ""
}

// EndsWithOperator reports whether the last token is an operator
func (f *Formula) EndsWithOperator() bool {
	last, ok := f.last()
	return ok && last.Kind == TokenKindOperator
}

// AppendDigit extends a trailing number literal or starts a new one
func (f *Formula) AppendDigit(digit string) {
	f.appendToNumber(digit)
}

// AppendDecimalPoint extends a trailing number literal with "." or starts a new one
func (f *Formula) AppendDecimalPoint() {
	f.appendToNumber(decimalPoint)
}

func (f *Formula) appendToNumber(text string) {
	if last, ok := f.last(); ok && last.Kind == TokenKindNumber {
		f.tokens[len(f.tokens)-1].Text += text
		return
	}
	f.push(TokenKindNumber, text)
}

// AppendOperator appends an operator token
func (f *Formula) AppendOperator(op string) {
	f.push(TokenKindOperator, op)
}

// ReplaceTrailingOperator swaps the final operator token for op.
// It is a no-op when the formula does not end in an operator.
func (f *Formula) ReplaceTrailingOperator(op string) {
	if !f.EndsWithOperator() {
		return
	}
	f.tokens[len(f.tokens)-1].Text = op
}

// DropTrailingOperators removes up to n operator tokens from the end and
// returns how many were removed
func (f *Formula) DropTrailingOperators(n int) int {
	removed := 0
	for removed < n && f.EndsWithOperator() {
		f.tokens = f.tokens[:len(f.tokens)-1]
		removed++
	}
	return removed
}

// AppendResult appends "=" followed by the result text
func (f *Formula) AppendResult(result string) {
	f.push(TokenKindEquals, equalsSign)
	f.push(TokenKindResult, result)
}

func (f *Formula) last() (Token, bool) {
	if len(f.tokens) == 0 {
		return Token{}, false
	}
	return f.tokens[len(f.tokens)-1], true
}

func (f *Formula) push(kind TokenKind, text string) {
	offset := 0
	if last, ok := f.last(); ok {
		offset = last.Offset + len(last.Text)
	}
	f.tokens = append(f.tokens, Token{Kind: kind, Text: text, Offset: offset})
}
