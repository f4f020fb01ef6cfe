package engine

import (
	"errors"
	"testing"

	"github.com/averycrespi/calculator-mcp/internal/formula"
	"github.com/averycrespi/calculator-mcp/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pressAll presses each button by label and fails the test on unknown buttons
func pressAll(t *testing.T, e *Engine, labels ...string) {
	t.Helper()
	for _, label := range labels {
		require.NoError(t, e.Press(label), "press %q", label)
	}
}

func TestNewEngine(t *testing.T) {
	e := New()
	assert.Equal(t, types.State{Input: "0", Formula: ""}, e.State())
}

func TestDigitPressed(t *testing.T) {
	tests := []struct {
		name     string
		presses  []string
		expected types.State
	}{
		{
			name:     "First digit replaces zero",
			presses:  []string{"7"},
			expected: types.State{Input: "7", Formula: "7"},
		},
		{
			name:     "Digits accumulate",
			presses:  []string{"1", "2", "3", "4"},
			expected: types.State{Input: "1234", Formula: "1234"},
		},
		{
			name:     "Leading zeros stay in formula only",
			presses:  []string{"0", "0", "7"},
			expected: types.State{Input: "7", Formula: "007"},
		},
		{
			name:     "Digit after operator appends to operator display",
			presses:  []string{"5", "+", "3"},
			expected: types.State{Input: "+3", Formula: "5+3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			pressAll(t, e, tt.presses...)
			assert.Equal(t, tt.expected, e.State())
		})
	}
}

func TestDigitPressedRejectsInvalidDigit(t *testing.T) {
	e := New()
	for _, digit := range []string{"", "a", "12", "+", "."} {
		err := e.DigitPressed(digit)
		assert.True(t, errors.Is(err, ErrInvalidDigit), "digit %q", digit)
	}
	assert.Equal(t, types.State{Input: "0", Formula: ""}, e.State())
}

func TestDecimalPressed(t *testing.T) {
	tests := []struct {
		name     string
		presses  []string
		expected types.State
	}{
		{
			name:     "Decimal from clear state",
			presses:  []string{"."},
			expected: types.State{Input: "0.", Formula: "0."},
		},
		{
			name:     "Decimal then digit",
			presses:  []string{".", "5"},
			expected: types.State{Input: "0.5", Formula: "0.5"},
		},
		{
			name:     "Decimal after typed zero",
			presses:  []string{"0", "."},
			expected: types.State{Input: "0.", Formula: "0."},
		},
		{
			name:     "Second decimal is ignored",
			presses:  []string{"5", ".", "."},
			expected: types.State{Input: "5.", Formula: "5."},
		},
		{
			name:     "Second decimal after digits is ignored",
			presses:  []string{"1", ".", "2", ".", "3"},
			expected: types.State{Input: "1.23", Formula: "1.23"},
		},
		{
			name:     "Decimal after operator",
			presses:  []string{"5", "+", ".", "5"},
			expected: types.State{Input: "+.5", Formula: "5+.5"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			pressAll(t, e, tt.presses...)
			assert.Equal(t, tt.expected, e.State())
		})
	}
}

func TestDecimalPressedIsIdempotent(t *testing.T) {
	e := New()
	pressAll(t, e, "4", "2", ".")
	before := e.State()

	e.DecimalPressed()
	assert.Equal(t, before, e.State())
}

func TestOperatorPressed(t *testing.T) {
	tests := []struct {
		name     string
		formula  string
		op       string
		expected string
	}{
		{name: "Append after number", formula: "5", op: "+", expected: "5+"},
		{name: "Append to empty formula", formula: "", op: "-", expected: "-"},
		{name: "Minus after operator is kept", formula: "5+", op: "-", expected: "5+-"},
		{name: "Minus after multiply is kept", formula: "5*", op: "-", expected: "5*-"},
		{name: "Replace trailing minus", formula: "5-", op: "+", expected: "5+"},
		{name: "Replace minus sign after operator", formula: "5+-", op: "*", expected: "5+*"},
		{name: "Minus after minus stays single", formula: "5-", op: "-", expected: "5-"},
		{name: "Collapse two trailing operators", formula: "5--", op: "*", expected: "5*"},
		{name: "Replace trailing operator", formula: "5*", op: "/", expected: "5/"},
		{name: "Replace trailing plus", formula: "5+", op: "+", expected: "5+"},
		{name: "Minus run after minus sign", formula: "5*-", op: "-", expected: "5*-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := formula.Parse(tt.formula)
			require.NoError(t, err)

			e := New()
			e.formula = f

			require.NoError(t, e.OperatorPressed(tt.op))
			assert.Equal(t, tt.expected, e.State().Formula)
			assert.Equal(t, tt.op, e.State().Input)
		})
	}
}

func TestOperatorPressedRejectsInvalidOperator(t *testing.T) {
	e := New()
	err := e.OperatorPressed("%")
	assert.True(t, errors.Is(err, ErrInvalidOperator))
	assert.Equal(t, "", e.State().Formula)
}

func TestOperatorSequence(t *testing.T) {
	e := New()
	pressAll(t, e, "5", "+", "-")
	assert.Equal(t, "5+-", e.State().Formula)

	pressAll(t, e, "*")
	assert.Equal(t, "5+*", e.State().Formula)
	assert.Equal(t, "*", e.State().Input)
}

func TestEqualsPressed(t *testing.T) {
	tests := []struct {
		name     string
		presses  []string
		expected types.State
	}{
		{
			name:     "Simple addition",
			presses:  []string{"5", "+", "3", "="},
			expected: types.State{Input: "8", Formula: "5+3=8"},
		},
		{
			name:     "Precedence",
			presses:  []string{"2", "+", "3", "*", "4", "="},
			expected: types.State{Input: "14", Formula: "2+3*4=14"},
		},
		{
			name:     "Negative operand",
			presses:  []string{"5", "*", "-", "3", "="},
			expected: types.State{Input: "-15", Formula: "5*-3=-15"},
		},
		{
			name:     "Trailing operator is dropped",
			presses:  []string{"5", "+", "="},
			expected: types.State{Input: "5", Formula: "5=5"},
		},
		{
			name:     "Result rounded to six places",
			presses:  []string{"2", "/", "3", "="},
			expected: types.State{Input: "0.666667", Formula: "2/3=0.666667"},
		},
		{
			name:     "Floating point noise is hidden",
			presses:  []string{".", "1", "+", ".", "2", "="},
			expected: types.State{Input: "0.3", Formula: "0.1+.2=0.3"},
		},
		{
			name:     "Division by zero",
			presses:  []string{"6", "/", "0", "="},
			expected: types.State{Input: "Error", Formula: "6/0"},
		},
		{
			name:     "Empty formula",
			presses:  []string{"="},
			expected: types.State{Input: "Error", Formula: ""},
		},
		{
			name:     "Operator only formula",
			presses:  []string{"*", "="},
			expected: types.State{Input: "Error", Formula: ""},
		},
		{
			name:     "Continuing after a result is an error",
			presses:  []string{"5", "+", "3", "=", "+", "2", "="},
			expected: types.State{Input: "Error", Formula: "5+3=8+2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			pressAll(t, e, tt.presses...)
			assert.Equal(t, tt.expected, e.State())
		})
	}
}

func TestDigitAfterErrorStartsFreshInput(t *testing.T) {
	e := New()
	pressAll(t, e, "6", "/", "0", "=")
	require.Equal(t, "Error", e.State().Input)

	pressAll(t, e, "5")
	assert.Equal(t, "5", e.State().Input)
	assert.Equal(t, "6/05", e.State().Formula)
}

func TestClear(t *testing.T) {
	tests := []struct {
		name    string
		presses []string
	}{
		{name: "From initial state", presses: nil},
		{name: "After digits", presses: []string{"1", "2"}},
		{name: "After operators", presses: []string{"1", "+", "-"}},
		{name: "After result", presses: []string{"1", "+", "1", "="}},
		{name: "After error", presses: []string{"1", "/", "0", "="}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New()
			pressAll(t, e, tt.presses...)

			e.Clear()
			assert.Equal(t, types.State{Input: "0", Formula: ""}, e.State())
		})
	}
}
