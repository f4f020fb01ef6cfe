package types

// State is a snapshot of what the calculator widget shows
type State struct {
	Input   string `json:"input"`
	Formula string `json:"formula"`
}

// Calculator defines the button-press operations of a formula engine
type Calculator interface {
	DigitPressed(digit string) error
	DecimalPressed()
	OperatorPressed(op string) error
	EqualsPressed()
	Clear()
	Press(button string) error
	State() State
}

// SessionStore defines lookup of per-client calculators
type SessionStore interface {
	Create() (string, Calculator)
	Get(id string) (Calculator, error)
	GetOrCreate(id string) Calculator
	Delete(id string) bool
	Len() int
}
