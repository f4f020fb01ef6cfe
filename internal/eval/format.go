package eval

import (
	"math"
	"strconv"
	"strings"
)

const (
	// Precision is the number of decimal places results are rounded to
	Precision = 6

	// ErrorDisplay is shown on the display when evaluation fails
	ErrorDisplay = "Error"
)

// FormatNumber rounds n to six decimal places and drops trailing zeros and a
// dangling decimal point, so 1.5000000 becomes "1.5" and 2.0 becomes "2".
// Non-finite values format as ErrorDisplay.
func FormatNumber(n float64) string {
	if math.IsInf(n, 0) || math.IsNaN(n) {
		return ErrorDisplay
	}

	s := strconv.FormatFloat(n, 'f', Precision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")

	// -0.0000001 rounds to "-0"
	if s == "-0" {
		return "0"
	}
	return s
}
