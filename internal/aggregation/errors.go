package aggregation

import "fmt"

// RateError represents an hourly rate field that is not a decimal number
type RateError struct {
	Line  int
	Value string
	Cause error
}

func (e *RateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid hourly rate %q on line %d: %v", e.Value, e.Line, e.Cause)
	}
	return fmt.Sprintf("invalid hourly rate %q on line %d", e.Value, e.Line)
}

func (e *RateError) Unwrap() error {
	return e.Cause
}
