package report

import "fmt"

// EncodeError represents a failure to serialize or validate the report
type EncodeError struct {
	Message string
	Cause   error
}

func (e *EncodeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("encode error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("encode error: %s", e.Message)
}

func (e *EncodeError) Unwrap() error {
	return e.Cause
}

// WriteError represents a failure writing the report to its destination
type WriteError struct {
	Destination string
	Cause       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write report to %s: %v", e.Destination, e.Cause)
}

func (e *WriteError) Unwrap() error {
	return e.Cause
}
