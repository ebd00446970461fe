package ingestion

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnexpectedHeader is matched by every HeaderError via errors.Is
var ErrUnexpectedHeader = errors.New("unexpected values in header row for CSV file")

// LoadError represents an error opening or reading the input file
type LoadError struct {
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("load error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("load error: %s", e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// HeaderError represents a first row that does not match the expected header
type HeaderError struct {
	Got []string
}

func (e *HeaderError) Error() string {
	return fmt.Sprintf("%s: got [%s]", ErrUnexpectedHeader.Error(), quoteFields(e.Got))
}

func (e *HeaderError) Is(target error) bool {
	return target == ErrUnexpectedHeader
}

// RowError represents a data row that cannot be turned into a WageRecord
type RowError struct {
	Line    int
	Message string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row error on line %d: %s", e.Line, e.Message)
}

func quoteFields(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}
	return strings.Join(quoted, ", ")
}
