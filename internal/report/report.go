// Package report serializes a WageReport and writes it to its destination.
package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"os"

	"github.com/jonathan/wage-report/internal/schemas"
	"github.com/jonathan/wage-report/internal/types"
)

// Stdout is the output path that selects standard output
const Stdout = "-"

// Encode renders the report as indented JSON and checks it against the report schema.
// Keys keep report order and each entry lists Department, JobTitle, Average Hourly Rate.
func Encode(r *types.WageReport) ([]byte, error) {
	if r == nil {
		r = &types.WageReport{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, &EncodeError{Message: "failed to marshal report", Cause: err}
	}

	data := buf.Bytes()
	if err := schemas.ValidateWageReport(data); err != nil {
		return nil, &EncodeError{Message: "report does not match schema", Cause: err}
	}
	return data, nil
}

// Write sends data to path, or to stdout when path is empty or "-".
// The file is created only here, written once, and always closed.
func Write(path string, data []byte, stdout io.Writer) (err error) {
	if IsStdout(path) {
		if _, err := stdout.Write(data); err != nil {
			return &WriteError{Destination: "stdout", Cause: err}
		}
		return nil
	}

	f, err := os.Create(path)
	if err != nil {
		return &WriteError{Destination: path, Cause: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, &WriteError{Destination: path, Cause: cerr})
		}
	}()

	if _, err := f.Write(data); err != nil {
		return &WriteError{Destination: path, Cause: err}
	}
	return nil
}

// IsStdout reports whether path selects standard output.
func IsStdout(path string) bool {
	return path == "" || path == Stdout
}
