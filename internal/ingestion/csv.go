// Package ingestion reads payroll CSV files into wage records.
package ingestion

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/jonathan/wage-report/internal/types"
)

// ExpectedHeader is the only accepted first row. The last field carries a trailing space.
var ExpectedHeader = []string{"Department", "Last Name", "First Name", "Job Title", "Hourly Rate "}

// Column positions within a data row
const (
	colDepartment = iota
	colLastName
	colFirstName
	colJobTitle
	colHourlyRate

	minFields
)

// IngestFromFile reads the whole CSV file at path and returns its records with metadata
func IngestFromFile(path string) ([]types.WageRecord, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil, &LoadError{Message: fmt.Sprintf("file not found: %s", path), Cause: err}
		}
		return nil, nil, &LoadError{Message: fmt.Sprintf("failed to read file %s", path), Cause: err}
	}

	records, err := ParseRecords(bytes.NewReader(content))
	if err != nil {
		return nil, nil, err
	}

	return records, NewMetadata(path, content, len(records)), nil
}

// ParseRecords validates the header row and converts every following row into a WageRecord.
// Any malformed row aborts the parse; there is no row skipping.
func ParseRecords(r io.Reader) ([]types.WageRecord, error) {
	reader := csv.NewReader(r)
	reader.Comma = ','
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &HeaderError{}
	}
	if err != nil {
		return nil, &LoadError{Message: "failed to parse CSV header", Cause: err}
	}
	if !slices.Equal(header, ExpectedHeader) {
		return nil, &HeaderError{Got: header}
	}

	var records []types.WageRecord
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &LoadError{Message: "failed to parse CSV", Cause: err}
		}

		line, _ := reader.FieldPos(0)
		if len(row) < minFields {
			return nil, &RowError{
				Line:    line,
				Message: fmt.Sprintf("expected at least %d fields, got %d", minFields, len(row)),
			}
		}

		records = append(records, types.WageRecord{
			Line:       line,
			Department: row[colDepartment],
			LastName:   row[colLastName],
			FirstName:  row[colFirstName],
			JobTitle:   row[colJobTitle],
			HourlyRate: row[colHourlyRate],
		})
	}

	return records, nil
}
