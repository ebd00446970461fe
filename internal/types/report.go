//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ResultFields are the emitted fields of a ResultRecord, in output order
type ResultFields struct {
	Department        string `json:"Department"`
	JobTitle          string `json:"JobTitle"`
	AverageHourlyRate string `json:"Average Hourly Rate"`
}

// ResultRecord is the best department/title pairing for one first name
type ResultRecord struct {
	FirstName string
	ResultFields
}

// WageReport is the ordered set of results, one per first name.
// It marshals to a single JSON object keyed by first name.
type WageReport struct {
	Results []ResultRecord
}

// Names returns the first names in report order.
func (r *WageReport) Names() []string {
	names := make([]string, 0, len(r.Results))
	for _, res := range r.Results {
		names = append(names, res.FirstName)
	}
	return names
}

// Get returns the result for firstName.
func (r *WageReport) Get(firstName string) (ResultRecord, bool) {
	for _, res := range r.Results {
		if res.FirstName == firstName {
			return res, true
		}
	}
	return ResultRecord{}, false
}

// MarshalJSON writes the results as one object, preserving report order.
func (r WageReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, res := range r.Results {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(res.FirstName); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := enc.Encode(res.ResultFields); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by first name, keeping document order.
func (r *WageReport) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("wage report must be a JSON object, got %v", tok)
	}

	r.Results = nil
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key %v", tok)
		}
		var fields ResultFields
		if err := dec.Decode(&fields); err != nil {
			return fmt.Errorf("failed to decode result for %q: %w", name, err)
		}
		r.Results = append(r.Results, ResultRecord{FirstName: name, ResultFields: fields})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}
