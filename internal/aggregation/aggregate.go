// Package aggregation groups wage records by first name and by department/title.
package aggregation

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonathan/wage-report/internal/logger"
	"github.com/jonathan/wage-report/internal/titles"
	"github.com/jonathan/wage-report/internal/types"
)

// Aggregate normalizes every record's title and folds its rate into the bucket
// for (first name, department, normalized title). Names and buckets keep the
// order in which they first appear. A rate that does not parse aborts the run.
func Aggregate(ctx context.Context, records []types.WageRecord, mode titles.Mode) (*types.Aggregates, error) {
	log := logger.FromContext(ctx)
	agg := types.NewAggregates()

	for _, record := range records {
		rate, err := ParseRate(record)
		if err != nil {
			return nil, err
		}

		normalized := Normalize(record, mode)
		if normalized.JobTitle != record.JobTitle {
			log.Debug("title normalized", "line", record.Line, "from", record.JobTitle, "to", normalized.JobTitle)
		}

		bucket := agg.Name(normalized.FirstName).Bucket(types.GroupKey{
			Department: normalized.Department,
			JobTitle:   normalized.JobTitle,
		})
		bucket.Sum = bucket.Sum.Add(rate)
		bucket.Count++
	}

	log.Debug("aggregation complete", "records", len(records), "names", agg.Len(), "mode", mode)
	return agg, nil
}

// Normalize returns the record with its job title in canonical form.
func Normalize(record types.WageRecord, mode titles.Mode) types.WageRecord {
	return record.WithJobTitle(titles.Normalize(record.JobTitle, mode))
}

// ParseRate parses the record's hourly rate, ignoring surrounding spaces.
func ParseRate(record types.WageRecord) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(record.HourlyRate))
	if err != nil {
		return decimal.Zero, &RateError{Line: record.Line, Value: record.HourlyRate, Cause: err}
	}
	return rate, nil
}
