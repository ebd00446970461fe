// Package selection picks, for each first name, the department/title group with the highest average rate.
package selection

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jonathan/wage-report/internal/types"
)

// RatePrecision is the number of fractional digits kept in an average
const RatePrecision = 16

// unassignedRate is emitted for a name that never beat the zero floor
const unassignedRate = "0"

// SelectBest returns one ResultRecord per first name, in aggregate order.
//
// The running maximum starts at zero and only a strictly greater average
// replaces it, so the first group in input order wins a tie and a name whose
// best average is zero or negative keeps an empty department and title.
func SelectBest(agg *types.Aggregates) *types.WageReport {
	report := &types.WageReport{Results: make([]types.ResultRecord, 0, agg.Len())}

	for _, name := range agg.Names {
		report.Results = append(report.Results, selectForName(name))
	}

	return report
}

func selectForName(name *types.NameAggregate) types.ResultRecord {
	result := types.ResultRecord{
		FirstName: name.FirstName,
		ResultFields: types.ResultFields{
			AverageHourlyRate: unassignedRate,
		},
	}

	best := decimal.Zero
	for _, bucket := range name.Buckets {
		avg := bucket.Average()
		if !avg.GreaterThan(best) {
			continue
		}
		best = avg
		result.Department = bucket.Key.Department
		result.JobTitle = bucket.Key.JobTitle
		result.AverageHourlyRate = FormatRate(avg)
	}

	return result
}

// FormatRate renders an average rounded to RatePrecision digits, without
// trailing zeros but always with at least one fractional digit: 25 -> "25.0".
func FormatRate(d decimal.Decimal) string {
	s := d.Round(RatePrecision).String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
