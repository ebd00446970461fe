package selection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/wage-report/internal/types"
)

type row struct {
	name, dept, title, rate string
}

func buildAggregates(t *testing.T, rows []row) *types.Aggregates {
	t.Helper()
	agg := types.NewAggregates()
	for _, r := range rows {
		b := agg.Name(r.name).Bucket(types.GroupKey{Department: r.dept, JobTitle: r.title})
		b.Sum = b.Sum.Add(decimal.RequireFromString(r.rate))
		b.Count++
	}
	return agg
}

func TestSelectBest_PicksHighestAverage(t *testing.T) {
	agg := buildAggregates(t, []row{
		{"Ana", "DeptA", "Analyst", "20.00"},
		{"Ana", "DeptA", "Analyst", "30.00"},
		{"Ana", "DeptB", "Clerk", "24.00"},
		{"Ana", "DeptC", "Manager", "40.00"},
		{"Ana", "DeptC", "Manager", "10.00"},
	})

	report := SelectBest(agg)
	require.Len(t, report.Results, 1)

	ana := report.Results[0]
	assert.Equal(t, "Ana", ana.FirstName)
	assert.Equal(t, "DeptA", ana.Department)
	assert.Equal(t, "Analyst", ana.JobTitle)
	assert.Equal(t, "25.0", ana.AverageHourlyRate)
}

func TestSelectBest_TieKeepsFirstGroup(t *testing.T) {
	agg := buildAggregates(t, []row{
		{"Bo", "Parks", "Gardener", "30.00"},
		{"Bo", "Fleet", "Mechanic", "30.00"},
		{"Bo", "Fleet", "Mechanic", "30.00"},
	})

	bo := SelectBest(agg).Results[0]
	assert.Equal(t, "Parks", bo.Department)
	assert.Equal(t, "Gardener", bo.JobTitle)
	assert.Equal(t, "30.0", bo.AverageHourlyRate)
}

func TestSelectBest_ZeroFloor(t *testing.T) {
	agg := buildAggregates(t, []row{
		{"Cy", "DeptA", "Volunteer", "0.00"},
		{"Cy", "DeptB", "Volunteer", "0.00"},
		{"Di", "DeptA", "Refund", "-5.00"},
	})

	report := SelectBest(agg)
	require.Len(t, report.Results, 2)

	for _, res := range report.Results {
		assert.Empty(t, res.Department, res.FirstName)
		assert.Empty(t, res.JobTitle, res.FirstName)
		assert.Equal(t, "0", res.AverageHourlyRate, res.FirstName)
	}
}

func TestSelectBest_OneResultPerNameInOrder(t *testing.T) {
	agg := buildAggregates(t, []row{
		{"Zoe", "DeptA", "Analyst", "20.00"},
		{"Ana", "DeptA", "Analyst", "20.00"},
		{"Zoe", "DeptB", "Analyst", "21.00"},
		{"Mo", "DeptA", "Analyst", "22.00"},
	})

	report := SelectBest(agg)
	assert.Equal(t, []string{"Zoe", "Ana", "Mo"}, report.Names())

	zoe, ok := report.Get("Zoe")
	require.True(t, ok)
	assert.Equal(t, "DeptB", zoe.Department)
	assert.Equal(t, "21.0", zoe.AverageHourlyRate)
}

func TestSelectBest_Empty(t *testing.T) {
	report := SelectBest(types.NewAggregates())
	assert.Empty(t, report.Results)
}

func TestFormatRate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"25", "25.0"},
		{"25.00", "25.0"},
		{"22.125", "22.125"},
		{"31.50", "31.5"},
		{"0.1", "0.1"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRate(decimal.RequireFromString(tt.input)))
		})
	}
}

func TestFormatRate_RepeatingQuotient(t *testing.T) {
	avg := decimal.RequireFromString("1").Div(decimal.NewFromInt(3))
	assert.Equal(t, "0.3333333333333333", FormatRate(avg))

	avg = decimal.RequireFromString("62").Div(decimal.NewFromInt(3))
	assert.Equal(t, "20.6666666666666667", FormatRate(avg))
}
