//nolint:revive // types is a standard Go package name pattern
package types

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWageRecord_WithJobTitle(t *testing.T) {
	original := WageRecord{Line: 2, FirstName: "Ana", JobTitle: "Analyst II", HourlyRate: "20.00"}

	normalized := original.WithJobTitle("Analyst")

	assert.Equal(t, "Analyst", normalized.JobTitle)
	assert.Equal(t, "Analyst II", original.JobTitle)
	assert.Equal(t, original.HourlyRate, normalized.HourlyRate)
}

func TestAggregates_PreservesFirstSeenOrder(t *testing.T) {
	agg := NewAggregates()
	agg.Name("Zoe")
	agg.Name("Ana")
	agg.Name("Zoe")
	agg.Name("Bo")

	require.Equal(t, 3, agg.Len())
	assert.Equal(t, "Zoe", agg.Names[0].FirstName)
	assert.Equal(t, "Ana", agg.Names[1].FirstName)
	assert.Equal(t, "Bo", agg.Names[2].FirstName)

	_, ok := agg.Lookup("Missing")
	assert.False(t, ok)
}

func TestNameAggregate_BucketReuse(t *testing.T) {
	n := &NameAggregate{FirstName: "Ana"}
	key := GroupKey{Department: "DeptA", JobTitle: "Analyst"}

	b := n.Bucket(key)
	b.Sum = b.Sum.Add(decimal.RequireFromString("20"))
	b.Count++

	again := n.Bucket(key)
	again.Sum = again.Sum.Add(decimal.RequireFromString("30"))
	again.Count++

	require.Len(t, n.Buckets, 1)
	assert.Equal(t, 2, n.Count())
	assert.True(t, n.Buckets[0].Average().Equal(decimal.RequireFromString("25")))
}

func TestBucket_AverageEmpty(t *testing.T) {
	b := &Bucket{}
	assert.True(t, b.Average().IsZero())
}

func TestWageReport_MarshalOrder(t *testing.T) {
	report := WageReport{Results: []ResultRecord{
		{FirstName: "Zoe", ResultFields: ResultFields{Department: "Parks", JobTitle: "Gardener", AverageHourlyRate: "30.5"}},
		{FirstName: "Ana", ResultFields: ResultFields{Department: "DeptA", JobTitle: "R&D <Lead>", AverageHourlyRate: "25.0"}},
	}}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	s := string(data)
	assert.Less(t, strings.Index(s, `"Zoe"`), strings.Index(s, `"Ana"`))
	assert.Less(t, strings.Index(s, `"Department"`), strings.Index(s, `"JobTitle"`))
	assert.Less(t, strings.Index(s, `"JobTitle"`), strings.Index(s, `"Average Hourly Rate"`))
}

func TestWageReport_UnmarshalKeepsOrder(t *testing.T) {
	input := `{
  "Zoe": {"Department": "Parks", "JobTitle": "Gardener", "Average Hourly Rate": "30.5"},
  "Ana": {"Department": "DeptA", "JobTitle": "Analyst", "Average Hourly Rate": "25.0"}
}`

	var report WageReport
	require.NoError(t, json.Unmarshal([]byte(input), &report))

	assert.Equal(t, []string{"Zoe", "Ana"}, report.Names())
	ana, ok := report.Get("Ana")
	require.True(t, ok)
	assert.Equal(t, "Analyst", ana.JobTitle)
	assert.Equal(t, "25.0", ana.AverageHourlyRate)
}

func TestWageReport_UnmarshalRejectsArray(t *testing.T) {
	var report WageReport
	err := json.Unmarshal([]byte(`[]`), &report)
	assert.Error(t, err)
}

func TestWageReport_EmptyObject(t *testing.T) {
	data, err := json.Marshal(WageReport{})
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}
