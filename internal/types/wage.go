// Package types provides type definitions for structured data used throughout the wage-report system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "github.com/shopspring/decimal"

// WageRecord represents one data row of the payroll input
type WageRecord struct {
	Line       int    `json:"line"`
	Department string `json:"department"`
	LastName   string `json:"last_name"`
	FirstName  string `json:"first_name"`
	JobTitle   string `json:"job_title"`
	// HourlyRate is the raw field text; it is parsed during aggregation.
	HourlyRate string `json:"hourly_rate"`
}

// WithJobTitle returns a copy of the record carrying the given title.
// Used to derive the normalized form without touching the input.
func (r WageRecord) WithJobTitle(title string) WageRecord {
	r.JobTitle = title
	return r
}

// GroupKey identifies a bucket within one first name
type GroupKey struct {
	Department string
	JobTitle   string
}

// Bucket accumulates the rates of every record sharing a GroupKey
type Bucket struct {
	Key   GroupKey
	Sum   decimal.Decimal
	Count int
}

// Average returns Sum/Count, or zero for an empty bucket.
func (b *Bucket) Average() decimal.Decimal {
	if b.Count == 0 {
		return decimal.Zero
	}
	return b.Sum.Div(decimal.NewFromInt(int64(b.Count)))
}

// NameAggregate holds the buckets of one first name in first-seen order
type NameAggregate struct {
	FirstName string
	Buckets   []*Bucket

	index map[GroupKey]int
}

// Bucket returns the bucket for key, creating it if needed.
func (n *NameAggregate) Bucket(key GroupKey) *Bucket {
	if n.index == nil {
		n.index = make(map[GroupKey]int)
	}
	if i, ok := n.index[key]; ok {
		return n.Buckets[i]
	}
	b := &Bucket{Key: key, Sum: decimal.Zero}
	n.Buckets = append(n.Buckets, b)
	n.index[key] = len(n.Buckets) - 1
	return b
}

// Count returns the total number of records folded into this name.
func (n *NameAggregate) Count() int {
	total := 0
	for _, b := range n.Buckets {
		total += b.Count
	}
	return total
}

// Aggregates holds every NameAggregate in first-seen order of first name
type Aggregates struct {
	Names []*NameAggregate

	index map[string]int
}

// NewAggregates returns an empty Aggregates
func NewAggregates() *Aggregates {
	return &Aggregates{index: make(map[string]int)}
}

// Name returns the aggregate for firstName, creating it if needed.
func (a *Aggregates) Name(firstName string) *NameAggregate {
	if a.index == nil {
		a.index = make(map[string]int)
	}
	if i, ok := a.index[firstName]; ok {
		return a.Names[i]
	}
	n := &NameAggregate{FirstName: firstName}
	a.Names = append(a.Names, n)
	a.index[firstName] = len(a.Names) - 1
	return n
}

// Lookup returns the aggregate for firstName without creating one.
func (a *Aggregates) Lookup(firstName string) (*NameAggregate, bool) {
	i, ok := a.index[firstName]
	if !ok {
		return nil, false
	}
	return a.Names[i], true
}

// Len returns the number of distinct first names.
func (a *Aggregates) Len() int {
	return len(a.Names)
}
