package dms

import (
	"encoding/json"
	"fmt"
)

// AggregateKind names an aggregation function.
type AggregateKind string

// Aggregation functions supported by the platform.
const (
	AggCount     AggregateKind = "count"
	AggSum       AggregateKind = "sum"
	AggAvg       AggregateKind = "avg"
	AggMin       AggregateKind = "min"
	AggMax       AggregateKind = "max"
	AggHistogram AggregateKind = "histogram"
)

// Aggregation is one aggregate computed over a property.
type Aggregation struct {
	Kind     AggregateKind
	Property string
	Interval float64 // Histogram only
}

// Count counts instances with property set.
func Count(property string) Aggregation { return Aggregation{Kind: AggCount, Property: property} }

// Sum sums a numeric property.
func Sum(property string) Aggregation { return Aggregation{Kind: AggSum, Property: property} }

// Avg averages a numeric property.
func Avg(property string) Aggregation { return Aggregation{Kind: AggAvg, Property: property} }

// Min returns the minimum of a numeric property.
func Min(property string) Aggregation { return Aggregation{Kind: AggMin, Property: property} }

// Max returns the maximum of a numeric property.
func Max(property string) Aggregation { return Aggregation{Kind: AggMax, Property: property} }

// Histogram buckets a numeric property by interval.
func Histogram(property string, interval float64) Aggregation {
	return Aggregation{Kind: AggHistogram, Property: property, Interval: interval}
}

// MarshalJSON implements json.Marshaler.
func (a Aggregation) MarshalJSON() ([]byte, error) {
	body := map[string]any{"property": a.Property}
	if a.Kind == AggHistogram {
		if a.Interval <= 0 {
			return nil, fmt.Errorf("dms: histogram interval must be positive, got %v", a.Interval)
		}
		body["interval"] = a.Interval
	}
	return json.Marshal(map[AggregateKind]any{a.Kind: body})
}

func (a Aggregation) String() string {
	if a.Kind == AggHistogram {
		return fmt.Sprintf("histogram(%s, %v)", a.Property, a.Interval)
	}
	return fmt.Sprintf("%s(%s)", a.Kind, a.Property)
}

// AggregateRequest is the body of the aggregate endpoint.
type AggregateRequest struct {
	View         ViewID        `json:"view"`
	InstanceType InstanceType  `json:"instanceType,omitempty"`
	Query        string        `json:"query,omitempty"`
	Properties   []string      `json:"properties,omitempty"`
	Filter       Filter        `json:"filter,omitempty"`
	GroupBy      []string      `json:"groupBy,omitempty"`
	Aggregates   []Aggregation `json:"aggregates"`
	Limit        int           `json:"limit,omitempty"`
}

// AggregateItem holds the aggregates of one group. Group is empty when the
// request had no groupBy.
type AggregateItem struct {
	InstanceType InstanceType      `json:"instanceType"`
	Group        map[string]any    `json:"group,omitempty"`
	Aggregates   []AggregatedValue `json:"aggregates"`
}

// Value returns the aggregated value of the given kind and property.
func (i *AggregateItem) Value(kind AggregateKind, property string) (AggregatedValue, bool) {
	for _, v := range i.Aggregates {
		if v.Aggregate == kind && v.Property == property {
			return v, true
		}
	}
	return AggregatedValue{}, false
}

// AggregatedValue is a computed aggregate. Value is nil for histograms and
// for aggregates over no values.
type AggregatedValue struct {
	Aggregate AggregateKind `json:"aggregate"`
	Property  string        `json:"property"`
	Value     *float64      `json:"value,omitempty"`
	Interval  float64       `json:"interval,omitempty"`
	Buckets   []Bucket      `json:"buckets,omitempty"`
}

// Float returns the aggregated value, or 0 when unset.
func (v AggregatedValue) Float() float64 {
	if v.Value == nil {
		return 0
	}
	return *v.Value
}

// Bucket is one histogram bucket.
type Bucket struct {
	Start float64 `json:"start"`
	Count int64   `json:"count"`
}
