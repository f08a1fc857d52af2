package dms

import (
	"encoding/json"
	"maps"
	"slices"
)

// Direction of edge traversal or direct relation lookup.
type Direction string

// Traversal directions.
const (
	Outwards Direction = "outwards"
	Inwards  Direction = "inwards"
)

// ResultSetExpression is one named step of a query.
type ResultSetExpression interface {
	json.Marshaler
	// FromStep returns the name of the step this one chains from, or "".
	FromStep() string
	// WithLimit returns a copy of the expression with the page limit set.
	WithLimit(limit int) ResultSetExpression
}

// PropertyRef references a property of a view, used to follow direct
// relations in a node expression.
type PropertyRef struct {
	Source     ViewID `json:"source"`
	Identifier string `json:"identifier"`
}

// NodeExpression selects nodes, optionally reached from a previous step
// through a direct relation.
type NodeExpression struct {
	From      string
	Filter    Filter
	Through   *PropertyRef
	Direction Direction
	ChainTo   Direction
	Sort      []Sort
	Limit     int
}

// FromStep implements ResultSetExpression.
func (e *NodeExpression) FromStep() string { return e.From }

// WithLimit implements ResultSetExpression.
func (e *NodeExpression) WithLimit(limit int) ResultSetExpression {
	c := *e
	c.Limit = limit
	return &c
}

// MarshalJSON implements json.Marshaler.
func (e *NodeExpression) MarshalJSON() ([]byte, error) {
	nodes := map[string]any{}
	if e.From != "" {
		nodes["from"] = e.From
	}
	if e.Filter != nil {
		nodes["filter"] = e.Filter
	}
	if e.Through != nil {
		nodes["through"] = e.Through
	}
	if e.Direction != "" {
		nodes["direction"] = e.Direction
	}
	if e.ChainTo != "" {
		nodes["chainTo"] = e.ChainTo
	}
	body := map[string]any{"nodes": nodes}
	if len(e.Sort) > 0 {
		body["sort"] = e.Sort
	}
	if e.Limit > 0 {
		body["limit"] = e.Limit
	}
	return json.Marshal(body)
}

// EdgeExpression selects edges traversed from the nodes of a previous step.
type EdgeExpression struct {
	From              string
	Filter            Filter
	NodeFilter        Filter
	TerminationFilter Filter
	MaxDistance       int
	Direction         Direction
	LimitEach         int
	ChainTo           Direction
	Limit             int
}

// FromStep implements ResultSetExpression.
func (e *EdgeExpression) FromStep() string { return e.From }

// WithLimit implements ResultSetExpression.
func (e *EdgeExpression) WithLimit(limit int) ResultSetExpression {
	c := *e
	c.Limit = limit
	return &c
}

// MarshalJSON implements json.Marshaler.
func (e *EdgeExpression) MarshalJSON() ([]byte, error) {
	edges := map[string]any{}
	if e.From != "" {
		edges["from"] = e.From
	}
	if e.Filter != nil {
		edges["filter"] = e.Filter
	}
	if e.NodeFilter != nil {
		edges["nodeFilter"] = e.NodeFilter
	}
	if e.TerminationFilter != nil {
		edges["terminationFilter"] = e.TerminationFilter
	}
	if e.MaxDistance > 0 {
		edges["maxDistance"] = e.MaxDistance
	}
	if e.Direction != "" {
		edges["direction"] = e.Direction
	}
	if e.LimitEach > 0 {
		edges["limitEach"] = e.LimitEach
	}
	if e.ChainTo != "" {
		edges["chainTo"] = e.ChainTo
	}
	body := map[string]any{"edges": edges}
	if e.Limit > 0 {
		body["limit"] = e.Limit
	}
	return json.Marshal(body)
}

// SourceSelector selects properties of one view.
type SourceSelector struct {
	Source     ViewID   `json:"source"`
	Properties []string `json:"properties"`
}

// AllProperties selects every property of the view.
func AllProperties(view ViewID) SourceSelector {
	return SourceSelector{Source: view, Properties: []string{"*"}}
}

// Select describes what a query returns for a step. An empty Select
// returns identifiers only.
type Select struct {
	Sources []SourceSelector `json:"sources,omitempty"`
	Sort    []Sort           `json:"sort,omitempty"`
	Limit   int              `json:"limit,omitempty"`
}

// Query is a multi-step graph query.
type Query struct {
	With       map[string]ResultSetExpression `json:"with"`
	Select     map[string]Select              `json:"select"`
	Cursors    map[string]string              `json:"cursors,omitempty"`
	Parameters map[string]any                 `json:"parameters,omitempty"`
}

// Steps returns the step names in sorted order.
func (q *Query) Steps() []string {
	return slices.Sorted(maps.Keys(q.With))
}

// ResultSet holds the instances a query step returned.
type ResultSet = InstanceList

// QueryResult is the response of one query request.
type QueryResult struct {
	Items      map[string]*ResultSet `json:"items"`
	NextCursor map[string]string     `json:"nextCursor"`
}
