package dms

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Node is a node instance as returned by the platform.
type Node struct {
	Space           string     `json:"space"`
	ExternalID      string     `json:"externalId"`
	Version         int64      `json:"version"`
	CreatedTime     int64      `json:"createdTime"`
	LastUpdatedTime int64      `json:"lastUpdatedTime"`
	DeletedTime     *int64     `json:"deletedTime,omitempty"`
	Type            *NodeID    `json:"type,omitempty"`
	Properties      Properties `json:"properties,omitempty"`
}

// ID returns the node's identifier.
func (n *Node) ID() NodeID {
	return NodeID{Space: n.Space, ExternalID: n.ExternalID}
}

// Edge is an edge instance as returned by the platform.
type Edge struct {
	Space           string     `json:"space"`
	ExternalID      string     `json:"externalId"`
	Version         int64      `json:"version"`
	CreatedTime     int64      `json:"createdTime"`
	LastUpdatedTime int64      `json:"lastUpdatedTime"`
	DeletedTime     *int64     `json:"deletedTime,omitempty"`
	Type            NodeID     `json:"type"`
	StartNode       NodeID     `json:"startNode"`
	EndNode         NodeID     `json:"endNode"`
	Properties      Properties `json:"properties,omitempty"`
}

// ID returns the edge's identifier.
func (e *Edge) ID() EdgeID {
	return EdgeID{Space: e.Space, ExternalID: e.ExternalID}
}

// Properties holds instance properties keyed by space, then
// "viewExternalId/version", then property identifier.
type Properties map[string]map[string]map[string]json.RawMessage

// Source returns the property values written through the given view.
// The result is nil when the instance has no data in the view.
func (p Properties) Source(v ViewID) PropertyValues {
	if p == nil {
		return nil
	}
	return p[v.Space][v.Key()]
}

// PropertyValues maps property identifiers to raw JSON values.
type PropertyValues map[string]json.RawMessage

// Has reports whether the property is present, even if null.
func (p PropertyValues) Has(name string) bool {
	_, ok := p[name]
	return ok
}

// IsNull reports whether the property is absent or null.
func (p PropertyValues) IsNull(name string) bool {
	raw, ok := p[name]
	return !ok || isNull(raw)
}

// Decode unmarshals the named property into dst. Absent and null values
// leave dst untouched.
func (p PropertyValues) Decode(name string, dst any) error {
	raw, ok := p[name]
	if !ok || isNull(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("dms: decode property %q: %w", name, err)
	}
	return nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// SourceData is a set of property values written through one view.
type SourceData struct {
	Source     ViewID         `json:"source"`
	Properties map[string]any `json:"properties"`
}

// NodeApply creates or updates a node.
type NodeApply struct {
	Space           string       `json:"space"`
	ExternalID      string       `json:"externalId"`
	ExistingVersion *int64       `json:"existingVersion,omitempty"`
	Type            *NodeID      `json:"type,omitempty"`
	Sources         []SourceData `json:"sources,omitempty"`
}

// ID returns the identifier of the node written.
func (n *NodeApply) ID() NodeID {
	return NodeID{Space: n.Space, ExternalID: n.ExternalID}
}

// MarshalJSON adds the instance type discriminator.
func (n NodeApply) MarshalJSON() ([]byte, error) {
	type node NodeApply
	return json.Marshal(struct {
		InstanceType InstanceType `json:"instanceType"`
		node
	}{InstanceType: NodeType, node: node(n)})
}

// EdgeApply creates or updates an edge.
type EdgeApply struct {
	Space           string       `json:"space"`
	ExternalID      string       `json:"externalId"`
	ExistingVersion *int64       `json:"existingVersion,omitempty"`
	Type            NodeID       `json:"type"`
	StartNode       NodeID       `json:"startNode"`
	EndNode         NodeID       `json:"endNode"`
	Sources         []SourceData `json:"sources,omitempty"`
}

// ID returns the identifier of the edge written.
func (e *EdgeApply) ID() EdgeID {
	return EdgeID{Space: e.Space, ExternalID: e.ExternalID}
}

// MarshalJSON adds the instance type discriminator.
func (e EdgeApply) MarshalJSON() ([]byte, error) {
	type edge EdgeApply
	return json.Marshal(struct {
		InstanceType InstanceType `json:"instanceType"`
		edge
	}{InstanceType: EdgeType, edge: edge(e)})
}

// InstanceResult is the platform's acknowledgement of a written instance.
type InstanceResult struct {
	InstanceType    InstanceType `json:"instanceType"`
	Space           string       `json:"space"`
	ExternalID      string       `json:"externalId"`
	Version         int64        `json:"version"`
	WasModified     bool         `json:"wasModified"`
	CreatedTime     int64        `json:"createdTime"`
	LastUpdatedTime int64        `json:"lastUpdatedTime"`
}

// InstanceList is a decoded list of mixed nodes and edges, in response order
// per instance type.
type InstanceList struct {
	Nodes []*Node
	Edges []*Edge
}

// UnmarshalJSON decodes a JSON array of instances by their instanceType.
func (l *InstanceList) UnmarshalJSON(data []byte) error {
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	for _, item := range items {
		var head struct {
			InstanceType InstanceType `json:"instanceType"`
		}
		if err := json.Unmarshal(item, &head); err != nil {
			return err
		}
		switch head.InstanceType {
		case EdgeType:
			e := &Edge{}
			if err := json.Unmarshal(item, e); err != nil {
				return err
			}
			l.Edges = append(l.Edges, e)
		case NodeType, "":
			n := &Node{}
			if err := json.Unmarshal(item, n); err != nil {
				return err
			}
			l.Nodes = append(l.Nodes, n)
		default:
			return fmt.Errorf("dms: unknown instance type %q", head.InstanceType)
		}
	}
	return nil
}

// Len returns the number of instances in the list.
func (l *InstanceList) Len() int {
	return len(l.Nodes) + len(l.Edges)
}

// Date is a calendar date without time or zone, encoded as YYYY-MM-DD.
type Date struct {
	time.Time
}

// DateLayout is the wire layout of Date.
const DateLayout = "2006-01-02"

// NewDate returns the date of the given year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// MarshalJSON encodes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

// UnmarshalJSON decodes a YYYY-MM-DD string.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("dms: parse date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// String returns the date in YYYY-MM-DD form.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Millis converts epoch milliseconds to a UTC time.
func Millis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
