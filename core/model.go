package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/powerops/dmgen/dms"
)

// DataRecord holds the bookkeeping fields of an instance.
type DataRecord struct {
	Version         int64
	CreatedTime     time.Time
	LastUpdatedTime time.Time
	DeletedTime     *time.Time
}

func record(version, created, updated int64, deleted *int64) DataRecord {
	r := DataRecord{
		Version:         version,
		CreatedTime:     dms.Millis(created),
		LastUpdatedTime: dms.Millis(updated),
	}
	if deleted != nil {
		t := dms.Millis(*deleted)
		r.DeletedTime = &t
	}
	return r
}

// Model is the base of generated read types.
type Model struct {
	Space      string
	ExternalID string
	Record     DataRecord
	NodeType   *dms.NodeID
}

// ModelOf returns the base fields of a node.
func ModelOf(n *dms.Node) Model {
	return Model{
		Space:      n.Space,
		ExternalID: n.ExternalID,
		Record:     record(n.Version, n.CreatedTime, n.LastUpdatedTime, n.DeletedTime),
		NodeType:   n.Type,
	}
}

// ID returns the node's identifier.
func (m *Model) ID() dms.NodeID {
	return dms.NodeID{Space: m.Space, ExternalID: m.ExternalID}
}

// WriteBase returns the write base of the node, carrying its version so
// a write fails on concurrent modification.
func (m *Model) WriteBase() WriteModel {
	v := m.Record.Version
	return WriteModel{Space: m.Space, ExternalID: m.ExternalID, ExistingVersion: &v, NodeType: m.NodeType}
}

// WriteModel is the base of generated write types.
type WriteModel struct {
	Space           string
	ExternalID      string
	ExistingVersion *int64
	NodeType        *dms.NodeID
}

// EnsureID assigns an external ID from ExternalIDFactory when none is set.
func (w *WriteModel) EnsureID(typeName string) {
	if w.ExternalID == "" {
		w.ExternalID = ExternalIDFactory(typeName)
	}
}

// NodeApply returns the node write of the properties given through view.
func (w *WriteModel) NodeApply(view dms.ViewID, props map[string]any, opts WriteOptions) dms.NodeApply {
	n := dms.NodeApply{
		Space:      w.Space,
		ExternalID: w.ExternalID,
		Type:       w.NodeType,
		Sources:    []dms.SourceData{{Source: view, Properties: props}},
	}
	if !opts.AllowVersionIncrease {
		n.ExistingVersion = w.ExistingVersion
	}
	return n
}

// Relation is an edge read through an edge API.
type Relation struct {
	Space      string
	ExternalID string
	Record     DataRecord
	Type       dms.NodeID
	StartNode  dms.NodeID
	EndNode    dms.NodeID
}

// RelationOf returns the relation of an edge.
func RelationOf(e *dms.Edge) *Relation {
	return &Relation{
		Space:      e.Space,
		ExternalID: e.ExternalID,
		Record:     record(e.Version, e.CreatedTime, e.LastUpdatedTime, e.DeletedTime),
		Type:       e.Type,
		StartNode:  e.StartNode,
		EndNode:    e.EndNode,
	}
}

// ID returns the edge's identifier.
func (r *Relation) ID() dms.EdgeID {
	return dms.EdgeID{Space: r.Space, ExternalID: r.ExternalID}
}

// AsWrite returns the write form of the relation.
func (r *Relation) AsWrite() *RelationWrite {
	v := r.Record.Version
	return &RelationWrite{
		Space:           r.Space,
		ExternalID:      r.ExternalID,
		ExistingVersion: &v,
		Type:            r.Type,
		StartNode:       r.StartNode,
		EndNode:         r.EndNode,
	}
}

// RelationWrite creates or updates an edge without properties.
type RelationWrite struct {
	Space           string
	ExternalID      string
	ExistingVersion *int64
	Type            dms.NodeID
	StartNode       dms.NodeID
	EndNode         dms.NodeID
}

// EdgeApply returns the edge write.
func (r *RelationWrite) EdgeApply(opts WriteOptions) dms.EdgeApply {
	e := dms.EdgeApply{
		Space:      r.Space,
		ExternalID: r.ExternalID,
		Type:       r.Type,
		StartNode:  r.StartNode,
		EndNode:    r.EndNode,
	}
	if !opts.AllowVersionIncrease {
		e.ExistingVersion = r.ExistingVersion
	}
	return e
}

// GraphQLModel is the base of generated GraphQL types.
type GraphQLModel struct {
	Space           string     `json:"space"`
	ExternalID      string     `json:"externalId"`
	Typename        string     `json:"__typename,omitempty"`
	Version         *int64     `json:"version,omitempty"`
	CreatedTime     *Timestamp `json:"createdTime,omitempty"`
	LastUpdatedTime *Timestamp `json:"lastUpdatedTime,omitempty"`
}

// ID returns the node's identifier.
func (g *GraphQLModel) ID() dms.NodeID {
	return dms.NodeID{Space: g.Space, ExternalID: g.ExternalID}
}

// Model returns the read base. Fields missing from the response are zero.
func (g *GraphQLModel) Model() Model {
	m := Model{Space: g.Space, ExternalID: g.ExternalID}
	if g.Version != nil {
		m.Record.Version = *g.Version
	}
	if g.CreatedTime != nil {
		m.Record.CreatedTime = g.CreatedTime.Time
	}
	if g.LastUpdatedTime != nil {
		m.Record.LastUpdatedTime = g.LastUpdatedTime.Time
	}
	return m
}

// WriteModel returns the write base.
func (g *GraphQLModel) WriteModel() WriteModel {
	return WriteModel{Space: g.Space, ExternalID: g.ExternalID, ExistingVersion: g.Version}
}

// TimestampLayout is the wire layout of timestamp properties.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp formats a timestamp property value.
func FormatTimestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// Timestamp decodes the timestamp forms the platform returns: RFC 3339
// with or without fractional seconds, ISO 8601 without zone (read as UTC)
// and epoch milliseconds.
type Timestamp struct {
	time.Time
}

var zonelessLayouts = []string{"2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05", "2006-01-02"}

// ParseTimestamp parses a timestamp in any of the forms Timestamp accepts.
func ParseTimestamp(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return dms.Millis(ms), nil
	}
	return time.Time{}, fmt.Errorf("core: unrecognized timestamp %q", s)
}

// MarshalJSON encodes the timestamp in TimestampLayout.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(FormatTimestamp(t.Time))
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Ptr returns the time of t, or nil when t is nil.
func (t *Timestamp) Ptr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// TimestampOf returns t as a Timestamp, or nil when t is nil.
func TimestampOf(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	return &Timestamp{Time: *t}
}
