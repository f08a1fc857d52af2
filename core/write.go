package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-openapi/inflect"
	"github.com/google/uuid"

	"github.com/powerops/dmgen"
	"github.com/powerops/dmgen/dms"
)

// ExternalIDFactory creates external IDs for write objects that have none.
// It is called with the view's type name, e.g. "ShopCase".
var ExternalIDFactory = DefaultExternalID

// DefaultExternalID returns "<snake_type>:<uuid>".
func DefaultExternalID(typeName string) string {
	return inflect.Underscore(typeName) + ":" + uuid.NewString()
}

// WriteOptions control how write objects become node and edge writes.
type WriteOptions struct {
	// WriteNone writes unset optional properties as explicit nulls, clearing
	// stored values. Otherwise unset properties are left out.
	WriteNone bool
	// AllowVersionIncrease drops existingVersion so the platform accepts
	// the write regardless of the stored version.
	AllowVersionIncrease bool
}

// Writer is implemented by generated write types.
type Writer interface {
	// NodeID returns the identifier of the node, assigning an external ID
	// when none is set.
	NodeID() dms.NodeID
	// WriteTo appends the node, its edges and nested write objects to rw.
	WriteTo(rw *ResourcesWrite, opts WriteOptions) error
}

// ResourcesWrite accumulates node and edge writes. Each instance is added
// once, so nested graphs with cycles terminate.
type ResourcesWrite struct {
	Nodes   []dms.NodeApply
	Edges   []dms.EdgeApply
	visited map[dms.InstanceID]struct{}
}

// NewResourcesWrite returns an empty ResourcesWrite.
func NewResourcesWrite() *ResourcesWrite {
	return &ResourcesWrite{visited: make(map[dms.InstanceID]struct{})}
}

// Visit marks id as written and reports whether it was new.
func (rw *ResourcesWrite) Visit(id dms.InstanceID) bool {
	if rw.visited == nil {
		rw.visited = make(map[dms.InstanceID]struct{})
	}
	if _, ok := rw.visited[id]; ok {
		return false
	}
	rw.visited[id] = struct{}{}
	return true
}

// AddNode appends a node write.
func (rw *ResourcesWrite) AddNode(n dms.NodeApply) {
	rw.Nodes = append(rw.Nodes, n)
}

// AddEdge appends an edge write.
func (rw *ResourcesWrite) AddEdge(e dms.EdgeApply) {
	rw.Edges = append(rw.Edges, e)
}

// Len returns the number of writes.
func (rw *ResourcesWrite) Len() int {
	return len(rw.Nodes) + len(rw.Edges)
}

// Add writes each item into rw.
func (rw *ResourcesWrite) Add(opts WriteOptions, items ...Writer) error {
	for _, item := range items {
		if item == nil {
			continue
		}
		if err := item.WriteTo(rw, opts); err != nil {
			return err
		}
	}
	return nil
}

// ResourcesWriteResult lists the instances the platform acknowledged.
type ResourcesWriteResult = dms.ApplyResult

// NodeRef is the target of a direct relation or edge in a write object:
// either an existing node or a write object written along with the parent.
type NodeRef struct {
	id   dms.NodeID
	node Writer
}

// RefTo references an existing node.
func RefTo(id dms.NodeID) *NodeRef {
	return &NodeRef{id: id}
}

// RefID references an existing node by space and external ID.
func RefID(space, externalID string) *NodeRef {
	return RefTo(dms.NodeID{Space: space, ExternalID: externalID})
}

// RefNode references a write object.
func RefNode(w Writer) *NodeRef {
	return &NodeRef{node: w}
}

// Target returns the identifier of the referenced node.
func (r *NodeRef) Target() dms.NodeID {
	if r.node != nil {
		return r.node.NodeID()
	}
	return r.id
}

// Node returns the referenced write object, or nil for a plain reference.
func (r *NodeRef) Node() Writer {
	return r.node
}

// WriteTo writes the referenced write object, if any.
func (r *NodeRef) WriteTo(rw *ResourcesWrite, opts WriteOptions) error {
	if r == nil || r.node == nil {
		return nil
	}
	return r.node.WriteTo(rw, opts)
}

// String returns the target ID.
func (r *NodeRef) String() string {
	return r.Target().String()
}

// EdgeExternalID returns the external ID of the edge between two nodes.
func EdgeExternalID(start, end dms.NodeID) string {
	return start.ExternalID + ":" + end.ExternalID
}

// WriteEdge writes an edge of edgeType from start to the referenced node,
// then the referenced node itself. Outward edges live in the start node's
// space.
func WriteEdge(rw *ResourcesWrite, edgeType, start dms.NodeID, end *NodeRef, opts WriteOptions) error {
	if end == nil {
		return nil
	}
	target := end.Target()
	if target.ExternalID == "" {
		return dmgen.NewValidationError(edgeType.ExternalID, fmt.Errorf("edge from %s has no end node", start))
	}
	id := dms.EdgeID{Space: start.Space, ExternalID: EdgeExternalID(start, target)}
	if rw.Visit(id.Instance()) {
		rw.AddEdge(dms.EdgeApply{
			Space:      id.Space,
			ExternalID: id.ExternalID,
			Type:       edgeType,
			StartNode:  start,
			EndNode:    target,
		})
	}
	return end.WriteTo(rw, opts)
}

// WriteInwardEdge writes an edge of edgeType from the referenced node to
// end, then the referenced node. The edge lives in the start node's space.
func WriteInwardEdge(rw *ResourcesWrite, edgeType, end dms.NodeID, start *NodeRef, opts WriteOptions) error {
	if start == nil {
		return nil
	}
	source := start.Target()
	if source.ExternalID == "" {
		return dmgen.NewValidationError(edgeType.ExternalID, fmt.Errorf("edge to %s has no start node", end))
	}
	id := dms.EdgeID{Space: source.Space, ExternalID: EdgeExternalID(source, end)}
	if rw.Visit(id.Instance()) {
		rw.AddEdge(dms.EdgeApply{
			Space:      id.Space,
			ExternalID: id.ExternalID,
			Type:       edgeType,
			StartNode:  source,
			EndNode:    end,
		})
	}
	return start.WriteTo(rw, opts)
}

// Props builds the property map of a node write.
type Props map[string]any

// Set sets a required property.
func (p Props) Set(name string, v any) {
	p[name] = v
}

// SetOpt sets an optional property. Nil pointers are written as null with
// WriteNone and left out otherwise.
func SetOpt[T any](p Props, name string, v *T, opts WriteOptions) {
	switch {
	case v != nil:
		p[name] = *v
	case opts.WriteNone:
		p[name] = nil
	}
}

// SetList sets a list property. A nil slice is written as null with
// WriteNone and left out otherwise; an empty slice clears the list.
func SetList[T any](p Props, name string, v []T, opts WriteOptions) {
	switch {
	case v != nil:
		p[name] = v
	case opts.WriteNone:
		p[name] = nil
	}
}

// SetRef sets a direct relation property from a node reference.
func SetRef(p Props, name string, ref *NodeRef, opts WriteOptions) {
	switch {
	case ref != nil:
		p[name] = ref.Target()
	case opts.WriteNone:
		p[name] = nil
	}
}

// SetTime sets an optional timestamp property.
func SetTime(p Props, name string, v *time.Time, opts WriteOptions) {
	switch {
	case v != nil:
		p[name] = FormatTimestamp(*v)
	case opts.WriteNone:
		p[name] = nil
	}
}

// SetTimes sets a list of timestamps.
func SetTimes(p Props, name string, v []time.Time, opts WriteOptions) {
	if v == nil {
		SetList[string](p, name, nil, opts)
		return
	}
	out := make([]string, len(v))
	for i, t := range v {
		out[i] = FormatTimestamp(t)
	}
	p[name] = out
}

// SetRefs sets a list of direct relations.
func SetRefs(p Props, name string, refs []*NodeRef, opts WriteOptions) {
	if refs == nil {
		SetList[dms.NodeID](p, name, nil, opts)
		return
	}
	out := make([]dms.NodeID, 0, len(refs))
	for _, ref := range refs {
		if ref != nil {
			out = append(out, ref.Target())
		}
	}
	p[name] = out
}

// SetJSON sets a JSON object property. A nil value is handled like an
// unset optional property.
func SetJSON(p Props, name string, v json.RawMessage, opts WriteOptions) {
	switch {
	case v != nil:
		p[name] = v
	case opts.WriteNone:
		p[name] = nil
	}
}

// WriteRefs writes the write objects referenced by refs.
func WriteRefs(rw *ResourcesWrite, refs []*NodeRef, opts WriteOptions) error {
	for _, ref := range refs {
		if err := ref.WriteTo(rw, opts); err != nil {
			return err
		}
	}
	return nil
}
