package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/powerops/dmgen/dms"
)

// Decoder decodes a node into a generated read type.
type Decoder[R any] func(*dms.Node) (R, error)

// DecodeTime decodes an optional timestamp property.
func DecodeTime(p dms.PropertyValues, name string) (*time.Time, error) {
	var s string
	if err := p.Decode(name, &s); err != nil || s == "" {
		return nil, err
	}
	t, err := ParseTimestamp(s)
	if err != nil {
		return nil, fmt.Errorf("core: property %q: %w", name, err)
	}
	return &t, nil
}

// DecodeOpt decodes an optional property into a new value. Absent and null
// properties return nil.
func DecodeOpt[T any](p dms.PropertyValues, name string) (*T, error) {
	if p.IsNull(name) {
		return nil, nil
	}
	v := new(T)
	if err := p.Decode(name, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeRefs decodes a direct relation property holding one reference or
// a list of references.
func DecodeRefs(p dms.PropertyValues, name string) ([]dms.NodeID, error) {
	if p.IsNull(name) {
		return nil, nil
	}
	raw := p[name]
	var one dms.NodeID
	if err := json.Unmarshal(raw, &one); err == nil {
		return []dms.NodeID{one}, nil
	}
	var many []dms.NodeID
	if err := json.Unmarshal(raw, &many); err != nil {
		return nil, fmt.Errorf("core: property %q is not a direct relation: %w", name, err)
	}
	return many, nil
}

// Reader decodes the properties of one view, keeping the first error.
type Reader struct {
	p   dms.PropertyValues
	err error
}

// NewReader returns a reader of the properties n has in view.
func NewReader(n *dms.Node, view dms.ViewID) *Reader {
	return &Reader{p: n.Properties.Source(view)}
}

// Err returns the first decoding error.
func (r *Reader) Err() error { return r.err }

func (r *Reader) fail(err error) {
	if r.err == nil && err != nil {
		r.err = err
	}
}

// Read decodes a required property. Absent values decode as zero.
func Read[T any](r *Reader, name string) T {
	var v T
	r.fail(r.p.Decode(name, &v))
	return v
}

// ReadOpt decodes an optional property.
func ReadOpt[T any](r *Reader, name string) *T {
	v, err := DecodeOpt[T](r.p, name)
	r.fail(err)
	return v
}

// Time decodes an optional timestamp property.
func (r *Reader) Time(name string) *time.Time {
	v, err := DecodeTime(r.p, name)
	r.fail(err)
	return v
}

// TimeValue decodes a required timestamp property.
func (r *Reader) TimeValue(name string) time.Time {
	if v := r.Time(name); v != nil {
		return *v
	}
	return time.Time{}
}

// Times decodes a list of timestamps.
func (r *Reader) Times(name string) []time.Time {
	raw := Read[[]string](r, name)
	if raw == nil {
		return nil
	}
	out := make([]time.Time, 0, len(raw))
	for _, s := range raw {
		t, err := ParseTimestamp(s)
		if err != nil {
			r.fail(fmt.Errorf("core: property %q: %w", name, err))
			return nil
		}
		out = append(out, t)
	}
	return out
}

// Ref decodes a single direct relation.
func (r *Reader) Ref(name string) *dms.NodeID {
	refs, err := DecodeRefs(r.p, name)
	r.fail(err)
	if len(refs) == 0 {
		return nil
	}
	return &refs[0]
}

// Refs decodes a list of direct relations.
func (r *Reader) Refs(name string) []dms.NodeID {
	refs, err := DecodeRefs(r.p, name)
	r.fail(err)
	return refs
}

// Deref returns the value p points to, or zero.
func Deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// IDs returns the identifiers of items.
func IDs[R interface{ ID() dms.NodeID }](items []R) []dms.NodeID {
	ids := make([]dms.NodeID, len(items))
	for i, item := range items {
		ids[i] = item.ID()
	}
	return ids
}

// ToMap indexes items by identifier.
func ToMap[R interface{ ID() dms.NodeID }](items []R) map[dms.NodeID]R {
	m := make(map[dms.NodeID]R, len(items))
	for _, item := range items {
		m[item.ID()] = item
	}
	return m
}
