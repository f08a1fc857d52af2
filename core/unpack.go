package core

import (
	"fmt"

	"github.com/powerops/dmgen/dms"
)

// unpacked holds the decoded objects of one node step.
type unpacked struct {
	order []dms.NodeID
	byID  map[dms.NodeID]any
	nodes map[dms.NodeID]*dms.Node
}

func (u *unpacked) get(id dms.NodeID) (any, bool) {
	v, ok := u.byID[id]
	return v, ok
}

// Unpack decodes the collected nodes and links every connected step to its
// parent. It returns the root step's objects in retrieval order. Steps
// without a decoder yield dms.NodeID values.
func (b *QueryBuilder) Unpack() ([]any, error) {
	if len(b.steps) == 0 {
		return nil, nil
	}
	decoded := make(map[string]*unpacked)
	for _, s := range b.steps {
		if _, isEdges := s.Expression.(*dms.EdgeExpression); isEdges {
			continue
		}
		u, err := decodeStep(s)
		if err != nil {
			return nil, err
		}
		decoded[s.Name] = u
	}
	for i := len(b.steps) - 1; i >= 0; i-- {
		s := b.steps[i]
		c := s.Connection
		if c == nil || decoded[s.Name] == nil {
			continue
		}
		parent, ok := decoded[c.From]
		if !ok {
			return nil, fmt.Errorf("core: query step %q connects to %q which is not a node step", s.Name, c.From)
		}
		targets, err := b.targets(s, decoded[s.Name], parent)
		if err != nil {
			return nil, err
		}
		for _, id := range parent.order {
			l, ok := parent.byID[id].(Linker)
			if !ok {
				continue
			}
			l.LinkEdge(c.Name, targets[id])
		}
	}
	root := decoded[b.steps[0].Name]
	if root == nil {
		return nil, fmt.Errorf("core: root query step %q is not a node step", b.steps[0].Name)
	}
	out := make([]any, len(root.order))
	for i, id := range root.order {
		out[i] = root.byID[id]
	}
	return out, nil
}

func decodeStep(s *QueryStep) (*unpacked, error) {
	u := &unpacked{
		byID:  make(map[dms.NodeID]any, len(s.nodes)),
		nodes: make(map[dms.NodeID]*dms.Node, len(s.nodes)),
	}
	for _, n := range s.nodes {
		id := dms.NodeID{Space: n.Space, ExternalID: n.ExternalID}
		var v any = id
		if s.Decode != nil && n.Properties.Source(s.View) != nil {
			obj, err := s.Decode(n)
			if err != nil {
				return nil, fmt.Errorf("core: decoding %s in query step %q: %w", id, s.Name, err)
			}
			v = obj
		}
		u.order = append(u.order, id)
		u.byID[id] = v
		u.nodes[id] = n
	}
	return u, nil
}

// targets returns the child objects of every parent ID.
func (b *QueryBuilder) targets(s *QueryStep, child, parent *unpacked) (map[dms.NodeID][]any, error) {
	c := s.Connection
	out := make(map[dms.NodeID][]any)
	switch c.Kind {
	case ConnEdge:
		via := b.Step(c.Via)
		if via == nil {
			return nil, fmt.Errorf("core: query step %q links through unknown edge step %q", s.Name, c.Via)
		}
		for _, e := range via.edges {
			from, to := e.StartNode, e.EndNode
			if c.Direction == dms.Inwards {
				from, to = to, from
			}
			if _, ok := parent.byID[from]; !ok {
				continue
			}
			if v, ok := child.get(to); ok {
				out[from] = append(out[from], v)
			}
		}
	case ConnDirectOut:
		ps := b.Step(c.From)
		for _, id := range parent.order {
			refs, err := DecodeRefs(parent.nodes[id].Properties.Source(ps.View), c.Property)
			if err != nil {
				return nil, err
			}
			for _, ref := range refs {
				if v, ok := child.get(ref); ok {
					out[id] = append(out[id], v)
				}
			}
		}
	case ConnDirectIn:
		for _, id := range child.order {
			refs, err := DecodeRefs(child.nodes[id].Properties.Source(s.View), c.Property)
			if err != nil {
				return nil, err
			}
			for _, ref := range refs {
				if _, ok := parent.byID[ref]; ok {
					out[ref] = append(out[ref], child.byID[id])
				}
			}
		}
	default:
		return nil, fmt.Errorf("core: query step %q has unknown connection kind %d", s.Name, c.Kind)
	}
	return out, nil
}
