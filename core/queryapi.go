package core

import (
	"context"
	"fmt"

	"github.com/powerops/dmgen"
	"github.com/powerops/dmgen/dms"
)

// NodeStep returns a root step selecting nodes with data in view. The
// default limit is dms.DefaultLimitRead.
func NodeStep(name string, view dms.ViewID, decode func(*dms.Node) (any, error), opts ...Option) *QueryStep {
	o := newOptions(opts)
	return &QueryStep{
		Name: name,
		Expression: &dms.NodeExpression{
			Filter: o.nodeFilter(view),
			Sort:   o.sort,
		},
		Select:           &dms.Select{Sources: []dms.SourceSelector{dms.AllProperties(view)}},
		MaxRetrieveLimit: o.limitOr(dms.DefaultLimitRead),
		View:             view,
		Decode:           decode,
	}
}

// Traversal describes a hop from one node step to the nodes of view.
type Traversal struct {
	// Name is the link name on the parent objects.
	Name   string
	View   dms.ViewID
	Decode func(*dms.Node) (any, error)
	// Kind selects how the hop is made. For ConnEdge, EdgeType and
	// Direction describe the edges; for direct relations, ParentView and
	// Property name the relation property.
	Kind       ConnectionKind
	EdgeType   dms.NodeID
	Direction  dms.Direction
	ParentView dms.ViewID
	Property   string
}

// Traverse appends the steps of t from the node step named from and
// returns the name of the new node step. Traversed steps are unlimited
// unless Limit is given.
func (b *QueryBuilder) Traverse(from string, t Traversal, opts ...Option) (string, error) {
	parent := b.Step(from)
	if parent == nil {
		return "", fmt.Errorf("core: traversal %q from unknown step %q", t.Name, from)
	}
	o := newOptions(opts)
	limit := o.limitOr(-1)
	nodeFilter := dms.And(dms.HasData(t.View), o.filter)
	conn := &Connection{From: from, Name: t.Name, Kind: t.Kind, Property: t.Property}
	var expr dms.ResultSetExpression
	switch t.Kind {
	case ConnEdge:
		dir := t.Direction
		if dir == "" {
			dir = dms.Outwards
		}
		edgeName := b.NextName()
		if err := b.Append(&QueryStep{
			Name: edgeName,
			Expression: &dms.EdgeExpression{
				From:        from,
				Filter:      dms.And(dms.Equals(dms.EdgeProperty("type"), t.EdgeType), o.edgeFilter),
				NodeFilter:  nodeFilter,
				MaxDistance: 1,
				Direction:   dir,
			},
			MaxRetrieveLimit: limit,
		}); err != nil {
			return "", err
		}
		conn.Via, conn.Direction = edgeName, dir
		expr = &dms.NodeExpression{From: edgeName, Filter: nodeFilter, Sort: o.sort}
	case ConnDirectOut:
		expr = &dms.NodeExpression{
			From:      from,
			Filter:    nodeFilter,
			Through:   &dms.PropertyRef{Source: t.ParentView, Identifier: t.Property},
			Direction: dms.Outwards,
			Sort:      o.sort,
		}
	case ConnDirectIn:
		expr = &dms.NodeExpression{
			From:      from,
			Filter:    nodeFilter,
			Through:   &dms.PropertyRef{Source: t.View, Identifier: t.Property},
			Direction: dms.Inwards,
			Sort:      o.sort,
		}
	default:
		return "", fmt.Errorf("core: traversal %q has unknown kind %d", t.Name, t.Kind)
	}
	name := b.NextName()
	if err := b.Append(&QueryStep{
		Name:             name,
		Expression:       expr,
		Select:           &dms.Select{Sources: []dms.SourceSelector{dms.AllProperties(t.View)}},
		MaxRetrieveLimit: limit,
		View:             t.View,
		Decode:           t.Decode,
		Connection:       conn,
	}); err != nil {
		return "", err
	}
	return name, nil
}

// QueryAPI runs a query rooted at objects of type T. Generated query types
// embed it and add traversal methods that extend the shared builder.
type QueryAPI[T any] struct {
	Client  *dms.Client
	Builder *QueryBuilder
	// Label is the root type name used in errors.
	Label string
}

// NewQueryAPI returns a query rooted at the nodes of view.
func NewQueryAPI[T any](client *dms.Client, label string, view dms.ViewID, decode Decoder[T], opts ...Option) *QueryAPI[T] {
	b, _ := NewQueryBuilder(NodeStep("0", view, AnyDecoder(decode), opts...))
	return &QueryAPI[T]{Client: client, Builder: b, Label: label}
}

// Query executes the query and returns the root objects with the traversed
// objects linked.
func (q *QueryAPI[T]) Query(ctx context.Context) ([]T, error) {
	q.Builder.Reset()
	if err := q.Builder.Execute(ctx, q.Client); err != nil {
		return nil, dmgen.NewQueryError(q.Label, "query", err)
	}
	roots, err := q.Builder.Unpack()
	if err != nil {
		return nil, dmgen.NewQueryError(q.Label, "query", err)
	}
	out := make([]T, 0, len(roots))
	for _, r := range roots {
		v, ok := r.(T)
		if !ok {
			return nil, dmgen.NewQueryError(q.Label, "query", fmt.Errorf("core: unexpected root object %T", r))
		}
		out = append(out, v)
	}
	return out, nil
}
