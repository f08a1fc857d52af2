package core

import (
	"context"
	"iter"
	"log/slog"

	"github.com/powerops/dmgen"
	"github.com/powerops/dmgen/dms"
)

// Linker is implemented by read types to receive related objects.
// Targets are read objects loaded by a query, or dms.NodeID values when
// only the identifiers of the related nodes were fetched. LinkEdge is
// called once per relation, with nil targets when nothing is related.
type Linker interface {
	LinkEdge(name string, targets []any)
}

// Node is the constraint of read types handled by NodeAPI.
type Node interface {
	ID() dms.NodeID
	Linker
}

// EdgeProperty describes an edge-backed property of a view.
type EdgeProperty struct {
	Name      string
	Type      dms.NodeID
	Direction dms.Direction
}

// NodeAPI implements the operations of one view. Generated per-view APIs
// embed it.
type NodeAPI[R Node, W Writer] struct {
	Client *dms.Client
	View   dms.ViewID
	// Label is the type name used in errors and logs, e.g. "ShopCase".
	Label string
	// DefaultSpace is the space of instances addressed by external ID only.
	DefaultSpace string
	Decode       Decoder[R]
	Edges        []EdgeProperty
}

func (a *NodeAPI[R, W]) logger() *slog.Logger {
	return a.Client.Logger().With("view", a.View.String())
}

// ID returns the identifier of externalID in the default space.
func (a *NodeAPI[R, W]) ID(externalID string) dms.NodeID {
	return dms.NodeID{Space: a.DefaultSpace, ExternalID: externalID}
}

// IDs returns the identifiers of external IDs in the default space.
func (a *NodeAPI[R, W]) IDs(externalIDs ...string) []dms.NodeID {
	ids := make([]dms.NodeID, len(externalIDs))
	for i, x := range externalIDs {
		ids[i] = a.ID(x)
	}
	return ids
}

// Apply writes items, their edges and nested write objects.
func (a *NodeAPI[R, W]) Apply(ctx context.Context, items []W, opts ...Option) (*ResourcesWriteResult, error) {
	o := newOptions(opts)
	rw := NewResourcesWrite()
	var errs []error
	for _, item := range items {
		errs = append(errs, item.WriteTo(rw, o.write))
	}
	if err := dmgen.NewAggregateError(errs...); err != nil {
		return nil, dmgen.NewMutationError(a.Label, "apply", err)
	}
	return a.ApplyResources(ctx, rw)
}

// ApplyResources sends accumulated writes.
func (a *NodeAPI[R, W]) ApplyResources(ctx context.Context, rw *ResourcesWrite) (*ResourcesWriteResult, error) {
	a.logger().DebugContext(ctx, "applying instances", "nodes", len(rw.Nodes), "edges", len(rw.Edges))
	res, err := a.Client.Instances.Apply(ctx, &dms.ApplyRequest{Nodes: rw.Nodes, Edges: rw.Edges})
	if err != nil {
		return nil, dmgen.NewMutationError(a.Label, "apply", err)
	}
	return res, nil
}

// Delete deletes nodes by ID. Edges attached to them are deleted by the
// platform.
func (a *NodeAPI[R, W]) Delete(ctx context.Context, ids ...dms.NodeID) ([]dms.InstanceID, error) {
	iids := make([]dms.InstanceID, len(ids))
	for i, id := range ids {
		iids[i] = id.Instance()
	}
	deleted, err := a.Client.Instances.Delete(ctx, iids...)
	if err != nil {
		return nil, dmgen.NewMutationError(a.Label, "delete", err)
	}
	return deleted, nil
}

// Retrieve returns the nodes with data in the view, in the order of ids.
// Missing nodes are skipped.
func (a *NodeAPI[R, W]) Retrieve(ctx context.Context, ids []dms.NodeID, opts ...Option) ([]R, error) {
	o := newOptions(opts)
	iids := make([]dms.InstanceID, len(ids))
	for i, id := range ids {
		iids[i] = id.Instance()
	}
	list, err := a.Client.Instances.Retrieve(ctx, &dms.RetrieveRequest{IDs: iids, Sources: []dms.ViewID{a.View}})
	if err != nil {
		return nil, dmgen.NewQueryError(a.Label, "retrieve", err)
	}
	items, err := a.decodeAll(list.Nodes)
	if err != nil {
		return nil, dmgen.NewQueryError(a.Label, "retrieve", err)
	}
	items = OrderByKeys(ids, items, func(r R) dms.NodeID { return r.ID() })
	if o.withEdges {
		if err := a.linkEdges(ctx, items, o); err != nil {
			return nil, dmgen.NewQueryError(a.Label, "retrieve", err)
		}
	}
	return items, nil
}

// RetrieveOne returns one node or a *dmgen.NotFoundError.
func (a *NodeAPI[R, W]) RetrieveOne(ctx context.Context, id dms.NodeID, opts ...Option) (R, error) {
	var zero R
	items, err := a.Retrieve(ctx, []dms.NodeID{id}, opts...)
	if err != nil {
		return zero, err
	}
	if len(items) == 0 {
		return zero, dmgen.NewNotFoundError(a.Label, id.Space, id.ExternalID)
	}
	return items[0], nil
}

// Only returns the single node matching opts. It fails with a
// *dmgen.NotFoundError when nothing matches and a *dmgen.NotSingularError
// when several nodes do.
func (a *NodeAPI[R, W]) Only(ctx context.Context, opts ...Option) (R, error) {
	var zero R
	items, err := a.List(ctx, append(opts, Limit(2))...)
	if err != nil {
		return zero, err
	}
	switch len(items) {
	case 0:
		return zero, dmgen.NewNotFoundError(a.Label, "", "")
	case 1:
		return items[0], nil
	default:
		return zero, dmgen.NewNotSingularError(a.Label, len(items))
	}
}

// decodeAll decodes the nodes that have data in the view.
func (a *NodeAPI[R, W]) decodeAll(nodes []*dms.Node) ([]R, error) {
	items := make([]R, 0, len(nodes))
	for _, n := range nodes {
		if n.Properties.Source(a.View) == nil {
			continue
		}
		item, err := a.Decode(n)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// List returns nodes with data in the view. The default limit is
// dms.DefaultLimitRead; Limit(-1) lists everything.
func (a *NodeAPI[R, W]) List(ctx context.Context, opts ...Option) ([]R, error) {
	o := newOptions(opts)
	var items []R
	for page, err := range a.pages(ctx, o) {
		if err != nil {
			return nil, dmgen.NewQueryError(a.Label, "list", err)
		}
		items = append(items, page...)
	}
	if o.withEdges {
		if err := a.linkEdges(ctx, items, o); err != nil {
			return nil, dmgen.NewQueryError(a.Label, "list", err)
		}
	}
	return items, nil
}

// Iterate yields pages of at most chunk nodes. The default limit is
// unlimited; pass Limit to stop early.
func (a *NodeAPI[R, W]) Iterate(ctx context.Context, chunk int, opts ...Option) iter.Seq2[[]R, error] {
	o := newOptions(append([]Option{Limit(-1), ChunkSize(chunk)}, opts...))
	return func(yield func([]R, error) bool) {
		for page, err := range a.pages(ctx, o) {
			if err != nil {
				yield(nil, dmgen.NewQueryError(a.Label, "iterate", err))
				return
			}
			if o.withEdges {
				if err := a.linkEdges(ctx, page, o); err != nil {
					yield(nil, dmgen.NewQueryError(a.Label, "iterate", err))
					return
				}
			}
			if !yield(page, nil) {
				return
			}
		}
	}
}

// pages follows list cursors until the limit is reached or the platform
// has no more results.
func (a *NodeAPI[R, W]) pages(ctx context.Context, o *options) iter.Seq2[[]R, error] {
	return func(yield func([]R, error) bool) {
		limit := o.limitOr(dms.DefaultLimitRead)
		if limit == 0 {
			return
		}
		filter := o.nodeFilter(a.View)
		var (
			cursor    string
			retrieved int
		)
		for {
			size := o.pageSize(limit)
			if limit >= 0 {
				size = min(size, limit-retrieved)
			}
			res, err := a.Client.Instances.List(ctx, &dms.ListRequest{
				InstanceType: dms.NodeType,
				Sources:      []dms.ViewID{a.View},
				Filter:       filter,
				Sort:         o.sort,
				Limit:        size,
				Cursor:       cursor,
			})
			if err != nil {
				yield(nil, err)
				return
			}
			page, err := a.decodeAll(res.Items.Nodes)
			if err != nil {
				yield(nil, err)
				return
			}
			retrieved += len(res.Items.Nodes)
			if len(page) > 0 && !yield(page, nil) {
				return
			}
			cursor = res.NextCursor
			if cursor == "" || (limit >= 0 && retrieved >= limit) {
				return
			}
		}
	}
}

// linkEdges fetches the outgoing edges of every edge property of the view
// and links their end node IDs to items.
func (a *NodeAPI[R, W]) linkEdges(ctx context.Context, items []R, o *options) error {
	if len(items) == 0 || len(a.Edges) == 0 {
		return nil
	}
	ids := make([]any, len(items))
	for i, item := range items {
		ids[i] = item.ID()
	}
	for _, ep := range a.Edges {
		own, other := "startNode", "endNode"
		if ep.Direction == dms.Inwards {
			own, other = other, own
		}
		edges, err := listEdges(ctx, a.Client, dms.And(
			dms.Equals(dms.EdgeProperty("type"), ep.Type),
			&dms.InFilter{Property: dms.EdgeProperty(own), Values: ids},
			o.edgeFilter,
		), -1)
		if err != nil {
			return err
		}
		grouped := GroupByKey(edges, func(e *dms.Edge) dms.NodeID {
			if own == "endNode" {
				return e.EndNode
			}
			return e.StartNode
		})
		for _, item := range items {
			var targets []any
			for _, e := range grouped[item.ID()] {
				if other == "endNode" {
					targets = append(targets, e.EndNode)
				} else {
					targets = append(targets, e.StartNode)
				}
			}
			item.LinkEdge(ep.Name, targets)
		}
	}
	return nil
}

// Search runs a free-text search over the view. Properties restricts the
// searched properties. The default limit is dms.DefaultLimitRead and the
// maximum dms.InstanceQueryLimit.
func (a *NodeAPI[R, W]) Search(ctx context.Context, query string, opts ...Option) ([]R, error) {
	o := newOptions(opts)
	limit := o.limitOr(dms.DefaultLimitRead)
	if limit < 0 || limit > dms.InstanceQueryLimit {
		limit = dms.InstanceQueryLimit
	}
	var space dms.Filter
	if o.space != "" {
		space = dms.Equals(dms.NodeProperty("space"), o.space)
	}
	list, err := a.Client.Instances.Search(ctx, &dms.SearchRequest{
		View:         a.View,
		Query:        query,
		InstanceType: dms.NodeType,
		Properties:   o.properties,
		Filter:       dms.And(space, o.filter),
		Sort:         o.sort,
		Limit:        limit,
	})
	if err != nil {
		return nil, dmgen.NewQueryError(a.Label, "search", err)
	}
	items, err := a.decodeAll(list.Nodes)
	if err != nil {
		return nil, dmgen.NewQueryError(a.Label, "search", err)
	}
	return items, nil
}

// Aggregate computes aggregates over the view, grouped with GroupBy and
// narrowed with Where, InSpace and Search.
func (a *NodeAPI[R, W]) Aggregate(ctx context.Context, aggs []dms.Aggregation, opts ...Option) ([]dms.AggregateItem, error) {
	o := newOptions(opts)
	var space dms.Filter
	if o.space != "" {
		space = dms.Equals(dms.NodeProperty("space"), o.space)
	}
	req := &dms.AggregateRequest{
		View:         a.View,
		InstanceType: dms.NodeType,
		Query:        o.query,
		Properties:   o.properties,
		Filter:       dms.And(space, o.filter),
		GroupBy:      o.groupBy,
		Aggregates:   aggs,
	}
	if o.limitSet && o.limit > 0 {
		req.Limit = o.limit
	}
	items, err := a.Client.Instances.Aggregate(ctx, req)
	if err != nil {
		return nil, dmgen.NewQueryError(a.Label, "aggregate", err)
	}
	return items, nil
}

// Count returns the number of nodes with data in the view.
func (a *NodeAPI[R, W]) Count(ctx context.Context, opts ...Option) (int64, error) {
	items, err := a.Aggregate(ctx, []dms.Aggregation{dms.Count("externalId")}, opts...)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, item := range items {
		if v, ok := item.Value(dms.AggCount, "externalId"); ok {
			total += v.Float()
		}
	}
	return int64(total), nil
}

// Histogram buckets a numeric property by interval.
func (a *NodeAPI[R, W]) Histogram(ctx context.Context, property string, interval float64, opts ...Option) ([]dms.Bucket, error) {
	items, err := a.Aggregate(ctx, []dms.Aggregation{dms.Histogram(property, interval)}, opts...)
	if err != nil {
		return nil, err
	}
	var buckets []dms.Bucket
	for _, item := range items {
		if v, ok := item.Value(dms.AggHistogram, property); ok {
			buckets = append(buckets, v.Buckets...)
		}
	}
	return buckets, nil
}
