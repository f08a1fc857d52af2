package core

import (
	"context"

	"github.com/powerops/dmgen"
	"github.com/powerops/dmgen/dms"
)

// EdgeFilter narrows the edges of one edge type. Unset fields do not
// filter.
type EdgeFilter struct {
	// From and To are external IDs of start and end nodes.
	From      []string
	FromSpace string
	To        []string
	ToSpace   string
	// ExternalIDPrefix matches the edges' own external IDs.
	ExternalIDPrefix string
	// Space is the space of the edges.
	Space string
}

// Build returns the platform filter of f for edges of edgeType. Node
// references without a space use defaultSpace.
func (f EdgeFilter) Build(edgeType dms.NodeID, defaultSpace string) dms.Filter {
	filters := []dms.Filter{dms.Equals(dms.EdgeProperty("type"), edgeType)}
	filters = append(filters, endpointFilter("startNode", f.From, f.FromSpace, defaultSpace))
	filters = append(filters, endpointFilter("endNode", f.To, f.ToSpace, defaultSpace))
	if f.ExternalIDPrefix != "" {
		filters = append(filters, dms.Prefix(dms.EdgeProperty("externalId"), f.ExternalIDPrefix))
	}
	if f.Space != "" {
		filters = append(filters, dms.Equals(dms.EdgeProperty("space"), f.Space))
	}
	return dms.And(filters...)
}

func endpointFilter(end string, externalIDs []string, space, defaultSpace string) dms.Filter {
	if len(externalIDs) == 0 {
		if space == "" {
			return nil
		}
		return dms.Equals([]string{"edge", end, "space"}, space)
	}
	if space == "" {
		space = defaultSpace
	}
	ids := make([]dms.NodeID, len(externalIDs))
	for i, x := range externalIDs {
		ids[i] = dms.NodeID{Space: space, ExternalID: x}
	}
	if len(ids) == 1 {
		return dms.Equals(dms.EdgeProperty(end), ids[0])
	}
	return dms.In(dms.EdgeProperty(end), ids...)
}

// EdgeAPI lists the edges of one edge type.
type EdgeAPI struct {
	Client *dms.Client
	Type   dms.NodeID
	// DefaultSpace is the space of start and end nodes given by external
	// ID only.
	DefaultSpace string
	Label        string
}

// List returns edges matching f. The default limit is dms.DefaultLimitRead;
// -1 lists everything.
func (a *EdgeAPI) List(ctx context.Context, f EdgeFilter, limit int) ([]*Relation, error) {
	if limit == 0 {
		limit = dms.DefaultLimitRead
	}
	edges, err := listEdges(ctx, a.Client, f.Build(a.Type, a.DefaultSpace), limit)
	if err != nil {
		return nil, dmgen.NewQueryError(a.Label, "list", err)
	}
	out := make([]*Relation, len(edges))
	for i, e := range edges {
		out[i] = RelationOf(e)
	}
	return out, nil
}

// listEdges follows list cursors over edges until limit is reached; -1 is
// unlimited.
func listEdges(ctx context.Context, client *dms.Client, filter dms.Filter, limit int) ([]*dms.Edge, error) {
	var (
		out    []*dms.Edge
		cursor string
	)
	for {
		size := dms.InstanceQueryLimit
		if limit >= 0 {
			size = min(size, limit-len(out))
		}
		res, err := client.Instances.List(ctx, &dms.ListRequest{
			InstanceType: dms.EdgeType,
			Filter:       filter,
			Limit:        size,
			Cursor:       cursor,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, res.Items.Edges...)
		cursor = res.NextCursor
		if cursor == "" || (limit >= 0 && len(out) >= limit) {
			return out, nil
		}
	}
}
