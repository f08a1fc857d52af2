package dms

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"
)

// Instance endpoint paths, relative to the project URL.
const (
	pathInstances = "models/instances"
	pathDelete    = "models/instances/delete"
	pathByIDs     = "models/instances/byids"
	pathList      = "models/instances/list"
	pathSearch    = "models/instances/search"
	pathAggregate = "models/instances/aggregate"
	pathQuery     = "models/instances/query"
)

// InstancesService calls the instance endpoints.
type InstancesService struct {
	client *Client
}

// sourceRef is the wire form of a view in "sources" arrays.
type sourceRef struct {
	Source ViewID `json:"source"`
}

func sourceRefs(views []ViewID) []sourceRef {
	if len(views) == 0 {
		return nil
	}
	refs := make([]sourceRef, len(views))
	for i, v := range views {
		refs[i] = sourceRef{Source: v}
	}
	return refs
}

// inChunks splits items into request-sized chunks, runs fn on them with at
// most MaxWorkers in flight, and concatenates the results in input order.
func inChunks[T, R any](ctx context.Context, c *Client, items []T, fn func(context.Context, []T) ([]R, error)) ([]R, error) {
	chunks := slices.Collect(slices.Chunk(items, ChunkSize))
	results := make([][]R, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(c.config.MaxWorkers, 1))
	for i, chunk := range chunks {
		g.Go(func() error {
			res, err := fn(gctx, chunk)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(results...), nil
}

// ApplyRequest creates or updates nodes and edges.
type ApplyRequest struct {
	Nodes                     []NodeApply
	Edges                     []EdgeApply
	AutoCreateStartNodes      bool
	AutoCreateEndNodes        bool
	AutoCreateDirectRelations bool
	SkipOnVersionConflict     bool
	// Replace overwrites unspecified properties with null instead of
	// keeping their stored values.
	Replace bool
}

// ApplyResult lists the instances the platform acknowledged.
type ApplyResult struct {
	Nodes []InstanceResult
	Edges []InstanceResult
}

type applyBody struct {
	Items                     []any `json:"items"`
	AutoCreateStartNodes      bool  `json:"autoCreateStartNodes"`
	AutoCreateEndNodes        bool  `json:"autoCreateEndNodes"`
	AutoCreateDirectRelations bool  `json:"autoCreateDirectRelations"`
	SkipOnVersionConflict     bool  `json:"skipOnVersionConflict"`
	Replace                   bool  `json:"replace"`
}

type applyResponse struct {
	Items []InstanceResult `json:"items"`
}

// Apply writes the nodes and edges of req in chunks. Chunks run
// concurrently; the result keeps input order.
func (s *InstancesService) Apply(ctx context.Context, req *ApplyRequest) (*ApplyResult, error) {
	items := make([]any, 0, len(req.Nodes)+len(req.Edges))
	for _, n := range req.Nodes {
		items = append(items, n)
	}
	for _, e := range req.Edges {
		items = append(items, e)
	}
	if len(items) == 0 {
		return &ApplyResult{}, nil
	}
	defer s.client.invalidate(ctx)
	written, err := inChunks(ctx, s.client, items, func(ctx context.Context, chunk []any) ([]InstanceResult, error) {
		var resp applyResponse
		err := s.client.post(ctx, pathInstances, &applyBody{
			Items:                     chunk,
			AutoCreateStartNodes:      req.AutoCreateStartNodes,
			AutoCreateEndNodes:        req.AutoCreateEndNodes,
			AutoCreateDirectRelations: req.AutoCreateDirectRelations,
			SkipOnVersionConflict:     req.SkipOnVersionConflict,
			Replace:                   req.Replace,
		}, &resp)
		return resp.Items, err
	})
	if err != nil {
		return nil, err
	}
	res := &ApplyResult{}
	for _, r := range written {
		if r.InstanceType == EdgeType {
			res.Edges = append(res.Edges, r)
		} else {
			res.Nodes = append(res.Nodes, r)
		}
	}
	return res, nil
}

type idsBody struct {
	Items []InstanceID `json:"items"`
}

// Delete deletes instances by ID and returns the IDs the platform deleted.
func (s *InstancesService) Delete(ctx context.Context, ids ...InstanceID) ([]InstanceID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	defer s.client.invalidate(ctx)
	return inChunks(ctx, s.client, ids, func(ctx context.Context, chunk []InstanceID) ([]InstanceID, error) {
		var resp idsBody
		err := s.client.post(ctx, pathDelete, &idsBody{Items: chunk}, &resp)
		return resp.Items, err
	})
}

// RetrieveRequest retrieves instances by ID with the properties of the
// given views.
type RetrieveRequest struct {
	IDs           []InstanceID
	Sources       []ViewID
	IncludeTyping bool
}

type retrieveBody struct {
	Items         []InstanceID `json:"items"`
	Sources       []sourceRef  `json:"sources,omitempty"`
	IncludeTyping bool         `json:"includeTyping,omitempty"`
}

type listResponse struct {
	Items      InstanceList `json:"items"`
	NextCursor string       `json:"nextCursor,omitempty"`
}

// Retrieve retrieves instances by ID. Missing instances are left out of
// the result.
func (s *InstancesService) Retrieve(ctx context.Context, req *RetrieveRequest) (*InstanceList, error) {
	if len(req.IDs) == 0 {
		return &InstanceList{}, nil
	}
	lists, err := inChunks(ctx, s.client, req.IDs, func(ctx context.Context, chunk []InstanceID) ([]*InstanceList, error) {
		var resp listResponse
		err := s.client.read(ctx, "byids", pathByIDs, &retrieveBody{
			Items:         chunk,
			Sources:       sourceRefs(req.Sources),
			IncludeTyping: req.IncludeTyping,
		}, &resp)
		return []*InstanceList{&resp.Items}, err
	})
	if err != nil {
		return nil, err
	}
	out := &InstanceList{}
	for _, l := range lists {
		out.Nodes = append(out.Nodes, l.Nodes...)
		out.Edges = append(out.Edges, l.Edges...)
	}
	return out, nil
}

// ListRequest lists one page of instances.
type ListRequest struct {
	InstanceType  InstanceType
	Sources       []ViewID
	Filter        Filter
	Sort          []Sort
	Limit         int
	Cursor        string
	IncludeTyping bool
}

type listBody struct {
	InstanceType  InstanceType `json:"instanceType"`
	Sources       []sourceRef  `json:"sources,omitempty"`
	Filter        Filter       `json:"filter,omitempty"`
	Sort          []Sort       `json:"sort,omitempty"`
	Limit         int          `json:"limit"`
	Cursor        string       `json:"cursor,omitempty"`
	IncludeTyping bool         `json:"includeTyping,omitempty"`
}

// ListResult is one page of a list.
type ListResult struct {
	Items      InstanceList
	NextCursor string
}

func checkLimit(limit int) (int, error) {
	switch {
	case limit == 0:
		return DefaultLimitRead, nil
	case limit < 0 || limit > InstanceQueryLimit:
		return 0, fmt.Errorf("dms: limit must be between 1 and %d, got %d", InstanceQueryLimit, limit)
	}
	return limit, nil
}

// List returns one page of instances. Pass NextCursor back as Cursor to
// fetch the next page.
func (s *InstancesService) List(ctx context.Context, req *ListRequest) (*ListResult, error) {
	limit, err := checkLimit(req.Limit)
	if err != nil {
		return nil, err
	}
	it := req.InstanceType
	if it == "" {
		it = NodeType
	}
	var resp listResponse
	if err := s.client.read(ctx, "list", pathList, &listBody{
		InstanceType:  it,
		Sources:       sourceRefs(req.Sources),
		Filter:        req.Filter,
		Sort:          req.Sort,
		Limit:         limit,
		Cursor:        req.Cursor,
		IncludeTyping: req.IncludeTyping,
	}, &resp); err != nil {
		return nil, err
	}
	return &ListResult{Items: resp.Items, NextCursor: resp.NextCursor}, nil
}

// SearchRequest searches the text properties of one view.
type SearchRequest struct {
	View         ViewID       `json:"view"`
	Query        string       `json:"query,omitempty"`
	InstanceType InstanceType `json:"instanceType,omitempty"`
	Properties   []string     `json:"properties,omitempty"`
	Filter       Filter       `json:"filter,omitempty"`
	Sort         []Sort       `json:"sort,omitempty"`
	Limit        int          `json:"limit"`
}

// Search runs a free-text search. The platform returns at most
// InstanceQueryLimit results and no cursor.
func (s *InstancesService) Search(ctx context.Context, req *SearchRequest) (*InstanceList, error) {
	limit, err := checkLimit(req.Limit)
	if err != nil {
		return nil, err
	}
	body := *req
	body.Limit = limit
	var resp listResponse
	if err := s.client.read(ctx, "search", pathSearch, &body, &resp); err != nil {
		return nil, err
	}
	return &resp.Items, nil
}

type aggregateResponse struct {
	Items []AggregateItem `json:"items"`
}

// Aggregate computes aggregates over the instances of one view, grouped by
// req.GroupBy when set.
func (s *InstancesService) Aggregate(ctx context.Context, req *AggregateRequest) ([]AggregateItem, error) {
	if len(req.Aggregates) == 0 {
		return nil, fmt.Errorf("dms: aggregate request has no aggregates")
	}
	var resp aggregateResponse
	if err := s.client.read(ctx, "aggregate", pathAggregate, req, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// Query runs one request of a multi-step query.
func (s *InstancesService) Query(ctx context.Context, q *Query) (*QueryResult, error) {
	if len(q.With) == 0 {
		return nil, fmt.Errorf("dms: query has no result set expressions")
	}
	var resp QueryResult
	if err := s.client.read(ctx, "query", pathQuery, q, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
