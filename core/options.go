package core

import (
	"github.com/powerops/dmgen/dms"
)

// Option configures a node API, edge API or query call.
type Option func(*options)

type options struct {
	filter     dms.Filter
	edgeFilter dms.Filter
	limit      int
	limitSet   bool
	sort       []dms.Sort
	withEdges  bool
	properties []string
	groupBy    []string
	query      string
	space      string
	chunkSize  int
	write      WriteOptions
}

func newOptions(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Where narrows the instances with filters. Repeated calls are combined
// with "and".
func Where(filters ...dms.Filter) Option {
	return func(o *options) {
		o.filter = dms.And(append([]dms.Filter{o.filter}, filters...)...)
	}
}

// EdgeWhere narrows the edges traversed by a query step or edge API.
func EdgeWhere(filters ...dms.Filter) Option {
	return func(o *options) {
		o.edgeFilter = dms.And(append([]dms.Filter{o.edgeFilter}, filters...)...)
	}
}

// Limit sets the maximum number of results. -1 means no limit.
func Limit(n int) Option {
	return func(o *options) {
		o.limit, o.limitSet = n, true
	}
}

// OrderBy sorts the results.
func OrderBy(sorts ...dms.Sort) Option {
	return func(o *options) {
		o.sort = append(o.sort, sorts...)
	}
}

// WithEdges loads the end nodes of every edge property on retrieved objects.
func WithEdges() Option {
	return func(o *options) {
		o.withEdges = true
	}
}

// Properties restricts a search to the given text properties.
func Properties(names ...string) Option {
	return func(o *options) {
		o.properties = append(o.properties, names...)
	}
}

// GroupBy groups aggregates by the given properties.
func GroupBy(names ...string) Option {
	return func(o *options) {
		o.groupBy = append(o.groupBy, names...)
	}
}

// Search restricts aggregates to instances matching a free-text query.
func Search(query string, properties ...string) Option {
	return func(o *options) {
		o.query = query
		o.properties = append(o.properties, properties...)
	}
}

// InSpace restricts results to nodes in space.
func InSpace(space string) Option {
	return func(o *options) {
		o.space = space
	}
}

// ChunkSize sets the page size used while listing or iterating.
func ChunkSize(n int) Option {
	return func(o *options) {
		o.chunkSize = n
	}
}

// WriteNone writes unset optional properties as nulls.
func WriteNone() Option {
	return func(o *options) {
		o.write.WriteNone = true
	}
}

// AllowVersionIncrease ignores the stored version of written instances.
func AllowVersionIncrease() Option {
	return func(o *options) {
		o.write.AllowVersionIncrease = true
	}
}

// limitOr returns the configured limit or def.
func (o *options) limitOr(def int) int {
	if o.limitSet {
		return o.limit
	}
	return def
}

// pageSize returns the page size for a total limit; -1 is unlimited.
func (o *options) pageSize(limit int) int {
	size := dms.InstanceQueryLimit
	if o.chunkSize > 0 {
		size = min(o.chunkSize, dms.InstanceQueryLimit)
	}
	if limit >= 0 {
		size = min(size, limit)
	}
	return size
}

// nodeFilter returns the filter of a node read through view.
func (o *options) nodeFilter(view dms.ViewID) dms.Filter {
	var space dms.Filter
	if o.space != "" {
		space = dms.Equals(dms.NodeProperty("space"), o.space)
	}
	return dms.And(dms.HasData(view), space, o.filter)
}
