package core

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/powerops/dmgen/dms"
)

// ConnectionKind is how a query step's nodes relate to its parent step.
type ConnectionKind int

// Connection kinds.
const (
	// ConnEdge links parents to children through an edge step.
	ConnEdge ConnectionKind = iota + 1
	// ConnDirectOut links parents to the nodes their direct relation
	// property points to.
	ConnDirectOut
	// ConnDirectIn links parents to the nodes whose direct relation
	// property points back at them.
	ConnDirectIn
)

func (k ConnectionKind) String() string {
	switch k {
	case ConnEdge:
		return "edge"
	case ConnDirectOut:
		return "direct-outwards"
	case ConnDirectIn:
		return "direct-inwards"
	default:
		return "unknown"
	}
}

// Connection describes how to link the nodes of a step to the nodes of a
// previous step.
type Connection struct {
	// From is the parent node step.
	From string
	// Name is the link name passed to the parent's LinkEdge.
	Name string
	Kind ConnectionKind
	// Via is the edge step for ConnEdge.
	Via string
	// Direction of the edges for ConnEdge. Outwards edges start at the
	// parent.
	Direction dms.Direction
	// Property is the direct relation property: on the parent for
	// ConnDirectOut and on the child for ConnDirectIn.
	Property string
}

// QueryStep is one result set expression of a query with its selection,
// limit and collected results.
type QueryStep struct {
	Name       string
	Expression dms.ResultSetExpression
	// Select lists the view properties returned; nil returns identifiers
	// only.
	Select *dms.Select
	// MaxRetrieveLimit caps the instances collected; -1 is unlimited.
	MaxRetrieveLimit int
	// View is the view the step's nodes are decoded with.
	View dms.ViewID
	// Decode decodes the step's nodes; nil leaves them as identifiers.
	Decode     func(*dms.Node) (any, error)
	Connection *Connection

	cursor  string
	queried bool
	nodes   []*dms.Node
	edges   []*dms.Edge
	seen    map[dms.InstanceID]struct{}
}

// AnyDecoder adapts a typed decoder to QueryStep.Decode.
func AnyDecoder[R any](d Decoder[R]) func(*dms.Node) (any, error) {
	return func(n *dms.Node) (any, error) {
		return d(n)
	}
}

// Nodes returns the collected nodes.
func (s *QueryStep) Nodes() []*dms.Node { return s.nodes }

// Edges returns the collected edges.
func (s *QueryStep) Edges() []*dms.Edge { return s.edges }

// Retrieved returns the number of collected instances.
func (s *QueryStep) Retrieved() int { return len(s.nodes) + len(s.edges) }

// Cursor returns the cursor of the next page, or "".
func (s *QueryStep) Cursor() string { return s.cursor }

// remaining returns how many instances the step may still collect; -1 is
// unlimited.
func (s *QueryStep) remaining() int {
	if s.MaxRetrieveLimit < 0 {
		return -1
	}
	return max(s.MaxRetrieveLimit-s.Retrieved(), 0)
}

// pageLimit returns the limit of the step's next request.
func (s *QueryStep) pageLimit() int {
	if r := s.remaining(); r > 0 {
		return min(dms.InstanceQueryLimit, r)
	}
	if s.MaxRetrieveLimit == 0 {
		return 1
	}
	return dms.InstanceQueryLimit
}

// Done reports whether the step has no more pages or reached its limit.
func (s *QueryStep) Done() bool {
	return s.queried && (s.cursor == "" || s.remaining() == 0)
}

// merge adds a page of results, skipping instances already collected and
// instances beyond the limit.
func (s *QueryStep) merge(set *dms.ResultSet, cursor string) {
	s.queried = true
	if s.remaining() == 0 {
		s.cursor = ""
		return
	}
	s.cursor = cursor
	if set == nil {
		return
	}
	if s.seen == nil {
		s.seen = make(map[dms.InstanceID]struct{})
	}
	for _, n := range set.Nodes {
		if s.remaining() == 0 {
			break
		}
		id := dms.InstanceID{InstanceType: dms.NodeType, Space: n.Space, ExternalID: n.ExternalID}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.nodes = append(s.nodes, n)
	}
	for _, e := range set.Edges {
		if s.remaining() == 0 {
			break
		}
		id := dms.InstanceID{InstanceType: dms.EdgeType, Space: e.Space, ExternalID: e.ExternalID}
		if _, ok := s.seen[id]; ok {
			continue
		}
		s.seen[id] = struct{}{}
		s.edges = append(s.edges, e)
	}
	if s.remaining() == 0 {
		s.cursor = ""
	}
}

func (s *QueryStep) reset() {
	s.cursor, s.queried = "", false
	s.nodes, s.edges, s.seen = nil, nil, nil
}

// QueryBuilder holds the ordered steps of a query. The first step is the
// root.
type QueryBuilder struct {
	steps []*QueryStep
	index map[string]int
}

// NewQueryBuilder returns a builder with the given steps.
func NewQueryBuilder(steps ...*QueryStep) (*QueryBuilder, error) {
	b := &QueryBuilder{index: make(map[string]int)}
	for _, s := range steps {
		if err := b.Append(s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Append adds a step. Step names are unique and a step may only chain
// from an earlier step.
func (b *QueryBuilder) Append(s *QueryStep) error {
	if s.Name == "" {
		return fmt.Errorf("core: query step has no name")
	}
	if _, ok := b.index[s.Name]; ok {
		return fmt.Errorf("core: duplicate query step %q", s.Name)
	}
	if from := s.Expression.FromStep(); from != "" {
		if _, ok := b.index[from]; !ok {
			return fmt.Errorf("core: query step %q chains from unknown step %q", s.Name, from)
		}
	}
	if c := s.Connection; c != nil {
		if _, ok := b.index[c.From]; !ok {
			return fmt.Errorf("core: query step %q connects to unknown step %q", s.Name, c.From)
		}
	}
	if b.index == nil {
		b.index = make(map[string]int)
	}
	b.index[s.Name] = len(b.steps)
	b.steps = append(b.steps, s)
	return nil
}

// NextName returns an unused step name.
func (b *QueryBuilder) NextName() string {
	for i := len(b.steps); ; i++ {
		name := strconv.Itoa(i)
		if _, ok := b.index[name]; !ok {
			return name
		}
	}
}

// Steps returns the steps in order.
func (b *QueryBuilder) Steps() []*QueryStep { return b.steps }

// Step returns the named step or nil.
func (b *QueryBuilder) Step(name string) *QueryStep {
	if i, ok := b.index[name]; ok {
		return b.steps[i]
	}
	return nil
}

// Root returns the first step or nil.
func (b *QueryBuilder) Root() *QueryStep {
	if len(b.steps) == 0 {
		return nil
	}
	return b.steps[0]
}

// Done reports whether every step is done.
func (b *QueryBuilder) Done() bool {
	for _, s := range b.steps {
		if !s.Done() {
			return false
		}
	}
	return true
}

// Build renders the next request: every step with its page limit, and the
// cursors of the steps that have one.
func (b *QueryBuilder) Build() *dms.Query {
	q := &dms.Query{
		With:   make(map[string]dms.ResultSetExpression, len(b.steps)),
		Select: make(map[string]dms.Select, len(b.steps)),
	}
	for _, s := range b.steps {
		q.With[s.Name] = s.Expression.WithLimit(s.pageLimit())
		if s.Select != nil {
			q.Select[s.Name] = *s.Select
		} else {
			q.Select[s.Name] = dms.Select{}
		}
		if s.cursor != "" {
			if q.Cursors == nil {
				q.Cursors = make(map[string]string)
			}
			q.Cursors[s.Name] = s.cursor
		}
	}
	return q
}

// Reset clears collected results so the builder can run again.
func (b *QueryBuilder) Reset() {
	for _, s := range b.steps {
		s.reset()
	}
}

// Execute runs the query until every step is done.
func (b *QueryBuilder) Execute(ctx context.Context, client *dms.Client) error {
	if len(b.steps) == 0 {
		return fmt.Errorf("core: query has no steps")
	}
	logger := client.Logger()
	for round := 1; ; round++ {
		start := time.Now()
		res, err := client.Instances.Query(ctx, b.Build())
		if err != nil {
			return err
		}
		for _, s := range b.steps {
			s.merge(res.Items[s.Name], res.NextCursor[s.Name])
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.DebugContext(ctx, "query round",
				"round", round,
				"steps", len(b.steps),
				"root_retrieved", b.steps[0].Retrieved(),
				"duration", time.Since(start),
			)
		}
		if b.Done() {
			return nil
		}
	}
}
