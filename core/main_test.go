package core_test

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/powerops/dmgen/core"
	"github.com/powerops/dmgen/dms"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	caseView     = dms.ViewID{Space: "sp", ExternalID: "Case", Version: "1"}
	fileView     = dms.ViewID{Space: "sp", ExternalID: "File", Version: "1"}
	scenarioView = dms.ViewID{Space: "sp", ExternalID: "Scenario", Version: "1"}
	filesEdge    = dms.NodeID{Space: "types", ExternalID: "Case.files"}
)

// obj is a minimal generated-style read type.
type obj struct {
	core.Model
	Name     *string
	Scenario *dms.NodeID
	links    map[string][]any
}

func (o *obj) LinkEdge(name string, targets []any) {
	if o.links == nil {
		o.links = make(map[string][]any)
	}
	o.links[name] = targets
}

func decodeObj(view dms.ViewID) core.Decoder[*obj] {
	return func(n *dms.Node) (*obj, error) {
		o := &obj{Model: core.ModelOf(n)}
		p := n.Properties.Source(view)
		var err error
		if o.Name, err = core.DecodeOpt[string](p, "name"); err != nil {
			return nil, err
		}
		refs, err := core.DecodeRefs(p, "scenario")
		if err != nil {
			return nil, err
		}
		if len(refs) > 0 {
			o.Scenario = &refs[0]
		}
		return o, nil
	}
}

// objWrite is a minimal generated-style write type.
type objWrite struct {
	core.WriteModel
	Name  *string
	Files []*core.NodeRef
}

func (w *objWrite) NodeID() dms.NodeID {
	w.EnsureID("TestObj")
	return dms.NodeID{Space: w.Space, ExternalID: w.ExternalID}
}

func (w *objWrite) WriteTo(rw *core.ResourcesWrite, opts core.WriteOptions) error {
	id := w.NodeID()
	if !rw.Visit(id.Instance()) {
		return nil
	}
	props := core.Props{}
	core.SetOpt(props, "name", w.Name, opts)
	rw.AddNode(w.NodeApply(caseView, props, opts))
	for _, f := range w.Files {
		if err := core.WriteEdge(rw, filesEdge, id, f, opts); err != nil {
			return err
		}
	}
	return nil
}

// node renders a node with properties in view as JSON.
func node(view dms.ViewID, space, externalID string, props string) string {
	return fmt.Sprintf(`{"instanceType":"node","space":%q,"externalId":%q,"version":1,"createdTime":0,"lastUpdatedTime":0,"properties":{%q:{%q:%s}}}`,
		space, externalID, view.Space, view.Key(), props)
}

func edge(space, externalID string, start, end dms.NodeID) string {
	return fmt.Sprintf(`{"instanceType":"edge","space":%q,"externalId":%q,"version":1,"createdTime":0,"lastUpdatedTime":0,"type":{"space":%q,"externalId":%q},"startNode":{"space":%q,"externalId":%q},"endNode":{"space":%q,"externalId":%q}}`,
		space, externalID, filesEdge.Space, filesEdge.ExternalID, start.Space, start.ExternalID, end.Space, end.ExternalID)
}

func items(instances ...string) string {
	return "[" + strings.Join(instances, ",") + "]"
}

type request struct {
	Endpoint string
	Body     map[string]any
}

// platform is a fake of the instance endpoints. Responses are queued per
// endpoint ("list", "byids", "query", ...) and served in order; the last
// one repeats.
type platform struct {
	mu        sync.Mutex
	requests  []request
	responses map[string][]string
}

func (p *platform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(data, &body)
	endpoint := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
	p.mu.Lock()
	p.requests = append(p.requests, request{Endpoint: endpoint, Body: body})
	queue := p.responses[endpoint]
	var resp string
	switch len(queue) {
	case 0:
		resp = `{"items":[]}`
	case 1:
		resp = queue[0]
	default:
		resp, p.responses[endpoint] = queue[0], queue[1:]
	}
	p.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, resp)
}

func (p *platform) Requests(endpoint string) []request {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []request
	for _, r := range p.requests {
		if r.Endpoint == endpoint {
			out = append(out, r)
		}
	}
	return out
}

func newPlatform(t *testing.T, responses map[string][]string) (*dms.Client, *platform) {
	t.Helper()
	p := &platform{responses: responses}
	if p.responses == nil {
		p.responses = make(map[string][]string)
	}
	srv := httptest.NewServer(p)
	t.Cleanup(srv.Close)
	client, err := dms.NewClient(
		dms.WithBaseURL(srv.URL),
		dms.WithProject("proj"),
		dms.WithTokenSource(dms.StaticToken("secret")),
		dms.WithTransport(srv.Client().Transport),
		dms.WithRateLimit(1000, 100),
	)
	require.NoError(t, err)
	return client, p
}

func newCaseAPI(client *dms.Client) *core.NodeAPI[*obj, *objWrite] {
	return &core.NodeAPI[*obj, *objWrite]{
		Client:       client,
		View:         caseView,
		Label:        "Case",
		DefaultSpace: "sp",
		Decode:       decodeObj(caseView),
		Edges:        []core.EdgeProperty{{Name: "files", Type: filesEdge, Direction: dms.Outwards}},
	}
}

func ptr[T any](v T) *T { return &v }
