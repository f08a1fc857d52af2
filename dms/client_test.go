package dms_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen"
	"github.com/powerops/dmgen/cache/memcache"
	"github.com/powerops/dmgen/dms"
)

// recorded is a request captured by the fake platform.
type recorded struct {
	Path string
	Auth string
	Body map[string]any
}

// fakePlatform serves the instance endpoints with a programmable handler.
type fakePlatform struct {
	mu       sync.Mutex
	requests []recorded
	handler  func(w http.ResponseWriter, path string, body map[string]any)
}

func (f *fakePlatform) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	data, _ := io.ReadAll(r.Body)
	var body map[string]any
	_ = json.Unmarshal(data, &body)
	f.mu.Lock()
	f.requests = append(f.requests, recorded{Path: r.URL.Path, Auth: r.Header.Get("Authorization"), Body: body})
	f.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	f.handler(w, r.URL.Path, body)
}

func (f *fakePlatform) Requests() []recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recorded(nil), f.requests...)
}

func newTestClient(t *testing.T, handler func(w http.ResponseWriter, path string, body map[string]any), opts ...dms.Option) (*dms.Client, *fakePlatform) {
	t.Helper()
	fake := &fakePlatform{handler: handler}
	srv := httptest.NewServer(fake)
	t.Cleanup(srv.Close)
	base := []dms.Option{
		dms.WithBaseURL(srv.URL),
		dms.WithProject("proj"),
		dms.WithTokenSource(dms.StaticToken("secret")),
		dms.WithTransport(srv.Client().Transport),
		dms.WithRateLimit(1000, 100),
	}
	client, err := dms.NewClient(append(base, opts...)...)
	require.NoError(t, err)
	return client, fake
}

func TestClientList(t *testing.T) {
	t.Parallel()

	client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		fmt.Fprint(w, `{"items":[{"instanceType":"node","space":"s","externalId":"a"}],"nextCursor":"c1"}`)
	})

	res, err := client.Instances.List(context.Background(), &dms.ListRequest{
		Sources: []dms.ViewID{shopCaseView},
		Filter:  dms.HasData(shopCaseView),
	})
	require.NoError(t, err)
	require.Len(t, res.Items.Nodes, 1)
	assert.Equal(t, "c1", res.NextCursor)

	reqs := fake.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "/api/v1/projects/proj/models/instances/list", reqs[0].Path)
	assert.Equal(t, "Bearer secret", reqs[0].Auth)
	assert.Equal(t, "node", reqs[0].Body["instanceType"])
	assert.EqualValues(t, dms.DefaultLimitRead, reqs[0].Body["limit"])
	assert.Contains(t, reqs[0].Body, "filter")
	assert.NotContains(t, reqs[0].Body, "cursor")

	_, err = client.Instances.List(context.Background(), &dms.ListRequest{Limit: dms.InstanceQueryLimit + 1})
	require.Error(t, err)
}

func TestClientRetry(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error":{"code":503,"message":"busy"}}`)
			return
		}
		fmt.Fprint(w, `{"items":[]}`)
	})

	_, err := client.Instances.List(context.Background(), &dms.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	stats := client.Stats().Stats()
	assert.Equal(t, int64(3), stats.TotalRequests)
	assert.Equal(t, int64(2), stats.Retries)
	assert.Equal(t, int64(2), stats.Errors)
}

func TestClientAPIError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		calls.Add(1)
		w.Header().Set("X-Request-Id", "req-1")
		w.WriteHeader(http.StatusBadRequest)
		fmt.Fprint(w, `{"error":{"code":400,"message":"Instances not found","missing":[{"instanceType":"node","space":"s","externalId":"x"}]}}`)
	})

	_, err := client.Instances.Delete(context.Background(), dms.NodeID{Space: "s", ExternalID: "x"}.Instance())
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "client errors are not retried")

	apiErr, ok := dms.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Instances not found", apiErr.Message)
	assert.Equal(t, "req-1", apiErr.RequestID)
	require.Len(t, apiErr.Missing, 1)
	assert.Equal(t, "x", apiErr.Missing[0].ExternalID)
	assert.Contains(t, err.Error(), "1 missing")
}

func TestClientApplyChunks(t *testing.T) {
	t.Parallel()

	client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, body map[string]any) {
		items := body["items"].([]any)
		out := make([]map[string]any, len(items))
		for i, item := range items {
			m := item.(map[string]any)
			out[i] = map[string]any{
				"instanceType": m["instanceType"],
				"space":        m["space"],
				"externalId":   m["externalId"],
				"version":      1,
				"wasModified":  true,
			}
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"items": out})
	}, dms.WithMaxWorkers(3))

	req := &dms.ApplyRequest{}
	for i := range 2500 {
		req.Nodes = append(req.Nodes, dms.NodeApply{Space: "s", ExternalID: fmt.Sprintf("n%04d", i)})
	}
	req.Edges = append(req.Edges, dms.EdgeApply{Space: "s", ExternalID: "n0000:n0001"})

	res, err := client.Instances.Apply(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Nodes, 2500)
	require.Len(t, res.Edges, 1)
	for i, n := range res.Nodes {
		assert.Equal(t, fmt.Sprintf("n%04d", i), n.ExternalID)
	}
	assert.Len(t, fake.Requests(), 3)

	empty, err := client.Instances.Apply(context.Background(), &dms.ApplyRequest{})
	require.NoError(t, err)
	assert.Empty(t, empty.Nodes)
	assert.Len(t, fake.Requests(), 3)
}

func TestClientCache(t *testing.T) {
	t.Parallel()

	cache := memcache.New()
	client, fake := newTestClient(t, func(w http.ResponseWriter, path string, _ map[string]any) {
		if path == "/api/v1/projects/proj/models/instances" {
			fmt.Fprint(w, `{"items":[{"instanceType":"node","space":"s","externalId":"a","version":2}]}`)
			return
		}
		fmt.Fprint(w, `{"items":[{"instanceType":"node","space":"s","externalId":"a"}]}`)
	}, dms.WithCache(cache, time.Minute))

	ctx := context.Background()
	req := &dms.ListRequest{Limit: 10}
	for range 2 {
		res, err := client.Instances.List(ctx, req)
		require.NoError(t, err)
		require.Len(t, res.Items.Nodes, 1)
	}
	assert.Len(t, fake.Requests(), 1)
	assert.Equal(t, int64(1), client.Stats().Stats().CacheHits)

	_, err := client.Instances.Apply(ctx, &dms.ApplyRequest{Nodes: []dms.NodeApply{{Space: "s", ExternalID: "a"}}})
	require.NoError(t, err)

	_, err = client.Instances.List(ctx, req)
	require.NoError(t, err)
	assert.Len(t, fake.Requests(), 3, "apply invalidates cached reads")
}

// deadlineCache fails deletes once ctx is done, like a database-backed cache.
type deadlineCache struct {
	dmgen.Cache
}

func (c deadlineCache) DeletePrefix(ctx context.Context, prefix string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return c.Cache.DeletePrefix(ctx, prefix)
}

func TestClientCacheInvalidateAfterCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client, fake := newTestClient(t, func(w http.ResponseWriter, path string, _ map[string]any) {
		if path == "/api/v1/projects/proj/models/instances" {
			// the write is committed, then the caller goes away
			cancel()
		}
		fmt.Fprint(w, `{"items":[]}`)
	}, dms.WithCache(deadlineCache{memcache.New()}, time.Minute), dms.WithRetries(0))

	req := &dms.ListRequest{Limit: 10}
	_, err := client.Instances.List(context.Background(), req)
	require.NoError(t, err)

	_, _ = client.Instances.Apply(ctx, &dms.ApplyRequest{Nodes: []dms.NodeApply{{Space: "s", ExternalID: "a"}}})
	require.Error(t, ctx.Err())

	_, err = client.Instances.List(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, fake.Requests(), 3, "cached read is dropped after a canceled write")
}

func TestClientCacheSeparatesPlatforms(t *testing.T) {
	t.Parallel()

	cache := memcache.New()
	handler := func(w http.ResponseWriter, _ string, _ map[string]any) {
		fmt.Fprint(w, `{"items":[]}`)
	}
	first, firstFake := newTestClient(t, handler, dms.WithCache(cache, time.Minute))
	second, secondFake := newTestClient(t, handler, dms.WithCache(cache, time.Minute))

	req := &dms.ListRequest{Limit: 10}
	_, err := first.Instances.List(context.Background(), req)
	require.NoError(t, err)
	_, err = second.Instances.List(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, firstFake.Requests(), 1)
	assert.Len(t, secondFake.Requests(), 1)
}

func TestClientQuery(t *testing.T) {
	t.Parallel()

	client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		fmt.Fprint(w, `{
			"items": {
				"cases": [{"instanceType":"node","space":"s","externalId":"c1"}],
				"files": [{"instanceType":"edge","space":"s","externalId":"c1:f1",
				           "type":{"space":"t","externalId":"ShopCase.shopFiles"},
				           "startNode":{"space":"s","externalId":"c1"},
				           "endNode":{"space":"s","externalId":"f1"}}]
			},
			"nextCursor": {"cases": "next"}
		}`)
	})

	q := &dms.Query{
		With: map[string]dms.ResultSetExpression{
			"cases": &dms.NodeExpression{Filter: dms.HasData(shopCaseView), Limit: 10},
			"files": &dms.EdgeExpression{From: "cases", Direction: dms.Outwards, Limit: 100},
		},
		Select: map[string]dms.Select{
			"cases": {Sources: []dms.SourceSelector{dms.AllProperties(shopCaseView)}},
			"files": {},
		},
	}
	res, err := client.Instances.Query(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, res.Items["cases"].Nodes, 1)
	require.Len(t, res.Items["files"].Edges, 1)
	assert.Equal(t, "next", res.NextCursor["cases"])
	assert.Equal(t, []string{"cases", "files"}, q.Steps())

	body := fake.Requests()[0].Body
	with := body["with"].(map[string]any)
	files := with["files"].(map[string]any)
	assert.EqualValues(t, 100, files["limit"])
	assert.Equal(t, "cases", files["edges"].(map[string]any)["from"])

	_, err = client.Instances.Query(context.Background(), &dms.Query{})
	require.Error(t, err)
}

func TestClientAggregate(t *testing.T) {
	t.Parallel()

	client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		fmt.Fprint(w, `{"items":[{"instanceType":"node","group":{"status":"done"},"aggregates":[
			{"aggregate":"count","property":"externalId","value":4},
			{"aggregate":"histogram","property":"order","interval":10,"buckets":[{"start":0,"count":3},{"start":10,"count":1}]}
		]}]}`)
	})

	items, err := client.Instances.Aggregate(context.Background(), &dms.AggregateRequest{
		View:       shopCaseView,
		GroupBy:    []string{"status"},
		Aggregates: []dms.Aggregation{dms.Count("externalId"), dms.Histogram("order", 10)},
	})
	require.NoError(t, err)
	require.Len(t, items, 1)
	count, ok := items[0].Value(dms.AggCount, "externalId")
	require.True(t, ok)
	assert.Equal(t, 4.0, count.Float())
	hist, ok := items[0].Value(dms.AggHistogram, "order")
	require.True(t, ok)
	assert.Len(t, hist.Buckets, 2)

	aggs := fake.Requests()[0].Body["aggregates"].([]any)
	assert.Equal(t, map[string]any{"histogram": map[string]any{"property": "order", "interval": 10.0}}, aggs[1])

	_, err = client.Instances.Aggregate(context.Background(), &dms.AggregateRequest{View: shopCaseView})
	require.Error(t, err)
}

func TestClientCredentials(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.Form.Get("grant_type"))
		assert.Equal(t, "id", r.Form.Get("client_id"))
		n := tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"access_token":"tok-%d","token_type":"Bearer","expires_in":3600}`, n)
	}))
	t.Cleanup(tokenSrv.Close)

	creds := &dms.ClientCredentials{
		TokenURL:     tokenSrv.URL,
		ClientID:     "id",
		ClientSecret: "secret",
		HTTPClient:   tokenSrv.Client(),
	}

	var rejected atomic.Bool
	client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
		if !rejected.Swap(true) {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"error":{"code":401,"message":"expired"}}`)
			return
		}
		fmt.Fprint(w, `{"items":[]}`)
	}, dms.WithTokenSource(creds), dms.WithRetries(0))

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := creds.Token(context.Background())
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), tokenCalls.Load(), "concurrent callers share one token")

	_, err := client.Instances.List(context.Background(), &dms.ListRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(2), tokenCalls.Load(), "rejected token is refreshed once")
	reqs := fake.Requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "Bearer tok-1", reqs[0].Auth)
	assert.Equal(t, "Bearer tok-2", reqs[1].Auth)
}

func TestClientCredentialsShortLived(t *testing.T) {
	t.Parallel()

	var tokenCalls atomic.Int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "api://dms", r.Form.Get("audience"))
		tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"tok","token_type":"Bearer","expires_in":20}`)
	}))
	t.Cleanup(tokenSrv.Close)

	creds := &dms.ClientCredentials{
		TokenURL:   tokenSrv.URL,
		ClientID:   "id",
		Audience:   "api://dms",
		HTTPClient: tokenSrv.Client(),
	}
	for range 5 {
		tok, err := creds.Token(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "tok", tok)
	}
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestClientCredentialsCanceledCaller(t *testing.T) {
	t.Parallel()

	arrived := make(chan struct{})
	release := make(chan struct{})
	var tokenCalls atomic.Int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if tokenCalls.Add(1) == 1 {
			close(arrived)
		}
		<-release
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"access_token":"tok","token_type":"Bearer","expires_in":3600}`)
	}))
	t.Cleanup(tokenSrv.Close)

	creds := &dms.ClientCredentials{TokenURL: tokenSrv.URL, ClientID: "id", HTTPClient: tokenSrv.Client()}

	ctx, cancel := context.WithCancel(context.Background())
	first := make(chan error, 1)
	go func() {
		_, err := creds.Token(ctx)
		first <- err
	}()
	<-arrived

	second := make(chan string, 1)
	go func() {
		tok, err := creds.Token(context.Background())
		assert.NoError(t, err)
		second <- tok
	}()

	cancel()
	assert.ErrorIs(t, <-first, context.Canceled)
	close(release)
	assert.Equal(t, "tok", <-second)
	assert.Equal(t, int32(1), tokenCalls.Load())
}

func TestGraphQL(t *testing.T) {
	t.Parallel()

	dm := dms.DataModelID{Space: "power_ops_core", ExternalID: "PowerOps", Version: "1"}

	t.Run("Data", func(t *testing.T) {
		t.Parallel()
		client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
			fmt.Fprint(w, `{"data":{"listShopCase":{"items":[]}}}`)
		})
		data, err := client.GraphQL.Query(context.Background(), dm, `query Cases { listShopCase { items { externalId } } }`, nil)
		require.NoError(t, err)
		assert.JSONEq(t, `{"listShopCase":{"items":[]}}`, string(data))
		req := fake.Requests()[0]
		assert.Equal(t, "/api/v1/projects/proj/userapis/spaces/power_ops_core/datamodels/PowerOps/versions/1/graphql", req.Path)
		assert.Equal(t, "Cases", req.Body["operationName"])
	})

	t.Run("Errors", func(t *testing.T) {
		t.Parallel()
		client, _ := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
			fmt.Fprint(w, `{"data":null,"errors":[{"message":"unknown field"},{"message":"bad arg"}]}`)
		})
		_, err := client.GraphQL.Query(context.Background(), dm, `{ listShopCase { nope } }`, nil)
		var gqlErr *dms.GraphQLError
		require.True(t, errors.As(err, &gqlErr))
		assert.Len(t, gqlErr.Errors, 2)
		assert.Contains(t, err.Error(), "unknown field")
	})

	t.Run("Syntax", func(t *testing.T) {
		t.Parallel()
		client, fake := newTestClient(t, func(w http.ResponseWriter, _ string, _ map[string]any) {
			fmt.Fprint(w, `{}`)
		})
		_, err := client.GraphQL.Query(context.Background(), dm, `{ listShopCase { `, nil)
		require.Error(t, err)
		assert.Empty(t, fake.Requests(), "invalid documents are not sent")
	})
}

func TestNewClientValidation(t *testing.T) {
	t.Parallel()

	_, err := dms.NewClient()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_url is required")
	assert.Contains(t, err.Error(), "project is required")

	_, err = dms.NewClient(dms.WithBaseURL(""))
	require.Error(t, err)
}
