package dms_test

import (
	"encoding/json"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/dms"
)

func TestFilterJSON(t *testing.T) {
	t.Parallel()

	status := shopCaseView.Property("status")
	tests := []struct {
		name     string
		filter   dms.Filter
		expected string
	}{
		{
			name:     "Equals",
			filter:   dms.Equals(status, "done"),
			expected: `{"equals":{"property":["power_ops_core","ShopCase/1","status"],"value":"done"}}`,
		},
		{
			name:     "In",
			filter:   dms.In(dms.NodeProperty("externalId"), "a", "b"),
			expected: `{"in":{"property":["node","externalId"],"values":["a","b"]}}`,
		},
		{
			name:     "Range",
			filter:   dms.Range([]string{"p"}).Gte(1).Lt(10),
			expected: `{"range":{"property":["p"],"gte":1,"lt":10}}`,
		},
		{
			name:     "Prefix",
			filter:   dms.Prefix(dms.NodeProperty("externalId"), "shop_case:"),
			expected: `{"prefix":{"property":["node","externalId"],"value":"shop_case:"}}`,
		},
		{
			name:     "Exists",
			filter:   dms.Exists(status),
			expected: `{"exists":{"property":["power_ops_core","ShopCase/1","status"]}}`,
		},
		{
			name:     "ContainsAll",
			filter:   dms.ContainsAll([]string{"p"}, 1, 2),
			expected: `{"containsAll":{"property":["p"],"values":[1,2]}}`,
		},
		{
			name:     "ContainsAny",
			filter:   dms.ContainsAny([]string{"p"}, "x"),
			expected: `{"containsAny":{"property":["p"],"values":["x"]}}`,
		},
		{
			name:     "And",
			filter:   dms.And(dms.Exists([]string{"a"}), dms.Exists([]string{"b"})),
			expected: `{"and":[{"exists":{"property":["a"]}},{"exists":{"property":["b"]}}]}`,
		},
		{
			name:     "Not",
			filter:   dms.Not(dms.Exists([]string{"a"})),
			expected: `{"not":{"exists":{"property":["a"]}}}`,
		},
		{
			name:     "HasData",
			filter:   dms.HasData(shopCaseView),
			expected: `{"hasData":[{"type":"view","space":"power_ops_core","externalId":"ShopCase","version":"1"}]}`,
		},
		{
			name: "Nested",
			filter: dms.Nested(shopCaseView.Property("scenario"),
				dms.Equals(dms.NodeProperty("externalId"), "scenario:1")),
			expected: `{"nested":{"scope":["power_ops_core","ShopCase/1","scenario"],"filter":{"equals":{"property":["node","externalId"],"value":"scenario:1"}}}}`,
		},
		{
			name:     "DirectRelationValue",
			filter:   dms.Equals(status, dms.NodeID{Space: "s", ExternalID: "x"}),
			expected: `{"equals":{"property":["power_ops_core","ShopCase/1","status"],"value":{"space":"s","externalId":"x"}}}`,
		},
		{
			name:     "MatchAll",
			filter:   dms.MatchAll(),
			expected: `{"matchAll":{}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b, err := json.Marshal(tt.filter)
			require.NoError(t, err)
			assert.JSONEq(t, tt.expected, string(b))
		})
	}
}

func TestFilterString(t *testing.T) {
	t.Parallel()

	p := []string{"field"}
	tests := []struct {
		input    dms.Filter
		expected string
	}{
		{input: dms.Equals(p, "value"), expected: `field == "value"`},
		{
			input:    dms.Or(dms.Equals(p, "a"), dms.Equals(p, "b"), dms.Equals(p, "c")),
			expected: `(field == "a" || field == "b" || field == "c")`,
		},
		{
			input:    dms.And(dms.Equals(p, "a"), dms.Not(dms.Or(dms.Equals(p, "b"), dms.Range(p).Gt("c")))),
			expected: `field == "a" && !((field == "b" || field > "c"))`,
		},
		{input: dms.Range(p).Gte(1).Lte(2), expected: `field >= 1 && field <= 2`},
		{input: dms.In(p, 1, 2), expected: `field in [1, 2]`},
		{input: dms.Exists(p), expected: `exists(field)`},
		{input: dms.Prefix(p, "x"), expected: `hasPrefix(field, "x")`},
		{input: dms.ContainsAny(p, "x"), expected: `containsAny(field, ["x"])`},
		{input: dms.HasData(shopCaseView), expected: `hasData(power_ops_core:ShopCase/1)`},
		{input: dms.Equals(p, dms.NodeID{Space: "s", ExternalID: "x"}), expected: `field == "s:x"`},
		{input: dms.MatchAll(), expected: `true`},
	}
	for i := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			assert.Equal(t, tests[i].expected, tests[i].input.String())
		})
	}
}

func TestFilterCombine(t *testing.T) {
	t.Parallel()

	f := dms.Exists([]string{"a"})
	assert.Nil(t, dms.And())
	assert.Nil(t, dms.And(nil, nil))
	assert.Same(t, f, dms.And(nil, f, nil))
	assert.Same(t, f, dms.Or(f))
	assert.Nil(t, dms.Not(nil))

	var typedNil *dms.EqualsFilter
	assert.Same(t, f, dms.And(typedNil, f))
}

func TestSort(t *testing.T) {
	t.Parallel()

	s := dms.SortBy(shopCaseView.Property("startTime")).Desc()
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"property":["power_ops_core","ShopCase/1","startTime"],"direction":"descending"}`, string(b))
	assert.Equal(t, "power_ops_core.ShopCase/1.startTime descending", s.String())
}
