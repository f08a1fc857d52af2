package dms_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/dms"
)

func TestPropertyValues(t *testing.T) {
	t.Parallel()

	var node dms.Node
	require.NoError(t, json.Unmarshal([]byte(`{
		"instanceType": "node",
		"space": "power_ops_core",
		"externalId": "shop_case:1",
		"version": 3,
		"createdTime": 1700000000000,
		"lastUpdatedTime": 1700000001000,
		"properties": {
			"power_ops_core": {
				"ShopCase/1": {
					"status": "done",
					"endTime": null,
					"scenario": {"space": "power_ops_core", "externalId": "scenario:1"}
				}
			}
		}
	}`), &node))

	assert.Equal(t, int64(3), node.Version)
	assert.Equal(t, dms.NodeID{Space: "power_ops_core", ExternalID: "shop_case:1"}, node.ID())
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), dms.Millis(node.CreatedTime))

	props := node.Properties.Source(shopCaseView)
	require.NotNil(t, props)

	var status string
	require.NoError(t, props.Decode("status", &status))
	assert.Equal(t, "done", status)

	end := "untouched"
	require.NoError(t, props.Decode("endTime", &end))
	assert.Equal(t, "untouched", end)
	assert.True(t, props.Has("endTime"))
	assert.True(t, props.IsNull("endTime"))
	assert.True(t, props.IsNull("missing"))

	var scenario dms.NodeID
	require.NoError(t, props.Decode("scenario", &scenario))
	assert.Equal(t, "scenario:1", scenario.ExternalID)

	var bad int
	err := props.Decode("status", &bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"status"`)

	assert.Nil(t, node.Properties.Source(dms.ViewID{Space: "other", ExternalID: "X", Version: "1"}))
	assert.Nil(t, dms.Properties(nil).Source(shopCaseView))
}

func TestInstanceList(t *testing.T) {
	t.Parallel()

	var list dms.InstanceList
	require.NoError(t, json.Unmarshal([]byte(`[
		{"instanceType":"node","space":"s","externalId":"a"},
		{"instanceType":"edge","space":"s","externalId":"a:b",
		 "type":{"space":"t","externalId":"ShopCase.shopFiles"},
		 "startNode":{"space":"s","externalId":"a"},
		 "endNode":{"space":"s","externalId":"b"}},
		{"instanceType":"node","space":"s","externalId":"b"}
	]`), &list))

	require.Len(t, list.Nodes, 2)
	require.Len(t, list.Edges, 1)
	assert.Equal(t, 3, list.Len())
	assert.Equal(t, "a", list.Nodes[0].ExternalID)
	assert.Equal(t, "b", list.Nodes[1].ExternalID)
	assert.Equal(t, "b", list.Edges[0].EndNode.ExternalID)

	err := json.Unmarshal([]byte(`[{"instanceType":"blob"}]`), &dms.InstanceList{})
	require.Error(t, err)
}

func TestApplyMarshal(t *testing.T) {
	t.Parallel()

	version := int64(2)
	node := dms.NodeApply{
		Space:           "s",
		ExternalID:      "a",
		ExistingVersion: &version,
		Sources: []dms.SourceData{{
			Source:     shopCaseView,
			Properties: map[string]any{"status": "new", "endTime": nil},
		}},
	}
	b, err := json.Marshal(node)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"instanceType":"node","space":"s","externalId":"a","existingVersion":2,
		"sources":[{"source":{"type":"view","space":"power_ops_core","externalId":"ShopCase","version":"1"},
		            "properties":{"status":"new","endTime":null}}]
	}`, string(b))

	edge := dms.EdgeApply{
		Space:      "s",
		ExternalID: "a:b",
		Type:       dms.NodeID{Space: "t", ExternalID: "ShopCase.shopFiles"},
		StartNode:  dms.NodeID{Space: "s", ExternalID: "a"},
		EndNode:    dms.NodeID{Space: "s", ExternalID: "b"},
	}
	b, err = json.Marshal(edge)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"instanceType":"edge","space":"s","externalId":"a:b",
		"type":{"space":"t","externalId":"ShopCase.shopFiles"},
		"startNode":{"space":"s","externalId":"a"},
		"endNode":{"space":"s","externalId":"b"}
	}`, string(b))
}

func TestDate(t *testing.T) {
	t.Parallel()

	d := dms.NewDate(2024, time.March, 5)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(b))
	assert.Equal(t, "2024-03-05", d.String())

	var back dms.Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, d.Equal(back.Time))

	require.Error(t, json.Unmarshal([]byte(`"05.03.2024"`), &back))
}
