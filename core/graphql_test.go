package core_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/core"
)

type caseGraphQL struct {
	core.GraphQLModel
	Status *string                         `json:"status"`
	Files  *core.GraphQLList[*fileGraphQL] `json:"files"`
}

type fileGraphQL struct {
	core.GraphQLModel
	Name *string `json:"name"`
}

func TestParseGraphQL(t *testing.T) {
	t.Parallel()

	registry := core.GraphQLRegistry{}
	core.RegisterGraphQL[caseGraphQL](registry, "Case")
	core.RegisterGraphQL[fileGraphQL](registry, "File")

	t.Run("List", func(t *testing.T) {
		t.Parallel()
		data := json.RawMessage(`{"listCase":{"items":[{
			"__typename":"Case","space":"sp","externalId":"a","createdTime":"2024-01-02T03:04:05.000Z",
			"status":"ok","files":{"items":[{"__typename":"File","space":"sp","externalId":"f1","name":"F1"}]}
		}],"pageInfo":{"hasNextPage":false}}}`)
		got, err := core.ParseGraphQL(data, registry)
		require.NoError(t, err)
		require.Len(t, got, 1)
		c := got[0].(*caseGraphQL)
		assert.Equal(t, "ok", *c.Status)
		assert.Equal(t, time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC), c.CreatedTime.UTC())
		require.Len(t, c.Files.Items, 1)
		assert.Equal(t, "F1", *c.Files.Items[0].Name)
		assert.Equal(t, "sp", c.Model().Space)
	})

	t.Run("GetByIDAndSearch", func(t *testing.T) {
		t.Parallel()
		data := json.RawMessage(`{
			"searchFile":{"items":[{"__typename":"File","space":"sp","externalId":"f2"}]},
			"getCaseById":{"items":[{"__typename":"Case","space":"sp","externalId":"a"}]}
		}`)
		got, err := core.ParseGraphQL(data, registry)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.IsType(t, &caseGraphQL{}, got[0])
		assert.IsType(t, &fileGraphQL{}, got[1])
	})

	t.Run("Aggregate", func(t *testing.T) {
		t.Parallel()
		data := json.RawMessage(`{"aggregateCase":{"items":[{"group":{"status":"ok"},"count":{"externalId":3}}]}}`)
		got, err := core.ParseGraphQL(data, registry)
		require.NoError(t, err)
		require.Len(t, got, 1)
		agg := got[0].(*core.GraphQLAggregate)
		assert.Equal(t, "ok", agg.Group["status"])
		assert.Equal(t, 3.0, agg.Count["externalId"])
	})

	t.Run("Errors", func(t *testing.T) {
		t.Parallel()
		_, err := core.ParseGraphQL(json.RawMessage(`{"listCase":{"items":[{"space":"sp"}]}}`), registry)
		assert.ErrorContains(t, err, "__typename")
		_, err = core.ParseGraphQL(json.RawMessage(`{"listCase":{"items":[{"__typename":"Other"}]}}`), registry)
		assert.ErrorContains(t, err, "unknown __typename")
		_, err = core.ParseGraphQL(json.RawMessage(`{"createCase":{}}`), registry)
		assert.ErrorContains(t, err, "unsupported")
	})

	t.Run("NullField", func(t *testing.T) {
		t.Parallel()
		got, err := core.ParseGraphQL(json.RawMessage(`{"getCaseById":null}`), registry)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}
