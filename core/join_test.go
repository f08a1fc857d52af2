package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/powerops/dmgen/core"
)

type row struct {
	key string
	val int
}

func rowKey(r row) string { return r.key }

func TestOrderByKeys(t *testing.T) {
	t.Parallel()

	rows := []row{{"b", 2}, {"a", 1}, {"c", 3}}
	got := core.OrderByKeys([]string{"a", "missing", "c", "b"}, rows, rowKey)
	assert.Equal(t, []row{{"a", 1}, {"c", 3}, {"b", 2}}, got)
}

func TestGroupByKey(t *testing.T) {
	t.Parallel()

	rows := []row{{"a", 1}, {"b", 2}, {"a", 3}}
	groups := core.GroupByKey(rows, rowKey)
	assert.Equal(t, []row{{"a", 1}, {"a", 3}}, groups["a"])
	assert.Equal(t, []row{{"b", 2}}, groups["b"])
	assert.NotContains(t, groups, "z")
}
