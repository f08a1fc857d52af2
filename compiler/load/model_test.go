package load_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/compiler/load"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	m, err := load.Load("testdata/shop.yaml")
	require.NoError(t, err)
	assert.Equal(t, "power_ops_core", m.Space)
	assert.Equal(t, "PowerOps", m.ExternalID)
	assert.Equal(t, "power_ops_types", m.TypeSpace)
	require.Len(t, m.Views, 3)

	c, ok := m.View("ShopCase")
	require.True(t, ok)
	assert.Equal(t, "power_ops_core", c.Space)
	assert.Equal(t, "1", c.Version)
	assert.Equal(t, "A SHOP run for one scenario.", c.Description)
	require.Len(t, c.Properties, 3)

	files := c.Properties[2]
	assert.True(t, files.IsRelation())
	assert.Equal(t, "ShopCase.shopFiles", files.EdgeType)
	assert.Equal(t, load.Outwards, files.Direction)
	assert.Empty(t, c.Properties[1].EdgeType, "direct relations have no edge type")

	_, ok = m.View("Missing")
	assert.False(t, ok)
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	_, err := load.Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load:")
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("TypeSpaceDefault", func(t *testing.T) {
		t.Parallel()
		m, err := load.Parse([]byte(`
space: sp
externalId: M
version: "2"
views:
  - externalId: A
    version: "5"
    properties:
      - name: next
        type: edge
        target: A
        edgeType: A.link
        direction: inwards
`))
		require.NoError(t, err)
		assert.Equal(t, "sp", m.TypeSpace)
		assert.Equal(t, "5", m.Views[0].Version)
		assert.Equal(t, "A.link", m.Views[0].Properties[0].EdgeType)
		assert.Equal(t, load.Inwards, m.Views[0].Properties[0].Direction)
	})

	tests := []struct {
		name string
		yaml string
		want []string
	}{
		{
			name: "UnknownKey",
			yaml: "space: sp\nexternalId: M\nversion: '1'\nunknown: x\n",
			want: []string{"field unknown not found"},
		},
		{
			name: "MissingHeader",
			yaml: "views: []\n",
			want: []string{"model space is required", `invalid model externalId ""`, "model version is required", "model has no views"},
		},
		{
			name: "DuplicateView",
			yaml: `
space: sp
externalId: M
version: "1"
views:
  - externalId: A
    properties: []
  - externalId: A
    properties: []
`,
			want: []string{`duplicate view "A"`},
		},
		{
			name: "BadProperties",
			yaml: `
space: sp
externalId: M
version: "1"
views:
  - externalId: A
    properties:
      - name: 1bad
        type: text
      - name: size
        type: decimal
      - name: owner
        type: direct
      - name: parent
        type: direct
        target: B
      - name: label
        type: text
        target: A
      - name: label
        type: text
      - name: next
        type: edge
        target: A
        direction: sideways
`,
			want: []string{
				`view A: invalid property name "1bad"`,
				`view A: property size has unknown type "decimal"`,
				"view A: relation owner has no target",
				`view A: relation parent targets unknown view "B"`,
				"view A: property label of type text cannot have a target",
				`view A: duplicate property "label"`,
				`view A: edge next has invalid direction "sideways"`,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := load.Parse([]byte(tt.yaml))
			require.Error(t, err)
			for _, w := range tt.want {
				assert.Contains(t, err.Error(), w)
			}
		})
	}
}
