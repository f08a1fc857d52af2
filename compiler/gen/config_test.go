package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	t.Run("has default header", func(t *testing.T) {
		c := DefaultConfig()

		assert.Equal(t, defaultHeader, c.Header)
		assert.Positive(t, c.Workers)
	})

	t.Run("enables default features", func(t *testing.T) {
		c := DefaultConfig()

		for _, f := range AllFeatures {
			assert.Equal(t, f.Default, c.HasFeature(f.Name), f.Name)
		}
	})
}

func TestConfigFeatureEnabled(t *testing.T) {
	t.Run("returns true for enabled feature", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureGraphQL}}

		enabled, err := c.FeatureEnabled("graphql")

		assert.NoError(t, err)
		assert.True(t, enabled)
	})

	t.Run("returns false for disabled feature", func(t *testing.T) {
		c := &Config{Features: []Feature{FeatureGraphQL}}

		enabled, err := c.FeatureEnabled("edgeapi")

		assert.NoError(t, err)
		assert.False(t, enabled)
	})

	t.Run("returns error for unknown feature", func(t *testing.T) {
		c := &Config{}

		_, err := c.FeatureEnabled("nonexistent")

		assert.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestConfigPackageName(t *testing.T) {
	c := &Config{Package: "github.com/powerops/dmgen/powerops"}
	assert.Equal(t, "powerops", c.PackageName())
}

func TestConfigValidate(t *testing.T) {
	assert.True(t, IsConfigError((&Config{Package: "p"}).validate()))
	assert.True(t, IsConfigError((&Config{Target: "t"}).validate()))
	assert.NoError(t, (&Config{Package: "p", Target: "t"}).validate())
}
