package dmgen_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/powerops/dmgen"
)

func TestCacheKey(t *testing.T) {
	t.Parallel()

	base := "https://api.example.com"
	k1 := dmgen.CacheKey{BaseURL: base, Project: "p", Operation: "list", Body: []byte(`{"limit":25}`)}
	k2 := dmgen.CacheKey{BaseURL: base, Project: "p", Operation: "list", Body: []byte(`{"limit":26}`)}
	k3 := dmgen.CacheKey{BaseURL: base, Project: "p", Operation: "list", Body: []byte(`{"limit":25}`)}
	other := dmgen.CacheKey{BaseURL: "https://staging.example.com", Project: "p", Operation: "list", Body: []byte(`{"limit":25}`)}

	assert.Equal(t, k1.String(), k3.String())
	assert.NotEqual(t, k1.String(), k2.String())
	assert.True(t, strings.HasPrefix(k1.String(), "dms:https://api.example.com|p:list:"))
	assert.Equal(t, "dms:https://api.example.com|p:", k1.Prefix())
	assert.True(t, strings.HasPrefix(k1.String(), k1.Prefix()))

	// the same project on another platform shares nothing
	assert.NotEqual(t, k1.String(), other.String())
	assert.False(t, strings.HasPrefix(k1.String(), other.Prefix()))
}
