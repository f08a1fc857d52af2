package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNaming(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, pascal, snake, field string
	}{
		{"shopCase", "ShopCase", "shop_case", "ShopCase"},
		{"ShopCase", "ShopCase", "shop_case", "ShopCase"},
		{"bid_matrix", "BidMatrix", "bid_matrix", "BidMatrix"},
		{"alert", "Alert", "alert", "Alert"},
		{"version", "Version", "version", "Version_"},
		{"edges", "Edges", "edges", "Edges_"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.pascal, pascal(tt.in))
			assert.Equal(t, tt.snake, snake(tt.pascal))
			assert.Equal(t, tt.field, structField(tt.in))
		})
	}
}

func TestReceiver(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "sc", receiver("ShopCase"))
	assert.Equal(t, "a", receiver("Alert"))
	assert.Equal(t, "x", receiver("lower"))
}
