package gen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessages(t *testing.T) {
	cause := errors.New("underlying error")
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "schema",
			err:  NewSchemaError("ShopCase", "startTime", "invalid type", cause),
			want: "dmgen: schema error on view ShopCase property startTime: invalid type: underlying error",
		},
		{
			name: "schema view only",
			err:  &SchemaError{View: "ShopCase"},
			want: "dmgen: schema error on view ShopCase",
		},
		{
			name: "schema empty",
			err:  &SchemaError{},
			want: "dmgen: schema error",
		},
		{
			name: "config with value",
			err:  NewConfigError("Workers", -1, "must be positive"),
			want: `dmgen: config error for "Workers" (value: -1): must be positive`,
		},
		{
			name: "config missing",
			err:  NewConfigError("Package", nil, "cannot be empty"),
			want: `dmgen: config error for "Package": cannot be empty`,
		},
		{
			name: "edge",
			err:  NewEdgeError("ShopCase", "ShopFile", "shopFiles", "invalid reference", cause),
			want: "dmgen: edge error on edge shopFiles (ShopCase -> ShopFile): invalid reference: underlying error",
		},
		{
			name: "edge from only",
			err:  &EdgeError{From: "ShopCase", Edge: "shopFiles", Message: "test"},
			want: "dmgen: edge error on edge shopFiles from ShopCase: test",
		},
		{
			name: "generation",
			err:  NewGenerationError("write", "shop_case.go", "cannot write file", cause),
			want: "dmgen: generation error in phase write (file: shop_case.go): cannot write file: underlying error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}

func TestErrorsIs(t *testing.T) {
	cause := errors.New("io error")

	assert.ErrorIs(t, NewSchemaError("ShopCase", "", "", cause), ErrInvalidSchema)
	assert.ErrorIs(t, NewSchemaError("ShopCase", "", "", cause), cause)
	assert.ErrorIs(t, NewConfigError("Target", nil, "missing"), ErrMissingConfig)
	assert.ErrorIs(t, NewEdgeError("ShopCase", "ShopFile", "shopFiles", "", cause), ErrInvalidEdge)
	assert.ErrorIs(t, NewEdgeError("ShopCase", "ShopFile", "shopFiles", "", cause), cause)
	assert.ErrorIs(t, NewGenerationError("write", "", "", cause), ErrGenerationFailed)
	assert.ErrorIs(t, NewGenerationError("write", "", "", cause), cause)
	assert.NotErrorIs(t, NewSchemaError("ShopCase", "", "", nil), ErrInvalidEdge)
}

func TestErrorTypeChecking(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isSchema bool
		isConfig bool
		isEdge   bool
		isGen    bool
	}{
		{name: "SchemaError", err: NewSchemaError("ShopCase", "", "", nil), isSchema: true},
		{name: "ConfigError", err: NewConfigError("Package", nil, ""), isConfig: true},
		{name: "EdgeError", err: NewEdgeError("ShopCase", "ShopFile", "shopFiles", "", nil), isEdge: true},
		{name: "GenerationError", err: NewGenerationError("format", "", "", nil), isGen: true},
		{name: "wrapped", err: errors.Join(errors.New("load"), NewSchemaError("A", "", "", nil)), isSchema: true},
		{name: "other", err: errors.New("other")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isSchema, IsSchemaError(tt.err))
			assert.Equal(t, tt.isConfig, IsConfigError(tt.err))
			assert.Equal(t, tt.isEdge, IsEdgeError(tt.err))
			assert.Equal(t, tt.isGen, IsGenerationError(tt.err))
		})
	}
}

func TestErrorsAs(t *testing.T) {
	var edgeErr *EdgeError
	require.ErrorAs(t, NewEdgeError("ShopCase", "ShopFile", "shopFiles", "invalid", nil), &edgeErr)
	assert.Equal(t, "ShopCase", edgeErr.From)
	assert.Equal(t, "ShopFile", edgeErr.To)
	assert.Equal(t, "shopFiles", edgeErr.Edge)
}
