// Package dm emits typed data-modeling clients for the Jennifer generator.
//
// Usage:
//
//	import (
//	    "github.com/powerops/dmgen/compiler/gen"
//	    "github.com/powerops/dmgen/compiler/gen/dm"
//	)
//
//	generator := gen.NewJenniferGenerator(graph, outDir)
//	generator.WithDialect(dm.NewDialect(generator))
//	generator.Generate(ctx)
//
// Generated code structure:
//
//	{output}/
//	├── client.go            # Client with one API per view
//	├── graphql.go           # GraphQL typename registry and fragments
//	├── {view}.go            # Read, write and list types, node decoder
//	├── {view}_graphql.go    # GraphQL type
//	├── {view}_api.go        # View API embedding core.NodeAPI
//	├── {view}_query.go      # Typed traversal
//	├── {view}_{edge}.go     # Edge API
//	└── {view}/
//	    ├── {view}.go        # View ID, property and edge constants, sorts
//	    └── where.go         # Filter predicates
package dm

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
)

// Import paths of the runtime packages generated code depends on.
const (
	rootPkg = "github.com/powerops/dmgen"
	corePkg = "github.com/powerops/dmgen/core"
	dmsPkg  = "github.com/powerops/dmgen/dms"
)

// newFile returns a file of the generated package that imports the runtime
// packages without aliases.
func newFile(h gen.GeneratorHelper) *jen.File {
	return runtimeImports(h.NewFile())
}

// newViewFile is newFile for the view package of t.
func newViewFile(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	return runtimeImports(h.NewViewFile(t))
}

func runtimeImports(f *jen.File) *jen.File {
	f.ImportNames(map[string]string{
		rootPkg: "dmgen",
		corePkg: "core",
		dmsPkg:  "dms",
	})
	return f
}

// Generate writes the client of g to g.Target.
func Generate(ctx context.Context, g *gen.Graph) error {
	return gen.Generate(ctx, g, func(h gen.GeneratorHelper) gen.Dialect {
		return NewDialect(h)
	})
}

// Dialect implements gen.Dialect and all optional generators.
type Dialect struct {
	h gen.GeneratorHelper
}

// NewDialect returns the data-modeling dialect.
func NewDialect(h gen.GeneratorHelper) *Dialect {
	return &Dialect{h: h}
}

// Compile-time checks of the optional generators.
var (
	_ gen.Dialect          = (*Dialect)(nil)
	_ gen.WhereGenerator   = (*Dialect)(nil)
	_ gen.EdgeAPIGenerator = (*Dialect)(nil)
	_ gen.GraphQLGenerator = (*Dialect)(nil)
)

// Name returns the dialect name.
func (d *Dialect) Name() string { return "dm" }

// GenData generates {view}.go.
func (d *Dialect) GenData(t *gen.Type) *jen.File { return genData(d.h, t) }

// GenAPI generates {view}_api.go.
func (d *Dialect) GenAPI(t *gen.Type) *jen.File { return genAPI(d.h, t) }

// GenQuery generates {view}_query.go.
func (d *Dialect) GenQuery(t *gen.Type) *jen.File { return genQuery(d.h, t) }

// GenViewPackage generates {view}/{view}.go.
func (d *Dialect) GenViewPackage(t *gen.Type) *jen.File { return genViewPackage(d.h, t) }

// GenWhere generates {view}/where.go.
func (d *Dialect) GenWhere(t *gen.Type) *jen.File { return genWhere(d.h, t) }

// GenEdgeAPI generates {view}_{edge}.go.
func (d *Dialect) GenEdgeAPI(e *gen.Edge) *jen.File { return genEdgeAPI(d.h, e) }

// GenGraphQLType generates {view}_graphql.go.
func (d *Dialect) GenGraphQLType(t *gen.Type) *jen.File { return genGraphQLType(d.h, t) }

// GenGraphQL generates graphql.go.
func (d *Dialect) GenGraphQL() (*jen.File, error) { return genGraphQL(d.h) }

// GenClient generates client.go.
func (d *Dialect) GenClient() *jen.File { return genClient(d.h) }
