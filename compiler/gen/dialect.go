package gen

import "github.com/dave/jennifer/jen"

// TypeGenerator generates the files of one view.
// Each method is called once per view of the data model.
type TypeGenerator interface {
	// GenData generates the read, write and list types ({view}.go)
	GenData(t *Type) *jen.File
	// GenAPI generates the view API ({view}_api.go)
	GenAPI(t *Type) *jen.File
	// GenQuery generates the typed traversal ({view}_query.go)
	GenQuery(t *Type) *jen.File
	// GenViewPackage generates view constants ({view}/{view}.go)
	GenViewPackage(t *Type) *jen.File
}

// GraphGenerator generates graph-level code.
// Each method is called once per generation run.
type GraphGenerator interface {
	// GenClient generates the client (client.go)
	GenClient() *jen.File
}

// WhereGenerator generates typed filter predicates ({view}/where.go).
type WhereGenerator interface {
	GenWhere(t *Type) *jen.File
}

// EdgeAPIGenerator generates edge APIs ({view}_{edge}.go).
type EdgeAPIGenerator interface {
	GenEdgeAPI(e *Edge) *jen.File
}

// GraphQLGenerator generates GraphQL types and the typename registry.
type GraphQLGenerator interface {
	// GenGraphQLType generates the GraphQL type ({view}_graphql.go)
	GenGraphQLType(t *Type) *jen.File
	// GenGraphQL generates the registry and fragments (graphql.go)
	GenGraphQL() (*jen.File, error)
}

// Dialect is the minimal interface of a client emitter. Optional
// capabilities are detected through WhereGenerator, EdgeAPIGenerator and
// GraphQLGenerator.
type Dialect interface {
	Name() string
	TypeGenerator
	GraphGenerator
}

// GeneratorHelper gives dialects access to the graph and shared settings.
type GeneratorHelper interface {
	// Graph returns the data model graph.
	Graph() *Graph
	// NewFile returns a file of the generated package.
	NewFile() *jen.File
	// NewViewFile returns a file of the view package of t.
	NewViewFile(t *Type) *jen.File
	// Pkg returns the import path of the generated package.
	Pkg() string
	// ViewPkg returns the import path of the view package of t.
	ViewPkg(t *Type) string
	// FeatureEnabled reports if a feature-flag is enabled.
	FeatureEnabled(name string) bool
}
