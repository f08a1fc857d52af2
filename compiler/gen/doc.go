// Package gen generates typed data-modeling clients from a data-model
// description.
//
// # Architecture
//
// The code generation pipeline follows this flow:
//
//	Data model (model.yaml)
//	        ↓
//	   load.Model
//	        ↓
//	   Graph (Types, Fields, Edges)
//	        ↓
//	   Dialect (gen/dm emitters)
//	        ↓
//	   Generated client package
//
// # Key Types
//
//   - Graph: Holds all Type definitions of one data model
//   - Type: A view with its Go names, fields and edges
//   - Field: A stored property, including direct relations
//   - Edge: A relation that can be traversed, either a direct relation or
//     an edge-backed property
//   - Config: Global configuration for code generation
//
// # Interface Hierarchy
//
//	Dialect
//	├── Name() string
//	├── TypeGenerator (per-view files)
//	│   └── GenData, GenAPI, GenQuery, GenViewPackage
//	└── GraphGenerator (graph-level files)
//	    └── GenClient
//
//	WhereGenerator (optional, feature "where")
//	EdgeAPIGenerator (optional, feature "edgeapi")
//	GraphQLGenerator (optional, feature "graphql")
//
// # Configuration
//
//	config, err := gen.NewConfig(
//	    gen.WithTarget("./powerops"),
//	    gen.WithPackage("github.com/org/project/powerops"),
//	)
//	graph, err := gen.NewGraph(config, model)
//
// # Error Handling
//
//   - SchemaError: invalid data model
//   - ConfigError: invalid option or missing setting
//   - EdgeError: relation that cannot be resolved
//   - GenerationError: rendering or writing a file failed
//
// # Generated Output
//
//	{target}/
//	├── client.go             // Client with one API per view
//	├── graphql.go            // GraphQL typename registry and fragments
//	├── {view}.go             // Read, write and list types
//	├── {view}_graphql.go     // GraphQL type
//	├── {view}_api.go         // View API
//	├── {view}_query.go       // Typed traversal
//	├── {view}_{edge}.go      // Edge API
//	└── {view}/
//	    ├── {view}.go         // View ID, property and edge constants
//	    └── where.go          // Filter predicates
package gen
