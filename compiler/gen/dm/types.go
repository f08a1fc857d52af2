package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
	"github.com/powerops/dmgen/compiler/load"
)

// Receivers of the generated types. Fixed names never collide with the
// locals of generated method bodies.
const (
	readRecv    = "_m"
	writeRecv   = "_w"
	graphQLRecv = "_g"
	listRecv    = "_l"
	apiRecv     = "_a"
	queryRecv   = "_q"
)

// baseType returns the Go type of one value of f.
func baseType(f *gen.Field) *jen.Statement {
	switch f.Type {
	case load.TypeText:
		return jen.String()
	case load.TypeBoolean:
		return jen.Bool()
	case load.TypeInt32:
		return jen.Int32()
	case load.TypeInt64:
		return jen.Int64()
	case load.TypeFloat32:
		return jen.Float32()
	case load.TypeFloat64:
		return jen.Float64()
	case load.TypeTimestamp:
		return jen.Qual("time", "Time")
	case load.TypeDate:
		return jen.Qual(dmsPkg, "Date")
	case load.TypeJSON:
		return jen.Qual("encoding/json", "RawMessage")
	default:
		return jen.Qual(dmsPkg, "NodeID")
	}
}

// readType returns the type of f on the read type.
func readType(f *gen.Field) *jen.Statement {
	switch {
	case f.List:
		return jen.Index().Add(baseType(f))
	case f.IsDirect(), f.Optional():
		return jen.Op("*").Add(baseType(f))
	default:
		return baseType(f)
	}
}

// writeType returns the type of f on the write type.
func writeType(f *gen.Field) *jen.Statement {
	if f.IsDirect() {
		return refType(f.Edge)
	}
	return readType(f)
}

// refType returns the type of a relation on the write type.
func refType(e *gen.Edge) *jen.Statement {
	if e.Unique {
		return jen.Op("*").Qual(corePkg, "NodeRef")
	}
	return jen.Index().Op("*").Qual(corePkg, "NodeRef")
}

// edgeType returns the type of a loaded relation on the Edges struct.
func edgeType(e *gen.Edge) *jen.Statement {
	if e.Unique {
		return jen.Op("*").Id(e.Type.Name)
	}
	return jen.Index().Op("*").Id(e.Type.Name)
}

// graphQLType returns the type of f on the GraphQL type.
func graphQLType(f *gen.Field) *jen.Statement {
	switch {
	case f.IsDirect() && f.List:
		return jen.Index().Op("*").Id(f.Edge.Type.GraphQLName())
	case f.IsDirect():
		return jen.Op("*").Id(f.Edge.Type.GraphQLName())
	case f.IsTime() && f.List:
		return jen.Index().Qual(corePkg, "Timestamp")
	case f.IsTime():
		return jen.Op("*").Qual(corePkg, "Timestamp")
	case f.List:
		return jen.Index().Add(baseType(f))
	case f.IsJSON():
		return baseType(f)
	default:
		return jen.Op("*").Add(baseType(f))
	}
}

// graphQLEdgeType returns the type of an edge-backed relation on the
// GraphQL type.
func graphQLEdgeType(e *gen.Edge) *jen.Statement {
	if e.Unique {
		return jen.Op("*").Id(e.Type.GraphQLName())
	}
	return jen.Op("*").Qual(corePkg, "GraphQLList").Types(jen.Op("*").Id(e.Type.GraphQLName()))
}

// tag returns the JSON struct tag of a GraphQL field.
func tag(name string) map[string]string {
	return map[string]string{"json": name + ",omitempty"}
}

// viewQual returns a reference to an identifier of the view package of t.
func viewQual(h gen.GeneratorHelper, t *gen.Type, name string) *jen.Statement {
	return jen.Qual(h.ViewPkg(t), name)
}

// predicate returns the prefix of the predicates and sorts of f, e.g.
// "StartTime". Reserved names keep their underscore so "externalID" cannot
// shadow ExternalIDPrefix.
func predicate(f *gen.Field) string {
	return f.StructField
}
