package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
)

// genQuery generates {view}_query.go: the query step type of the view with
// one traversal method per relation.
func genQuery(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newFile(h)
	self := func() *jen.Statement { return jen.Id(queryRecv).Op("*").Id(t.QueryName()).Types(jen.Id("T")) }

	f.Commentf("%s is a step of %s nodes in a query returning T, the root", t.QueryName(), t.Name)
	f.Comment("type. Traversal methods add steps to the shared query.")
	f.Type().Id(t.QueryName()).Types(jen.Id("T").Id("any")).Struct(
		jen.Id("api").Op("*").Qual(corePkg, "QueryAPI").Types(jen.Id("T")),
		jen.Id("step").String(),
		jen.Id("err").Error(),
	)

	for _, e := range t.Edges {
		next := e.Type.QueryName()
		f.Commentf("%s traverses the %s relation to %s nodes matching opts.", e.StructField, e.Name, e.Type.Name)
		f.Func().Params(self()).Id(e.StructField).Params(
			jen.Id("opts").Op("...").Qual(corePkg, "Option"),
		).Op("*").Id(next).Types(jen.Id("T")).Block(
			jen.Id("next").Op(":=").Op("&").Id(next).Types(jen.Id("T")).Values(jen.Dict{
				jen.Id("api"): jen.Id(queryRecv).Dot("api"),
				jen.Id("err"): jen.Id(queryRecv).Dot("err"),
			}),
			jen.If(jen.Id(queryRecv).Dot("err").Op("==").Nil()).Block(
				jen.List(jen.Id("next").Dot("step"), jen.Id("next").Dot("err")).Op("=").Id(queryRecv).Dot("api").Dot("Builder").Dot("Traverse").Call(
					jen.Id(queryRecv).Dot("step"),
					traversal(h, t, e),
					jen.Id("opts").Op("..."),
				),
			),
			jen.Return(jen.Id("next")),
		)
	}

	f.Comment("Query executes the query and returns the root nodes with the traversed")
	f.Comment("relations linked.")
	f.Func().Params(self()).Id("Query").Params(jen.Id("ctx").Qual("context", "Context")).Params(jen.Index().Id("T"), jen.Error()).Block(
		jen.If(jen.Id(queryRecv).Dot("err").Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Id(queryRecv).Dot("err")),
		),
		jen.Return(jen.Id(queryRecv).Dot("api").Dot("Query").Call(jen.Id("ctx"))),
	)
	return f
}

// traversal returns the core.Traversal literal of relation e.
func traversal(h gen.GeneratorHelper, t *gen.Type, e *gen.Edge) jen.Code {
	return jen.Qual(corePkg, "Traversal").Values(jen.DictFunc(func(d jen.Dict) {
		d[jen.Id("Name")] = viewQual(h, t, e.Const())
		d[jen.Id("View")] = viewQual(h, e.Type, "View")
		d[jen.Id("Decode")] = jen.Qual(corePkg, "AnyDecoder").Types(jen.Op("*").Id(e.Type.Name)).Call(jen.Id(e.Type.DecoderName()))
		if e.Direct {
			d[jen.Id("Kind")] = jen.Qual(corePkg, "ConnDirectOut")
			d[jen.Id("ParentView")] = viewQual(h, t, "View")
			d[jen.Id("Property")] = viewQual(h, t, e.Field.Const())
			return
		}
		d[jen.Id("Kind")] = jen.Qual(corePkg, "ConnEdge")
		d[jen.Id("EdgeType")] = viewQual(h, t, e.TypeVar())
		d[jen.Id("Direction")] = direction(e)
	}))
}
