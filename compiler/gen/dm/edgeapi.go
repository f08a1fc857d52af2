package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
)

// genEdgeAPI generates {view}_{edge}.go.
func genEdgeAPI(h gen.GeneratorHelper, e *gen.Edge) *jen.File {
	t := e.Owner
	f := newFile(h)
	relations := func() *jen.Statement { return jen.Index().Op("*").Qual(corePkg, "Relation") }

	f.Commentf("%s lists the %s edges of %s nodes.", e.APIName(), e.Name, t.Name)
	f.Type().Id(e.APIName()).Struct(
		jen.Op("*").Qual(corePkg, "EdgeAPI"),
	)

	f.Commentf("New%s returns the API of the %s edges.", e.APIName(), e.Name)
	f.Func().Id("New"+e.APIName()).Params(jen.Id("client").Op("*").Qual(dmsPkg, "Client")).Op("*").Id(e.APIName()).Block(
		jen.Return(jen.Op("&").Id(e.APIName()).Values(jen.Dict{
			jen.Id("EdgeAPI"): jen.Op("&").Qual(corePkg, "EdgeAPI").Values(jen.Dict{
				jen.Id("Client"):       jen.Id("client"),
				jen.Id("Type"):         viewQual(h, t, e.TypeVar()),
				jen.Id("DefaultSpace"): viewQual(h, t, "Space"),
				jen.Id("Label"):        jen.Lit(t.Name + "." + e.Name),
			}),
		})),
	)

	own := "From"
	if e.Inverse {
		own = "To"
	}
	f.Commentf("Of lists every %s edge of the %s nodes with the given external IDs.", e.Name, t.Name)
	f.Func().Params(jen.Id(apiRecv).Op("*").Id(e.APIName())).Id("Of").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("externalIDs").Op("...").String(),
	).Params(relations(), jen.Error()).Block(
		jen.Return(jen.Id(apiRecv).Dot("List").Call(
			jen.Id("ctx"),
			jen.Qual(corePkg, "EdgeFilter").Values(jen.Dict{jen.Id(own): jen.Id("externalIDs")}),
			jen.Lit(-1),
		)),
	)
	return f
}
