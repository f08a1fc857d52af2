package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
)

// genAPI generates {view}_api.go.
func genAPI(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newFile(h)
	nodeAPI := func() *jen.Statement {
		return jen.Qual(corePkg, "NodeAPI").Types(jen.Op("*").Id(t.Name), jen.Op("*").Id(t.WriteName()))
	}
	edgeAPIs := h.FeatureEnabled(gen.FeatureEdgeAPI.Name)

	f.Commentf("%s reads and writes nodes of the %s view.", t.APIName(), t.ExternalID)
	f.Type().Id(t.APIName()).StructFunc(func(g *jen.Group) {
		g.Op("*").Add(nodeAPI())
		if !edgeAPIs {
			return
		}
		for _, e := range t.EdgeProperties() {
			g.Commentf("%s lists the %s edges.", e.StructField, e.Name)
			g.Id(e.StructField).Op("*").Id(e.APIName())
		}
	})

	f.Commentf("New%s returns the API of the %s view.", t.APIName(), t.ExternalID)
	f.Func().Id("New"+t.APIName()).Params(jen.Id("client").Op("*").Qual(dmsPkg, "Client")).Op("*").Id(t.APIName()).Block(
		jen.Return(jen.Op("&").Id(t.APIName()).Values(jen.DictFunc(func(d jen.Dict) {
			d[jen.Id("NodeAPI")] = jen.Op("&").Add(nodeAPI()).Values(jen.DictFunc(func(d jen.Dict) {
				d[jen.Id("Client")] = jen.Id("client")
				d[jen.Id("View")] = viewQual(h, t, "View")
				d[jen.Id("Label")] = viewQual(h, t, "Label")
				d[jen.Id("DefaultSpace")] = viewQual(h, t, "Space")
				d[jen.Id("Decode")] = jen.Id(t.DecoderName())
				if edges := t.EdgeProperties(); len(edges) > 0 {
					d[jen.Id("Edges")] = jen.Index().Qual(corePkg, "EdgeProperty").ValuesFunc(func(g *jen.Group) {
						for _, e := range edges {
							g.Values(jen.Dict{
								jen.Id("Name"):      viewQual(h, t, e.Const()),
								jen.Id("Type"):      viewQual(h, t, e.TypeVar()),
								jen.Id("Direction"): direction(e),
							})
						}
					})
				}
			}))
			if edgeAPIs {
				for _, e := range t.EdgeProperties() {
					d[jen.Id(e.StructField)] = jen.Id("New" + e.APIName()).Call(jen.Id("client"))
				}
			}
		}))),
	)

	f.Commentf("Query starts a query of the %s nodes matching opts. Relations are", t.Name)
	f.Commentf("traversed with the methods of %s.", t.QueryName())
	f.Func().Params(jen.Id(apiRecv).Op("*").Id(t.APIName())).Id("Query").Params(
		jen.Id("opts").Op("...").Qual(corePkg, "Option"),
	).Op("*").Id(t.QueryName()).Types(jen.Op("*").Id(t.Name)).Block(
		jen.Id("api").Op(":=").Qual(corePkg, "NewQueryAPI").Types(jen.Op("*").Id(t.Name)).Call(
			jen.Id(apiRecv).Dot("Client"), viewQual(h, t, "Label"), viewQual(h, t, "View"), jen.Id(t.DecoderName()), jen.Id("opts").Op("..."),
		),
		jen.Return(jen.Op("&").Id(t.QueryName()).Types(jen.Op("*").Id(t.Name)).Values(jen.Dict{
			jen.Id("api"):  jen.Id("api"),
			jen.Id("step"): jen.Id("api").Dot("Builder").Dot("Root").Call().Dot("Name"),
		})),
	)
	return f
}

// direction returns the dms direction of an edge-backed relation.
func direction(e *gen.Edge) *jen.Statement {
	if e.Inverse {
		return jen.Qual(dmsPkg, "Inwards")
	}
	return jen.Qual(dmsPkg, "Outwards")
}
