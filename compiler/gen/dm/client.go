package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
)

// genClient generates client.go.
func genClient(h gen.GeneratorHelper) *jen.File {
	g := h.Graph()
	f := newFile(h)

	f.Comment("DataModel identifies the data model the client was generated from.")
	f.Var().Id("DataModel").Op("=").Qual(dmsPkg, "DataModelID").Values(jen.Dict{
		jen.Id("Space"):      jen.Lit(g.Space),
		jen.Id("ExternalID"): jen.Lit(g.ExternalID),
		jen.Id("Version"):    jen.Lit(g.Version),
	})

	f.Commentf("Client is the typed client of the %s data model.", g.ExternalID)
	if g.Description != "" {
		f.Comment(oneLine(g.Description))
	}
	f.Type().Id("Client").StructFunc(func(grp *jen.Group) {
		grp.Id("dms").Op("*").Qual(dmsPkg, "Client")
		grp.Line()
		for _, t := range g.Nodes {
			grp.Id(t.Name).Op("*").Id(t.APIName())
		}
	})

	f.Comment("NewClient returns a client of the data model on top of a platform client.")
	f.Func().Id("NewClient").Params(jen.Id("client").Op("*").Qual(dmsPkg, "Client")).Op("*").Id("Client").Block(
		jen.Return(jen.Op("&").Id("Client").Values(jen.DictFunc(func(d jen.Dict) {
			d[jen.Id("dms")] = jen.Id("client")
			for _, t := range g.Nodes {
				d[jen.Id(t.Name)] = jen.Id("New" + t.APIName()).Call(jen.Id("client"))
			}
		}))),
	)

	f.Comment("DMS returns the platform client.")
	f.Func().Params(jen.Id("c").Op("*").Id("Client")).Id("DMS").Params().Op("*").Qual(dmsPkg, "Client").Block(
		jen.Return(jen.Id("c").Dot("dms")),
	)

	f.Comment("Apply writes items of any view of the data model, with their edges and")
	f.Comment("nested write objects.")
	f.Func().Params(jen.Id("c").Op("*").Id("Client")).Id("Apply").Params(
		jen.Id("ctx").Qual("context", "Context"),
		jen.Id("opts").Qual(corePkg, "WriteOptions"),
		jen.Id("items").Op("...").Qual(corePkg, "Writer"),
	).Params(jen.Op("*").Qual(corePkg, "ResourcesWriteResult"), jen.Error()).Block(
		jen.Id("rw").Op(":=").Qual(corePkg, "NewResourcesWrite").Call(),
		jen.If(jen.Err().Op(":=").Id("rw").Dot("Add").Call(jen.Id("opts"), jen.Id("items").Op("...")), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Qual(rootPkg, "NewMutationError").Call(jen.Lit(g.ExternalID), jen.Lit("apply"), jen.Err())),
		),
		jen.List(jen.Id("res"), jen.Err()).Op(":=").Id("c").Dot("dms").Dot("Instances").Dot("Apply").Call(
			jen.Id("ctx"),
			jen.Op("&").Qual(dmsPkg, "ApplyRequest").Values(jen.Dict{
				jen.Id("Nodes"): jen.Id("rw").Dot("Nodes"),
				jen.Id("Edges"): jen.Id("rw").Dot("Edges"),
			}),
		),
		jen.If(jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Qual(rootPkg, "NewMutationError").Call(jen.Lit(g.ExternalID), jen.Lit("apply"), jen.Err())),
		),
		jen.Return(jen.Id("res"), jen.Nil()),
	)

	if h.FeatureEnabled(gen.FeatureGraphQL.Name) {
		f.Comment("GraphQLQuery runs a GraphQL query against the data model. Items are")
		f.Comment("returned as the generated GraphQL types, e.g. *" + g.Nodes[0].GraphQLName() + ".")
		f.Func().Params(jen.Id("c").Op("*").Id("Client")).Id("GraphQLQuery").Params(
			jen.Id("ctx").Qual("context", "Context"),
			jen.Id("query").String(),
			jen.Id("variables").Map(jen.String()).Id("any"),
		).Params(jen.Index().Id("any"), jen.Error()).Block(
			jen.List(jen.Id("data"), jen.Err()).Op(":=").Id("c").Dot("dms").Dot("GraphQL").Dot("Query").Call(
				jen.Id("ctx"), jen.Id("DataModel"), jen.Id("query"), jen.Id("variables"),
			),
			jen.If(jen.Err().Op("!=").Nil()).Block(
				jen.Return(jen.Nil(), jen.Qual(rootPkg, "NewQueryError").Call(jen.Lit(g.ExternalID), jen.Lit("graphql"), jen.Err())),
			),
			jen.Return(jen.Qual(corePkg, "ParseGraphQL").Call(jen.Id("data"), jen.Id("graphQLTypes"))),
		)
	}
	return f
}
