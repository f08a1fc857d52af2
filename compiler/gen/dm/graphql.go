package dm

import (
	"fmt"
	"strings"

	"github.com/dave/jennifer/jen"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/powerops/dmgen/compiler/gen"
)

// genGraphQLType generates {view}_graphql.go.
func genGraphQLType(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newFile(h)
	f.Commentf("%s is a %s node returned by a GraphQL query. Properties", t.GraphQLName(), t.Name)
	f.Comment("missing from the selection are nil.")
	f.Type().Id(t.GraphQLName()).StructFunc(func(g *jen.Group) {
		g.Qual(corePkg, "GraphQLModel")
		for _, fd := range t.Fields {
			g.Id(fd.StructField).Add(graphQLType(fd)).Tag(tag(fd.Name))
		}
		for _, e := range t.EdgeProperties() {
			g.Id(e.StructField).Add(graphQLEdgeType(e)).Tag(tag(e.Name))
		}
	})
	genAsRead(f, h, t)

	f.Commentf("AsWrite returns the write form of the %s.", t.Name)
	f.Func().Params(jen.Id(graphQLRecv).Op("*").Id(t.GraphQLName())).Id("AsWrite").Params().Op("*").Id(t.WriteName()).Block(
		jen.Id("out").Op(":=").Id(graphQLRecv).Dot("AsRead").Call().Dot("AsWrite").Call(),
		jen.Id("out").Dot("WriteModel").Op("=").Id(graphQLRecv).Dot("WriteModel").Call(),
		jen.Return(jen.Id("out")),
	)
	return f
}

func genAsRead(f *jen.File, h gen.GeneratorHelper, t *gen.Type) {
	gq := func(name string) *jen.Statement { return jen.Id(graphQLRecv).Dot(name) }
	link := func(e *gen.Edge, targets jen.Code) *jen.Statement {
		return jen.Id("out").Dot("LinkEdge").Call(viewQual(h, t, e.Const()), targets)
	}
	f.Commentf("AsRead returns the read form of the %s. Relations present in the", t.Name)
	f.Comment("response are linked.")
	f.Func().Params(jen.Id(graphQLRecv).Op("*").Id(t.GraphQLName())).Id("AsRead").Params().Op("*").Id(t.Name).BlockFunc(func(g *jen.Group) {
		g.Id("out").Op(":=").Op("&").Id(t.Name).Values(jen.DictFunc(func(d jen.Dict) {
			d[jen.Id("Model")] = gq("Model").Call()
			for _, fd := range t.Fields {
				switch {
				case fd.IsDirect(), fd.IsTime() && fd.List:
				case fd.IsTime() && fd.Optional():
					d[jen.Id(fd.StructField)] = gq(fd.StructField).Dot("Ptr").Call()
				case fd.IsTime():
					d[jen.Id(fd.StructField)] = jen.Qual(corePkg, "Deref").Call(gq(fd.StructField).Dot("Ptr").Call())
				case fd.Optional(), fd.List, fd.IsJSON():
					d[jen.Id(fd.StructField)] = gq(fd.StructField)
				default:
					d[jen.Id(fd.StructField)] = jen.Qual(corePkg, "Deref").Call(gq(fd.StructField))
				}
			}
		}))
		for _, fd := range t.Fields {
			if fd.IsTime() && fd.List {
				g.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Add(gq(fd.StructField))).Block(
					jen.Id("out").Dot(fd.StructField).Op("=").Append(jen.Id("out").Dot(fd.StructField), jen.Id("v").Dot("Time")),
				)
			}
		}
		for _, e := range t.Edges {
			src := gq(e.StructField)
			switch {
			case e.Direct && e.Unique:
				g.If(src.Clone().Op("!=").Nil()).Block(
					jen.Id("id").Op(":=").Add(src.Clone()).Dot("ID").Call(),
					jen.Id("out").Dot(e.StructField).Op("=").Op("&").Id("id"),
					link(e, jen.Index().Id("any").Values(src.Clone().Dot("AsRead").Call())),
				)
			case e.Direct:
				g.If(src.Clone().Op("!=").Nil()).Block(
					jen.Id("targets").Op(":=").Make(jen.Index().Id("any"), jen.Lit(0), jen.Len(src.Clone())),
					jen.For(jen.List(jen.Id("_"), jen.Id("v")).Op(":=").Range().Add(src.Clone())).Block(
						jen.Id("out").Dot(e.StructField).Op("=").Append(jen.Id("out").Dot(e.StructField), jen.Id("v").Dot("ID").Call()),
						jen.Id("targets").Op("=").Append(jen.Id("targets"), jen.Id("v").Dot("AsRead").Call()),
					),
					link(e, jen.Id("targets")),
				)
			case e.Unique:
				g.If(src.Clone().Op("!=").Nil()).Block(
					link(e, jen.Index().Id("any").Values(src.Clone().Dot("AsRead").Call())),
				)
			default:
				items := func() *jen.Statement { return src.Clone().Dot("Items") }
				g.If(src.Clone().Op("!=").Nil()).Block(
					jen.Id("targets").Op(":=").Make(jen.Index().Id("any"), jen.Len(items())),
					jen.For(jen.List(jen.Id("i"), jen.Id("v")).Op(":=").Range().Add(items())).Block(
						jen.Id("targets").Index(jen.Id("i")).Op("=").Id("v").Dot("AsRead").Call(),
					),
					link(e, jen.Id("targets")),
				)
			}
		}
		g.Return(jen.Id("out"))
	})
}

// genGraphQL generates graphql.go: the typename registry used to decode
// responses and one fragment per view.
func genGraphQL(h gen.GeneratorHelper) (*jen.File, error) {
	g := h.Graph()
	f := newFile(h)
	f.Comment("graphQLTypes decodes the items of GraphQL responses by __typename.")
	f.Var().Id("graphQLTypes").Op("=").Id("newGraphQLRegistry").Call()

	f.Func().Id("newGraphQLRegistry").Params().Qual(corePkg, "GraphQLRegistry").BlockFunc(func(grp *jen.Group) {
		grp.Id("r").Op(":=").Qual(corePkg, "GraphQLRegistry").Values()
		for _, t := range g.Nodes {
			grp.Qual(corePkg, "RegisterGraphQL").Types(jen.Id(t.GraphQLName())).Call(jen.Id("r"), jen.Lit(t.ExternalID))
		}
		grp.Return(jen.Id("r"))
	})

	defs := make([]jen.Code, 0, len(g.Nodes))
	for _, t := range g.Nodes {
		fragment := Fragment(t)
		if err := validateFragment(fragment); err != nil {
			return nil, fmt.Errorf("fragment of %s: %w", t.Name, err)
		}
		defs = append(defs,
			jen.Commentf("%sFragment selects the properties of %s as %sFields.", t.Name, t.ExternalID, t.Name),
			jen.Id(t.Name+"Fragment").Op("=").Op("`"+fragment+"`"),
		)
	}
	f.Comment("Fragments selecting the properties and direct relations of each view.")
	f.Const().Defs(defs...)
	return f, nil
}

// Fragment returns the GraphQL fragment selecting the properties of t.
// Direct relations select the identifiers of the related nodes.
func Fragment(t *gen.Type) string {
	var b strings.Builder
	fmt.Fprintf(&b, "fragment %sFields on %s {\n", t.Name, t.ExternalID)
	for _, name := range []string{"space", "externalId", "version", "createdTime", "lastUpdatedTime"} {
		fmt.Fprintf(&b, "\t%s\n", name)
	}
	for _, fd := range t.Fields {
		if fd.IsDirect() {
			fmt.Fprintf(&b, "\t%s {\n\t\tspace\n\t\texternalId\n\t}\n", fd.Name)
			continue
		}
		fmt.Fprintf(&b, "\t%s\n", fd.Name)
	}
	b.WriteString("}")
	return b.String()
}

// validateFragment checks the syntax of a fragment document.
func validateFragment(fragment string) error {
	doc, err := parser.ParseQuery(&ast.Source{Name: "fragment", Input: fragment})
	if err != nil {
		return err
	}
	if len(doc.Fragments) != 1 {
		return fmt.Errorf("expected one fragment, got %d", len(doc.Fragments))
	}
	return nil
}
