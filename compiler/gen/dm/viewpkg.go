package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
	"github.com/powerops/dmgen/compiler/load"
)

// genViewPackage generates {view}/{view}.go.
func genViewPackage(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	g := h.Graph()
	f := newViewFile(h, t)
	f.PackageComment("Package " + t.PackageDir() + " holds the identifiers of the " + t.ExternalID + " view,")
	f.PackageComment("its properties and its relations.")

	f.Const().Defs(
		jen.Comment("Label is the Go type name of the view."),
		jen.Id("Label").Op("=").Lit(t.Name),
		jen.Comment("Space is the space of the view and the default space of its nodes."),
		jen.Id("Space").Op("=").Lit(t.Space),
		jen.Comment("ExternalID is the external ID of the view."),
		jen.Id("ExternalID").Op("=").Lit(t.ExternalID),
		jen.Comment("Version is the version of the view."),
		jen.Id("Version").Op("=").Lit(t.Version),
		jen.Comment("TypeSpace is the space of the edge types of the data model."),
		jen.Id("TypeSpace").Op("=").Lit(g.TypeSpace),
	)

	f.Commentf("View identifies the %s view.", t.ExternalID)
	f.Var().Id("View").Op("=").Qual(dmsPkg, "ViewID").Values(jen.Dict{
		jen.Id("Space"):      jen.Id("Space"),
		jen.Id("ExternalID"): jen.Id("ExternalID"),
		jen.Id("Version"):    jen.Id("Version"),
	})

	if len(t.Fields) > 0 {
		f.Const().DefsFunc(func(grp *jen.Group) {
			for _, fd := range t.Fields {
				grp.Commentf("%s is the identifier of the %s property.", fd.Const(), fd.Name)
				grp.Id(fd.Const()).Op("=").Lit(fd.Name)
			}
		})
		f.Comment("Properties lists the stored properties of the view.")
		f.Var().Id("Properties").Op("=").Index().String().ValuesFunc(func(grp *jen.Group) {
			for _, fd := range t.Fields {
				grp.Id(fd.Const())
			}
		})
	}

	if len(t.Edges) > 0 {
		f.Const().DefsFunc(func(grp *jen.Group) {
			for _, e := range t.Edges {
				grp.Commentf("%s is the name of the %s relation.", e.Const(), e.Name)
				grp.Id(e.Const()).Op("=").Lit(e.Name)
			}
		})
	}
	if edges := t.EdgeProperties(); len(edges) > 0 {
		f.Var().DefsFunc(func(grp *jen.Group) {
			for _, e := range edges {
				grp.Commentf("%s is the type of the %s edges.", e.TypeVar(), e.Name)
				grp.Id(e.TypeVar()).Op("=").Qual(dmsPkg, "NodeID").Values(jen.Dict{
					jen.Id("Space"):      jen.Id("TypeSpace"),
					jen.Id("ExternalID"): jen.Lit(e.EdgeType),
				})
			}
		})
	}

	f.Comment("Property returns the reference to a property of the view used by")
	f.Comment("filters and sorts.")
	f.Func().Id("Property").Params(jen.Id("name").String()).Index().String().Block(
		jen.Return(jen.Id("View").Dot("Property").Call(jen.Id("name"))),
	)

	for _, fd := range t.Fields {
		if !fd.Filterable() || fd.IsDirect() || fd.Type == load.TypeBoolean {
			continue
		}
		name := "By" + predicate(fd)
		f.Commentf("%s orders by %s in ascending order. Call Desc on the", name, fd.Name)
		f.Comment("result for descending order.")
		f.Func().Id(name).Params().Qual(dmsPkg, "Sort").Block(
			jen.Return(jen.Qual(dmsPkg, "SortBy").Call(jen.Id("Property").Call(jen.Id(fd.Const())))),
		)
	}
	return f
}
