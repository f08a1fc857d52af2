package dm

import (
	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
	"github.com/powerops/dmgen/compiler/load"
)

// genWhere generates {view}/where.go: typed predicates over the
// properties of the view.
func genWhere(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newViewFile(h, t)
	filter := func() *jen.Statement { return jen.Qual(dmsPkg, "Filter") }
	prop := func(fd *gen.Field) *jen.Statement { return jen.Id("Property").Call(jen.Id(fd.Const())) }

	f.Comment("ExternalIDPrefix matches nodes whose external ID starts with prefix.")
	f.Func().Id("ExternalIDPrefix").Params(jen.Id("prefix").String()).Add(filter()).Block(
		jen.Return(jen.Qual(dmsPkg, "Prefix").Call(jen.Qual(dmsPkg, "NodeProperty").Call(jen.Lit("externalId")), jen.Id("prefix"))),
	)
	f.Comment("SpaceEQ matches nodes in space.")
	f.Func().Id("SpaceEQ").Params(jen.Id("space").String()).Add(filter()).Block(
		jen.Return(jen.Qual(dmsPkg, "Equals").Call(jen.Qual(dmsPkg, "NodeProperty").Call(jen.Lit("space")), jen.Id("space"))),
	)

	for _, fd := range t.Fields {
		if !fd.Filterable() {
			continue
		}
		name := predicate(fd)
		value := baseType(fd)
		if fd.Type == load.TypeBoolean || fd.IsText() || fd.IsNumeric() || fd.IsDirect() || fd.Type == load.TypeDate {
			f.Commentf("%sEQ matches nodes whose %s equals v.", name, fd.Name)
			f.Func().Id(name+"EQ").Params(jen.Id("v").Add(value.Clone())).Add(filter()).Block(
				jen.Return(jen.Qual(dmsPkg, "Equals").Call(prop(fd), jen.Id("v"))),
			)
		}
		if fd.IsText() || fd.IsNumeric() || fd.IsDirect() {
			f.Commentf("%sIn matches nodes whose %s is one of vs.", name, fd.Name)
			f.Func().Id(name+"In").Params(jen.Id("vs").Op("...").Add(value.Clone())).Add(filter()).Block(
				jen.Return(jen.Qual(dmsPkg, "In").Call(prop(fd), jen.Id("vs").Op("..."))),
			)
		}
		if fd.IsText() {
			f.Commentf("%sPrefix matches nodes whose %s starts with prefix.", name, fd.Name)
			f.Func().Id(name+"Prefix").Params(jen.Id("prefix").String()).Add(filter()).Block(
				jen.Return(jen.Qual(dmsPkg, "Prefix").Call(prop(fd), jen.Id("prefix"))),
			)
		}
		if fd.IsNumeric() || fd.IsTime() || fd.Type == load.TypeDate {
			genRange(f, fd, name, value, prop(fd))
		}
		if fd.Nullable || fd.IsDirect() {
			f.Commentf("%sExists matches nodes with a %s value.", name, fd.Name)
			f.Func().Id(name+"Exists").Params().Add(filter()).Block(
				jen.Return(jen.Qual(dmsPkg, "Exists").Call(prop(fd))),
			)
		}
	}
	return f
}

// genRange generates the range predicate of fd. Nil bounds are open.
func genRange(f *jen.File, fd *gen.Field, name string, value, prop *jen.Statement) {
	bound := func(v string) jen.Code {
		switch {
		case fd.IsTime():
			return jen.Qual(corePkg, "FormatTimestamp").Call(jen.Op("*").Id(v))
		case fd.Type == load.TypeDate:
			return jen.Id(v).Dot("String").Call()
		default:
			return jen.Op("*").Id(v)
		}
	}
	f.Commentf("%sRange matches nodes with %s between from and to, inclusive.", name, fd.Name)
	f.Comment("A nil bound is open.")
	f.Func().Id(name+"Range").Params(jen.List(jen.Id("from"), jen.Id("to")).Op("*").Add(value)).Qual(dmsPkg, "Filter").Block(
		jen.Id("f").Op(":=").Qual(dmsPkg, "Range").Call(prop),
		jen.If(jen.Id("from").Op("!=").Nil()).Block(jen.Id("f").Dot("Gte").Call(bound("from"))),
		jen.If(jen.Id("to").Op("!=").Nil()).Block(jen.Id("f").Dot("Lte").Call(bound("to"))),
		jen.Return(jen.Id("f")),
	)
}
