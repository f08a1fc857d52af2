package dm

import (
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/powerops/dmgen/compiler/gen"
)

// genData generates {view}.go: the read type with its loaded relations and
// decoder, the write type and the list type.
func genData(h gen.GeneratorHelper, t *gen.Type) *jen.File {
	f := newFile(h)
	genReadType(f, t)
	if len(t.Edges) > 0 {
		genEdgesType(f, h, t)
	}
	genLinkEdge(f, h, t)
	genDecoder(f, h, t)
	genReadAsWrite(f, t)
	genWriteType(f, h, t)
	genListType(f, t)
	return f
}

func genReadType(f *jen.File, t *gen.Type) {
	f.Commentf("%s is a node of the %s view.", t.Name, t.ExternalID)
	if t.Description != "" {
		f.Comment(oneLine(t.Description))
	}
	f.Type().Id(t.Name).StructFunc(func(g *jen.Group) {
		g.Qual(corePkg, "Model")
		for _, fd := range t.Fields {
			if fd.Description != "" {
				g.Comment(oneLine(fd.Description))
			}
			g.Id(fd.StructField).Add(readType(fd))
		}
		if len(t.Edges) > 0 {
			g.Comment("Edges holds the relations loaded by a query.")
			g.Id("Edges").Id(t.EdgesName())
		}
	})
}

func genEdgesType(f *jen.File, h gen.GeneratorHelper, t *gen.Type) {
	f.Commentf("%s holds the relations of %s loaded by a query.", t.EdgesName(), t.Name)
	f.Type().Id(t.EdgesName()).StructFunc(func(g *jen.Group) {
		for _, e := range t.Edges {
			if e.Description != "" {
				g.Comment(oneLine(e.Description))
			}
			g.Id(e.StructField).Add(edgeType(e))
			if e.Direct {
				continue
			}
			if e.Unique {
				g.Id(e.IDsField()).Op("*").Qual(dmsPkg, "NodeID")
			} else {
				g.Id(e.IDsField()).Index().Qual(dmsPkg, "NodeID")
			}
		}
		g.Comment("loadedTypes holds the information for reporting if a")
		g.Comment("type of relation was loaded by a query.")
		g.Id("loadedTypes").Index(jen.Lit(len(t.Edges))).Bool()
	})
	for _, e := range t.Edges {
		f.Commentf("%sOrErr returns the %s relation, or an error if the query did not load it.", e.StructField, e.Name)
		f.Func().Params(jen.Id("e").Id(t.EdgesName())).Id(e.StructField+"OrErr").Params().Params(edgeType(e), jen.Error()).Block(
			jen.If(jen.Id("e").Dot("loadedTypes").Index(jen.Lit(e.Index))).Block(
				jen.Return(jen.Id("e").Dot(e.StructField), jen.Nil()),
			),
			jen.Return(jen.Nil(), jen.Qual(rootPkg, "NewNotLoadedError").Call(viewQual(h, t, e.Const()))),
		)
	}
}

func genLinkEdge(f *jen.File, h gen.GeneratorHelper, t *gen.Type) {
	f.Comment("LinkEdge sets the nodes of a relation loaded by a query. Targets are")
	f.Comment("read objects, or node IDs when only the edges were fetched.")
	f.Func().Params(jen.Id(readRecv).Op("*").Id(t.Name)).Id("LinkEdge").Params(
		jen.Id("name").String(), jen.Id("targets").Index().Id("any"),
	).BlockFunc(func(g *jen.Group) {
		if len(t.Edges) == 0 {
			return
		}
		g.Switch(jen.Id("name")).BlockFunc(func(sw *jen.Group) {
			for _, e := range t.Edges {
				sw.Case(viewQual(h, t, e.Const())).BlockFunc(func(c *jen.Group) {
					linkCase(c, e)
				})
			}
		})
	})
}

// linkCase fills the relation e from the targets of LinkEdge.
func linkCase(g *jen.Group, e *gen.Edge) {
	field := func(name string) *jen.Statement {
		return jen.Id(readRecv).Dot("Edges").Dot(name)
	}
	target := jen.Op("*").Id(e.Type.Name)
	g.Add(field("loadedTypes").Index(jen.Lit(e.Index))).Op("=").True()
	if e.Direct {
		g.Add(field(e.StructField)).Op("=").Nil()
		set := field(e.StructField).Op("=").Id("v")
		if !e.Unique {
			set = field(e.StructField).Op("=").Append(field(e.StructField), jen.Id("v"))
		}
		g.For(jen.List(jen.Id("_"), jen.Id("target")).Op(":=").Range().Id("targets")).Block(
			jen.If(
				jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Id("target").Assert(target),
				jen.Id("ok"),
			).Block(set),
		)
		return
	}
	g.List(field(e.StructField), field(e.IDsField())).Op("=").List(jen.Nil(), jen.Nil())
	var typed, ids []jen.Code
	if e.Unique {
		typed = []jen.Code{
			jen.Id("id").Op(":=").Id("v").Dot("ID").Call(),
			jen.List(field(e.StructField), field(e.IDsField())).Op("=").List(jen.Id("v"), jen.Op("&").Id("id")),
		}
		ids = []jen.Code{field(e.IDsField()).Op("=").Op("&").Id("v")}
	} else {
		typed = []jen.Code{
			field(e.StructField).Op("=").Append(field(e.StructField), jen.Id("v")),
			field(e.IDsField()).Op("=").Append(field(e.IDsField()), jen.Id("v").Dot("ID").Call()),
		}
		ids = []jen.Code{field(e.IDsField()).Op("=").Append(field(e.IDsField()), jen.Id("v"))}
	}
	g.For(jen.List(jen.Id("_"), jen.Id("target")).Op(":=").Range().Id("targets")).Block(
		jen.Switch(jen.Id("v").Op(":=").Id("target").Assert(jen.Type())).Block(
			jen.Case(target).Block(typed...),
			jen.Case(jen.Qual(dmsPkg, "NodeID")).Block(ids...),
		),
	)
}

func genDecoder(f *jen.File, h gen.GeneratorHelper, t *gen.Type) {
	f.Commentf("%s decodes a node of the %s view.", t.DecoderName(), t.ExternalID)
	f.Func().Id(t.DecoderName()).Params(jen.Id("n").Op("*").Qual(dmsPkg, "Node")).Params(jen.Op("*").Id(t.Name), jen.Error()).Block(
		jen.Id("r").Op(":=").Qual(corePkg, "NewReader").Call(jen.Id("n"), viewQual(h, t, "View")),
		jen.Id("out").Op(":=").Op("&").Id(t.Name).Values(jen.DictFunc(func(d jen.Dict) {
			d[jen.Id("Model")] = jen.Qual(corePkg, "ModelOf").Call(jen.Id("n"))
			for _, fd := range t.Fields {
				d[jen.Id(fd.StructField)] = readExpr(h, t, fd)
			}
		})),
		jen.If(jen.Err().Op(":=").Id("r").Dot("Err").Call(), jen.Err().Op("!=").Nil()).Block(
			jen.Return(jen.Nil(), jen.Qual("fmt", "Errorf").Call(jen.Lit("decode %s: %w"), jen.Id("n").Dot("ID").Call(), jen.Err())),
		),
		jen.Return(jen.Id("out"), jen.Nil()),
	)
}

// readExpr returns the reader call decoding fd.
func readExpr(h gen.GeneratorHelper, t *gen.Type, fd *gen.Field) jen.Code {
	prop := viewQual(h, t, fd.Const())
	r := jen.Id("r")
	switch {
	case fd.IsDirect() && fd.List:
		return r.Dot("Refs").Call(prop)
	case fd.IsDirect():
		return r.Dot("Ref").Call(prop)
	case fd.IsTime() && fd.List:
		return r.Dot("Times").Call(prop)
	case fd.IsTime() && fd.Optional():
		return r.Dot("Time").Call(prop)
	case fd.IsTime():
		return r.Dot("TimeValue").Call(prop)
	case fd.Optional():
		return jen.Qual(corePkg, "ReadOpt").Types(baseType(fd)).Call(r, prop)
	default:
		return jen.Qual(corePkg, "Read").Types(readType(fd)).Call(r, prop)
	}
}

func genReadAsWrite(f *jen.File, t *gen.Type) {
	recv := jen.Id(readRecv).Op("*").Id(t.Name)
	f.Commentf("AsWrite returns the write form of the %s. The IDs of loaded edges", t.Name)
	f.Comment("become edge references.")
	f.Func().Params(recv).Id("AsWrite").Params().Op("*").Id(t.WriteName()).BlockFunc(func(g *jen.Group) {
		g.Id("out").Op(":=").Op("&").Id(t.WriteName()).Values(jen.DictFunc(func(d jen.Dict) {
			d[jen.Id("WriteModel")] = jen.Id(readRecv).Dot("WriteBase").Call()
			for _, fd := range t.Fields {
				if !fd.IsDirect() {
					d[jen.Id(fd.StructField)] = jen.Id(readRecv).Dot(fd.StructField)
				}
			}
		}))
		for _, e := range t.Edges {
			var src *jen.Statement
			if e.Direct {
				src = jen.Id(readRecv).Dot(e.StructField)
			} else {
				src = jen.Id(readRecv).Dot("Edges").Dot(e.IDsField())
			}
			dst := jen.Id("out").Dot(e.StructField)
			if e.Unique {
				g.If(jen.Add(src).Op("!=").Nil()).Block(
					dst.Op("=").Qual(corePkg, "RefTo").Call(jen.Op("*").Add(src.Clone())),
				)
			} else {
				g.For(jen.List(jen.Id("_"), jen.Id("id")).Op(":=").Range().Add(src)).Block(
					jen.Id("out").Dot(e.StructField).Op("=").Append(dst, jen.Qual(corePkg, "RefTo").Call(jen.Id("id"))),
				)
			}
		}
		g.Return(jen.Id("out"))
	})
}

func genWriteType(f *jen.File, h gen.GeneratorHelper, t *gen.Type) {
	f.Commentf("%s creates or updates nodes of the %s view. Unset optional", t.WriteName(), t.ExternalID)
	f.Comment("properties are left unchanged unless written with core.WriteNone.")
	f.Type().Id(t.WriteName()).StructFunc(func(g *jen.Group) {
		g.Qual(corePkg, "WriteModel")
		for _, fd := range t.Fields {
			g.Id(fd.StructField).Add(writeType(fd))
		}
		for _, e := range t.EdgeProperties() {
			g.Id(e.StructField).Add(refType(e))
		}
	})

	recv := jen.Id(writeRecv).Op("*").Id(t.WriteName())
	w := func() *jen.Statement { return jen.Id(writeRecv) }
	f.Comment("NodeID returns the ID of the node, assigning an external ID when none is set.")
	f.Func().Params(recv).Id("NodeID").Params().Qual(dmsPkg, "NodeID").Block(
		jen.If(w().Dot("Space").Op("==").Lit("")).Block(
			w().Dot("Space").Op("=").Add(viewQual(h, t, "Space")),
		),
		w().Dot("EnsureID").Call(viewQual(h, t, "Label")),
		jen.Return(jen.Qual(dmsPkg, "NodeID").Values(jen.Dict{
			jen.Id("Space"):      w().Dot("Space"),
			jen.Id("ExternalID"): w().Dot("ExternalID"),
		})),
	)

	f.Comment("WriteTo appends the node, its edges and nested write objects to rw.")
	f.Func().Params(jen.Id(writeRecv).Op("*").Id(t.WriteName())).Id("WriteTo").Params(
		jen.Id("rw").Op("*").Qual(corePkg, "ResourcesWrite"),
		jen.Id("opts").Qual(corePkg, "WriteOptions"),
	).Error().BlockFunc(func(g *jen.Group) {
		g.Id("id").Op(":=").Add(w()).Dot("NodeID").Call()
		g.If(jen.Op("!").Id("rw").Dot("Visit").Call(jen.Id("id").Dot("Instance").Call())).Block(
			jen.Return(jen.Nil()),
		)
		g.Id("props").Op(":=").Qual(corePkg, "Props").Values()
		for _, fd := range t.Fields {
			g.Add(setProp(h, t, fd))
		}
		g.Id("rw").Dot("AddNode").Call(w().Dot("NodeApply").Call(viewQual(h, t, "View"), jen.Id("props"), jen.Id("opts")))
		for _, fd := range t.Fields {
			if !fd.IsDirect() {
				continue
			}
			var call *jen.Statement
			if fd.List {
				call = jen.Qual(corePkg, "WriteRefs").Call(jen.Id("rw"), w().Dot(fd.StructField), jen.Id("opts"))
			} else {
				call = w().Dot(fd.StructField).Dot("WriteTo").Call(jen.Id("rw"), jen.Id("opts"))
			}
			g.If(jen.Err().Op(":=").Add(call), jen.Err().Op("!=").Nil()).Block(jen.Return(jen.Err()))
		}
		for _, e := range t.EdgeProperties() {
			fn := "WriteEdge"
			if e.Inverse {
				fn = "WriteInwardEdge"
			}
			write := func(ref jen.Code) *jen.Statement {
				return jen.If(
					jen.Err().Op(":=").Qual(corePkg, fn).Call(jen.Id("rw"), viewQual(h, t, e.TypeVar()), jen.Id("id"), ref, jen.Id("opts")),
					jen.Err().Op("!=").Nil(),
				).Block(jen.Return(jen.Err()))
			}
			if e.Unique {
				g.Add(write(w().Dot(e.StructField)))
			} else {
				g.For(jen.List(jen.Id("_"), jen.Id("ref")).Op(":=").Range().Add(w()).Dot(e.StructField)).Block(
					write(jen.Id("ref")),
				)
			}
		}
		g.Return(jen.Nil())
	})
}

// setProp returns the statement adding fd to the property map of a write.
func setProp(h gen.GeneratorHelper, t *gen.Type, fd *gen.Field) jen.Code {
	prop := viewQual(h, t, fd.Const())
	v := jen.Id(writeRecv).Dot(fd.StructField)
	set := func(fn string) jen.Code {
		return jen.Qual(corePkg, fn).Call(jen.Id("props"), prop, v, jen.Id("opts"))
	}
	switch {
	case fd.IsDirect() && fd.List:
		return set("SetRefs")
	case fd.IsDirect():
		return set("SetRef")
	case fd.IsTime() && fd.List:
		return set("SetTimes")
	case fd.IsTime() && fd.Optional():
		return set("SetTime")
	case fd.IsTime():
		return jen.Id("props").Dot("Set").Call(prop, jen.Qual(corePkg, "FormatTimestamp").Call(v))
	case fd.List:
		return set("SetList")
	case fd.IsJSON():
		return set("SetJSON")
	case fd.Optional():
		return set("SetOpt")
	default:
		return jen.Id("props").Dot("Set").Call(prop, v)
	}
}

func genListType(f *jen.File, t *gen.Type) {
	slice := func() *jen.Statement { return jen.Index().Op("*").Id(t.Name) }
	recv := jen.Id(listRecv).Id(t.ListName())
	f.Commentf("%s is a list of %s nodes.", t.ListName(), t.Name)
	f.Type().Id(t.ListName()).Add(slice())

	f.Comment("IDs returns the node IDs in list order.")
	f.Func().Params(recv.Clone()).Id("IDs").Params().Index().Qual(dmsPkg, "NodeID").Block(
		jen.Return(jen.Qual(corePkg, "IDs").Call(slice().Call(jen.Id(listRecv)))),
	)
	f.Comment("ToMap returns the nodes keyed by ID.")
	f.Func().Params(recv.Clone()).Id("ToMap").Params().Map(jen.Qual(dmsPkg, "NodeID")).Op("*").Id(t.Name).Block(
		jen.Return(jen.Qual(corePkg, "ToMap").Call(slice().Call(jen.Id(listRecv)))),
	)
	f.Comment("AsWrite returns the write forms of the nodes.")
	f.Func().Params(recv.Clone()).Id("AsWrite").Params().Index().Op("*").Id(t.WriteName()).Block(
		jen.Id("out").Op(":=").Make(jen.Index().Op("*").Id(t.WriteName()), jen.Len(jen.Id(listRecv))),
		jen.For(jen.List(jen.Id("i"), jen.Id("item")).Op(":=").Range().Id(listRecv)).Block(
			jen.Id("out").Index(jen.Id("i")).Op("=").Id("item").Dot("AsWrite").Call(),
		),
		jen.Return(jen.Id("out")),
	)
}

// oneLine joins a multi-line description for use in a line comment.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
