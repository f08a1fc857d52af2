package dm_test

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/compiler/gen"
	"github.com/powerops/dmgen/compiler/gen/dm"
	"github.com/powerops/dmgen/compiler/load"
)

const testModel = `
space: shop
externalId: Shop
version: "2"
typeSpace: shop_types
views:
  - externalId: ShopScenario
    description: A scenario run by cases.
    properties:
      - name: name
        type: text
      - name: commands
        type: text
        list: true
      - name: model
        type: direct
        target: ShopModel
        nullable: true
  - externalId: ShopModel
    properties:
      - name: penaltyLimit
        type: float64
        nullable: true
      - name: files
        type: json
        list: true
  - externalId: ShopCase
    properties:
      - name: startTime
        type: timestamp
      - name: endTime
        type: timestamp
        nullable: true
      - name: runTimes
        type: timestamp
        list: true
      - name: status
        type: text
        nullable: true
      - name: isReady
        type: boolean
      - name: order
        type: int32
      - name: deliveryDate
        type: date
        nullable: true
      - name: meta
        type: json
        nullable: true
      - name: scenario
        type: direct
        target: ShopScenario
        nullable: true
      - name: related
        type: direct
        target: ShopCase
        list: true
      - name: shopFiles
        type: edge
        target: ShopFile
        list: true
  - externalId: ShopFile
    properties:
      - name: name
        type: text
      - name: owner
        type: edge
        target: ShopCase
        edgeType: ShopCase.shopFiles
        direction: inwards
`

func testGraph(t *testing.T, opts ...gen.Option) *gen.Graph {
	t.Helper()
	m, err := load.Parse([]byte(testModel))
	require.NoError(t, err)
	c, err := gen.NewConfig(append([]gen.Option{
		gen.WithPackage("github.com/test/shop"),
		gen.WithTarget(t.TempDir()),
		gen.WithWorkers(4),
	}, opts...)...)
	require.NoError(t, err)
	g, err := gen.NewGraph(c, m)
	require.NoError(t, err)
	return g
}

// generate runs the dialect and returns the output directory.
func generate(t *testing.T, opts ...gen.Option) string {
	t.Helper()
	g := testGraph(t, opts...)
	require.NoError(t, dm.Generate(context.Background(), g))
	return g.Target
}

func read(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	return string(data)
}

// decls parses a generated file and returns its top-level declarations:
// "Type", "Func" and "Recv.Method".
func decls(t *testing.T, dir, name string) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), filepath.Join(dir, name), nil, parser.SkipObjectResolution)
	require.NoError(t, err)
	var out []string
	for _, d := range f.Decls {
		switch d := d.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				out = append(out, d.Name.Name)
				continue
			}
			out = append(out, recvName(d.Recv.List[0].Type)+"."+d.Name.Name)
		case *ast.GenDecl:
			for _, s := range d.Specs {
				switch s := s.(type) {
				case *ast.TypeSpec:
					out = append(out, s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						out = append(out, n.Name)
					}
				}
			}
		}
	}
	return out
}

func recvName(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return ""
}

func TestGenerate(t *testing.T) {
	dir := generate(t)
	var files []string
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"client.go", "graphql.go",
		"shop_scenario.go", "shop_scenario_api.go", "shop_scenario_query.go", "shop_scenario_graphql.go",
		"shopscenario/shopscenario.go", "shopscenario/where.go",
		"shop_model.go", "shop_model_api.go", "shop_model_query.go", "shop_model_graphql.go",
		"shopmodel/shopmodel.go", "shopmodel/where.go",
		"shop_case.go", "shop_case_api.go", "shop_case_query.go", "shop_case_graphql.go",
		"shopcase/shopcase.go", "shopcase/where.go", "shop_case_shop_files.go",
		"shop_file.go", "shop_file_api.go", "shop_file_query.go", "shop_file_graphql.go",
		"shopfile/shopfile.go", "shopfile/where.go", "shop_file_owner.go",
	}, files)

	for _, name := range files {
		content := read(t, dir, name)
		assert.True(t, strings.HasPrefix(content, "// Code generated by dmgen, DO NOT EDIT."), name)
		_, err := parser.ParseFile(token.NewFileSet(), name, content, parser.AllErrors)
		assert.NoError(t, err, name)
	}
}

func TestGenData(t *testing.T) {
	dir := generate(t)
	assert.ElementsMatch(t, []string{
		"ShopCase", "ShopCaseEdges",
		"ShopCaseEdges.ScenarioOrErr", "ShopCaseEdges.RelatedOrErr", "ShopCaseEdges.ShopFilesOrErr",
		"ShopCase.LinkEdge", "decodeShopCase", "ShopCase.AsWrite",
		"ShopCaseWrite", "ShopCaseWrite.NodeID", "ShopCaseWrite.WriteTo",
		"ShopCaseList", "ShopCaseList.IDs", "ShopCaseList.ToMap", "ShopCaseList.AsWrite",
	}, decls(t, dir, "shop_case.go"))

	src := read(t, dir, "shop_case.go")
	for _, want := range []string{
		`"github.com/test/shop/shopcase"`,
		"r.TimeValue(shopcase.PropertyStartTime)",
		"r.Time(shopcase.PropertyEndTime)",
		"r.Times(shopcase.PropertyRunTimes)",
		"core.ReadOpt[string](r, shopcase.PropertyStatus)",
		"core.Read[bool](r, shopcase.PropertyIsReady)",
		"core.Read[json.RawMessage](r, shopcase.PropertyMeta)",
		"r.Ref(shopcase.PropertyScenario)",
		"r.Refs(shopcase.PropertyRelated)",
		`fmt.Errorf("decode %s: %w", n.ID(), err)`,
		"props.Set(shopcase.PropertyStartTime, core.FormatTimestamp(_w.StartTime))",
		"core.SetTime(props, shopcase.PropertyEndTime, _w.EndTime, opts)",
		"core.SetTimes(props, shopcase.PropertyRunTimes, _w.RunTimes, opts)",
		"core.SetOpt(props, shopcase.PropertyStatus, _w.Status, opts)",
		"core.SetJSON(props, shopcase.PropertyMeta, _w.Meta, opts)",
		"core.SetRef(props, shopcase.PropertyScenario, _w.Scenario, opts)",
		"core.SetRefs(props, shopcase.PropertyRelated, _w.Related, opts)",
		"_w.Scenario.WriteTo(rw, opts)",
		"core.WriteRefs(rw, _w.Related, opts)",
		"core.WriteEdge(rw, shopcase.EdgeTypeShopFiles, id, ref, opts)",
		"dmgen.NewNotLoadedError(shopcase.EdgeShopFiles)",
		"case *ShopFile:",
		"case dms.NodeID:",
		"out.Scenario = core.RefTo(*_m.Scenario)",
		"range _m.Edges.ShopFilesIDs",
	} {
		assert.Contains(t, src, want)
	}

	// Unique inverse edges keep a single target and are written inwards.
	src = read(t, dir, "shop_file.go")
	assert.Contains(t, src, "core.WriteInwardEdge(rw, shopfile.EdgeTypeOwner, id, _w.Owner, opts)")
	assert.Contains(t, src, "_m.Edges.OwnerID = &v")
	assert.Contains(t, src, "func (e ShopFileEdges) OwnerOrErr() (*ShopCase, error)")
}

func TestGenAPI(t *testing.T) {
	dir := generate(t)
	assert.ElementsMatch(t, []string{"ShopCaseAPI", "NewShopCaseAPI", "ShopCaseAPI.Query"}, decls(t, dir, "shop_case_api.go"))
	src := read(t, dir, "shop_case_api.go")
	assert.Contains(t, src, "*core.NodeAPI[*ShopCase, *ShopCaseWrite]")
	assert.Contains(t, src, "NewShopCaseShopFilesAPI(client)")
	assert.Contains(t, src, "dms.Outwards")
	assert.Contains(t, src, "core.NewQueryAPI[*ShopCase](_a.Client, shopcase.Label, shopcase.View, decodeShopCase, opts...)")
	assert.Contains(t, read(t, dir, "shop_file_api.go"), "dms.Inwards")

	assert.ElementsMatch(t, []string{"ShopCaseShopFilesAPI", "NewShopCaseShopFilesAPI", "ShopCaseShopFilesAPI.Of"}, decls(t, dir, "shop_case_shop_files.go"))
	assert.Contains(t, read(t, dir, "shop_case_shop_files.go"), "core.EdgeFilter{From: externalIDs}")
	assert.Contains(t, read(t, dir, "shop_file_owner.go"), "core.EdgeFilter{To: externalIDs}")
}

func TestGenQuery(t *testing.T) {
	dir := generate(t)
	assert.ElementsMatch(t, []string{
		"ShopCaseQuery", "ShopCaseQuery.Scenario", "ShopCaseQuery.Related", "ShopCaseQuery.ShopFiles", "ShopCaseQuery.Query",
	}, decls(t, dir, "shop_case_query.go"))
	src := read(t, dir, "shop_case_query.go")
	assert.Contains(t, src, "type ShopCaseQuery[T any] struct")
	assert.Contains(t, src, "func (_q *ShopCaseQuery[T]) Scenario(opts ...core.Option) *ShopScenarioQuery[T]")
	assert.Contains(t, src, "core.ConnDirectOut")
	assert.Contains(t, src, "core.ConnEdge")
	assert.Contains(t, src, "core.AnyDecoder[*ShopFile](decodeShopFile)")
	assert.Contains(t, src, "_q.api.Builder.Traverse(")
}

func TestGenViewPackage(t *testing.T) {
	dir := generate(t)
	got := decls(t, dir, "shopcase/shopcase.go")
	for _, want := range []string{
		"Label", "Space", "ExternalID", "Version", "TypeSpace", "View", "Properties", "Property",
		"PropertyStartTime", "PropertyScenario", "EdgeScenario", "EdgeShopFiles", "EdgeTypeShopFiles",
		"ByStartTime", "ByStatus", "ByOrder", "ByDeliveryDate",
	} {
		assert.Contains(t, got, want)
	}
	assert.NotContains(t, got, "ByIsReady")
	assert.NotContains(t, got, "ByMeta")
	assert.NotContains(t, got, "EdgeTypeScenario")

	src := read(t, dir, "shopcase/shopcase.go")
	assert.Contains(t, src, "package shopcase")
	assert.Contains(t, src, `"ShopCase.shopFiles"`)
	assert.Contains(t, src, `"shop_types"`)
	assert.Contains(t, read(t, dir, "shopfile/shopfile.go"), `"ShopCase.shopFiles"`)
}

func TestGenWhere(t *testing.T) {
	dir := generate(t)
	assert.ElementsMatch(t, []string{
		"ExternalIDPrefix", "SpaceEQ",
		"StartTimeRange",
		"EndTimeRange", "EndTimeExists",
		"StatusEQ", "StatusIn", "StatusPrefix", "StatusExists",
		"IsReadyEQ",
		"OrderEQ", "OrderIn", "OrderRange",
		"DeliveryDateEQ", "DeliveryDateRange", "DeliveryDateExists",
		"ScenarioEQ", "ScenarioIn", "ScenarioExists",
	}, decls(t, dir, "shopcase/where.go"))
	src := read(t, dir, "shopcase/where.go")
	assert.Contains(t, src, "func OrderRange(from, to *int32) dms.Filter")
	assert.Contains(t, src, "f.Gte(core.FormatTimestamp(*from))")
	assert.Contains(t, src, "f.Lte(to.String())")
	assert.Contains(t, src, "func ScenarioIn(vs ...dms.NodeID) dms.Filter")
}

func TestGenGraphQL(t *testing.T) {
	dir := generate(t)
	assert.ElementsMatch(t, []string{
		"ShopCaseGraphQL", "ShopCaseGraphQL.AsRead", "ShopCaseGraphQL.AsWrite",
	}, decls(t, dir, "shop_case_graphql.go"))
	src := read(t, dir, "shop_case_graphql.go")
	for _, want := range []string{
		"*core.Timestamp",
		"[]core.Timestamp",
		"*ShopScenarioGraphQL",
		"[]*ShopCaseGraphQL",
		"*core.GraphQLList[*ShopFileGraphQL]",
		"`json:\"shopFiles,omitempty\"`",
		"core.Deref(_g.StartTime.Ptr())",
		"out.LinkEdge(shopcase.EdgeShopFiles, targets)",
	} {
		assert.Contains(t, src, want)
	}

	src = read(t, dir, "graphql.go")
	assert.Contains(t, src, `core.RegisterGraphQL[ShopCaseGraphQL](r, "ShopCase")`)
	assert.Contains(t, src, "fragment ShopCaseFields on ShopCase {")

	src = read(t, dir, "client.go")
	assert.Contains(t, src, "func (c *Client) GraphQLQuery(")
	assert.Contains(t, src, "core.ParseGraphQL(data, graphQLTypes)")
}

func TestGenClient(t *testing.T) {
	dir := generate(t)
	assert.ElementsMatch(t, []string{
		"DataModel", "Client", "NewClient", "Client.DMS", "Client.Apply", "Client.GraphQLQuery",
	}, decls(t, dir, "client.go"))
	src := read(t, dir, "client.go")
	assert.Contains(t, src, `"Shop"`)
	assert.Contains(t, src, "NewShopCaseAPI(client)")
	assert.Contains(t, src, `dmgen.NewMutationError("Shop", "apply", err)`)
}

func TestFeaturesDisabled(t *testing.T) {
	dir := generate(t, gen.WithoutFeatures(gen.FeatureGraphQL.Name, gen.FeatureEdgeAPI.Name, gen.FeatureWhere.Name))
	assert.NotContains(t, decls(t, dir, "client.go"), "Client.GraphQLQuery")
	assert.NotContains(t, read(t, dir, "shop_case_api.go"), "NewShopCaseShopFilesAPI")
	for _, name := range []string{"graphql.go", "shop_case_graphql.go", "shop_case_shop_files.go", "shopcase/where.go"} {
		assert.NoFileExists(t, filepath.Join(dir, name))
	}
}

func TestFragment(t *testing.T) {
	g := testGraph(t)
	s, ok := g.Type("ShopScenario")
	require.True(t, ok)
	assert.Equal(t, "fragment ShopScenarioFields on ShopScenario {\n"+
		"\tspace\n\texternalId\n\tversion\n\tcreatedTime\n\tlastUpdatedTime\n"+
		"\tname\n\tcommands\n\tmodel {\n\t\tspace\n\t\texternalId\n\t}\n}", dm.Fragment(s))
}

func TestDialect(t *testing.T) {
	g := testGraph(t)
	generator := gen.NewJenniferGenerator(g, g.Target)
	d := dm.NewDialect(generator)
	assert.Equal(t, "dm", d.Name())
	require.NoError(t, generator.WithDialect(d).Generate(context.Background()))
	assert.Equal(t, 28, generator.Written())
}

func TestImportsWithoutAliases(t *testing.T) {
	dir := generate(t)
	for _, name := range []string{"shop_case.go", "shop_case_query.go", "client.go", "shopcase/where.go"} {
		f, err := parser.ParseFile(token.NewFileSet(), filepath.Join(dir, name), nil, parser.ImportsOnly)
		require.NoError(t, err)
		require.NotEmpty(t, f.Imports, name)
		for _, imp := range f.Imports {
			assert.Nil(t, imp.Name, "%s imports %s with an alias", name, imp.Path.Value)
		}
	}
	src := read(t, dir, "shop_case.go")
	assert.Contains(t, src, "\t\"github.com/powerops/dmgen/core\"\n")
	assert.Contains(t, src, "\t\"github.com/test/shop/shopcase\"\n")
}
