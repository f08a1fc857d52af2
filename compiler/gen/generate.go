package gen

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync/atomic"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// JenniferGenerator renders the files of a Dialect in parallel, formats
// them with goimports and writes them under the target directory.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	outDir  string
	pkg     string

	dialect    Dialect
	whereGen   WhereGenerator
	edgeAPIGen EdgeAPIGenerator
	graphQLGen GraphQLGenerator

	written atomic.Int64
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithDialect() to set a dialect before calling Generate().
//
// Example:
//
//	import "github.com/powerops/dmgen/compiler/gen/dm"
//
//	g := gen.NewJenniferGenerator(graph, outDir)
//	g.WithDialect(dm.NewDialect(g))
//	err := g.Generate(ctx)
func NewJenniferGenerator(g *Graph, outDir string) *JenniferGenerator {
	workers := g.Workers
	if workers <= 0 {
		workers = 1
	}
	return &JenniferGenerator{
		graph:   g,
		workers: workers,
		outDir:  outDir,
		pkg:     g.Package,
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithPackage sets the output package import path.
func (g *JenniferGenerator) WithPackage(pkg string) *JenniferGenerator {
	if pkg != "" {
		g.pkg = pkg
	}
	return g
}

// WithDialect sets the dialect. Optional capabilities are detected via
// type assertion.
func (g *JenniferGenerator) WithDialect(d Dialect) *JenniferGenerator {
	if d != nil {
		g.dialect = d
		if wg, ok := d.(WhereGenerator); ok {
			g.whereGen = wg
		}
		if eg, ok := d.(EdgeAPIGenerator); ok {
			g.edgeAPIGen = eg
		}
		if qg, ok := d.(GraphQLGenerator); ok {
			g.graphQLGen = qg
		}
	}
	return g
}

// Written returns the number of files written by the last Generate.
func (g *JenniferGenerator) Written() int {
	return int(g.written.Load())
}

// Generate renders and writes all files. Files of disabled features left
// by earlier runs are removed.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.dialect == nil {
		return NewConfigError("Dialect", nil, "no dialect set: call WithDialect() before Generate()")
	}
	if g.pkg == "" {
		return NewConfigError("Package", nil, "missing package import path")
	}
	if err := os.MkdirAll(g.outDir, 0o755); err != nil {
		return NewGenerationError("write", g.outDir, "", err)
	}
	g.written.Store(0)
	log := g.graph.logger().With("dialect", g.dialect.Name(), "target", g.outDir)

	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	emit := func(subdir, filename string, gen func() *jen.File) {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return g.writeFile(gen(), subdir, filename)
		})
	}

	for _, t := range g.graph.Nodes {
		emit("", t.FileName()+".go", func() *jen.File { return g.dialect.GenData(t) })
		emit("", t.FileName()+"_api.go", func() *jen.File { return g.dialect.GenAPI(t) })
		emit("", t.FileName()+"_query.go", func() *jen.File { return g.dialect.GenQuery(t) })
		emit(t.PackageDir(), t.PackageDir()+".go", func() *jen.File { return g.dialect.GenViewPackage(t) })
		if g.whereGen != nil && g.FeatureEnabled(FeatureWhere.Name) {
			emit(t.PackageDir(), "where.go", func() *jen.File { return g.whereGen.GenWhere(t) })
		}
		if g.graphQLGen != nil && g.FeatureEnabled(FeatureGraphQL.Name) {
			emit("", t.FileName()+"_graphql.go", func() *jen.File { return g.graphQLGen.GenGraphQLType(t) })
		}
		if g.edgeAPIGen != nil && g.FeatureEnabled(FeatureEdgeAPI.Name) {
			for _, e := range t.EdgeProperties() {
				emit("", e.FileName(), func() *jen.File { return g.edgeAPIGen.GenEdgeAPI(e) })
			}
		}
	}
	emit("", "client.go", g.dialect.GenClient)
	if g.graphQLGen != nil && g.FeatureEnabled(FeatureGraphQL.Name) {
		errg.Go(func() error {
			f, err := g.graphQLGen.GenGraphQL()
			if err != nil {
				return NewGenerationError("render", "graphql.go", "", err)
			}
			return g.writeFile(f, "", "graphql.go")
		})
	}
	if err := errg.Wait(); err != nil {
		return err
	}
	if err := g.graph.cleanupDisabled(); err != nil {
		return err
	}
	log.Info("generated client", "files", g.Written())
	return nil
}

// =============================================================================
// GeneratorHelper interface implementation
// =============================================================================

// Graph returns the data model graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// Pkg returns the import path of the generated package.
func (g *JenniferGenerator) Pkg() string {
	return g.pkg
}

// ViewPkg returns the import path of the view package of t.
func (g *JenniferGenerator) ViewPkg(t *Type) string {
	return path.Join(g.pkg, t.PackageDir())
}

// NewFile returns a file of the generated package.
func (g *JenniferGenerator) NewFile() *jen.File {
	return g.newFile(g.pkg, path.Base(g.pkg))
}

// NewViewFile returns a file of the view package of t.
func (g *JenniferGenerator) NewViewFile(t *Type) *jen.File {
	return g.newFile(g.ViewPkg(t), t.PackageDir())
}

// FeatureEnabled reports if a feature-flag is enabled.
func (g *JenniferGenerator) FeatureEnabled(name string) bool {
	return g.graph.HasFeature(name)
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)

// newFile creates a new Jennifer file with the header comment. The
// generated packages are imported under their own names, without aliases.
func (g *JenniferGenerator) newFile(pkgPath, name string) *jen.File {
	f := jen.NewFilePathName(pkgPath, name)
	f.ImportName(g.pkg, path.Base(g.pkg))
	for _, t := range g.graph.Nodes {
		f.ImportName(g.ViewPkg(t), t.PackageDir())
	}
	if g.graph.Header != "" {
		f.HeaderComment(g.graph.Header)
	}
	return f
}

// writeFile renders f, formats it with goimports and writes it. When
// formatting fails the unformatted source is kept next to the target with
// an ".error" suffix.
func (g *JenniferGenerator) writeFile(f *jen.File, subdir, filename string) error {
	fullPath := filepath.Join(g.outDir, subdir, filename)
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("render", fullPath, "", err)
	}
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		debugPath := fullPath + ".error"
		_ = os.MkdirAll(filepath.Dir(debugPath), 0o755)
		_ = os.WriteFile(debugPath, buf.Bytes(), 0o644)
		return NewGenerationError("format", fullPath, fmt.Sprintf("unformatted written to %s", debugPath), err)
	}
	if err := writeAtomic(fullPath, formatted); err != nil {
		return NewGenerationError("write", fullPath, "", err)
	}
	g.written.Add(1)
	g.graph.logger().Debug("wrote file", "path", fullPath, "bytes", len(formatted))
	return nil
}

// writeAtomic writes data to a temporary file next to name and renames it
// over name, so readers never see a partial file.
func writeAtomic(name string, data []byte) error {
	dir := filepath.Dir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(name)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}

// Generate validates the config of g and writes the client produced by
// the dialect returned by newDialect.
func Generate(ctx context.Context, g *Graph, newDialect func(GeneratorHelper) Dialect) error {
	if err := g.validate(); err != nil {
		return err
	}
	gen := NewJenniferGenerator(g, g.Target)
	return gen.WithDialect(newDialect(gen)).Generate(ctx)
}
