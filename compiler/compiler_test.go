package compiler_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/compiler"
	"github.com/powerops/dmgen/compiler/gen"
)

const model = `
space: shop
externalId: Shop
version: "1"
views:
  - externalId: ShopCase
    properties:
      - name: status
        type: text
        nullable: true
`

const modelWithFile = model + `
  - externalId: ShopFile
    properties:
      - name: name
        type: text
`

// writeModel replaces the model file of dir atomically, so a watcher never
// reads a partial file.
func writeModel(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "model.yaml")
	tmp := path + ".tmp"
	require.NoError(t, os.WriteFile(tmp, []byte(content), 0o644))
	require.NoError(t, os.Rename(tmp, path))
	return path
}

func config(t *testing.T) *gen.Config {
	t.Helper()
	return gen.MustNewConfig(
		gen.WithPackage("github.com/test/shop"),
		gen.WithTarget(t.TempDir()),
		gen.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

func TestGenerate(t *testing.T) {
	cfg := config(t)
	path := writeModel(t, t.TempDir(), model)
	require.NoError(t, compiler.Generate(context.Background(), path, cfg))
	assert.FileExists(t, filepath.Join(cfg.Target, "client.go"))
	assert.FileExists(t, filepath.Join(cfg.Target, "shop_case.go"))
	assert.FileExists(t, filepath.Join(cfg.Target, "shopcase", "where.go"))
}

func TestGenerateErrors(t *testing.T) {
	cfg := config(t)
	err := compiler.Generate(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.yaml")

	path := writeModel(t, t.TempDir(), "space: shop\nexternalId: Shop\nversion: \"1\"\n")
	err = compiler.Generate(context.Background(), path, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model has no views")
}

func TestLoadGraph(t *testing.T) {
	g, err := compiler.LoadGraph(writeModel(t, t.TempDir(), modelWithFile), config(t))
	require.NoError(t, err)
	require.Len(t, g.Nodes, 2)
	assert.Equal(t, "ShopFile", g.Nodes[1].Name)
}

func TestWatch(t *testing.T) {
	cfg := config(t)
	path := writeModel(t, t.TempDir(), model)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan error, 10)
	done := make(chan error, 1)
	go func() {
		done <- compiler.Watch(ctx, path, cfg,
			compiler.WithDebounce(20*time.Millisecond),
			compiler.OnGenerate(func(err error) { results <- err }),
		)
	}()

	wait := func() error {
		t.Helper()
		select {
		case err := <-results:
			return err
		case <-time.After(5 * time.Second):
			t.Fatal("no generation")
			return nil
		}
	}
	require.NoError(t, wait())
	assert.NoFileExists(t, filepath.Join(cfg.Target, "shop_file.go"))

	writeModel(t, filepath.Dir(path), modelWithFile)
	require.NoError(t, wait())
	assert.FileExists(t, filepath.Join(cfg.Target, "shop_file.go"))

	// An invalid model is reported and watching continues.
	writeModel(t, filepath.Dir(path), "views: [")
	assert.Error(t, wait())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
