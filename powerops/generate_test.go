package powerops_test

import (
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/powerops/dmgen/compiler"
	"github.com/powerops/dmgen/compiler/gen"
)

// generatedFiles returns the contents of the generated Go files under dir,
// keyed by slash-separated relative path.
func generatedFiles(t *testing.T, dir string) map[string]string {
	t.Helper()
	files := make(map[string]string)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !strings.HasSuffix(path, ".go") {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !strings.HasPrefix(string(data), "// Code generated by dmgen, DO NOT EDIT.") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return files
}

func TestGeneratedCodeUpToDate(t *testing.T) {
	target := t.TempDir()
	cfg, err := gen.NewConfig(
		gen.WithPackage("github.com/powerops/dmgen/powerops"),
		gen.WithTarget(target),
		gen.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
	require.NoError(t, err)
	require.NoError(t, compiler.Generate(context.Background(), "model.yaml", cfg))

	want := generatedFiles(t, target)
	got := generatedFiles(t, ".")
	require.NotEmpty(t, want)
	for name, content := range want {
		assert.Equal(t, content, got[name], "%s is stale, run go generate", name)
	}
	for name := range got {
		assert.Contains(t, want, name, "%s is no longer generated", name)
	}
}
