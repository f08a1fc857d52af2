// Package compiler loads data-model files and generates their typed
// clients.
//
//	cfg, err := gen.NewConfig(
//	    gen.WithPackage("github.com/acme/powerops"),
//	    gen.WithTarget("./powerops"),
//	)
//	if err != nil {
//	    return err
//	}
//	err = compiler.Generate(ctx, "model.yaml", cfg)
package compiler

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/powerops/dmgen/compiler/gen"
	"github.com/powerops/dmgen/compiler/gen/dm"
	"github.com/powerops/dmgen/compiler/load"
)

// LoadGraph loads the data model at modelPath and resolves its graph.
func LoadGraph(modelPath string, cfg *gen.Config) (*gen.Graph, error) {
	m, err := load.Load(modelPath)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(cfg, m)
}

// Generate loads the data model at modelPath and writes its client to
// cfg.Target.
func Generate(ctx context.Context, modelPath string, cfg *gen.Config) error {
	g, err := LoadGraph(modelPath, cfg)
	if err != nil {
		return err
	}
	return dm.Generate(ctx, g)
}

// DefaultDebounce is the quiet period Watch waits for after a change
// before regenerating.
const DefaultDebounce = 200 * time.Millisecond

type watchOptions struct {
	debounce time.Duration
	notify   func(error)
}

// WatchOption configures Watch.
type WatchOption func(*watchOptions)

// WithDebounce sets the quiet period after a change. Editors often write a
// file several times per save.
func WithDebounce(d time.Duration) WatchOption {
	return func(o *watchOptions) {
		o.debounce = d
	}
}

// OnGenerate registers fn to be called after every generation with its
// result.
func OnGenerate(fn func(error)) WatchOption {
	return func(o *watchOptions) {
		o.notify = fn
	}
}

// Watch generates the client of the data model at modelPath, then
// regenerates it whenever the file changes, until ctx is done. Failed
// generations are logged and watching continues.
func Watch(ctx context.Context, modelPath string, cfg *gen.Config, opts ...WatchOption) error {
	o := watchOptions{debounce: DefaultDebounce}
	for _, opt := range opts {
		opt(&o)
	}
	path, err := filepath.Abs(modelPath)
	if err != nil {
		return fmt.Errorf("compiler: watch %s: %w", modelPath, err)
	}
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	log = log.With("model", path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("compiler: watch: %w", err)
	}
	defer w.Close()
	// The directory is watched so that editors replacing the file on save
	// are seen.
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("compiler: watch %s: %w", filepath.Dir(path), err)
	}

	run := func() {
		err := Generate(ctx, path, cfg)
		if err != nil {
			log.Error("generation failed", "error", err)
		} else {
			log.Info("client regenerated", "target", cfg.Target)
		}
		if o.notify != nil {
			o.notify(err)
		}
	}
	run()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			log.Debug("model changed", "op", ev.Op.String())
			pending = time.After(o.debounce)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("watch error", "error", err)
		case <-pending:
			pending = nil
			run()
		}
	}
}
