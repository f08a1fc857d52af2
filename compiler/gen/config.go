package gen

import (
	"log/slog"
	"path"
	"runtime"
	"slices"
)

const defaultHeader = "Code generated by dmgen, DO NOT EDIT."

// Config is the configuration of one code generation run.
type Config struct {
	// Package is the import path of the generated package, e.g.
	// "github.com/org/project/powerops".
	Package string
	// Target is the output directory.
	Target string
	// Header is the comment at the top of every generated file.
	Header string
	// Workers bounds the number of files rendered in parallel.
	Workers int
	// Features lists the enabled feature-flags.
	Features []Feature
	Logger   *slog.Logger
}

// DefaultConfig returns a config with the default header, one worker per
// CPU and the default features enabled.
func DefaultConfig() *Config {
	c := &Config{
		Header:  defaultHeader,
		Workers: runtime.GOMAXPROCS(0),
	}
	for _, f := range AllFeatures {
		if f.Default {
			c.Features = append(c.Features, f)
		}
	}
	return c
}

// PackageName returns the name of the generated package.
func (c *Config) PackageName() string {
	return path.Base(c.Package)
}

// FeatureEnabled reports if the given feature name is enabled.
// It returns a ConfigError for unknown names.
func (c *Config) FeatureEnabled(name string) (bool, error) {
	if _, ok := FeatureByName(name); !ok {
		return false, NewConfigError("Features", name, "unknown feature")
	}
	return c.HasFeature(name), nil
}

// HasFeature reports if the feature is enabled.
func (c *Config) HasFeature(name string) bool {
	return slices.ContainsFunc(c.Features, func(f Feature) bool { return f.Name == name })
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// validate checks the settings a generation run needs.
func (c *Config) validate() error {
	if c.Target == "" {
		return NewConfigError("Target", nil, "missing target directory in config")
	}
	if c.Package == "" {
		return NewConfigError("Package", nil, "missing package import path in config")
	}
	return nil
}
