package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/powerops/dmgen/compiler/gen"
)

// defaultConfigFile is read when --config is not set and the file exists.
const defaultConfigFile = "dmgen.yaml"

// fileConfig is the content of a dmgen.yaml file.
type fileConfig struct {
	Model   string `yaml:"model"`
	Target  string `yaml:"target"`
	Package string `yaml:"package"`
	Header  string `yaml:"header,omitempty"`
	Workers int    `yaml:"workers,omitempty"`
	// Features enables optional features. Without disables default ones.
	Features []string `yaml:"features,omitempty"`
	Without  []string `yaml:"without,omitempty"`
}

// readConfig reads the dmgen.yaml at path. A missing default file is not
// an error.
func readConfig(path string, explicit bool) (*fileConfig, error) {
	c := &fileConfig{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		return c, nil
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// genFlags are the flags shared by generate and watch. Flags override the
// values of the config file.
type genFlags struct {
	config   string
	model    string
	target   string
	pkg      string
	features []string
	without  []string
}

func (f *genFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVarP(&f.config, "config", "c", defaultConfigFile, "Config file")
	fl.StringVarP(&f.model, "model", "m", "", "Data-model file")
	fl.StringVarP(&f.target, "target", "t", "", "Output directory")
	fl.StringVarP(&f.pkg, "package", "p", "", "Import path of the generated package")
	fl.StringSliceVar(&f.features, "feature", nil, "Enable optional features")
	fl.StringSliceVar(&f.without, "without", nil, "Disable default features")
}

// load merges the config file and the flags into a generator config and
// returns it with the model path.
func (f *genFlags) load(cmd *cobra.Command) (string, *gen.Config, error) {
	fc, err := readConfig(f.config, cmd.Flags().Changed("config"))
	if err != nil {
		return "", nil, err
	}
	override := func(dst *string, flag, v string) {
		if cmd.Flags().Changed(flag) {
			*dst = v
		}
	}
	override(&fc.Model, "model", f.model)
	override(&fc.Target, "target", f.target)
	override(&fc.Package, "package", f.pkg)
	fc.Features = append(fc.Features, f.features...)
	fc.Without = append(fc.Without, f.without...)
	if fc.Model == "" {
		return "", nil, errors.New("missing data-model file, set --model or model in the config file")
	}

	opts := []gen.Option{
		gen.WithLogger(slog.Default()),
		gen.WithFeatureNames(fc.Features...),
		gen.WithoutFeatures(fc.Without...),
	}
	if fc.Target != "" {
		opts = append(opts, gen.WithTarget(fc.Target))
	}
	if fc.Package != "" {
		opts = append(opts, gen.WithPackage(fc.Package))
	}
	if fc.Header != "" {
		opts = append(opts, gen.WithHeader(fc.Header))
	}
	if fc.Workers != 0 {
		opts = append(opts, gen.WithWorkers(fc.Workers))
	}
	cfg, err := gen.NewConfig(opts...)
	if err != nil {
		return "", nil, err
	}
	return fc.Model, cfg, nil
}
