package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/powerops/dmgen/compiler"
)

func newGenerateCmd() *cobra.Command {
	var flags genFlags
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the client of a data model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			if err := compiler.Generate(cmd.Context(), model, cfg); err != nil {
				return err
			}
			slog.Info("client generated", "model", model, "target", cfg.Target, "package", cfg.Package)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func newWatchCmd() *cobra.Command {
	var (
		flags    genFlags
		debounce = compiler.DefaultDebounce
	)
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the client whenever the data model changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			model, cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			slog.Info("watching data model", "model", model)
			return compiler.Watch(cmd.Context(), model, cfg, compiler.WithDebounce(debounce))
		},
	}
	flags.register(cmd)
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "Quiet period after a change")
	return cmd
}
