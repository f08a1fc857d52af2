package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/powerops/dmgen/compiler"
	"github.com/powerops/dmgen/compiler/gen"
)

func newDescribeCmd() *cobra.Command {
	var model string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Print the views, properties and relations of a data model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Package and target are only needed for writing files.
			cfg, err := gen.NewConfig(gen.WithPackage("describe"), gen.WithTarget("."))
			if err != nil {
				return err
			}
			g, err := compiler.LoadGraph(model, cfg)
			if err != nil {
				return err
			}
			return describe(cmd.OutOrStdout(), g)
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "model.yaml", "Data-model file")
	return cmd
}

func describe(out io.Writer, g *gen.Graph) error {
	fmt.Fprintf(out, "%s:%s/%s (%d views)\n", g.Space, g.ExternalID, g.Version, len(g.Nodes))
	for _, t := range g.Nodes {
		fmt.Fprintf(out, "\n%s (%s:%s/%s)\n", t.Name, t.Space, t.ExternalID, t.Version)
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		for _, f := range t.Fields {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", f.Name, fieldType(f), fieldFlags(f))
		}
		for _, e := range t.Edges {
			if e.Direct {
				continue
			}
			fmt.Fprintf(w, "  %s\t%s\t%s\n", e.Name, edgeType(e), edgeFlags(e))
		}
		if err := w.Flush(); err != nil {
			return err
		}
	}
	return nil
}

func fieldType(f *gen.Field) string {
	typ := string(f.Type)
	if f.IsDirect() {
		typ = "-> " + f.Edge.Type.Name
	}
	if f.List {
		typ = "[]" + typ
	}
	return typ
}

func fieldFlags(f *gen.Field) string {
	if f.Nullable {
		return "nullable"
	}
	return ""
}

func edgeType(e *gen.Edge) string {
	arrow := "-> "
	if e.Inverse {
		arrow = "<- "
	}
	if !e.Unique {
		arrow = "[]" + arrow
	}
	return arrow + e.Type.Name
}

func edgeFlags(e *gen.Edge) string {
	flags := []string{"edge " + e.EdgeType}
	if e.Inverse {
		flags = append(flags, "inwards")
	}
	return strings.Join(flags, ", ")
}
