// Command dmgen generates typed data-modeling clients from data-model files.
//
//	dmgen generate --model model.yaml --target ./powerops --package github.com/acme/powerops
//	dmgen watch --config dmgen.yaml
//	dmgen describe --model model.yaml
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Every call returns fresh flags.
func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:   "dmgen",
		Short: "Generate typed clients for data models",
		Long: `dmgen reads a data-model file (views, properties and relations) and
generates a typed Go client on top of the platform wire client.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			slog.SetDefault(newLogger(cmd.ErrOrStderr(), verbose))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	root.AddCommand(
		newGenerateCmd(),
		newWatchCmd(),
		newDescribeCmd(),
	)
	return root
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
