package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/eleven-am/uxlens/internal/bootstrap"
)

type options struct {
	verbose bool
	cfg     *bootstrap.Config
	logger  *slog.Logger
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "uxlens",
		Short: "Review screenshots for UX and localization issues",
		Long: `uxlens runs vision detection on a screenshot, derives UX findings and
market specific localization advice, and exports the result as JSON or PDF.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			opts.cfg = bootstrap.LoadConfig()
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(newAnalyzeCmd(opts))
	cmd.AddCommand(newMarketsCmd(opts))
	return cmd
}

// newLogger writes to stderr so stdout carries only the report.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
