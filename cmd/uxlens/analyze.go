package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/eleven-am/uxlens/internal/bootstrap"
	"github.com/eleven-am/uxlens/internal/inspection"
	"github.com/eleven-am/uxlens/internal/localization"
	"github.com/eleven-am/uxlens/internal/report"
	"github.com/eleven-am/uxlens/internal/vision"
)

type analyzeFlags struct {
	language string
	market   string
	format   string
	out      string
	timeout  time.Duration
}

func newAnalyzeCmd(opts *options) *cobra.Command {
	flags := &analyzeFlags{}

	cmd := &cobra.Command{
		Use:   "analyze <image>",
		Short: "Analyze a screenshot",
		Long: `Analyze a screenshot and write the report. Without --out the report is
printed to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, opts, flags, args[0])
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "output language (en, es, fi)")
	cmd.Flags().StringVarP(&flags.market, "market", "m", "", "target market code")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "report format (json or pdf)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "write the report to this file")
	cmd.Flags().DurationVar(&flags.timeout, "timeout", 2*time.Minute, "analysis timeout")
	return cmd
}

func runAnalyze(cmd *cobra.Command, opts *options, flags *analyzeFlags, path string) error {
	format, err := report.ParseFormat(flags.format)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	ruleStore, err := bootstrap.ProvideRules(opts.cfg, opts.logger)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	local := vision.NewLocalAnalyzer(nil, opts.logger)
	defer local.Close()
	orchestrator := vision.NewOrchestrator(bootstrap.ProvideRemoteAnalyzer(opts.cfg), local, opts.logger)
	if !orchestrator.RemoteConfigured() {
		opts.logger.Warn("VISION_API_KEY not set, using local detection only")
	}

	service := inspection.NewService(
		orchestrator,
		localization.NewAdvisor(ruleStore, opts.logger),
		inspection.NewMemoryStore(),
		bootstrap.ServiceConfig(opts.cfg),
		opts.logger,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), flags.timeout)
	defer cancel()

	r, err := service.Analyze(ctx, inspection.Request{
		Image:     data,
		ImageName: filepath.Base(path),
		Language:  flags.language,
		Market:    flags.market,
	})
	if err != nil {
		return fmt.Errorf("analyze %s: %w", path, err)
	}

	d := r.ReportData(ruleStore)
	d.Image = data
	out, err := report.NewRenderer().Render(format, d)
	if err != nil {
		return err
	}

	if flags.out == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(flags.out, out, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "%d issues, %d advice items written to %s\n",
		r.Summary.Total, len(r.Advice), flags.out)
	return nil
}
