package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/eleven-am/uxlens/internal/bootstrap"
	"github.com/eleven-am/uxlens/internal/i18n"
)

func newMarketsCmd(opts *options) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "markets",
		Short: "List the markets with localization rules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ruleStore, err := bootstrap.ProvideRules(opts.cfg, opts.logger)
			if err != nil {
				return fmt.Errorf("load rules: %w", err)
			}

			lang := i18n.ParseLanguage(language)
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, m := range ruleStore.Markets() {
				fmt.Fprintf(w, "%s\t%s\n", m.Code, m.DisplayName(lang))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVarP(&language, "language", "l", "", "language for market names (en, es, fi)")
	return cmd
}
