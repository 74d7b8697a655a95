// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose bool
	logger  *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "wikitools",
	Short: "One-shot helpers for proposal wikis and code-duplication reports",
	Long: `wikitools bundles two single-run commands:

  import   create one wiki page per CSV row, plus a table of contents
           and one page per category
  dupes    summarize a CPD duplication report, sorted by how much of
           each file is duplicated

Both commands do a single linear pass and exit; there is nothing to
resume if a run fails partway.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(importCmd, dupesCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
