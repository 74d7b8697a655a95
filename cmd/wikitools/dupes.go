// SPDX-License-Identifier: Apache-2.0

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/wikitoolsproj/wikitools/internal/dupes"
)

var (
	dupesMarker       string
	dupesOrderedPairs bool
)

var dupesCmd = &cobra.Command{
	Use:   "dupes <report.xml> <source-root>",
	Short: "Summarize a CPD duplication report, sorted by duplication share",
	Long: `Reads an XML report produced by PMD's copy-paste detector, merges
the duplicated-line counts of every file pair, and prints the pairs
sorted by how much of the first file is duplicated.

The source root is the directory CPD was run against; reported paths
are resolved under it to measure each file's length.`,
	Args: cobra.ExactArgs(2),
	RunE: runDupes,
}

func init() {
	dupesCmd.Flags().StringVar(&dupesMarker, "marker", dupes.DefaultMarker,
		"path prefix stripped from every reported path")
	dupesCmd.Flags().BoolVar(&dupesOrderedPairs, "ordered-pairs", false,
		"treat (A,B) and (B,A) as distinct pairs instead of merging them")
}

func runDupes(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	report, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer report.Close()

	p := &dupes.Pipeline{
		Marker:       dupesMarker,
		OrderedPairs: dupesOrderedPairs,
		Root:         args[1],
		Out:          cmd.OutOrStdout(),
		Logger:       logger,
	}
	return p.Run(cmd.Context(), report)
}
